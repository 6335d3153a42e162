package dto

import (
	"time"

	"github.com/kdanquah/regportal/internal/app/models"
)

// StudentDraftRequest carries the intake form fields for the review step of
// the two-phase submission.
type StudentDraftRequest struct {
	StudentID string `json:"studentId" binding:"required"`

	Surname               string `json:"surname" binding:"required"`
	OtherNames            string `json:"otherNames" binding:"required"`
	DateOfBirth           string `json:"dateOfBirth" binding:"required" example:"2000-04-18"`
	PlaceOfBirth          string `json:"placeOfBirth"`
	HomeTown              string `json:"homeTown"`
	Nationality           string `json:"nationality"`
	Gender                string `json:"gender"`
	MaritalStatus         string `json:"maritalStatus"`
	Religion              string `json:"religion"`
	Denomination          string `json:"denomination"`
	DisabilityStatus      string `json:"disabilityStatus" example:"none"`
	DisabilityDescription string `json:"disabilityDescription"`

	ResidentialAddress string `json:"residentialAddress"`
	PostalAddress      string `json:"postalAddress"`
	Email              string `json:"email" binding:"omitempty,email"`
	Telephone          string `json:"telephone"`
	NationalID         string `json:"nationalId"`

	GuardianName         string `json:"guardianName"`
	GuardianRelationship string `json:"guardianRelationship"`
	GuardianOccupation   string `json:"guardianOccupation"`
	GuardianAddress      string `json:"guardianAddress"`
	GuardianTelephone    string `json:"guardianTelephone"`

	PreviousSchool    string `json:"previousSchool"`
	QualificationType string `json:"qualificationType"`
	CompletionYear    string `json:"completionYear"`
	AggregateScore    string `json:"aggregateScore"`

	Programme string `json:"programme"`
}

// ToStudentRecord converts the request into a StudentRecord ready for
// persistence. date parsing happens at this boundary so everything behind it
// works with typed values.
func (r *StudentDraftRequest) ToStudentRecord() (*models.StudentRecord, error) {
	dob, err := time.Parse("2006-01-02", r.DateOfBirth)
	if err != nil {
		return nil, err
	}

	return &models.StudentRecord{
		StudentID:             r.StudentID,
		Surname:               r.Surname,
		OtherNames:            r.OtherNames,
		DateOfBirth:           dob,
		PlaceOfBirth:          r.PlaceOfBirth,
		HomeTown:              r.HomeTown,
		Nationality:           r.Nationality,
		Gender:                r.Gender,
		MaritalStatus:         r.MaritalStatus,
		Religion:              r.Religion,
		Denomination:          r.Denomination,
		DisabilityStatus:      r.DisabilityStatus,
		DisabilityDescription: r.DisabilityDescription,
		ResidentialAddress:    r.ResidentialAddress,
		PostalAddress:         r.PostalAddress,
		Email:                 r.Email,
		Telephone:             r.Telephone,
		NationalID:            r.NationalID,
		GuardianName:          r.GuardianName,
		GuardianRelationship:  r.GuardianRelationship,
		GuardianOccupation:    r.GuardianOccupation,
		GuardianAddress:       r.GuardianAddress,
		GuardianTelephone:     r.GuardianTelephone,
		PreviousSchool:        r.PreviousSchool,
		QualificationType:     r.QualificationType,
		CompletionYear:        r.CompletionYear,
		AggregateScore:        r.AggregateScore,
		Programme:             r.Programme,
	}, nil
}

// StudentUpdateRequest is a partial update; nil fields are left untouched.
// The student id itself is taken from the URL and is not updatable.
type StudentUpdateRequest struct {
	Surname               *string `json:"surname"`
	OtherNames            *string `json:"otherNames"`
	DateOfBirth           *string `json:"dateOfBirth"`
	PlaceOfBirth          *string `json:"placeOfBirth"`
	HomeTown              *string `json:"homeTown"`
	Nationality           *string `json:"nationality"`
	Gender                *string `json:"gender"`
	MaritalStatus         *string `json:"maritalStatus"`
	Religion              *string `json:"religion"`
	Denomination          *string `json:"denomination"`
	DisabilityStatus      *string `json:"disabilityStatus"`
	DisabilityDescription *string `json:"disabilityDescription"`
	ResidentialAddress    *string `json:"residentialAddress"`
	PostalAddress         *string `json:"postalAddress"`
	Email                 *string `json:"email" binding:"omitempty,email"`
	Telephone             *string `json:"telephone"`
	NationalID            *string `json:"nationalId"`
	GuardianName          *string `json:"guardianName"`
	GuardianRelationship  *string `json:"guardianRelationship"`
	GuardianOccupation    *string `json:"guardianOccupation"`
	GuardianAddress       *string `json:"guardianAddress"`
	GuardianTelephone     *string `json:"guardianTelephone"`
	PreviousSchool        *string `json:"previousSchool"`
	QualificationType     *string `json:"qualificationType"`
	CompletionYear        *string `json:"completionYear"`
	AggregateScore        *string `json:"aggregateScore"`
	Programme             *string `json:"programme"`

	// StudentID is rejected if present; it exists so an attempted rename is
	// reported explicitly instead of being silently ignored.
	StudentID *string `json:"studentId"`
}

// StudentResponse is the outward view of a student record. ReceiptAmount is
// always the effective amount (0 when no receipt is attached).
type StudentResponse struct {
	models.StudentRecord
	ReceiptAmount float64 `json:"receiptAmount"`
}

// FromStudentRecord builds the response view of a record.
func FromStudentRecord(rec *models.StudentRecord) StudentResponse {
	if rec == nil {
		return StudentResponse{}
	}
	return StudentResponse{
		StudentRecord: *rec,
		ReceiptAmount: rec.EffectiveReceiptAmount(),
	}
}
