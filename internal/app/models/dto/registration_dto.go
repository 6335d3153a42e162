package dto

import "github.com/kdanquah/regportal/internal/app/models"

// RegistrationDraftRequest carries the course registration form for the
// review step. Courses are selected by catalogue code; the snapshot stored on
// the registration is resolved server-side from the configured catalogue.
type RegistrationDraftRequest struct {
	StudentID      string   `json:"studentId" binding:"required"`
	IndexNumber    string   `json:"indexNumber"`
	Programme      string   `json:"programme" binding:"required"`
	Specialization *string  `json:"specialization"`
	Level          string   `json:"level" binding:"required"`
	Session        string   `json:"session"`
	AcademicYear   string   `json:"academicYear"`
	Semester       string   `json:"semester"`
	CourseCodes    []string `json:"courseCodes" binding:"required,min=1"`
}

// RegistrationUpdateRequest is a partial update. Changing CourseCodes
// re-resolves the snapshot and re-checks the credit ceiling.
type RegistrationUpdateRequest struct {
	IndexNumber    *string  `json:"indexNumber"`
	Programme      *string  `json:"programme"`
	Specialization *string  `json:"specialization"`
	Level          *string  `json:"level"`
	Session        *string  `json:"session"`
	AcademicYear   *string  `json:"academicYear"`
	Semester       *string  `json:"semester"`
	CourseCodes    []string `json:"courseCodes"`
}

// RegistrationResponse is the outward view of a registration.
type RegistrationResponse struct {
	models.CourseRegistration
	ReceiptAmount float64 `json:"receiptAmount"`
}

// FromCourseRegistration builds the response view of a registration.
func FromCourseRegistration(reg *models.CourseRegistration) RegistrationResponse {
	if reg == nil {
		return RegistrationResponse{}
	}
	return RegistrationResponse{
		CourseRegistration: *reg,
		ReceiptAmount:      reg.EffectiveReceiptAmount(),
	}
}
