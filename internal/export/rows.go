package export

import (
	"strconv"
	"strings"

	"github.com/kdanquah/regportal/internal/app/models"
)

const dateLayout = "2006-01-02"

// StudentHeader is the column order used by tabular student exports.
var StudentHeader = []string{
	"Student ID", "Surname", "Other Names", "Date of Birth", "Place of Birth",
	"Home Town", "Nationality", "Gender", "Marital Status", "Religion",
	"Denomination", "Disability", "Disability Description",
	"Residential Address", "Postal Address", "Email", "Telephone",
	"National ID", "Guardian Name", "Guardian Relationship",
	"Guardian Occupation", "Guardian Address", "Guardian Telephone",
	"Previous School", "Qualification", "Completion Year", "Aggregate Score",
	"Programme", "Receipt Amount", "Approval Status", "Created At",
}

// RegistrationHeader is the column order used by tabular registration exports.
var RegistrationHeader = []string{
	"Registration ID", "Student ID", "Index Number", "Programme",
	"Specialization", "Level", "Session", "Academic Year", "Semester",
	"Courses", "Total Credits", "Receipt Amount", "Approval Status",
	"Date Registered",
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func derefOr(p *string, fallback string) string {
	if p == nil {
		return fallback
	}
	return *p
}

// StudentRow flattens one record into StudentHeader order.
func StudentRow(rec *models.StudentRecord) []string {
	return []string{
		rec.StudentID,
		rec.Surname,
		rec.OtherNames,
		rec.DateOfBirth.Format(dateLayout),
		rec.PlaceOfBirth,
		rec.HomeTown,
		rec.Nationality,
		rec.Gender,
		rec.MaritalStatus,
		rec.Religion,
		rec.Denomination,
		rec.DisabilityStatus,
		rec.DisabilityDescription,
		rec.ResidentialAddress,
		rec.PostalAddress,
		rec.Email,
		rec.Telephone,
		rec.NationalID,
		rec.GuardianName,
		rec.GuardianRelationship,
		rec.GuardianOccupation,
		rec.GuardianAddress,
		rec.GuardianTelephone,
		rec.PreviousSchool,
		rec.QualificationType,
		rec.CompletionYear,
		rec.AggregateScore,
		rec.Programme,
		formatAmount(rec.EffectiveReceiptAmount()),
		string(rec.ApprovalStatus),
		rec.CreatedAt.Format(dateLayout),
	}
}

// StudentRows flattens records into StudentHeader order.
func StudentRows(recs []*models.StudentRecord) [][]string {
	rows := make([][]string, 0, len(recs))
	for _, rec := range recs {
		rows = append(rows, StudentRow(rec))
	}
	return rows
}

// courseList renders a course snapshot as "CODE Title (n)" entries.
func courseList(courses []models.Course) string {
	parts := make([]string, 0, len(courses))
	for _, c := range courses {
		parts = append(parts, c.Code+" "+c.Title+" ("+strconv.Itoa(c.CreditHours)+")")
	}
	return strings.Join(parts, "; ")
}

// RegistrationRow flattens one registration into RegistrationHeader order.
func RegistrationRow(reg *models.CourseRegistration) []string {
	return []string{
		strconv.FormatInt(reg.RegistrationID, 10),
		reg.StudentID,
		reg.IndexNumber,
		reg.Programme,
		derefOr(reg.Specialization, ""),
		reg.Level,
		reg.Session,
		reg.AcademicYear,
		reg.Semester,
		courseList(reg.Courses),
		strconv.Itoa(reg.TotalCredits),
		formatAmount(reg.EffectiveReceiptAmount()),
		string(reg.ApprovalStatus),
		reg.DateRegistered.Format(dateLayout),
	}
}

// RegistrationRows flattens registrations into RegistrationHeader order.
func RegistrationRows(regs []*models.CourseRegistration) [][]string {
	rows := make([][]string, 0, len(regs))
	for _, reg := range regs {
		rows = append(rows, RegistrationRow(reg))
	}
	return rows
}
