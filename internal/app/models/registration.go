package models

import "time"

// Course is one entry of the programme catalogue. Registrations store a copy
// of the selected courses, so later catalogue edits never rewrite history.
type Course struct {
	Code        string `json:"code" yaml:"code" example:"FA101"`
	Title       string `json:"title" yaml:"title" example:"Financial Accounting"`
	CreditHours int    `json:"creditHours" yaml:"credit_hours" example:"3"`
}

// MaxCreditHours is the per-registration credit-hour ceiling.
const MaxCreditHours = 24

// TotalCreditHours sums the credit hours of a course selection.
func TotalCreditHours(courses []Course) int {
	total := 0
	for _, c := range courses {
		total += c.CreditHours
	}
	return total
}

// CourseRegistration defines the registration model based on the
// 'course_registrations' table.
type CourseRegistration struct {
	RegistrationID int64  `json:"registrationId" db:"registration_id" example:"1"`
	StudentID      string `json:"studentId" db:"student_id" example:"PS/ACC/2024/001"`
	IndexNumber    string `json:"indexNumber,omitempty" db:"index_number"`

	Programme      string  `json:"programme" db:"programme" example:"ACCA"`
	Specialization *string `json:"specialization,omitempty" db:"specialization"`
	Level          string  `json:"level" db:"level" example:"Applied Knowledge"`
	Session        string  `json:"session" db:"session" example:"Weekend"`
	AcademicYear   string  `json:"academicYear" db:"academic_year" example:"2024/2025"`
	Semester       string  `json:"semester" db:"semester" example:"First"`

	// Courses is the ordered snapshot copied from the catalogue at
	// registration time; TotalCredits always equals its credit-hour sum.
	Courses      []Course `json:"courses" db:"courses"`
	TotalCredits int      `json:"totalCredits" db:"total_credits" example:"9"`

	DateRegistered time.Time      `json:"dateRegistered" db:"date_registered"`
	ApprovalStatus ApprovalStatus `json:"approvalStatus" db:"approval_status"`

	ReceiptPath   *string `json:"receiptPath,omitempty" db:"receipt_path"`
	ReceiptAmount float64 `json:"receiptAmount" db:"receipt_amount"`
}

// EffectiveReceiptAmount mirrors StudentRecord's receipt semantics.
func (r *CourseRegistration) EffectiveReceiptAmount() float64 {
	if r.ReceiptPath == nil || *r.ReceiptPath == "" {
		return 0
	}
	return r.ReceiptAmount
}
