package export

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/jung-kurt/gofpdf"

	"github.com/kdanquah/regportal/internal/app/models"
)

const (
	pdfLabelWidth = 60
	pdfValueWidth = 120
	pdfRowHeight  = 7
)

func newForm(title string) *gofpdf.Fpdf {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(title, false)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 10, title, "", 1, "C", false, 0, "")
	pdf.Ln(3)
	return pdf
}

func sectionHeader(pdf *gofpdf.Fpdf, title string) {
	pdf.Ln(2)
	pdf.SetFont("Arial", "B", 11)
	pdf.SetFillColor(230, 230, 230)
	pdf.CellFormat(pdfLabelWidth+pdfValueWidth, pdfRowHeight, title, "1", 1, "L", true, 0, "")
}

func fieldRow(pdf *gofpdf.Fpdf, label, value string) {
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(pdfLabelWidth, pdfRowHeight, label, "1", 0, "L", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(pdfValueWidth, pdfRowHeight, value, "1", 1, "L", false, 0, "")
}

// StudentFormPDF renders the intake form for one student record.
func StudentFormPDF(rec *models.StudentRecord) ([]byte, error) {
	pdf := newForm("Student Registration Form")

	sectionHeader(pdf, "Biographic Information")
	fieldRow(pdf, "Student ID", rec.StudentID)
	fieldRow(pdf, "Surname", rec.Surname)
	fieldRow(pdf, "Other Names", rec.OtherNames)
	fieldRow(pdf, "Date of Birth", rec.DateOfBirth.Format(dateLayout))
	fieldRow(pdf, "Place of Birth", rec.PlaceOfBirth)
	fieldRow(pdf, "Home Town", rec.HomeTown)
	fieldRow(pdf, "Nationality", rec.Nationality)
	fieldRow(pdf, "Gender", rec.Gender)
	fieldRow(pdf, "Marital Status", rec.MaritalStatus)
	fieldRow(pdf, "Religion", rec.Religion)
	fieldRow(pdf, "Denomination", rec.Denomination)
	fieldRow(pdf, "Disability", rec.DisabilityStatus)
	if rec.DisabilityDescription != "" {
		fieldRow(pdf, "Disability Details", rec.DisabilityDescription)
	}

	sectionHeader(pdf, "Contact Details")
	fieldRow(pdf, "Residential Address", rec.ResidentialAddress)
	fieldRow(pdf, "Postal Address", rec.PostalAddress)
	fieldRow(pdf, "Email", rec.Email)
	fieldRow(pdf, "Telephone", rec.Telephone)
	fieldRow(pdf, "National ID", rec.NationalID)

	sectionHeader(pdf, "Guardian")
	fieldRow(pdf, "Name", rec.GuardianName)
	fieldRow(pdf, "Relationship", rec.GuardianRelationship)
	fieldRow(pdf, "Occupation", rec.GuardianOccupation)
	fieldRow(pdf, "Address", rec.GuardianAddress)
	fieldRow(pdf, "Telephone", rec.GuardianTelephone)

	sectionHeader(pdf, "Prior Education")
	fieldRow(pdf, "Previous School", rec.PreviousSchool)
	fieldRow(pdf, "Qualification", rec.QualificationType)
	fieldRow(pdf, "Completion Year", rec.CompletionYear)
	fieldRow(pdf, "Aggregate Score", rec.AggregateScore)

	sectionHeader(pdf, "Documents")
	for _, slot := range models.StudentSlots {
		mark := "not provided"
		if rec.AttachmentPath(slot) != "" {
			mark = "provided"
		}
		fieldRow(pdf, slotLabel(slot), mark)
	}
	fieldRow(pdf, "Receipt Amount", formatAmount(rec.EffectiveReceiptAmount()))

	sectionHeader(pdf, "Status")
	fieldRow(pdf, "Programme", rec.Programme)
	fieldRow(pdf, "Approval Status", string(rec.ApprovalStatus))
	fieldRow(pdf, "Submitted", rec.CreatedAt.Format(dateLayout))

	return pdfBytes(pdf)
}

// RegistrationFormPDF renders the course-registration form.
func RegistrationFormPDF(reg *models.CourseRegistration) ([]byte, error) {
	pdf := newForm("Course Registration Form")

	sectionHeader(pdf, "Registration")
	fieldRow(pdf, "Registration No.", strconv.FormatInt(reg.RegistrationID, 10))
	fieldRow(pdf, "Student ID", reg.StudentID)
	fieldRow(pdf, "Index Number", reg.IndexNumber)
	fieldRow(pdf, "Programme", reg.Programme)
	if reg.Specialization != nil && *reg.Specialization != "" {
		fieldRow(pdf, "Specialization", *reg.Specialization)
	}
	fieldRow(pdf, "Level", reg.Level)
	fieldRow(pdf, "Session", reg.Session)
	fieldRow(pdf, "Academic Year", reg.AcademicYear)
	fieldRow(pdf, "Semester", reg.Semester)

	sectionHeader(pdf, "Courses")
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(30, pdfRowHeight, "Code", "1", 0, "L", false, 0, "")
	pdf.CellFormat(120, pdfRowHeight, "Title", "1", 0, "L", false, 0, "")
	pdf.CellFormat(30, pdfRowHeight, "Credits", "1", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	for _, c := range reg.Courses {
		pdf.CellFormat(30, pdfRowHeight, c.Code, "1", 0, "L", false, 0, "")
		pdf.CellFormat(120, pdfRowHeight, c.Title, "1", 0, "L", false, 0, "")
		pdf.CellFormat(30, pdfRowHeight, strconv.Itoa(c.CreditHours), "1", 1, "C", false, 0, "")
	}
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(150, pdfRowHeight, "Total Credit Hours", "1", 0, "R", false, 0, "")
	pdf.CellFormat(30, pdfRowHeight, strconv.Itoa(reg.TotalCredits), "1", 1, "C", false, 0, "")

	sectionHeader(pdf, "Payment and Status")
	receipt := "not provided"
	if reg.ReceiptPath != nil && *reg.ReceiptPath != "" {
		receipt = "provided"
	}
	fieldRow(pdf, "Payment Receipt", receipt)
	fieldRow(pdf, "Receipt Amount", formatAmount(reg.EffectiveReceiptAmount()))
	fieldRow(pdf, "Approval Status", string(reg.ApprovalStatus))
	fieldRow(pdf, "Date Registered", reg.DateRegistered.Format(dateLayout))

	return pdfBytes(pdf)
}

func slotLabel(slot models.AttachmentSlot) string {
	switch slot {
	case models.SlotGhanaCard:
		return "Ghana Card"
	case models.SlotPassportPhoto:
		return "Passport Photo"
	case models.SlotTranscript:
		return "Transcript"
	case models.SlotCertificate:
		return "Certificate"
	case models.SlotReceipt:
		return "Payment Receipt"
	}
	return string(slot)
}

func pdfBytes(pdf *gofpdf.Fpdf) ([]byte, error) {
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}
