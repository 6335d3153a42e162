package models

import "time"

// StudentRecord defines the intake record model based on the 'student_records' table.
// The student supplies their own id at submission time; it is the primary key
// and never changes afterwards.
type StudentRecord struct {
	StudentID string `json:"studentId" db:"student_id" example:"PS/ACC/2024/001"`

	// Biographic
	Surname               string    `json:"surname" db:"surname"`
	OtherNames            string    `json:"otherNames" db:"other_names"`
	DateOfBirth           time.Time `json:"dateOfBirth" db:"date_of_birth"`
	PlaceOfBirth          string    `json:"placeOfBirth" db:"place_of_birth"`
	HomeTown              string    `json:"homeTown" db:"home_town"`
	Nationality           string    `json:"nationality" db:"nationality"`
	Gender                string    `json:"gender" db:"gender"`
	MaritalStatus         string    `json:"maritalStatus" db:"marital_status"`
	Religion              string    `json:"religion" db:"religion"`
	Denomination          string    `json:"denomination" db:"denomination"`
	DisabilityStatus      string    `json:"disabilityStatus" db:"disability_status" example:"none"`
	DisabilityDescription string    `json:"disabilityDescription,omitempty" db:"disability_description"`

	// Contact
	ResidentialAddress string `json:"residentialAddress" db:"residential_address"`
	PostalAddress      string `json:"postalAddress" db:"postal_address"`
	Email              string `json:"email" db:"email"`
	Telephone          string `json:"telephone" db:"telephone"`
	NationalID         string `json:"nationalId" db:"national_id"`

	// Guardian
	GuardianName         string `json:"guardianName" db:"guardian_name"`
	GuardianRelationship string `json:"guardianRelationship" db:"guardian_relationship"`
	GuardianOccupation   string `json:"guardianOccupation" db:"guardian_occupation"`
	GuardianAddress      string `json:"guardianAddress" db:"guardian_address"`
	GuardianTelephone    string `json:"guardianTelephone" db:"guardian_telephone"`

	// Prior education
	PreviousSchool    string `json:"previousSchool" db:"previous_school"`
	QualificationType string `json:"qualificationType" db:"qualification_type"`
	CompletionYear    string `json:"completionYear" db:"completion_year"`
	AggregateScore    string `json:"aggregateScore" db:"aggregate_score"`

	// Attachment references (nullable; paths into the upload store)
	GhanaCardPath     *string `json:"ghanaCardPath,omitempty" db:"ghana_card_path"`
	PassportPhotoPath *string `json:"passportPhotoPath,omitempty" db:"passport_photo_path"`
	TranscriptPath    *string `json:"transcriptPath,omitempty" db:"transcript_path"`
	CertificatePath   *string `json:"certificatePath,omitempty" db:"certificate_path"`
	ReceiptPath       *string `json:"receiptPath,omitempty" db:"receipt_path"`

	// ReceiptAmount is only meaningful while ReceiptPath is set; read it
	// through EffectiveReceiptAmount.
	ReceiptAmount float64 `json:"receiptAmount" db:"receipt_amount"`

	Programme      string         `json:"programme,omitempty" db:"programme" example:"ACCA"`
	ApprovalStatus ApprovalStatus `json:"approvalStatus" db:"approval_status"`
	CreatedAt      time.Time      `json:"createdAt" db:"created_at"`
}

// EffectiveReceiptAmount returns the receipt amount, or 0 when no receipt is
// attached. A stale stored amount must never leak out after a receipt is
// detached.
func (s *StudentRecord) EffectiveReceiptAmount() float64 {
	if s.ReceiptPath == nil || *s.ReceiptPath == "" {
		return 0
	}
	return s.ReceiptAmount
}

// AttachmentPath returns the stored path for the given slot, or empty when
// the slot is vacant or does not apply to student records.
func (s *StudentRecord) AttachmentPath(slot AttachmentSlot) string {
	var p *string
	switch slot {
	case SlotGhanaCard:
		p = s.GhanaCardPath
	case SlotPassportPhoto:
		p = s.PassportPhotoPath
	case SlotTranscript:
		p = s.TranscriptPath
	case SlotCertificate:
		p = s.CertificatePath
	case SlotReceipt:
		p = s.ReceiptPath
	}
	if p == nil {
		return ""
	}
	return *p
}
