package models

// AttachmentSlot names one of the fixed document categories a record may
// carry a file for.
type AttachmentSlot string

const (
	SlotGhanaCard     AttachmentSlot = "ghana_card"
	SlotPassportPhoto AttachmentSlot = "passport_photo"
	SlotTranscript    AttachmentSlot = "transcript"
	SlotCertificate   AttachmentSlot = "certificate"
	SlotReceipt       AttachmentSlot = "receipt"
)

// StudentSlots is the closed set of slots a student record supports, in the
// order the intake form presents them.
var StudentSlots = []AttachmentSlot{
	SlotGhanaCard,
	SlotPassportPhoto,
	SlotTranscript,
	SlotCertificate,
	SlotReceipt,
}

// RegistrationSlots is the closed set of slots a course registration supports.
var RegistrationSlots = []AttachmentSlot{
	SlotReceipt,
}

// SlotsFor returns the slot set for the given owner kind.
func SlotsFor(kind OwnerKind) []AttachmentSlot {
	switch kind {
	case OwnerStudent:
		return StudentSlots
	case OwnerRegistration:
		return RegistrationSlots
	}
	return nil
}

// ValidSlot reports whether slot applies to the given owner kind.
func ValidSlot(kind OwnerKind, slot AttachmentSlot) bool {
	for _, s := range SlotsFor(kind) {
		if s == slot {
			return true
		}
	}
	return false
}

// AttachmentRef points at one stored artifact for bulk packaging.
type AttachmentRef struct {
	OwnerKind OwnerKind      `json:"ownerKind"`
	OwnerKey  string         `json:"ownerKey"`
	Slot      AttachmentSlot `json:"slot"`
	Path      string         `json:"path"`
}
