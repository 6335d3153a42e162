package models

// ApprovalStatus is the admin review outcome attached to a student record
// or a course registration.
type ApprovalStatus string

const (
	StatusPending  ApprovalStatus = "pending"
	StatusApproved ApprovalStatus = "approved"
	StatusRejected ApprovalStatus = "rejected"
)

// IsValid reports whether s is one of the three known statuses.
func (s ApprovalStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// OwnerKind identifies which entity an attachment or approval action targets.
type OwnerKind string

const (
	OwnerStudent      OwnerKind = "student"
	OwnerRegistration OwnerKind = "registration"
)

// IsValid reports whether k is a known owner kind.
func (k OwnerKind) IsValid() bool {
	return k == OwnerStudent || k == OwnerRegistration
}
