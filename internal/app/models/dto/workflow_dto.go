package dto

import (
	"time"

	"github.com/kdanquah/regportal/internal/app/models"
)

// ApprovalRequest sets the review outcome on a student record or a course
// registration. Any of the three statuses may be set at any time; there is
// no terminal state.
type ApprovalRequest struct {
	Status models.ApprovalStatus `json:"status" binding:"required" example:"approved"`
}

// PendingCountsResponse reports the size of each review queue.
type PendingCountsResponse struct {
	PendingStudents      int64 `json:"pendingStudents"`
	PendingRegistrations int64 `json:"pendingRegistrations"`
}

// DraftResponse returns the handle for a proposed submission.
type DraftResponse struct {
	DraftID   string    `json:"draftId"`
	ExpiresAt time.Time `json:"expiresAt"`
	Summary   string    `json:"summary"`
}

// ReceiptAmountRequest sets the amount recorded with a receipt upload.
type ReceiptAmountRequest struct {
	Amount float64 `json:"amount" binding:"min=0"`
}
