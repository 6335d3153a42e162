package services

import (
	"context"
	"fmt"

	"github.com/kdanquah/regportal/internal/app/models"
	"github.com/kdanquah/regportal/internal/app/models/dto"
	"github.com/kdanquah/regportal/internal/pkg/apperrors"
	"github.com/kdanquah/regportal/internal/pkg/logger"
)

// ApprovalService defines the interface for the record approval workflow
type ApprovalService interface {
	SetStudentStatus(ctx context.Context, studentID string, status models.ApprovalStatus) error
	SetRegistrationStatus(ctx context.Context, registrationID int64, status models.ApprovalStatus) error
	PendingCounts(ctx context.Context) (*dto.PendingCountsResponse, error)
}

type approvalServiceImpl struct {
	students      StudentStore
	registrations RegistrationStore
}

// NewApprovalService creates a new approval service instance
func NewApprovalService(students StudentStore, registrations RegistrationStore) ApprovalService {
	return &approvalServiceImpl{
		students:      students,
		registrations: registrations,
	}
}

// SetStudentStatus moves a student record to the given status. Any of the
// three statuses may be set from any other; none of them is terminal.
func (s *approvalServiceImpl) SetStudentStatus(ctx context.Context, studentID string, status models.ApprovalStatus) error {
	if !status.IsValid() {
		return apperrors.NewValidationError(fmt.Sprintf("unknown approval status %q", status))
	}

	if err := s.students.SetApprovalStatus(ctx, studentID, status); err != nil {
		return err
	}

	logger.Info().
		Str("student_id", studentID).
		Str("status", string(status)).
		Msg("Student approval status changed")
	return nil
}

// SetRegistrationStatus moves a course registration to the given status.
func (s *approvalServiceImpl) SetRegistrationStatus(ctx context.Context, registrationID int64, status models.ApprovalStatus) error {
	if !status.IsValid() {
		return apperrors.NewValidationError(fmt.Sprintf("unknown approval status %q", status))
	}

	if err := s.registrations.SetApprovalStatus(ctx, registrationID, status); err != nil {
		return err
	}

	logger.Info().
		Int64("registration_id", registrationID).
		Str("status", string(status)).
		Msg("Registration approval status changed")
	return nil
}

// PendingCounts reports how many records of each kind are awaiting review.
func (s *approvalServiceImpl) PendingCounts(ctx context.Context) (*dto.PendingCountsResponse, error) {
	studentCount, err := s.students.CountByStatus(ctx, models.StatusPending)
	if err != nil {
		return nil, fmt.Errorf("error counting pending students: %w", err)
	}

	regCount, err := s.registrations.CountByStatus(ctx, models.StatusPending)
	if err != nil {
		return nil, fmt.Errorf("error counting pending registrations: %w", err)
	}

	return &dto.PendingCountsResponse{
		PendingStudents:      studentCount,
		PendingRegistrations: regCount,
	}, nil
}
