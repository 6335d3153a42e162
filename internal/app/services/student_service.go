package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/kdanquah/regportal/internal/app/models"
	"github.com/kdanquah/regportal/internal/app/models/dto"
	"github.com/kdanquah/regportal/internal/app/repositories"
	"github.com/kdanquah/regportal/internal/pkg/apperrors"
	"github.com/kdanquah/regportal/internal/pkg/filestorage"
	"github.com/kdanquah/regportal/internal/pkg/logger"
)

// StudentService defines the interface for student-record lifecycle operations
type StudentService interface {
	CreateStudent(ctx context.Context, rec *models.StudentRecord) error
	GetStudent(ctx context.Context, studentID string) (*models.StudentRecord, error)
	ListStudents(ctx context.Context, filter repositories.ListFilter) ([]*models.StudentRecord, int64, error)
	UpdateStudent(ctx context.Context, studentID string, patch *dto.StudentUpdateRequest) error
	DeleteStudent(ctx context.Context, studentID string) error
}

// studentServiceImpl implements the StudentService interface
type studentServiceImpl struct {
	students StudentStore
	storage  filestorage.FileStorage
}

// NewStudentService creates a new student service instance
func NewStudentService(students StudentStore, storage filestorage.FileStorage) StudentService {
	return &studentServiceImpl{
		students: students,
		storage:  storage,
	}
}

// validateStudent checks the required intake fields before persistence.
func (s *studentServiceImpl) validateStudent(rec *models.StudentRecord) error {
	if rec == nil {
		return apperrors.NewValidationError("student record is nil")
	}

	if strings.TrimSpace(rec.StudentID) == "" {
		return apperrors.NewValidationError("student ID is required")
	}

	if strings.TrimSpace(rec.Surname) == "" {
		return apperrors.NewValidationError("surname is required")
	}

	if strings.TrimSpace(rec.OtherNames) == "" {
		return apperrors.NewValidationError("other names are required")
	}

	if rec.DisabilityStatus != "" && rec.DisabilityStatus != "none" && rec.DisabilityStatus != "yes" {
		return apperrors.NewValidationError("disability status must be 'none' or 'yes'")
	}

	if rec.ReceiptAmount < 0 {
		return apperrors.NewValidationError("receipt amount cannot be negative")
	}

	return nil
}

// CreateStudent inserts a new intake record. A duplicate id is rejected
// without mutating the existing row.
func (s *studentServiceImpl) CreateStudent(ctx context.Context, rec *models.StudentRecord) error {
	if err := s.validateStudent(rec); err != nil {
		return err
	}

	// Attachments arrive after creation; a fresh record starts with every
	// slot empty and no receipt amount.
	rec.GhanaCardPath = nil
	rec.PassportPhotoPath = nil
	rec.TranscriptPath = nil
	rec.CertificatePath = nil
	rec.ReceiptPath = nil
	rec.ReceiptAmount = 0

	if err := s.students.Create(ctx, rec); err != nil {
		return err
	}

	return nil
}

// GetStudent retrieves a record by id
func (s *studentServiceImpl) GetStudent(ctx context.Context, studentID string) (*models.StudentRecord, error) {
	if strings.TrimSpace(studentID) == "" {
		return nil, apperrors.NewValidationError("student ID is required")
	}

	rec, err := s.students.GetByID(ctx, studentID)
	if err != nil {
		return nil, err
	}

	return rec, nil
}

// ListStudents retrieves records matching the filter along with the
// unpaginated total.
func (s *studentServiceImpl) ListStudents(ctx context.Context, filter repositories.ListFilter) ([]*models.StudentRecord, int64, error) {
	if !filter.StatusFilterValid() {
		return nil, 0, apperrors.NewValidationError("unknown approval status filter")
	}

	records, err := s.students.List(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("error listing student records: %w", err)
	}

	total, err := s.students.Count(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("error counting student records: %w", err)
	}

	return records, total, nil
}

// UpdateStudent applies a partial update. The student id is immutable; a
// patch that tries to change it is rejected rather than silently ignored.
func (s *studentServiceImpl) UpdateStudent(ctx context.Context, studentID string, patch *dto.StudentUpdateRequest) error {
	if patch == nil {
		return apperrors.NewValidationError("empty update")
	}

	if patch.StudentID != nil && *patch.StudentID != studentID {
		return apperrors.ErrStudentIDImmutable
	}

	rec, err := s.students.GetByID(ctx, studentID)
	if err != nil {
		return err
	}

	applyStudentPatch(rec, patch)

	if err := s.validateStudent(rec); err != nil {
		return err
	}

	return s.students.Update(ctx, rec)
}

// DeleteStudent removes the record together with its stored attachments.
// Row delete and file removal are one logical operation: a file that cannot
// be removed keeps the row alive so the inconsistency stays discoverable.
func (s *studentServiceImpl) DeleteStudent(ctx context.Context, studentID string) error {
	rec, err := s.students.GetByID(ctx, studentID)
	if err != nil {
		return err
	}

	var paths []string
	for _, slot := range models.StudentSlots {
		if p := rec.AttachmentPath(slot); p != "" {
			paths = append(paths, p)
		}
	}

	return s.students.DeleteWithCleanup(ctx, studentID, func() error {
		for i, p := range paths {
			if err := s.storage.Delete(p); err != nil {
				// Files removed before the failure stay gone while the row
				// survives the rollback; leave an explicit trace.
				logger.Error().Err(err).
					Str("student_id", studentID).
					Strs("removed", paths[:i]).
					Str("failed", p).
					Msg("Attachment cleanup failed, student row kept")
				return apperrors.NewStorageError(err, "failed to remove attachment "+p)
			}
		}
		return nil
	})
}

// applyStudentPatch copies the non-nil patch fields onto the record.
func applyStudentPatch(rec *models.StudentRecord, patch *dto.StudentUpdateRequest) {
	setString := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}

	setString(&rec.Surname, patch.Surname)
	setString(&rec.OtherNames, patch.OtherNames)
	setString(&rec.PlaceOfBirth, patch.PlaceOfBirth)
	setString(&rec.HomeTown, patch.HomeTown)
	setString(&rec.Nationality, patch.Nationality)
	setString(&rec.Gender, patch.Gender)
	setString(&rec.MaritalStatus, patch.MaritalStatus)
	setString(&rec.Religion, patch.Religion)
	setString(&rec.Denomination, patch.Denomination)
	setString(&rec.DisabilityStatus, patch.DisabilityStatus)
	setString(&rec.DisabilityDescription, patch.DisabilityDescription)
	setString(&rec.ResidentialAddress, patch.ResidentialAddress)
	setString(&rec.PostalAddress, patch.PostalAddress)
	setString(&rec.Email, patch.Email)
	setString(&rec.Telephone, patch.Telephone)
	setString(&rec.NationalID, patch.NationalID)
	setString(&rec.GuardianName, patch.GuardianName)
	setString(&rec.GuardianRelationship, patch.GuardianRelationship)
	setString(&rec.GuardianOccupation, patch.GuardianOccupation)
	setString(&rec.GuardianAddress, patch.GuardianAddress)
	setString(&rec.GuardianTelephone, patch.GuardianTelephone)
	setString(&rec.PreviousSchool, patch.PreviousSchool)
	setString(&rec.QualificationType, patch.QualificationType)
	setString(&rec.CompletionYear, patch.CompletionYear)
	setString(&rec.AggregateScore, patch.AggregateScore)
	setString(&rec.Programme, patch.Programme)

	if patch.DateOfBirth != nil {
		if dob, err := time.Parse("2006-01-02", *patch.DateOfBirth); err == nil {
			rec.DateOfBirth = dob
		}
	}
}
