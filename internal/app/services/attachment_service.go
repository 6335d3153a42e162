package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"strconv"

	"github.com/kdanquah/regportal/internal/app/models"
	"github.com/kdanquah/regportal/internal/app/repositories"
	"github.com/kdanquah/regportal/internal/pkg/apperrors"
	"github.com/kdanquah/regportal/internal/pkg/filestorage"
	"github.com/kdanquah/regportal/internal/pkg/logger"
)

// AttachmentService defines the interface for managing the document files
// attached to student records and course registrations.
type AttachmentService interface {
	// Attach stores the uploaded file under the given slot and returns the
	// stored path. An existing file in the slot is replaced.
	Attach(ctx context.Context, kind models.OwnerKind, ownerKey string, slot models.AttachmentSlot, file *multipart.FileHeader) (string, error)
	// Detach clears the slot and removes the stored file. Detaching an
	// empty slot is a no-op.
	Detach(ctx context.Context, kind models.OwnerKind, ownerKey string, slot models.AttachmentSlot) error
	HasAttachment(ctx context.Context, kind models.OwnerKind, ownerKey string, slot models.AttachmentSlot) (bool, error)
	SetReceiptAmount(ctx context.Context, kind models.OwnerKind, ownerKey string, amount float64) error
	// SnapshotAttachments walks every record and returns a reference for
	// each populated slot, for bulk packaging.
	SnapshotAttachments(ctx context.Context) ([]models.AttachmentRef, error)
}

type attachmentServiceImpl struct {
	students      StudentStore
	registrations RegistrationStore
	storage       filestorage.FileStorage
}

// NewAttachmentService creates a new attachment service instance
func NewAttachmentService(students StudentStore, registrations RegistrationStore, storage filestorage.FileStorage) AttachmentService {
	return &attachmentServiceImpl{
		students:      students,
		registrations: registrations,
		storage:       storage,
	}
}

func parseRegistrationKey(ownerKey string) (int64, error) {
	id, err := strconv.ParseInt(ownerKey, 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.NewValidationError("invalid registration ID " + ownerKey)
	}
	return id, nil
}

// currentPath returns the stored path in the slot, or empty when the slot is
// vacant. It also verifies the owner exists.
func (s *attachmentServiceImpl) currentPath(ctx context.Context, kind models.OwnerKind, ownerKey string, slot models.AttachmentSlot) (string, error) {
	switch kind {
	case models.OwnerStudent:
		rec, err := s.students.GetByID(ctx, ownerKey)
		if err != nil {
			return "", err
		}
		return rec.AttachmentPath(slot), nil
	case models.OwnerRegistration:
		id, err := parseRegistrationKey(ownerKey)
		if err != nil {
			return "", err
		}
		reg, err := s.registrations.GetByID(ctx, id)
		if err != nil {
			return "", err
		}
		if reg.ReceiptPath != nil {
			return *reg.ReceiptPath, nil
		}
		return "", nil
	}
	return "", apperrors.NewValidationError(fmt.Sprintf("unknown owner kind %q", kind))
}

func (s *attachmentServiceImpl) setPath(ctx context.Context, kind models.OwnerKind, ownerKey string, slot models.AttachmentSlot, path *string) error {
	switch kind {
	case models.OwnerStudent:
		return s.students.SetAttachmentPath(ctx, ownerKey, slot, path)
	case models.OwnerRegistration:
		id, err := parseRegistrationKey(ownerKey)
		if err != nil {
			return err
		}
		return s.registrations.SetAttachmentPath(ctx, id, slot, path)
	}
	return apperrors.NewValidationError(fmt.Sprintf("unknown owner kind %q", kind))
}

// Attach saves the file first and points the slot at it afterwards, so a
// failed upload never leaves the record referencing a missing file. The
// replaced file, if any, is removed last.
func (s *attachmentServiceImpl) Attach(ctx context.Context, kind models.OwnerKind, ownerKey string, slot models.AttachmentSlot, file *multipart.FileHeader) (string, error) {
	if !models.ValidSlot(kind, slot) {
		return "", fmt.Errorf("%w: %s for %s", apperrors.ErrUnknownSlot, slot, kind)
	}
	if file == nil {
		return "", apperrors.NewValidationError("no file uploaded")
	}

	oldPath, err := s.currentPath(ctx, kind, ownerKey, slot)
	if err != nil {
		return "", err
	}

	storedPath, err := s.storage.SaveUpload(file)
	if err != nil {
		return "", apperrors.NewStorageError(err, "failed to store uploaded file")
	}

	if err := s.setPath(ctx, kind, ownerKey, slot, &storedPath); err != nil {
		// The record never referenced the new file; drop it again.
		if cleanupErr := s.storage.Delete(storedPath); cleanupErr != nil {
			logger.Warn().Err(cleanupErr).Str("path", storedPath).Msg("Failed to remove orphaned upload")
		}
		return "", err
	}

	if oldPath != "" && oldPath != storedPath {
		if err := s.storage.Delete(oldPath); err != nil {
			logger.Warn().Err(err).Str("path", oldPath).Msg("Failed to remove replaced attachment")
		}
	}

	logger.Info().
		Str("owner_kind", string(kind)).
		Str("owner_key", ownerKey).
		Str("slot", string(slot)).
		Str("path", storedPath).
		Msg("Attachment stored")
	return storedPath, nil
}

// Detach clears the slot, then removes the file. A vacant slot returns nil.
func (s *attachmentServiceImpl) Detach(ctx context.Context, kind models.OwnerKind, ownerKey string, slot models.AttachmentSlot) error {
	if !models.ValidSlot(kind, slot) {
		return fmt.Errorf("%w: %s for %s", apperrors.ErrUnknownSlot, slot, kind)
	}

	oldPath, err := s.currentPath(ctx, kind, ownerKey, slot)
	if err != nil {
		return err
	}
	if oldPath == "" {
		return nil
	}

	if err := s.setPath(ctx, kind, ownerKey, slot, nil); err != nil {
		return err
	}

	if err := s.storage.Delete(oldPath); err != nil {
		logger.Warn().Err(err).Str("path", oldPath).Msg("Failed to remove detached attachment")
	}
	return nil
}

// HasAttachment reports whether the slot holds a file.
func (s *attachmentServiceImpl) HasAttachment(ctx context.Context, kind models.OwnerKind, ownerKey string, slot models.AttachmentSlot) (bool, error) {
	if !models.ValidSlot(kind, slot) {
		return false, fmt.Errorf("%w: %s for %s", apperrors.ErrUnknownSlot, slot, kind)
	}

	path, err := s.currentPath(ctx, kind, ownerKey, slot)
	if err != nil {
		return false, err
	}
	return path != "", nil
}

// SetReceiptAmount records the payment amount carried by the receipt slot.
func (s *attachmentServiceImpl) SetReceiptAmount(ctx context.Context, kind models.OwnerKind, ownerKey string, amount float64) error {
	if amount < 0 {
		return apperrors.NewValidationError("receipt amount cannot be negative")
	}

	switch kind {
	case models.OwnerStudent:
		return s.students.SetReceiptAmount(ctx, ownerKey, amount)
	case models.OwnerRegistration:
		id, err := parseRegistrationKey(ownerKey)
		if err != nil {
			return err
		}
		return s.registrations.SetReceiptAmount(ctx, id, amount)
	}
	return apperrors.NewValidationError(fmt.Sprintf("unknown owner kind %q", kind))
}

// SnapshotAttachments collects one reference per populated slot across all
// students and registrations.
func (s *attachmentServiceImpl) SnapshotAttachments(ctx context.Context) ([]models.AttachmentRef, error) {
	var refs []models.AttachmentRef

	students, err := s.students.List(ctx, repositories.ListFilter{})
	if err != nil {
		return nil, fmt.Errorf("error listing students: %w", err)
	}
	for _, rec := range students {
		for _, slot := range models.StudentSlots {
			if path := rec.AttachmentPath(slot); path != "" {
				refs = append(refs, models.AttachmentRef{
					OwnerKind: models.OwnerStudent,
					OwnerKey:  rec.StudentID,
					Slot:      slot,
					Path:      path,
				})
			}
		}
	}

	regs, err := s.registrations.List(ctx, repositories.ListFilter{})
	if err != nil {
		return nil, fmt.Errorf("error listing registrations: %w", err)
	}
	for _, reg := range regs {
		if reg.ReceiptPath != nil && *reg.ReceiptPath != "" {
			refs = append(refs, models.AttachmentRef{
				OwnerKind: models.OwnerRegistration,
				OwnerKey:  strconv.FormatInt(reg.RegistrationID, 10),
				Slot:      models.SlotReceipt,
				Path:      *reg.ReceiptPath,
			})
		}
	}

	return refs, nil
}
