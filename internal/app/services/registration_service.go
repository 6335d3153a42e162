package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/kdanquah/regportal/internal/app/catalog"
	"github.com/kdanquah/regportal/internal/app/models"
	"github.com/kdanquah/regportal/internal/app/models/dto"
	"github.com/kdanquah/regportal/internal/app/repositories"
	"github.com/kdanquah/regportal/internal/pkg/apperrors"
	"github.com/kdanquah/regportal/internal/pkg/filestorage"
	"github.com/kdanquah/regportal/internal/pkg/logger"
)

// RegistrationService defines the interface for course-registration
// lifecycle operations
type RegistrationService interface {
	CreateRegistration(ctx context.Context, req *dto.RegistrationDraftRequest) (*models.CourseRegistration, error)
	GetRegistration(ctx context.Context, registrationID int64) (*models.CourseRegistration, error)
	ListRegistrations(ctx context.Context, filter repositories.ListFilter) ([]*models.CourseRegistration, int64, error)
	ListByStudent(ctx context.Context, studentID string) ([]*models.CourseRegistration, error)
	UpdateRegistration(ctx context.Context, registrationID int64, patch *dto.RegistrationUpdateRequest) error
	DeleteRegistration(ctx context.Context, registrationID int64) error
}

// registrationServiceImpl implements the RegistrationService interface
type registrationServiceImpl struct {
	registrations RegistrationStore
	students      StudentStore
	catalog       *catalog.Catalog
	storage       filestorage.FileStorage
}

// NewRegistrationService creates a new registration service instance
func NewRegistrationService(
	registrations RegistrationStore,
	students StudentStore,
	cat *catalog.Catalog,
	storage filestorage.FileStorage,
) RegistrationService {
	return &registrationServiceImpl{
		registrations: registrations,
		students:      students,
		catalog:       cat,
		storage:       storage,
	}
}

// resolveCourses maps selected course codes onto the catalogue entries for
// the programme and level, preserving catalogue order.
func (s *registrationServiceImpl) resolveCourses(programme, level string, codes []string) ([]models.Course, error) {
	available := s.catalog.CoursesFor(programme, level)
	if len(available) == 0 {
		return nil, apperrors.NewValidationError(
			fmt.Sprintf("no courses configured for programme %q level %q", programme, level))
	}

	selected := make(map[string]bool, len(codes))
	for _, code := range codes {
		selected[code] = true
	}

	var courses []models.Course
	for _, c := range available {
		if selected[c.Code] {
			courses = append(courses, c)
			delete(selected, c.Code)
		}
	}

	if len(selected) > 0 {
		unknown := make([]string, 0, len(selected))
		for code := range selected {
			unknown = append(unknown, code)
		}
		return nil, apperrors.NewValidationError(
			"unknown course codes for this level: " + strings.Join(unknown, ", "))
	}

	return courses, nil
}

// validateCredits recomputes and enforces the credit ceiling. TotalCredits
// is always derived from the snapshot, never trusted from the caller.
func validateCredits(courses []models.Course) (int, error) {
	if len(courses) == 0 {
		return 0, apperrors.NewValidationError("at least one course must be selected")
	}

	total := models.TotalCreditHours(courses)
	if total > models.MaxCreditHours {
		return 0, fmt.Errorf("%w: %d credit hours selected, maximum is %d",
			apperrors.ErrCreditLimitExceeded, total, models.MaxCreditHours)
	}

	return total, nil
}

// CreateRegistration validates and persists a new course registration. The
// referenced student must already exist; the course snapshot is copied from
// the catalogue so later catalogue edits never rewrite this registration.
func (s *registrationServiceImpl) CreateRegistration(ctx context.Context, req *dto.RegistrationDraftRequest) (*models.CourseRegistration, error) {
	if req == nil {
		return nil, apperrors.NewValidationError("registration request is nil")
	}

	if strings.TrimSpace(req.StudentID) == "" {
		return nil, apperrors.NewValidationError("student ID is required")
	}

	exists, err := s.students.Exists(ctx, req.StudentID)
	if err != nil {
		return nil, fmt.Errorf("error checking student existence: %w", err)
	}
	if !exists {
		return nil, apperrors.ErrStudentNotFound
	}

	courses, err := s.resolveCourses(req.Programme, req.Level, req.CourseCodes)
	if err != nil {
		return nil, err
	}

	total, err := validateCredits(courses)
	if err != nil {
		return nil, err
	}

	reg := &models.CourseRegistration{
		StudentID:      req.StudentID,
		IndexNumber:    req.IndexNumber,
		Programme:      req.Programme,
		Specialization: req.Specialization,
		Level:          req.Level,
		Session:        req.Session,
		AcademicYear:   req.AcademicYear,
		Semester:       req.Semester,
		Courses:        courses,
		TotalCredits:   total,
	}

	if err := s.registrations.Create(ctx, reg); err != nil {
		return nil, err
	}

	return reg, nil
}

// GetRegistration retrieves a registration by id
func (s *registrationServiceImpl) GetRegistration(ctx context.Context, registrationID int64) (*models.CourseRegistration, error) {
	if registrationID <= 0 {
		return nil, apperrors.NewValidationError("invalid registration ID")
	}

	return s.registrations.GetByID(ctx, registrationID)
}

// ListRegistrations retrieves registrations matching the filter along with
// the unpaginated total.
func (s *registrationServiceImpl) ListRegistrations(ctx context.Context, filter repositories.ListFilter) ([]*models.CourseRegistration, int64, error) {
	if !filter.StatusFilterValid() {
		return nil, 0, apperrors.NewValidationError("unknown approval status filter")
	}

	regs, err := s.registrations.List(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("error listing course registrations: %w", err)
	}

	total, err := s.registrations.Count(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("error counting course registrations: %w", err)
	}

	return regs, total, nil
}

// ListByStudent retrieves every registration filed under one student record,
// for the admin record-detail view. An unknown student is an error rather
// than an empty list.
func (s *registrationServiceImpl) ListByStudent(ctx context.Context, studentID string) ([]*models.CourseRegistration, error) {
	if strings.TrimSpace(studentID) == "" {
		return nil, apperrors.NewValidationError("student ID is required")
	}

	exists, err := s.students.Exists(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("error checking student existence: %w", err)
	}
	if !exists {
		return nil, apperrors.ErrStudentNotFound
	}

	regs, err := s.registrations.GetByStudentID(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("error listing registrations for student: %w", err)
	}
	return regs, nil
}

// UpdateRegistration applies a partial update, re-resolving the course
// snapshot and re-checking the credit ceiling when the selection changes.
func (s *registrationServiceImpl) UpdateRegistration(ctx context.Context, registrationID int64, patch *dto.RegistrationUpdateRequest) error {
	if patch == nil {
		return apperrors.NewValidationError("empty update")
	}

	reg, err := s.registrations.GetByID(ctx, registrationID)
	if err != nil {
		return err
	}

	if patch.IndexNumber != nil {
		reg.IndexNumber = *patch.IndexNumber
	}
	if patch.Programme != nil {
		reg.Programme = *patch.Programme
	}
	if patch.Specialization != nil {
		reg.Specialization = patch.Specialization
	}
	if patch.Level != nil {
		reg.Level = *patch.Level
	}
	if patch.Session != nil {
		reg.Session = *patch.Session
	}
	if patch.AcademicYear != nil {
		reg.AcademicYear = *patch.AcademicYear
	}
	if patch.Semester != nil {
		reg.Semester = *patch.Semester
	}

	if patch.CourseCodes != nil {
		courses, err := s.resolveCourses(reg.Programme, reg.Level, patch.CourseCodes)
		if err != nil {
			return err
		}

		total, err := validateCredits(courses)
		if err != nil {
			return err
		}

		reg.Courses = courses
		reg.TotalCredits = total
	}

	return s.registrations.Update(ctx, reg)
}

// DeleteRegistration removes the registration together with its receipt
// file, as one logical operation.
func (s *registrationServiceImpl) DeleteRegistration(ctx context.Context, registrationID int64) error {
	reg, err := s.registrations.GetByID(ctx, registrationID)
	if err != nil {
		return err
	}

	var receiptPath string
	if reg.ReceiptPath != nil {
		receiptPath = *reg.ReceiptPath
	}

	return s.registrations.DeleteWithCleanup(ctx, registrationID, func() error {
		if receiptPath == "" {
			return nil
		}
		if err := s.storage.Delete(receiptPath); err != nil {
			logger.Error().Err(err).
				Int64("registration_id", registrationID).
				Str("failed", receiptPath).
				Msg("Attachment cleanup failed, registration row kept")
			return apperrors.NewStorageError(err, "failed to remove attachment "+receiptPath)
		}
		return nil
	})
}
