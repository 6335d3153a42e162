package services

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/kdanquah/regportal/internal/app/models"
	"github.com/kdanquah/regportal/internal/app/repositories"
	"github.com/kdanquah/regportal/internal/export"
	"github.com/kdanquah/regportal/internal/pkg/apperrors"
	"github.com/kdanquah/regportal/internal/pkg/filestorage"
)

// ExportService defines the interface for the reporting and backup exports.
// All methods return a complete document as bytes; handlers set the content
// type and attachment filename.
type ExportService interface {
	StudentsCSV(ctx context.Context) ([]byte, error)
	RegistrationsCSV(ctx context.Context) ([]byte, error)
	Workbook(ctx context.Context) ([]byte, error)
	DatabaseBundle(ctx context.Context) ([]byte, error)
	AttachmentsBundle(ctx context.Context) ([]byte, error)
	StudentForm(ctx context.Context, studentID string) ([]byte, error)
	RegistrationForm(ctx context.Context, registrationID int64) ([]byte, error)
}

type exportServiceImpl struct {
	students      StudentStore
	registrations RegistrationStore
	storage       filestorage.FileStorage
}

// NewExportService creates a new export service instance
func NewExportService(students StudentStore, registrations RegistrationStore, storage filestorage.FileStorage) ExportService {
	return &exportServiceImpl{
		students:      students,
		registrations: registrations,
		storage:       storage,
	}
}

func (s *exportServiceImpl) allStudents(ctx context.Context) ([]*models.StudentRecord, error) {
	recs, err := s.students.List(ctx, repositories.ListFilter{})
	if err != nil {
		return nil, fmt.Errorf("error listing students for export: %w", err)
	}
	return recs, nil
}

func (s *exportServiceImpl) allRegistrations(ctx context.Context) ([]*models.CourseRegistration, error) {
	regs, err := s.registrations.List(ctx, repositories.ListFilter{})
	if err != nil {
		return nil, fmt.Errorf("error listing registrations for export: %w", err)
	}
	return regs, nil
}

// StudentsCSV renders the full student table as CSV.
func (s *exportServiceImpl) StudentsCSV(ctx context.Context) ([]byte, error) {
	recs, err := s.allStudents(ctx)
	if err != nil {
		return nil, err
	}
	return export.WriteCSV(export.StudentHeader, export.StudentRows(recs))
}

// RegistrationsCSV renders the full registration table as CSV.
func (s *exportServiceImpl) RegistrationsCSV(ctx context.Context) ([]byte, error) {
	regs, err := s.allRegistrations(ctx)
	if err != nil {
		return nil, err
	}
	return export.WriteCSV(export.RegistrationHeader, export.RegistrationRows(regs))
}

// Workbook renders both tables as one xlsx workbook.
func (s *exportServiceImpl) Workbook(ctx context.Context) ([]byte, error) {
	recs, err := s.allStudents(ctx)
	if err != nil {
		return nil, err
	}
	regs, err := s.allRegistrations(ctx)
	if err != nil {
		return nil, err
	}

	f, err := export.NewWorkbook([]export.SheetSpec{
		{Title: "Students", Header: export.StudentHeader, Rows: export.StudentRows(recs)},
		{Title: "Registrations", Header: export.RegistrationHeader, Rows: export.RegistrationRows(regs)},
	})
	if err != nil {
		return nil, err
	}
	return export.WorkbookBytes(f)
}

// DatabaseBundle packages both tables as CSV files in one zip archive.
func (s *exportServiceImpl) DatabaseBundle(ctx context.Context) ([]byte, error) {
	studentsCSV, err := s.StudentsCSV(ctx)
	if err != nil {
		return nil, err
	}
	registrationsCSV, err := s.RegistrationsCSV(ctx)
	if err != nil {
		return nil, err
	}

	return export.WriteZip([]export.ZipEntry{
		{Name: "student_records.csv", Data: studentsCSV},
		{Name: "course_registrations.csv", Data: registrationsCSV},
	})
}

// AttachmentsBundle packages every stored attachment file into one zip
// archive, laid out by owner and slot.
func (s *exportServiceImpl) AttachmentsBundle(ctx context.Context) ([]byte, error) {
	recs, err := s.allStudents(ctx)
	if err != nil {
		return nil, err
	}
	regs, err := s.allRegistrations(ctx)
	if err != nil {
		return nil, err
	}

	var entries []export.ZipEntry
	add := func(name, storedPath string) {
		fullPath := s.storage.FullPath(storedPath)
		entries = append(entries, export.ZipEntry{
			Name: name,
			Open: func() (io.ReadCloser, error) { return os.Open(fullPath) },
		})
	}

	for _, rec := range recs {
		// Student ids carry slashes (PS/ACC/2024/001); flatten them so each
		// record stays a single archive directory.
		dir := strings.ReplaceAll(rec.StudentID, "/", "-")
		for _, slot := range models.StudentSlots {
			if path := rec.AttachmentPath(slot); path != "" {
				add(fmt.Sprintf("students/%s/%s%s", dir, slot, filepath.Ext(path)), path)
			}
		}
	}
	for _, reg := range regs {
		if reg.ReceiptPath != nil && *reg.ReceiptPath != "" {
			path := *reg.ReceiptPath
			add(fmt.Sprintf("registrations/%s/%s%s",
				strconv.FormatInt(reg.RegistrationID, 10), models.SlotReceipt, filepath.Ext(path)), path)
		}
	}

	data, err := export.WriteZip(entries)
	if err != nil {
		return nil, apperrors.NewStorageError(err, "failed to bundle attachment files")
	}
	return data, nil
}

// StudentForm renders the intake form for one student record.
func (s *exportServiceImpl) StudentForm(ctx context.Context, studentID string) ([]byte, error) {
	rec, err := s.students.GetByID(ctx, studentID)
	if err != nil {
		return nil, err
	}
	return export.StudentFormPDF(rec)
}

// RegistrationForm renders the course-registration form for one registration.
func (s *exportServiceImpl) RegistrationForm(ctx context.Context, registrationID int64) ([]byte, error) {
	reg, err := s.registrations.GetByID(ctx, registrationID)
	if err != nil {
		return nil, err
	}
	return export.RegistrationFormPDF(reg)
}
