package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/kdanquah/regportal/internal/app/models"
	"github.com/kdanquah/regportal/internal/app/repositories"
	"github.com/kdanquah/regportal/internal/pkg/apperrors"
)

// In-memory store fakes, mutex-guarded maps behind the same interfaces the
// pgx repositories satisfy.

type fakeStudentStore struct {
	mu       sync.Mutex
	students map[string]models.StudentRecord
}

func newFakeStudentStore() *fakeStudentStore {
	return &fakeStudentStore{students: make(map[string]models.StudentRecord)}
}

func (f *fakeStudentStore) Create(_ context.Context, rec *models.StudentRecord) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.students[rec.StudentID]; ok {
		return apperrors.ErrStudentIDAlreadyExists
	}
	rec.ApprovalStatus = models.StatusPending
	rec.CreatedAt = time.Now()
	f.students[rec.StudentID] = *rec
	return nil
}

func (f *fakeStudentStore) GetByID(_ context.Context, studentID string) (*models.StudentRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	rec, ok := f.students[studentID]
	if !ok {
		return nil, apperrors.ErrStudentNotFound
	}
	return &rec, nil
}

func (f *fakeStudentStore) Exists(_ context.Context, studentID string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.students[studentID]
	return ok, nil
}

func (f *fakeStudentStore) Update(_ context.Context, rec *models.StudentRecord) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	stored, ok := f.students[rec.StudentID]
	if !ok {
		return apperrors.ErrStudentNotFound
	}
	updated := *rec
	updated.ApprovalStatus = stored.ApprovalStatus
	updated.CreatedAt = stored.CreatedAt
	f.students[rec.StudentID] = updated
	return nil
}

func (f *fakeStudentStore) DeleteWithCleanup(_ context.Context, studentID string, cleanup func() error) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.students[studentID]; !ok {
		return apperrors.ErrStudentNotFound
	}
	if err := cleanup(); err != nil {
		return err
	}
	delete(f.students, studentID)
	return nil
}

func (f *fakeStudentStore) matches(rec models.StudentRecord, filter repositories.ListFilter) bool {
	if filter.Status != "" && filter.Status != "all" && string(rec.ApprovalStatus) != filter.Status {
		return false
	}
	if filter.Search != "" {
		needle := strings.ToLower(filter.Search)
		haystack := strings.ToLower(rec.StudentID + " " + rec.Surname + " " + rec.OtherNames + " " + rec.Email)
		if !strings.Contains(haystack, needle) {
			return false
		}
	}
	return true
}

func (f *fakeStudentStore) List(_ context.Context, filter repositories.ListFilter) ([]*models.StudentRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	ids := make([]string, 0, len(f.students))
	for id := range f.students {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var out []*models.StudentRecord
	for _, id := range ids {
		rec := f.students[id]
		if f.matches(rec, filter) {
			r := rec
			out = append(out, &r)
		}
	}

	if filter.Offset > 0 {
		if int(filter.Offset) >= len(out) {
			return nil, nil
		}
		out = out[filter.Offset:]
	}
	if filter.Limit > 0 && len(out) > filter.Limit {
		out = out[:filter.Limit]
	}
	return out, nil
}

func (f *fakeStudentStore) Count(_ context.Context, filter repositories.ListFilter) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int64
	for _, rec := range f.students {
		if f.matches(rec, filter) {
			n++
		}
	}
	return n, nil
}

func (f *fakeStudentStore) SetApprovalStatus(_ context.Context, studentID string, status models.ApprovalStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	rec, ok := f.students[studentID]
	if !ok {
		return apperrors.ErrStudentNotFound
	}
	rec.ApprovalStatus = status
	f.students[studentID] = rec
	return nil
}

func (f *fakeStudentStore) SetAttachmentPath(_ context.Context, studentID string, slot models.AttachmentSlot, path *string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	rec, ok := f.students[studentID]
	if !ok {
		return apperrors.ErrStudentNotFound
	}
	switch slot {
	case models.SlotGhanaCard:
		rec.GhanaCardPath = path
	case models.SlotPassportPhoto:
		rec.PassportPhotoPath = path
	case models.SlotTranscript:
		rec.TranscriptPath = path
	case models.SlotCertificate:
		rec.CertificatePath = path
	case models.SlotReceipt:
		rec.ReceiptPath = path
		if path == nil {
			rec.ReceiptAmount = 0
		}
	default:
		return apperrors.ErrUnknownSlot
	}
	f.students[studentID] = rec
	return nil
}

func (f *fakeStudentStore) SetReceiptAmount(_ context.Context, studentID string, amount float64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	rec, ok := f.students[studentID]
	if !ok {
		return apperrors.ErrStudentNotFound
	}
	rec.ReceiptAmount = amount
	f.students[studentID] = rec
	return nil
}

func (f *fakeStudentStore) CountByStatus(_ context.Context, status models.ApprovalStatus) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int64
	for _, rec := range f.students {
		if rec.ApprovalStatus == status {
			n++
		}
	}
	return n, nil
}

type fakeRegistrationStore struct {
	mu            sync.Mutex
	nextID        int64
	registrations map[int64]models.CourseRegistration
}

func newFakeRegistrationStore() *fakeRegistrationStore {
	return &fakeRegistrationStore{nextID: 1, registrations: make(map[int64]models.CourseRegistration)}
}

func (f *fakeRegistrationStore) Create(_ context.Context, reg *models.CourseRegistration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	reg.RegistrationID = f.nextID
	f.nextID++
	reg.ApprovalStatus = models.StatusPending
	reg.DateRegistered = time.Now()
	f.registrations[reg.RegistrationID] = *reg
	return nil
}

func (f *fakeRegistrationStore) GetByID(_ context.Context, id int64) (*models.CourseRegistration, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	reg, ok := f.registrations[id]
	if !ok {
		return nil, apperrors.ErrRegistrationNotFound
	}
	return &reg, nil
}

func (f *fakeRegistrationStore) GetByStudentID(_ context.Context, studentID string) ([]*models.CourseRegistration, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*models.CourseRegistration
	for id := int64(1); id < f.nextID; id++ {
		if reg, ok := f.registrations[id]; ok && reg.StudentID == studentID {
			r := reg
			out = append(out, &r)
		}
	}
	return out, nil
}

func (f *fakeRegistrationStore) Update(_ context.Context, reg *models.CourseRegistration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	stored, ok := f.registrations[reg.RegistrationID]
	if !ok {
		return apperrors.ErrRegistrationNotFound
	}
	updated := *reg
	updated.ApprovalStatus = stored.ApprovalStatus
	updated.DateRegistered = stored.DateRegistered
	f.registrations[reg.RegistrationID] = updated
	return nil
}

func (f *fakeRegistrationStore) DeleteWithCleanup(_ context.Context, id int64, cleanup func() error) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.registrations[id]; !ok {
		return apperrors.ErrRegistrationNotFound
	}
	if err := cleanup(); err != nil {
		return err
	}
	delete(f.registrations, id)
	return nil
}

func (f *fakeRegistrationStore) matches(reg models.CourseRegistration, filter repositories.ListFilter) bool {
	if filter.Status != "" && filter.Status != "all" && string(reg.ApprovalStatus) != filter.Status {
		return false
	}
	if filter.Search != "" {
		needle := strings.ToLower(filter.Search)
		haystack := strings.ToLower(reg.StudentID + " " + reg.Programme + " " + reg.IndexNumber)
		if !strings.Contains(haystack, needle) {
			return false
		}
	}
	return true
}

func (f *fakeRegistrationStore) List(_ context.Context, filter repositories.ListFilter) ([]*models.CourseRegistration, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*models.CourseRegistration
	for id := int64(1); id < f.nextID; id++ {
		if reg, ok := f.registrations[id]; ok && f.matches(reg, filter) {
			r := reg
			out = append(out, &r)
		}
	}
	if filter.Offset > 0 {
		if int(filter.Offset) >= len(out) {
			return nil, nil
		}
		out = out[filter.Offset:]
	}
	if filter.Limit > 0 && len(out) > filter.Limit {
		out = out[:filter.Limit]
	}
	return out, nil
}

func (f *fakeRegistrationStore) Count(_ context.Context, filter repositories.ListFilter) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int64
	for _, reg := range f.registrations {
		if f.matches(reg, filter) {
			n++
		}
	}
	return n, nil
}

func (f *fakeRegistrationStore) SetApprovalStatus(_ context.Context, id int64, status models.ApprovalStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	reg, ok := f.registrations[id]
	if !ok {
		return apperrors.ErrRegistrationNotFound
	}
	reg.ApprovalStatus = status
	f.registrations[id] = reg
	return nil
}

func (f *fakeRegistrationStore) SetAttachmentPath(_ context.Context, id int64, slot models.AttachmentSlot, path *string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	reg, ok := f.registrations[id]
	if !ok {
		return apperrors.ErrRegistrationNotFound
	}
	if slot != models.SlotReceipt {
		return apperrors.ErrUnknownSlot
	}
	reg.ReceiptPath = path
	if path == nil {
		reg.ReceiptAmount = 0
	}
	f.registrations[id] = reg
	return nil
}

func (f *fakeRegistrationStore) SetReceiptAmount(_ context.Context, id int64, amount float64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	reg, ok := f.registrations[id]
	if !ok {
		return apperrors.ErrRegistrationNotFound
	}
	reg.ReceiptAmount = amount
	f.registrations[id] = reg
	return nil
}

func (f *fakeRegistrationStore) CountByStatus(_ context.Context, status models.ApprovalStatus) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int64
	for _, reg := range f.registrations {
		if reg.ApprovalStatus == status {
			n++
		}
	}
	return n, nil
}

type fakeAdminStore struct {
	admins map[string]models.Admin
}

func (f *fakeAdminStore) GetByUsername(_ context.Context, username string) (*models.Admin, error) {
	admin, ok := f.admins[username]
	if !ok {
		return nil, apperrors.ErrAdminNotFound
	}
	return &admin, nil
}

// fakeStorage records saves and deletes without touching the filesystem.
type fakeStorage struct {
	mu      sync.Mutex
	nextID  int
	files   map[string]bool
	deleted []string
	failAll bool
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{files: make(map[string]bool)}
}

func (f *fakeStorage) Save(_ io.Reader, originalName string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failAll {
		return "", errors.New("storage offline")
	}
	f.nextID++
	path := fmt.Sprintf("file-%d%s", f.nextID, filepath.Ext(originalName))
	f.files[path] = true
	return path, nil
}

func (f *fakeStorage) SaveUpload(fileHeader *multipart.FileHeader) (string, error) {
	return f.Save(nil, fileHeader.Filename)
}

func (f *fakeStorage) Delete(storedPath string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failAll {
		return errors.New("storage offline")
	}
	delete(f.files, storedPath)
	f.deleted = append(f.deleted, storedPath)
	return nil
}

func (f *fakeStorage) Exists(storedPath string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.files[storedPath]
}

func (f *fakeStorage) FullPath(storedPath string) string {
	return filepath.Join("fake", storedPath)
}
