package services

import (
	"context"

	"github.com/kdanquah/regportal/internal/app/catalog"
	"github.com/kdanquah/regportal/internal/app/models"
	"github.com/kdanquah/regportal/internal/app/repositories"
	"github.com/kdanquah/regportal/internal/pkg/filestorage"
)

// StudentStore is the slice of the record store the services need for
// student intake records. *repositories.StudentRepository satisfies it.
type StudentStore interface {
	Create(ctx context.Context, rec *models.StudentRecord) error
	GetByID(ctx context.Context, studentID string) (*models.StudentRecord, error)
	Exists(ctx context.Context, studentID string) (bool, error)
	Update(ctx context.Context, rec *models.StudentRecord) error
	DeleteWithCleanup(ctx context.Context, studentID string, cleanup func() error) error
	List(ctx context.Context, filter repositories.ListFilter) ([]*models.StudentRecord, error)
	Count(ctx context.Context, filter repositories.ListFilter) (int64, error)
	SetApprovalStatus(ctx context.Context, studentID string, status models.ApprovalStatus) error
	SetAttachmentPath(ctx context.Context, studentID string, slot models.AttachmentSlot, path *string) error
	SetReceiptAmount(ctx context.Context, studentID string, amount float64) error
	CountByStatus(ctx context.Context, status models.ApprovalStatus) (int64, error)
}

// RegistrationStore is the registration slice of the record store.
// *repositories.RegistrationRepository satisfies it.
type RegistrationStore interface {
	Create(ctx context.Context, reg *models.CourseRegistration) error
	GetByID(ctx context.Context, registrationID int64) (*models.CourseRegistration, error)
	GetByStudentID(ctx context.Context, studentID string) ([]*models.CourseRegistration, error)
	Update(ctx context.Context, reg *models.CourseRegistration) error
	DeleteWithCleanup(ctx context.Context, registrationID int64, cleanup func() error) error
	List(ctx context.Context, filter repositories.ListFilter) ([]*models.CourseRegistration, error)
	Count(ctx context.Context, filter repositories.ListFilter) (int64, error)
	SetApprovalStatus(ctx context.Context, registrationID int64, status models.ApprovalStatus) error
	SetAttachmentPath(ctx context.Context, registrationID int64, slot models.AttachmentSlot, path *string) error
	SetReceiptAmount(ctx context.Context, registrationID int64, amount float64) error
	CountByStatus(ctx context.Context, status models.ApprovalStatus) (int64, error)
}

// AdminStore is the credential slice of the record store.
type AdminStore interface {
	GetByUsername(ctx context.Context, username string) (*models.Admin, error)
}

// Services holds all the service instances
type Services struct {
	AuthService         AuthService
	StudentService      StudentService
	RegistrationService RegistrationService
	ApprovalService     ApprovalService
	AttachmentService   AttachmentService
	DraftService        *DraftService
	ExportService       ExportService
}

// NewServices wires the service layer over its stores.
func NewServices(
	repos *repositories.Repositories,
	storage filestorage.FileStorage,
	cat *catalog.Catalog,
	auth AuthService,
	draftSvc *DraftService,
) *Services {
	studentSvc := NewStudentService(repos.StudentRepository, storage)
	registrationSvc := NewRegistrationService(repos.RegistrationRepository, repos.StudentRepository, cat, storage)

	return &Services{
		AuthService:         auth,
		StudentService:      studentSvc,
		RegistrationService: registrationSvc,
		ApprovalService:     NewApprovalService(repos.StudentRepository, repos.RegistrationRepository),
		AttachmentService:   NewAttachmentService(repos.StudentRepository, repos.RegistrationRepository, storage),
		DraftService:        draftSvc,
		ExportService:       NewExportService(repos.StudentRepository, repos.RegistrationRepository, storage),
	}
}
