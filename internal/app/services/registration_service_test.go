package services

import (
	"context"
	"errors"
	"testing"

	"github.com/kdanquah/regportal/internal/app/catalog"
	"github.com/kdanquah/regportal/internal/app/models"
	"github.com/kdanquah/regportal/internal/app/models/dto"
	"github.com/kdanquah/regportal/internal/app/repositories"
	"github.com/kdanquah/regportal/internal/pkg/apperrors"
)

func testCatalog() *catalog.Catalog {
	return catalog.New([]catalog.Programme{
		{
			Name: "ACCA",
			Levels: []catalog.Level{
				{Name: "Applied Knowledge", Courses: []models.Course{
					{Code: "AB101", Title: "Accountant in Business", CreditHours: 3},
					{Code: "MA101", Title: "Management Accounting", CreditHours: 3},
					{Code: "FA101", Title: "Financial Accounting", CreditHours: 3},
				}},
				{Name: "Heavy", Courses: []models.Course{
					{Code: "H1", Title: "Heavy One", CreditHours: 9},
					{Code: "H2", Title: "Heavy Two", CreditHours: 9},
					{Code: "H3", Title: "Heavy Three", CreditHours: 9},
				}},
			},
		},
	})
}

type regFixture struct {
	students      *fakeStudentStore
	registrations *fakeRegistrationStore
	storage       *fakeStorage
	svc           RegistrationService
}

func newRegFixture(t *testing.T) *regFixture {
	t.Helper()
	f := &regFixture{
		students:      newFakeStudentStore(),
		registrations: newFakeRegistrationStore(),
		storage:       newFakeStorage(),
	}
	f.svc = NewRegistrationService(f.registrations, f.students, testCatalog(), f.storage)

	if err := f.students.Create(context.Background(), testStudent("PS/ACC/2024/001")); err != nil {
		t.Fatal(err)
	}
	return f
}

func draftRequest(codes ...string) *dto.RegistrationDraftRequest {
	return &dto.RegistrationDraftRequest{
		StudentID:    "PS/ACC/2024/001",
		Programme:    "ACCA",
		Level:        "Applied Knowledge",
		Session:      "Weekend",
		AcademicYear: "2024/2025",
		Semester:     "First",
		CourseCodes:  codes,
	}
}

func TestCreateRegistrationSnapshotsCourses(t *testing.T) {
	f := newRegFixture(t)

	reg, err := f.svc.CreateRegistration(context.Background(), draftRequest("FA101", "AB101"))
	if err != nil {
		t.Fatalf("CreateRegistration: %v", err)
	}

	if len(reg.Courses) != 2 {
		t.Fatalf("snapshot has %d courses, want 2", len(reg.Courses))
	}
	// snapshot preserves catalogue order, not request order
	if reg.Courses[0].Code != "AB101" || reg.Courses[1].Code != "FA101" {
		t.Errorf("snapshot order = %s, %s; want AB101, FA101", reg.Courses[0].Code, reg.Courses[1].Code)
	}
	if reg.TotalCredits != 6 {
		t.Errorf("total credits = %d, want 6", reg.TotalCredits)
	}
	if reg.ApprovalStatus != models.StatusPending {
		t.Errorf("status = %q, want pending", reg.ApprovalStatus)
	}
	if reg.RegistrationID == 0 {
		t.Error("registration id not assigned")
	}
}

func TestCreateRegistrationCreditCeiling(t *testing.T) {
	f := newRegFixture(t)

	req := draftRequest("H1", "H2", "H3")
	req.Level = "Heavy"

	_, err := f.svc.CreateRegistration(context.Background(), req)
	if !errors.Is(err, apperrors.ErrCreditLimitExceeded) {
		t.Fatalf("err = %v, want ErrCreditLimitExceeded", err)
	}

	// nothing persisted
	if n, _ := f.registrations.Count(context.Background(), repositories.ListFilter{}); n != 0 {
		t.Errorf("rejected registration left %d rows", n)
	}
}

func TestCreateRegistrationAtCeilingAccepted(t *testing.T) {
	f := newRegFixture(t)

	// 9 + 9 = 18, then two more from Applied Knowledge would cross levels;
	// stay in one level: H1 + H2 gives 18 which is under the ceiling.
	req := draftRequest("H1", "H2")
	req.Level = "Heavy"

	reg, err := f.svc.CreateRegistration(context.Background(), req)
	if err != nil {
		t.Fatalf("CreateRegistration: %v", err)
	}
	if reg.TotalCredits != 18 {
		t.Errorf("total credits = %d, want 18", reg.TotalCredits)
	}
}

func TestCreateRegistrationUnknownCourseCode(t *testing.T) {
	f := newRegFixture(t)

	_, err := f.svc.CreateRegistration(context.Background(), draftRequest("FA101", "XX999"))
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("err = %v, want validation failure", err)
	}
}

func TestCreateRegistrationEmptySelection(t *testing.T) {
	f := newRegFixture(t)

	_, err := f.svc.CreateRegistration(context.Background(), draftRequest())
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("err = %v, want validation failure", err)
	}
}

func TestCreateRegistrationUnknownStudent(t *testing.T) {
	f := newRegFixture(t)

	req := draftRequest("FA101")
	req.StudentID = "PS/ACC/2024/404"

	_, err := f.svc.CreateRegistration(context.Background(), req)
	if !errors.Is(err, apperrors.ErrStudentNotFound) {
		t.Fatalf("err = %v, want ErrStudentNotFound", err)
	}
}

func TestUpdateRegistrationReresolvesCourses(t *testing.T) {
	f := newRegFixture(t)
	ctx := context.Background()

	reg, err := f.svc.CreateRegistration(ctx, draftRequest("AB101"))
	if err != nil {
		t.Fatal(err)
	}

	patch := &dto.RegistrationUpdateRequest{CourseCodes: []string{"AB101", "MA101", "FA101"}}
	if err := f.svc.UpdateRegistration(ctx, reg.RegistrationID, patch); err != nil {
		t.Fatalf("UpdateRegistration: %v", err)
	}

	got, err := f.svc.GetRegistration(ctx, reg.RegistrationID)
	if err != nil {
		t.Fatal(err)
	}
	if len(got.Courses) != 3 || got.TotalCredits != 9 {
		t.Errorf("after update: %d courses, %d credits; want 3 courses, 9 credits", len(got.Courses), got.TotalCredits)
	}
}

func TestUpdateRegistrationCreditCeiling(t *testing.T) {
	f := newRegFixture(t)
	ctx := context.Background()

	req := draftRequest("H1")
	req.Level = "Heavy"
	reg, err := f.svc.CreateRegistration(ctx, req)
	if err != nil {
		t.Fatal(err)
	}

	patch := &dto.RegistrationUpdateRequest{CourseCodes: []string{"H1", "H2", "H3"}}
	err = f.svc.UpdateRegistration(ctx, reg.RegistrationID, patch)
	if !errors.Is(err, apperrors.ErrCreditLimitExceeded) {
		t.Fatalf("err = %v, want ErrCreditLimitExceeded", err)
	}

	got, _ := f.svc.GetRegistration(ctx, reg.RegistrationID)
	if got.TotalCredits != 9 {
		t.Errorf("rejected update changed credits to %d", got.TotalCredits)
	}
}

func TestDeleteRegistrationRemovesReceipt(t *testing.T) {
	f := newRegFixture(t)
	ctx := context.Background()

	reg, err := f.svc.CreateRegistration(ctx, draftRequest("FA101"))
	if err != nil {
		t.Fatal(err)
	}

	path, _ := f.storage.Save(nil, "receipt.jpg")
	if err := f.registrations.SetAttachmentPath(ctx, reg.RegistrationID, models.SlotReceipt, &path); err != nil {
		t.Fatal(err)
	}

	if err := f.svc.DeleteRegistration(ctx, reg.RegistrationID); err != nil {
		t.Fatalf("DeleteRegistration: %v", err)
	}
	if f.storage.Exists(path) {
		t.Error("receipt file survived registration deletion")
	}
	if _, err := f.svc.GetRegistration(ctx, reg.RegistrationID); !errors.Is(err, apperrors.ErrRegistrationNotFound) {
		t.Errorf("registration still present: %v", err)
	}
}

func TestListByStudent(t *testing.T) {
	f := newRegFixture(t)
	ctx := context.Background()

	if _, err := f.svc.CreateRegistration(ctx, draftRequest("AB101")); err != nil {
		t.Fatal(err)
	}
	if _, err := f.svc.CreateRegistration(ctx, draftRequest("MA101", "FA101")); err != nil {
		t.Fatal(err)
	}

	// a second student's registration must not leak into the listing
	if err := f.students.Create(ctx, testStudent("PS/ACC/2024/002")); err != nil {
		t.Fatal(err)
	}
	other := draftRequest("AB101")
	other.StudentID = "PS/ACC/2024/002"
	if _, err := f.svc.CreateRegistration(ctx, other); err != nil {
		t.Fatal(err)
	}

	regs, err := f.svc.ListByStudent(ctx, "PS/ACC/2024/001")
	if err != nil {
		t.Fatalf("ListByStudent: %v", err)
	}
	if len(regs) != 2 {
		t.Fatalf("got %d registrations, want 2", len(regs))
	}
	for _, reg := range regs {
		if reg.StudentID != "PS/ACC/2024/001" {
			t.Errorf("listing leaked registration for %q", reg.StudentID)
		}
	}
}

func TestListByStudentUnknownStudent(t *testing.T) {
	f := newRegFixture(t)

	_, err := f.svc.ListByStudent(context.Background(), "PS/ACC/2024/404")
	if !errors.Is(err, apperrors.ErrStudentNotFound) {
		t.Fatalf("err = %v, want ErrStudentNotFound", err)
	}
}
