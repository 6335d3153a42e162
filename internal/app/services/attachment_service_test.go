package services

import (
	"context"
	"errors"
	"mime/multipart"
	"strconv"
	"testing"

	"github.com/kdanquah/regportal/internal/app/models"
	"github.com/kdanquah/regportal/internal/pkg/apperrors"
)

type attachFixture struct {
	students      *fakeStudentStore
	registrations *fakeRegistrationStore
	storage       *fakeStorage
	svc           AttachmentService
	regID         string
}

func newAttachFixture(t *testing.T) *attachFixture {
	t.Helper()
	f := &attachFixture{
		students:      newFakeStudentStore(),
		registrations: newFakeRegistrationStore(),
		storage:       newFakeStorage(),
	}
	f.svc = NewAttachmentService(f.students, f.registrations, f.storage)

	ctx := context.Background()
	if err := f.students.Create(ctx, testStudent("PS/ACC/2024/001")); err != nil {
		t.Fatal(err)
	}
	reg := &models.CourseRegistration{StudentID: "PS/ACC/2024/001", Programme: "ACCA"}
	if err := f.registrations.Create(ctx, reg); err != nil {
		t.Fatal(err)
	}
	f.regID = strconv.FormatInt(reg.RegistrationID, 10)
	return f
}

func upload(name string) *multipart.FileHeader {
	return &multipart.FileHeader{Filename: name}
}

func TestAttachStudentDocument(t *testing.T) {
	f := newAttachFixture(t)
	ctx := context.Background()

	path, err := f.svc.Attach(ctx, models.OwnerStudent, "PS/ACC/2024/001", models.SlotGhanaCard, upload("card.png"))
	if err != nil {
		t.Fatalf("Attach: %v", err)
	}

	rec, _ := f.students.GetByID(ctx, "PS/ACC/2024/001")
	if rec.AttachmentPath(models.SlotGhanaCard) != path {
		t.Errorf("slot path = %q, want %q", rec.AttachmentPath(models.SlotGhanaCard), path)
	}

	has, err := f.svc.HasAttachment(ctx, models.OwnerStudent, "PS/ACC/2024/001", models.SlotGhanaCard)
	if err != nil || !has {
		t.Errorf("HasAttachment = %v, %v; want true", has, err)
	}
}

func TestAttachReplacesOldFile(t *testing.T) {
	f := newAttachFixture(t)
	ctx := context.Background()

	first, err := f.svc.Attach(ctx, models.OwnerStudent, "PS/ACC/2024/001", models.SlotTranscript, upload("old.pdf"))
	if err != nil {
		t.Fatal(err)
	}
	second, err := f.svc.Attach(ctx, models.OwnerStudent, "PS/ACC/2024/001", models.SlotTranscript, upload("new.pdf"))
	if err != nil {
		t.Fatal(err)
	}

	if f.storage.Exists(first) {
		t.Error("replaced file was not removed")
	}
	rec, _ := f.students.GetByID(ctx, "PS/ACC/2024/001")
	if rec.AttachmentPath(models.SlotTranscript) != second {
		t.Errorf("slot points at %q, want %q", rec.AttachmentPath(models.SlotTranscript), second)
	}
}

func TestAttachRejectsUnknownSlot(t *testing.T) {
	f := newAttachFixture(t)

	// ghana_card is a student slot, not a registration slot
	_, err := f.svc.Attach(context.Background(), models.OwnerRegistration, f.regID, models.SlotGhanaCard, upload("card.png"))
	if !errors.Is(err, apperrors.ErrUnknownSlot) {
		t.Fatalf("err = %v, want ErrUnknownSlot", err)
	}

	_, err = f.svc.Attach(context.Background(), models.OwnerStudent, "PS/ACC/2024/001", "selfie", upload("me.jpg"))
	if !errors.Is(err, apperrors.ErrUnknownSlot) {
		t.Fatalf("err = %v, want ErrUnknownSlot", err)
	}
}

func TestDetachIsIdempotent(t *testing.T) {
	f := newAttachFixture(t)
	ctx := context.Background()

	path, err := f.svc.Attach(ctx, models.OwnerStudent, "PS/ACC/2024/001", models.SlotCertificate, upload("cert.pdf"))
	if err != nil {
		t.Fatal(err)
	}

	if err := f.svc.Detach(ctx, models.OwnerStudent, "PS/ACC/2024/001", models.SlotCertificate); err != nil {
		t.Fatalf("first detach: %v", err)
	}
	if f.storage.Exists(path) {
		t.Error("detached file still stored")
	}

	// detaching an already-empty slot succeeds
	if err := f.svc.Detach(ctx, models.OwnerStudent, "PS/ACC/2024/001", models.SlotCertificate); err != nil {
		t.Fatalf("second detach: %v", err)
	}
}

func TestReceiptDetachZeroesAmount(t *testing.T) {
	f := newAttachFixture(t)
	ctx := context.Background()

	if _, err := f.svc.Attach(ctx, models.OwnerStudent, "PS/ACC/2024/001", models.SlotReceipt, upload("receipt.jpg")); err != nil {
		t.Fatal(err)
	}
	if err := f.svc.SetReceiptAmount(ctx, models.OwnerStudent, "PS/ACC/2024/001", 250); err != nil {
		t.Fatal(err)
	}

	rec, _ := f.students.GetByID(ctx, "PS/ACC/2024/001")
	if rec.EffectiveReceiptAmount() != 250 {
		t.Fatalf("amount = %v, want 250", rec.EffectiveReceiptAmount())
	}

	if err := f.svc.Detach(ctx, models.OwnerStudent, "PS/ACC/2024/001", models.SlotReceipt); err != nil {
		t.Fatal(err)
	}

	rec, _ = f.students.GetByID(ctx, "PS/ACC/2024/001")
	if rec.EffectiveReceiptAmount() != 0 {
		t.Errorf("amount after detach = %v, want 0", rec.EffectiveReceiptAmount())
	}
}

func TestSetReceiptAmountRejectsNegative(t *testing.T) {
	f := newAttachFixture(t)
	err := f.svc.SetReceiptAmount(context.Background(), models.OwnerStudent, "PS/ACC/2024/001", -1)
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("err = %v, want validation failure", err)
	}
}

func TestRegistrationReceiptRoundTrip(t *testing.T) {
	f := newAttachFixture(t)
	ctx := context.Background()

	path, err := f.svc.Attach(ctx, models.OwnerRegistration, f.regID, models.SlotReceipt, upload("receipt.png"))
	if err != nil {
		t.Fatalf("Attach: %v", err)
	}
	if err := f.svc.SetReceiptAmount(ctx, models.OwnerRegistration, f.regID, 120); err != nil {
		t.Fatal(err)
	}

	refs, err := f.svc.SnapshotAttachments(ctx)
	if err != nil {
		t.Fatal(err)
	}
	found := false
	for _, ref := range refs {
		if ref.OwnerKind == models.OwnerRegistration && ref.OwnerKey == f.regID &&
			ref.Slot == models.SlotReceipt && ref.Path == path {
			found = true
		}
	}
	if !found {
		t.Errorf("snapshot missing registration receipt, got %+v", refs)
	}
}

func TestAttachBadRegistrationKey(t *testing.T) {
	f := newAttachFixture(t)
	_, err := f.svc.Attach(context.Background(), models.OwnerRegistration, "not-a-number", models.SlotReceipt, upload("r.png"))
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("err = %v, want validation failure", err)
	}
}
