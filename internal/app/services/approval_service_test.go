package services

import (
	"context"
	"errors"
	"testing"

	"github.com/kdanquah/regportal/internal/app/models"
	"github.com/kdanquah/regportal/internal/pkg/apperrors"
)

func TestSetStudentStatusTransitions(t *testing.T) {
	students := newFakeStudentStore()
	svc := NewApprovalService(students, newFakeRegistrationStore())
	ctx := context.Background()

	if err := students.Create(ctx, testStudent("PS/ACC/2024/001")); err != nil {
		t.Fatal(err)
	}

	// no status is terminal; every hop is allowed
	hops := []models.ApprovalStatus{
		models.StatusApproved,
		models.StatusRejected,
		models.StatusPending,
		models.StatusApproved,
	}
	for _, status := range hops {
		if err := svc.SetStudentStatus(ctx, "PS/ACC/2024/001", status); err != nil {
			t.Fatalf("transition to %s: %v", status, err)
		}
		got, _ := students.GetByID(ctx, "PS/ACC/2024/001")
		if got.ApprovalStatus != status {
			t.Errorf("status = %q, want %q", got.ApprovalStatus, status)
		}
	}
}

func TestSetStudentStatusUnknownValue(t *testing.T) {
	svc := NewApprovalService(newFakeStudentStore(), newFakeRegistrationStore())
	err := svc.SetStudentStatus(context.Background(), "PS/ACC/2024/001", "escalated")
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("err = %v, want validation failure", err)
	}
}

func TestSetStudentStatusNotFound(t *testing.T) {
	svc := NewApprovalService(newFakeStudentStore(), newFakeRegistrationStore())
	err := svc.SetStudentStatus(context.Background(), "PS/ACC/2024/404", models.StatusApproved)
	if !errors.Is(err, apperrors.ErrStudentNotFound) {
		t.Fatalf("err = %v, want ErrStudentNotFound", err)
	}
}

func TestSetRegistrationStatus(t *testing.T) {
	registrations := newFakeRegistrationStore()
	svc := NewApprovalService(newFakeStudentStore(), registrations)
	ctx := context.Background()

	reg := &models.CourseRegistration{StudentID: "PS/ACC/2024/001", Programme: "ACCA"}
	if err := registrations.Create(ctx, reg); err != nil {
		t.Fatal(err)
	}

	if err := svc.SetRegistrationStatus(ctx, reg.RegistrationID, models.StatusRejected); err != nil {
		t.Fatalf("SetRegistrationStatus: %v", err)
	}
	got, _ := registrations.GetByID(ctx, reg.RegistrationID)
	if got.ApprovalStatus != models.StatusRejected {
		t.Errorf("status = %q, want rejected", got.ApprovalStatus)
	}
}

func TestPendingCounts(t *testing.T) {
	students := newFakeStudentStore()
	registrations := newFakeRegistrationStore()
	svc := NewApprovalService(students, registrations)
	ctx := context.Background()

	for _, id := range []string{"PS/ACC/2024/001", "PS/ACC/2024/002"} {
		if err := students.Create(ctx, testStudent(id)); err != nil {
			t.Fatal(err)
		}
	}
	if err := students.SetApprovalStatus(ctx, "PS/ACC/2024/002", models.StatusApproved); err != nil {
		t.Fatal(err)
	}
	if err := registrations.Create(ctx, &models.CourseRegistration{StudentID: "PS/ACC/2024/001"}); err != nil {
		t.Fatal(err)
	}

	counts, err := svc.PendingCounts(ctx)
	if err != nil {
		t.Fatalf("PendingCounts: %v", err)
	}
	if counts.PendingStudents != 1 {
		t.Errorf("pending students = %d, want 1", counts.PendingStudents)
	}
	if counts.PendingRegistrations != 1 {
		t.Errorf("pending registrations = %d, want 1", counts.PendingRegistrations)
	}
}
