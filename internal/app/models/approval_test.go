package models

import "testing"

func TestApprovalStatusValues(t *testing.T) {
	// the stored column values the repositories filter and default on
	cases := []struct {
		status ApprovalStatus
		want   string
	}{
		{StatusPending, "pending"},
		{StatusApproved, "approved"},
		{StatusRejected, "rejected"},
	}
	for _, c := range cases {
		if string(c.status) != c.want {
			t.Errorf("status = %q, want %q", c.status, c.want)
		}
		if !c.status.IsValid() {
			t.Errorf("%q reported invalid", c.status)
		}
	}
}

func TestApprovalStatusIsValidRejectsUnknown(t *testing.T) {
	for _, s := range []ApprovalStatus{"", "all", "Pending", "escalated"} {
		if s.IsValid() {
			t.Errorf("%q reported valid", s)
		}
	}
}

func TestOwnerKindIsValid(t *testing.T) {
	if !OwnerStudent.IsValid() || !OwnerRegistration.IsValid() {
		t.Error("known owner kind reported invalid")
	}
	if OwnerKind("course").IsValid() {
		t.Error("unknown owner kind reported valid")
	}
}
