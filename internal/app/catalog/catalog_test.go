package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/kdanquah/regportal/internal/app/models"
)

func TestDefaultProgrammes(t *testing.T) {
	cat := Default()

	got := cat.Programmes()
	want := []string{"CIMG", "CIM-UK", "ICAG", "ACCA"}
	if len(got) != len(want) {
		t.Fatalf("Programmes() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Programmes()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestCoursesForACCAAppliedKnowledge(t *testing.T) {
	cat := Default()

	courses := cat.CoursesFor("ACCA", "Applied Knowledge")
	if len(courses) != 3 {
		t.Fatalf("expected 3 courses, got %d", len(courses))
	}
	for _, c := range courses {
		if c.CreditHours != 3 {
			t.Errorf("course %s has %d credit hours, want 3", c.Code, c.CreditHours)
		}
	}
	if courses[0].Code != "AB101" {
		t.Errorf("first course = %q, want AB101", courses[0].Code)
	}
	if models.TotalCreditHours(courses) != 9 {
		t.Errorf("total credits = %d, want 9", models.TotalCreditHours(courses))
	}
}

func TestUnknownKeysYieldEmpty(t *testing.T) {
	cat := Default()

	if levels := cat.Levels("Basket Weaving"); len(levels) != 0 {
		t.Errorf("Levels(unknown) = %v, want empty", levels)
	}
	if courses := cat.CoursesFor("ACCA", "No Such Level"); len(courses) != 0 {
		t.Errorf("CoursesFor(unknown level) = %v, want empty", courses)
	}
	if courses := cat.CoursesFor("Nope", "Applied Knowledge"); len(courses) != 0 {
		t.Errorf("CoursesFor(unknown programme) = %v, want empty", courses)
	}
}

func TestCoursesForReturnsCopy(t *testing.T) {
	cat := Default()

	first := cat.CoursesFor("ACCA", "Applied Knowledge")
	first[0].Title = "mutated"

	second := cat.CoursesFor("ACCA", "Applied Knowledge")
	if second[0].Title == "mutated" {
		t.Error("CoursesFor returned a shared slice; callers can corrupt the catalogue")
	}
}

func TestLoadFile(t *testing.T) {
	doc := `programmes:
  - name: "Test Programme"
    levels:
      - name: "Level One"
        courses:
          - code: "T101"
            title: "Testing Basics"
            credit_hours: 4
`
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	if err := os.WriteFile(path, []byte(doc), 0o600); err != nil {
		t.Fatal(err)
	}

	cat, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}

	courses := cat.CoursesFor("Test Programme", "Level One")
	if len(courses) != 1 {
		t.Fatalf("expected 1 course, got %d", len(courses))
	}
	if courses[0].Code != "T101" || courses[0].CreditHours != 4 {
		t.Errorf("unexpected course %+v", courses[0])
	}
}

func TestLoadFileMissing(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing catalogue file")
	}
}
