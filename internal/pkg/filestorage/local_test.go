package filestorage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSaveRoundTrip(t *testing.T) {
	ls, err := NewLocalStorage(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	stored, err := ls.Save(strings.NewReader("file body"), "upload.pdf")
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if filepath.Ext(stored) != ".pdf" {
		t.Errorf("stored name %q lost the extension", stored)
	}
	if !ls.Exists(stored) {
		t.Fatal("saved file does not exist")
	}

	content, err := os.ReadFile(ls.FullPath(stored))
	if err != nil {
		t.Fatal(err)
	}
	if string(content) != "file body" {
		t.Errorf("content = %q", content)
	}
}

func TestSaveUniqueNames(t *testing.T) {
	ls, err := NewLocalStorage(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	first, err := ls.Save(strings.NewReader("a"), "same.png")
	if err != nil {
		t.Fatal(err)
	}
	second, err := ls.Save(strings.NewReader("b"), "same.png")
	if err != nil {
		t.Fatal(err)
	}
	if first == second {
		t.Errorf("two saves of %q collided on %q", "same.png", first)
	}
}

func TestDeleteIsIdempotent(t *testing.T) {
	ls, err := NewLocalStorage(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	stored, err := ls.Save(strings.NewReader("x"), "doc.txt")
	if err != nil {
		t.Fatal(err)
	}

	if err := ls.Delete(stored); err != nil {
		t.Fatalf("first delete: %v", err)
	}
	if ls.Exists(stored) {
		t.Error("file still exists after delete")
	}
	// deleting again, or deleting nothing, is not an error
	if err := ls.Delete(stored); err != nil {
		t.Fatalf("second delete: %v", err)
	}
	if err := ls.Delete(""); err != nil {
		t.Fatalf("empty delete: %v", err)
	}
}

func TestFullPathStripsDirectories(t *testing.T) {
	dir := t.TempDir()
	ls, err := NewLocalStorage(dir)
	if err != nil {
		t.Fatal(err)
	}

	// stored paths are bare names; anything resembling a path is flattened
	got := ls.FullPath("../../etc/passwd")
	if got != filepath.Join(dir, "passwd") {
		t.Errorf("FullPath = %q", got)
	}
	if ls.FullPath("") != "" {
		t.Errorf("FullPath of empty = %q", ls.FullPath(""))
	}
}

func TestExistsMissing(t *testing.T) {
	ls, err := NewLocalStorage(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if ls.Exists("nope.png") {
		t.Error("missing file reported as existing")
	}
	if ls.Exists("") {
		t.Error("empty path reported as existing")
	}
}
