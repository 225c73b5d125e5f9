package store

import (
	"os"
	"path/filepath"
	"testing"
)

// exerciseBackend runs the contract every Backend implementation must honor.
func exerciseBackend(t *testing.T, b Backend) {
	t.Helper()

	// Absent key: no value, no error.
	if _, ok, err := b.Get("missing"); err != nil || ok {
		t.Fatalf("Get(missing) = ok=%v err=%v, want absent", ok, err)
	}

	// Round trip.
	if err := b.Set("clinic_patients", []byte(`[{"id":"p1"}]`)); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got, ok, err := b.Get("clinic_patients")
	if err != nil || !ok {
		t.Fatalf("Get after Set = ok=%v err=%v", ok, err)
	}
	if string(got) != `[{"id":"p1"}]` {
		t.Fatalf("Get = %q", got)
	}

	// Overwrite.
	if err := b.Set("clinic_patients", []byte(`[]`)); err != nil {
		t.Fatalf("Set (overwrite): %v", err)
	}
	got, _, _ = b.Get("clinic_patients")
	if string(got) != `[]` {
		t.Fatalf("Get after overwrite = %q", got)
	}

	// Delete, then delete again.
	if err := b.Delete("clinic_patients"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, ok, _ := b.Get("clinic_patients"); ok {
		t.Fatal("value survived Delete")
	}
	if err := b.Delete("clinic_patients"); err != nil {
		t.Fatalf("Delete (repeat): %v", err)
	}
}

func TestMemoryBackendContract(t *testing.T) {
	b := NewMemoryBackend()
	defer b.Close()
	exerciseBackend(t, b)
}

func TestFileBackendContract(t *testing.T) {
	b, err := NewFileBackend(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileBackend: %v", err)
	}
	defer b.Close()
	exerciseBackend(t, b)
}

func TestSQLiteBackendContract(t *testing.T) {
	b, err := NewSQLiteBackend(filepath.Join(t.TempDir(), "clinic.db"))
	if err != nil {
		t.Fatalf("NewSQLiteBackend: %v", err)
	}
	defer b.Close()
	exerciseBackend(t, b)
}

func TestMemoryBackendCopiesValues(t *testing.T) {
	b := NewMemoryBackend()
	defer b.Close()

	src := []byte(`original`)
	b.Set("k", src)
	src[0] = 'X'

	got, _, _ := b.Get("k")
	if string(got) != "original" {
		t.Fatalf("stored value aliased caller slice: %q", got)
	}

	got[0] = 'Y'
	again, _, _ := b.Get("k")
	if string(again) != "original" {
		t.Fatalf("returned value aliased stored slice: %q", again)
	}
}

func TestFileBackendPersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()

	b, err := NewFileBackend(dir)
	if err != nil {
		t.Fatalf("NewFileBackend: %v", err)
	}
	if err := b.Set("clinic_settings", []byte(`{"clinics":[]}`)); err != nil {
		t.Fatalf("Set: %v", err)
	}
	b.Close()

	b2, err := NewFileBackend(dir)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer b2.Close()
	got, ok, err := b2.Get("clinic_settings")
	if err != nil || !ok {
		t.Fatalf("Get after reopen = ok=%v err=%v", ok, err)
	}
	if string(got) != `{"clinics":[]}` {
		t.Fatalf("Get after reopen = %q", got)
	}
}

func TestSQLiteBackendPersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clinic.db")

	b, err := NewSQLiteBackend(path)
	if err != nil {
		t.Fatalf("NewSQLiteBackend: %v", err)
	}
	if err := b.Set("clinic_last_modified", []byte("1717430400000")); err != nil {
		t.Fatalf("Set: %v", err)
	}
	b.Close()

	b2, err := NewSQLiteBackend(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer b2.Close()
	got, ok, err := b2.Get("clinic_last_modified")
	if err != nil || !ok {
		t.Fatalf("Get after reopen = ok=%v err=%v", ok, err)
	}
	if string(got) != "1717430400000" {
		t.Fatalf("Get after reopen = %q", got)
	}
}

func TestFileBackendIgnoresForeignFiles(t *testing.T) {
	dir := t.TempDir()
	b, err := NewFileBackend(dir)
	if err != nil {
		t.Fatalf("NewFileBackend: %v", err)
	}
	defer b.Close()

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, ok, err := b.Get("notes"); err != nil || ok {
		t.Fatalf("foreign file surfaced as key: ok=%v err=%v", ok, err)
	}
}
