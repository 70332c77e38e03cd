package filesystem

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestSaveWritesFileToDisk tests that saved content can be read back from the
// media directory.
func TestSaveWritesFileToDisk(t *testing.T) {
	dir := t.TempDir()
	store, err := NewMediaStore(dir)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	content := []byte("jpeg bytes")
	if err := store.Save("ring.jpg", bytes.NewReader(content)); err != nil {
		t.Fatalf("expected no error on Save, got %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "ring.jpg"))
	if err != nil {
		t.Fatalf("expected the file on disk, got %v", err)
	}
	if !bytes.Equal(data, content) {
		t.Errorf("expected %q, got %q", content, data)
	}
}

// TestSaveOverwritesExistingFile tests that saving the same name twice leaves
// the newer content.
func TestSaveOverwritesExistingFile(t *testing.T) {
	dir := t.TempDir()
	store, err := NewMediaStore(dir)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if err := store.Save("ring.jpg", strings.NewReader("old")); err != nil {
		t.Fatalf("expected no error on first Save, got %v", err)
	}
	if err := store.Save("ring.jpg", strings.NewReader("new")); err != nil {
		t.Fatalf("expected no error on second Save, got %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "ring.jpg"))
	if err != nil {
		t.Fatalf("expected the file on disk, got %v", err)
	}
	if string(data) != "new" {
		t.Errorf("expected overwritten content, got %q", data)
	}
}

// TestSaveStripsDirectoryComponents tests that a name with path separators
// cannot escape the media directory.
func TestSaveStripsDirectoryComponents(t *testing.T) {
	dir := t.TempDir()
	store, err := NewMediaStore(dir)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if err := store.Save("../escape.jpg", strings.NewReader("data")); err != nil {
		t.Fatalf("expected no error on Save, got %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, "escape.jpg")); err != nil {
		t.Errorf("expected the file inside the media directory, got %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "..", "escape.jpg")); err == nil {
		t.Error("expected no file outside the media directory")
	}
}

// TestSaveLeavesNoTempFiles tests that the temp file used during the write is
// gone once Save returns.
func TestSaveLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	store, err := NewMediaStore(dir)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if err := store.Save("ring.jpg", strings.NewReader("data")); err != nil {
		t.Fatalf("expected no error on Save, got %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("expected no error reading dir, got %v", err)
	}
	if len(entries) != 1 {
		names := make([]string, 0, len(entries))
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Errorf("expected only the final file, got %v", names)
	}
}

// TestRemoveDeletesFile tests that Remove takes the file off disk.
func TestRemoveDeletesFile(t *testing.T) {
	dir := t.TempDir()
	store, err := NewMediaStore(dir)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if err := store.Save("ring.jpg", strings.NewReader("data")); err != nil {
		t.Fatalf("expected no error on Save, got %v", err)
	}
	if err := store.Remove("ring.jpg"); err != nil {
		t.Fatalf("expected no error on Remove, got %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, "ring.jpg")); !os.IsNotExist(err) {
		t.Errorf("expected the file to be gone, got %v", err)
	}
}

// TestRemoveMissingFileIsNotAnError tests that removing a file that never
// existed succeeds.
func TestRemoveMissingFileIsNotAnError(t *testing.T) {
	dir := t.TempDir()
	store, err := NewMediaStore(dir)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if err := store.Remove("never-saved.jpg"); err != nil {
		t.Errorf("expected no error for a missing file, got %v", err)
	}
}

// TestNewMediaStoreCreatesDirectory tests that a missing media directory is
// created on construction.
func TestNewMediaStoreCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "public", "images")

	store, err := NewMediaStore(dir)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if store.Dir() != dir {
		t.Errorf("expected dir %q, got %q", dir, store.Dir())
	}

	info, err := os.Stat(dir)
	if err != nil {
		t.Fatalf("expected the directory to exist, got %v", err)
	}
	if !info.IsDir() {
		t.Error("expected a directory")
	}
}
