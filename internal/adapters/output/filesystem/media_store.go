package filesystem

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"jewelshop/internal/ports/output"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Compile-time check to ensure MediaStore implements the output port
var _ output.MediaStore = (*MediaStore)(nil)

// MediaStore struct - Output adapter keeping uploaded product images in the
// public directory the storefront is served from.
type MediaStore struct {
	dir string
}

// NewMediaStore creates the store, making sure the directory exists.
func NewMediaStore(dir string) (*MediaStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create media directory: %w", err)
	}
	return &MediaStore{dir: dir}, nil
}

// Dir returns the directory the store writes into.
func (m *MediaStore) Dir() string {
	return m.dir
}

// Save streams the bytes into a temporary file and renames it into place, so
// readers never observe a half-written image.
func (m *MediaStore) Save(name string, r io.Reader) error {
	target := filepath.Join(m.dir, filepath.Base(name))
	tmp := target + "." + uuid.NewString() + ".tmp"

	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("failed to create image file: %w", err)
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("failed to write image file: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to close image file: %w", err)
	}
	if err := os.Rename(tmp, target); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to publish image file: %w", err)
	}

	logrus.Infof("Saved image %s", target)
	return nil
}

// Remove deletes the named file. A file that is already gone is tolerated.
func (m *MediaStore) Remove(name string) error {
	target := filepath.Join(m.dir, filepath.Base(name))
	err := os.Remove(target)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove image file: %w", err)
	}
	return nil
}
