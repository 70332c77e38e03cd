package output

import "io"

// MediaStore interface - Output port
// Filesystem area holding uploaded product images, keyed by filename.
type MediaStore interface {
	// Save streams the file's bytes under the given name, replacing any
	// previous content atomically.
	Save(name string, r io.Reader) error

	// Remove deletes the named file. A missing file is tolerated and is not
	// an error.
	Remove(name string) error
}
