package filestorage

import (
	"io"
	"mime/multipart"
)

// FileStorage defines the interface for the upload artifact store. Stored
// paths are opaque identifiers handed back to the owning row; absence of a
// file is a value, not an error.
type FileStorage interface {
	// Save stores the content under a collision-free name that keeps the
	// original extension, and returns the stored path.
	Save(r io.Reader, originalName string) (string, error)

	// SaveUpload stores a multipart form upload.
	SaveUpload(fileHeader *multipart.FileHeader) (string, error)

	// Delete removes a stored file. Deleting a missing file is a no-op.
	Delete(storedPath string) error

	// Exists reports whether the stored path is present on disk.
	Exists(storedPath string) bool

	// FullPath returns the full filesystem path for a stored path.
	FullPath(storedPath string) string
}
