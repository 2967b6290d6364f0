package storage

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Uploader stores an uploaded file and returns the path or URL to
// reference it by. Implementations own their own timeout/retry policy;
// callers surface a failed store as a terminal error for the request.
type Uploader interface {
	Store(file *multipart.FileHeader) (string, error)
}

// LocalUploader stores uploads on the local filesystem, under a
// directory served statically by the HTTP layer.
type LocalUploader struct {
	dir string
}

// NewLocalUploader creates the upload directory if needed and returns an
// Uploader writing into it.
func NewLocalUploader(dir string) (*LocalUploader, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload dir %s: %w", dir, err)
	}
	return &LocalUploader{dir: dir}, nil
}

// Store writes the file under a uuid-prefixed name so client-chosen
// filenames can never collide or escape the directory.
func (u *LocalUploader) Store(file *multipart.FileHeader) (string, error) {
	name := uuid.New().String() + "_" + filepath.Base(file.Filename)
	dest := filepath.Join(u.dir, name)

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open upload %s: %w", file.Filename, err)
	}
	defer src.Close()

	out, err := os.Create(dest)
	if err != nil {
		return "", fmt.Errorf("failed to create %s: %w", dest, err)
	}
	defer out.Close()

	if _, err := out.ReadFrom(src); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", dest, err)
	}

	// The HTTP layer serves u.dir at /uploads.
	return "/uploads/" + name, nil
}
