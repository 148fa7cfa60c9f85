package services

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// StoredFile describes an upload written to the local blob directory.
type StoredFile struct {
	Filename string `json:"filename"` // generated name on disk
	URL      string `json:"path"`     // public URL
}

// UploadDir is where uploaded binaries land; served statically under
// /uploads.
func UploadDir() string {
	dir := os.Getenv("UPLOAD_DIR")
	if dir == "" {
		dir = "./uploads"
	}
	return dir
}

// PublicURL maps a stored filename to its static URL.
func PublicURL(filename string) string {
	return "/uploads/" + filename
}

// SaveUpload writes a multipart file to the upload directory under a
// generated name, keeping the original extension. The generated name
// is the only access control on retrieval.
func SaveUpload(header *multipart.FileHeader, prefix string) (*StoredFile, error) {
	src, err := header.Open()
	if err != nil {
		return nil, fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	if err := os.MkdirAll(UploadDir(), 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}

	name := prefix + uuid.NewString() + filepath.Ext(header.Filename)
	dst, err := os.Create(filepath.Join(UploadDir(), name))
	if err != nil {
		return nil, fmt.Errorf("create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return nil, fmt.Errorf("write file: %w", err)
	}

	return &StoredFile{Filename: name, URL: PublicURL(name)}, nil
}
