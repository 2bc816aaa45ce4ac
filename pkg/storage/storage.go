package storage

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// MaxFileSize is the upload ceiling for profile images
const MaxFileSize = 5 << 20 // 5 MiB

// Validation failures a Save call can produce
var (
	ErrInvalidMediaType = errors.New("only JPEG, JPG, PNG or GIF images are allowed")
	ErrFileTooLarge     = errors.New("file exceeds the 5 MiB limit")
)

// allowedImages maps both the declared MIME type and the file extension;
// an upload must pass on BOTH to be accepted.
var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/gif":  true,
}

var allowedImageExts = map[string]bool{
	".jpeg": true,
	".jpg":  true,
	".png":  true,
	".gif":  true,
}

// Storage defines the interface for media store backends
type Storage interface {
	Save(ctx context.Context, file multipart.File, header *multipart.FileHeader) (*StoredFile, error)
	Delete(ctx context.Context, key string) error
	PublicURL(key string) string
}

// StoredFile is the addressable reference returned by a successful Save
type StoredFile struct {
	URL      string
	Key      string
	Size     int64
	MimeType string
}

// ValidateImage enforces the upload constraints: declared MIME type and
// extension both on the allow-list, size under the ceiling.
func ValidateImage(header *multipart.FileHeader) error {
	if header.Size > MaxFileSize {
		return ErrFileTooLarge
	}

	contentType := strings.ToLower(header.Header.Get("Content-Type"))
	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !allowedImageTypes[contentType] || !allowedImageExts[ext] {
		return ErrInvalidMediaType
	}
	return nil
}

// generateName builds a collision-resistant object name from a time
// component, a random component and the original extension. Caller input
// never reaches the filename, so generated names cannot clash with or
// overwrite existing files.
func generateName(originalName string) string {
	ext := strings.ToLower(filepath.Ext(originalName))
	return fmt.Sprintf("%d-%s%s", time.Now().UnixNano(), uuid.NewString(), ext)
}
