package storage

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
)

// LocalStorage implements Storage on the local filesystem. The managed
// root directory is created once at construction, not re-checked per
// request.
type LocalStorage struct {
	dir        string
	publicPath string
}

// LocalConfig holds local disk storage configuration
type LocalConfig struct {
	Dir        string // managed root directory for uploads
	PublicPath string // URL prefix the files are served under
}

// NewLocal creates a local disk storage rooted at cfg.Dir
func NewLocal(cfg LocalConfig) (*LocalStorage, error) {
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &LocalStorage{
		dir:        cfg.Dir,
		publicPath: strings.TrimRight(cfg.PublicPath, "/"),
	}, nil
}

// Save validates the upload and writes it under the managed root with a
// generated name. O_EXCL guards the no-overwrite invariant.
func (s *LocalStorage) Save(ctx context.Context, file multipart.File, header *multipart.FileHeader) (*StoredFile, error) {
	if err := ValidateImage(header); err != nil {
		return nil, err
	}

	name := generateName(header.Filename)
	dst, err := os.OpenFile(filepath.Join(s.dir, name), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	size, err := io.Copy(dst, file)
	if err != nil {
		os.Remove(dst.Name())
		return nil, fmt.Errorf("failed to write file: %w", err)
	}

	return &StoredFile{
		URL:      s.PublicURL(name),
		Key:      name,
		Size:     size,
		MimeType: header.Header.Get("Content-Type"),
	}, nil
}

// Delete removes a stored file by key
func (s *LocalStorage) Delete(ctx context.Context, key string) error {
	return os.Remove(filepath.Join(s.dir, filepath.Base(key)))
}

// PublicURL returns the relative URL a stored key is served from
func (s *LocalStorage) PublicURL(key string) string {
	return s.publicPath + "/" + key
}

// Dir returns the managed root directory (for static route wiring)
func (s *LocalStorage) Dir() string {
	return s.dir
}
