// Package storage persists uploaded cover images. The default store
// writes to a local directory served as static assets; an S3-compatible
// store can be selected through configuration.
package storage

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/ambrose/movie-catalog/internal/utils"
)

// ImageStore saves an uploaded image under a collision-resistant name
// and returns the stored filename.
type ImageStore interface {
	Save(ctx context.Context, originalName string, content io.Reader) (string, error)
}

// LocalStore writes images into a directory on the local filesystem.
type LocalStore struct {
	Dir string
}

// NewLocalStore ensures the upload directory exists.
func NewLocalStore(dir string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &LocalStore{Dir: dir}, nil
}

// Save stores the content under a timestamp-prefixed sanitized filename
// and returns that filename.
func (s *LocalStore) Save(_ context.Context, originalName string, content io.Reader) (string, error) {
	name := utils.UploadName(originalName, time.Now())
	f, err := os.Create(filepath.Join(s.Dir, name))
	if err != nil {
		return "", err
	}
	defer f.Close()
	if _, err := io.Copy(f, content); err != nil {
		_ = os.Remove(f.Name())
		return "", err
	}
	return name, nil
}
