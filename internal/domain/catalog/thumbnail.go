// internal/domain/catalog/thumbnail.go
package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// ThumbnailStore materializes an uploaded image payload into a durable URL.
// Blob storage itself is an external collaborator; the catalog only needs
// "store these bytes, give me a URL back".
type ThumbnailStore interface {
	Save(data []byte, contentType string) (string, error)
}

// LocalThumbnailStore stores thumbnails on local disk and serves them from a
// public base path.
type LocalThumbnailStore struct {
	dir        string
	publicBase string
	maxSize    int64
}

// NewLocalThumbnailStore creates a disk-backed thumbnail store
func NewLocalThumbnailStore(dir, publicBase string, maxSize int64) *LocalThumbnailStore {
	return &LocalThumbnailStore{
		dir:        dir,
		publicBase: publicBase,
		maxSize:    maxSize,
	}
}

// Save writes the payload under a generated name and returns its public URL
func (s *LocalThumbnailStore) Save(data []byte, contentType string) (string, error) {
	if len(data) == 0 {
		return "", fmt.Errorf("empty image payload")
	}
	if s.maxSize > 0 && int64(len(data)) > s.maxSize {
		return "", fmt.Errorf("image payload exceeds %d bytes", s.maxSize)
	}

	ext := extensionFor(contentType)
	if ext == "" {
		return "", fmt.Errorf("unsupported image content type: %s", contentType)
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to prepare upload directory: %w", err)
	}

	name := fmt.Sprintf("%s%s", uuid.New().String(), ext)
	path := filepath.Join(s.dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write thumbnail: %w", err)
	}

	return strings.TrimRight(s.publicBase, "/") + "/" + name, nil
}

func extensionFor(contentType string) string {
	switch contentType {
	case "image/jpeg", "image/jpg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/gif":
		return ".gif"
	case "image/webp":
		return ".webp"
	default:
		return ""
	}
}
