// Package storage persists uploaded legal documents behind a small
// backend-agnostic interface, with local-filesystem and S3 backends.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Storage stores uploaded document content
type Storage interface {
	// Save stores a document's content and returns its storage path
	Save(ctx context.Context, docID uuid.UUID, filename string, data io.Reader) (string, error)

	// Open retrieves stored document content by storage path
	Open(ctx context.Context, storagePath string) (io.ReadCloser, error)

	// Remove deletes stored document content by storage path
	Remove(ctx context.Context, storagePath string) error
}

// Backend identifies a storage backend
type Backend string

const (
	BackendLocal Backend = "local"
	BackendS3    Backend = "s3"
)

// Config holds storage configuration
type Config struct {
	Backend      Backend
	LocalPath    string
	S3Bucket     string
	S3Region     string
	AWSAccessKey string
	AWSSecretKey string
}

// New creates a storage instance for the configured backend
func New(cfg Config) (Storage, error) {
	switch cfg.Backend {
	case BackendLocal:
		return NewLocalStorage(cfg.LocalPath)
	case BackendS3:
		return NewS3Storage(cfg)
	default:
		return nil, fmt.Errorf("unknown storage backend: %s", cfg.Backend)
	}
}

// NewFromEnv creates a storage instance from environment variables.
// STORAGE_TYPE selects the backend, defaulting to local.
func NewFromEnv() (Storage, error) {
	backend := Backend(os.Getenv("STORAGE_TYPE"))
	if backend == "" {
		backend = BackendLocal
	}

	switch backend {
	case BackendLocal:
		localPath := os.Getenv("STORAGE_LOCAL_PATH")
		if localPath == "" {
			localPath = "./storage/documents"
		}
		return NewLocalStorage(localPath)

	case BackendS3:
		cfg := Config{
			Backend:      BackendS3,
			S3Bucket:     os.Getenv("AWS_S3_BUCKET"),
			S3Region:     os.Getenv("AWS_REGION"),
			AWSAccessKey: os.Getenv("AWS_ACCESS_KEY_ID"),
			AWSSecretKey: os.Getenv("AWS_SECRET_ACCESS_KEY"),
		}
		if cfg.S3Region == "" {
			cfg.S3Region = "ap-south-1"
		}
		if cfg.S3Bucket == "" {
			return nil, errors.New("AWS_S3_BUCKET environment variable is required for S3 storage")
		}
		return NewS3Storage(cfg)

	default:
		return nil, fmt.Errorf("unknown storage backend: %s", backend)
	}
}

// documentPath builds a unique, sanitized storage path for a document.
// Layout: documents/<first 2 chars of id>/<id>_<name><ext>
func documentPath(docID uuid.UUID, filename string) string {
	ext := filepath.Ext(filename)
	base := strings.TrimSuffix(filepath.Base(filename), ext)
	sanitize := strings.NewReplacer(" ", "_", "/", "_", "\\", "_")
	base = sanitize.Replace(base)

	id := docID.String()
	return fmt.Sprintf("documents/%s/%s_%s%s", id[:2], id, base, ext)
}
