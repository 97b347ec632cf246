package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrObjectNotFound = errors.New("stored document not found")
	ErrInvalidPath    = errors.New("invalid storage path")
)

// Storage keeps the binary content of case documents
type Storage interface {
	// Put stores a document and returns the path to persist alongside its metadata
	Put(ctx context.Context, obj Object, data io.Reader) (string, error)

	// Open streams a stored document back
	Open(ctx context.Context, storagePath string) (io.ReadCloser, error)

	// Remove deletes a stored document; missing documents are not an error
	Remove(ctx context.Context, storagePath string) error
}

// Object identifies a document being stored
type Object struct {
	FileID   uuid.UUID
	CaseID   int64
	Filename string
}

// Backend selects the storage implementation
type Backend string

const (
	BackendLocal Backend = "local"
	BackendS3    Backend = "s3"
)

// Config holds storage settings
type Config struct {
	Backend   Backend
	LocalPath string
	Bucket    string
	Region    string
	Endpoint  string // S3-compatible endpoint, e.g. MinIO; empty uses AWS
	AccessKey string
	SecretKey string
}

// New creates the storage backend named by cfg
func New(ctx context.Context, cfg Config) (Storage, error) {
	switch cfg.Backend {
	case BackendLocal:
		return NewLocalStorage(cfg.LocalPath)
	case BackendS3:
		if cfg.Bucket == "" {
			return nil, errors.New("s3 storage requires a bucket")
		}
		return NewS3Storage(ctx, cfg)
	default:
		return nil, fmt.Errorf("unknown storage backend: %s", cfg.Backend)
	}
}

// objectPath lays documents out per case: cases/<case id>/<file id>_<name><ext>
func objectPath(obj Object) string {
	ext := strings.ToLower(filepath.Ext(obj.Filename))
	base := strings.TrimSuffix(filepath.Base(obj.Filename), filepath.Ext(obj.Filename))
	base = strings.Map(func(r rune) rune {
		switch r {
		case ' ', '/', '\\', ':', '*', '?', '"', '<', '>', '|':
			return '_'
		}
		return r
	}, base)

	return path.Join("cases", fmt.Sprint(obj.CaseID), obj.FileID.String()+"_"+base+ext)
}

// validPath rejects paths that could escape the storage root
func validPath(p string) bool {
	if p == "" || strings.HasPrefix(p, "/") {
		return false
	}
	for _, part := range strings.Split(p, "/") {
		if part == ".." {
			return false
		}
	}
	return true
}

var contentTypes = map[string]string{
	".pdf":  "application/pdf",
	".txt":  "text/plain",
	".doc":  "application/msword",
	".docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
}

// ContentType determines the content type from a filename
func ContentType(filename string) string {
	if ct, ok := contentTypes[strings.ToLower(filepath.Ext(filename))]; ok {
		return ct
	}
	return "application/octet-stream"
}

// Accepted reports whether documents of this kind may be attached to a case
func Accepted(filename string) bool {
	_, ok := contentTypes[strings.ToLower(filepath.Ext(filename))]
	return ok
}
