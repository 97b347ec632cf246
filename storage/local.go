package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// LocalStorage implements Storage on the local filesystem
type LocalStorage struct {
	basePath string
}

// NewLocalStorage creates a new local storage instance
func NewLocalStorage(basePath string) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}

	return &LocalStorage{basePath: basePath}, nil
}

// Put writes the document under the base path
func (s *LocalStorage) Put(ctx context.Context, obj Object, data io.Reader) (string, error) {
	storagePath := objectPath(obj)
	fullPath := filepath.Join(s.basePath, filepath.FromSlash(storagePath))

	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		return "", fmt.Errorf("failed to create directory: %w", err)
	}

	file, err := os.Create(fullPath)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	if _, err := io.Copy(file, data); err != nil {
		os.Remove(fullPath)
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	return storagePath, nil
}

// Open opens a stored document
func (s *LocalStorage) Open(ctx context.Context, storagePath string) (io.ReadCloser, error) {
	if !validPath(storagePath) {
		return nil, ErrInvalidPath
	}

	file, err := os.Open(filepath.Join(s.basePath, filepath.FromSlash(storagePath)))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrObjectNotFound
		}
		return nil, fmt.Errorf("failed to open file: %w", err)
	}

	return file, nil
}

// Remove deletes a stored document
func (s *LocalStorage) Remove(ctx context.Context, storagePath string) error {
	if !validPath(storagePath) {
		return ErrInvalidPath
	}

	err := os.Remove(filepath.Join(s.basePath, filepath.FromSlash(storagePath)))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to delete file: %w", err)
	}

	return nil
}
