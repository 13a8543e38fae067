// Package storage provides file storage implementations for product images.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	catalogapp "github.com/marketplace/backend/internal/application/catalog"
	"go.uber.org/zap"
)

// Ensure LocalFileStorage implements FileStore
var _ catalogapp.FileStore = (*LocalFileStorage)(nil)

// LocalFileStorage stores files as flat entries under a base directory.
// Filenames are generated upstream and never contain path separators.
type LocalFileStorage struct {
	basePath string
	logger   *zap.Logger
}

// NewLocalFileStorage creates the base directory if needed and returns a
// store rooted at it
func NewLocalFileStorage(basePath string, logger *zap.Logger) (*LocalFileStorage, error) {
	if basePath == "" {
		return nil, errors.New("storage base path is required")
	}
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}
	return &LocalFileStorage{
		basePath: basePath,
		logger:   logger,
	}, nil
}

// Save writes the content under the given filename, replacing any
// existing file with that name
func (s *LocalFileStorage) Save(ctx context.Context, filename string, content io.Reader) error {
	path, err := s.resolve(filename)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}

	if _, err := io.Copy(f, content); err != nil {
		f.Close()
		os.Remove(path)
		return fmt.Errorf("failed to write file: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return fmt.Errorf("failed to close file: %w", err)
	}
	return nil
}

// Remove deletes a stored file. Removing a missing file is not an error.
func (s *LocalFileStorage) Remove(ctx context.Context, filename string) error {
	path, err := s.resolve(filename)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove file: %w", err)
	}
	return nil
}

// Exists reports whether a file with the given name is stored
func (s *LocalFileStorage) Exists(ctx context.Context, filename string) (bool, error) {
	path, err := s.resolve(filename)
	if err != nil {
		return false, err
	}
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("failed to stat file: %w", err)
	}
	return true, nil
}

// resolve rejects names that would escape the base directory
func (s *LocalFileStorage) resolve(filename string) (string, error) {
	if filename == "" {
		return "", errors.New("filename is required")
	}
	if strings.ContainsAny(filename, `/\`) || filename != filepath.Base(filename) {
		return "", fmt.Errorf("invalid filename: %q", filename)
	}
	return filepath.Join(s.basePath, filename), nil
}
