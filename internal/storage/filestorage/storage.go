package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	apperrors "vedika_events/internal/storage"
)

// FileStorage is the asset store behind the gallery: uploaded image binaries
// addressed by generated file names. Delete and Open report a missing file
// as storage.ErrFileNotFound so callers can treat deletion as idempotent.
type FileStorage interface {
	Save(ctx context.Context, file *multipart.FileHeader, filename string) (int64, error)
	Delete(ctx context.Context, filename string) error
	Open(ctx context.Context, filename string) (io.ReadCloser, error)
	BaseURL() string
}

// LocalFileStorage keeps assets in a flat directory on the local filesystem.
type LocalFileStorage struct {
	baseDir string
	baseURL string
	maxSize int64
}

func NewLocalFileStorage(baseDir, baseURL string, maxSize int64) (*LocalFileStorage, error) {
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, err
	}

	return &LocalFileStorage{
		baseDir: baseDir,
		baseURL: baseURL,
		maxSize: maxSize,
	}, nil
}

func (s *LocalFileStorage) Save(ctx context.Context, file *multipart.FileHeader, filename string) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	if s.maxSize > 0 && file.Size > s.maxSize {
		return 0, apperrors.ErrFileTooLarge
	}

	src, err := file.Open()
	if err != nil {
		return 0, fmt.Errorf("failed to open source file: %w", err)
	}
	defer src.Close()

	filePath := filepath.Join(s.baseDir, filename)

	dst, err := os.Create(filePath)
	if err != nil {
		return 0, fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	done := make(chan struct{})
	var size int64
	var copyErr error

	go func() {
		size, copyErr = io.Copy(dst, src)
		close(done)
	}()

	select {
	case <-done:
		if copyErr != nil {
			_ = os.Remove(filePath)
			return 0, fmt.Errorf("failed to copy file: %w", copyErr)
		}
	case <-ctx.Done():
		_ = os.Remove(filePath)
		return 0, ctx.Err()
	}

	return size, nil
}

func (s *LocalFileStorage) Delete(ctx context.Context, filename string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	err := os.Remove(filepath.Join(s.baseDir, filename))
	if errors.Is(err, os.ErrNotExist) {
		return apperrors.ErrFileNotFound
	}

	return err
}

func (s *LocalFileStorage) Open(ctx context.Context, filename string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(filepath.Join(s.baseDir, filename))
	if errors.Is(err, os.ErrNotExist) {
		return nil, apperrors.ErrFileNotFound
	}
	if err != nil {
		return nil, err
	}

	return f, nil
}

// GetFullPath returns the on-disk path for filename.
func (s *LocalFileStorage) GetFullPath(filename string) string {
	return filepath.Join(s.baseDir, filename)
}

func (s *LocalFileStorage) BaseURL() string {
	return s.baseURL
}

func (s *LocalFileStorage) GetBaseDir() string {
	return s.baseDir
}
