// Package objectstorage is the MinIO-backed asset store, for deployments
// where uploads live in a bucket instead of the local filesystem.
package objectstorage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"

	"vedika_events/internal/config"
	apperrors "vedika_events/internal/storage"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

type MinioStorage struct {
	client  *minio.Client
	bucket  string
	baseURL string
	maxSize int64
}

// New connects to MinIO and ensures the configured bucket exists.
func New(ctx context.Context, cfg config.MinioConfig, baseURL string, maxSize int64) (*MinioStorage, error) {
	const op = "objectstorage.New"

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}

	return &MinioStorage{
		client:  client,
		bucket:  cfg.Bucket,
		baseURL: baseURL,
		maxSize: maxSize,
	}, nil
}

func (s *MinioStorage) Save(ctx context.Context, file *multipart.FileHeader, filename string) (int64, error) {
	const op = "objectstorage.Save"

	if s.maxSize > 0 && file.Size > s.maxSize {
		return 0, apperrors.ErrFileTooLarge
	}

	src, err := file.Open()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	defer src.Close()

	info, err := s.client.PutObject(ctx, s.bucket, filename, src, file.Size, minio.PutObjectOptions{
		ContentType: file.Header.Get("Content-Type"),
	})
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return info.Size, nil
}

func (s *MinioStorage) Delete(ctx context.Context, filename string) error {
	const op = "objectstorage.Delete"

	// RemoveObject succeeds on a missing key; stat first so callers see the
	// same ErrFileNotFound the local backend reports.
	if _, err := s.client.StatObject(ctx, s.bucket, filename, minio.StatObjectOptions{}); err != nil {
		if isNotFound(err) {
			return apperrors.ErrFileNotFound
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.client.RemoveObject(ctx, s.bucket, filename, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *MinioStorage) Open(ctx context.Context, filename string) (io.ReadCloser, error) {
	const op = "objectstorage.Open"

	obj, err := s.client.GetObject(ctx, s.bucket, filename, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	// GetObject is lazy; Stat forces the first request so a missing key is
	// reported here instead of on the first read.
	if _, err := obj.Stat(); err != nil {
		_ = obj.Close()
		if isNotFound(err) {
			return nil, apperrors.ErrFileNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return obj, nil
}

func (s *MinioStorage) BaseURL() string {
	return s.baseURL
}

func isNotFound(err error) bool {
	var resp minio.ErrorResponse
	if errors.As(err, &resp) {
		return resp.Code == "NoSuchKey" || resp.Code == "NoSuchBucket"
	}
	return false
}
