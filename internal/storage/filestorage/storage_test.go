package storage_test

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	apperrors "vedika_events/internal/storage"
	storage "vedika_events/internal/storage/filestorage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupFileStorage(t *testing.T, maxSize int64) *storage.LocalFileStorage {
	t.Helper()

	fs, err := storage.NewLocalFileStorage(t.TempDir(), "/uploads", maxSize)
	require.NoError(t, err)

	return fs
}

func createTestFile(t *testing.T, filename, content string) *multipart.FileHeader {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	part, err := writer.CreateFormFile("images", filename)
	require.NoError(t, err)

	_, err = part.Write([]byte(content))
	require.NoError(t, err)

	err = writer.Close()
	require.NoError(t, err)

	req := httptest.NewRequest("POST", "/", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	file, header, err := req.FormFile("images")
	require.NoError(t, err)
	file.Close()

	return header
}

func TestLocalFileStorage_Save(t *testing.T) {
	fs := setupFileStorage(t, 0)

	ctx := context.Background()

	t.Run("successful save", func(t *testing.T) {
		testFile := createTestFile(t, "test.jpg", "test content")

		size, err := fs.Save(ctx, testFile, "images-1-1.jpg")
		require.NoError(t, err)
		assert.Equal(t, int64(12), size)

		data, err := os.ReadFile(fs.GetFullPath("images-1-1.jpg"))
		require.NoError(t, err)
		assert.Equal(t, "test content", string(data))
	})

	t.Run("save with context cancellation", func(t *testing.T) {
		testFile := createTestFile(t, "test.jpg", "test content")

		ctx, cancel := context.WithCancel(ctx)
		cancel()

		_, err := fs.Save(ctx, testFile, "images-1-2.jpg")
		assert.ErrorIs(t, err, context.Canceled)

		_, statErr := os.Stat(fs.GetFullPath("images-1-2.jpg"))
		assert.True(t, os.IsNotExist(statErr))
	})

	t.Run("file over max size", func(t *testing.T) {
		fs := setupFileStorage(t, 4)
		testFile := createTestFile(t, "big.jpg", "more than four bytes")

		_, err := fs.Save(ctx, testFile, "images-1-3.jpg")
		assert.ErrorIs(t, err, apperrors.ErrFileTooLarge)
	})
}

func TestLocalFileStorage_Delete(t *testing.T) {
	fs := setupFileStorage(t, 0)

	ctx := context.Background()

	t.Run("successful delete", func(t *testing.T) {
		testFile := createTestFile(t, "to_delete.jpg", "content")

		_, err := fs.Save(ctx, testFile, "images-2-1.jpg")
		require.NoError(t, err)

		err = fs.Delete(ctx, "images-2-1.jpg")
		assert.NoError(t, err)

		_, err = os.Stat(fs.GetFullPath("images-2-1.jpg"))
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("delete non-existent file", func(t *testing.T) {
		err := fs.Delete(ctx, "nonexistent.jpg")
		assert.ErrorIs(t, err, apperrors.ErrFileNotFound)
	})
}

func TestLocalFileStorage_Open(t *testing.T) {
	fs := setupFileStorage(t, 0)

	ctx := context.Background()

	t.Run("opens saved file", func(t *testing.T) {
		testFile := createTestFile(t, "open.jpg", "image bytes")

		_, err := fs.Save(ctx, testFile, "images-3-1.jpg")
		require.NoError(t, err)

		rc, err := fs.Open(ctx, "images-3-1.jpg")
		require.NoError(t, err)
		defer rc.Close()

		data, err := io.ReadAll(rc)
		require.NoError(t, err)
		assert.Equal(t, "image bytes", string(data))
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := fs.Open(ctx, "missing.jpg")
		assert.ErrorIs(t, err, apperrors.ErrFileNotFound)
	})
}

func TestLocalFileStorage_BaseURL(t *testing.T) {
	fs := setupFileStorage(t, 0)
	assert.Equal(t, "/uploads", fs.BaseURL())
}

func TestNewLocalFileStorage(t *testing.T) {
	t.Run("successful creation", func(t *testing.T) {
		fs, err := storage.NewLocalFileStorage(filepath.Join(t.TempDir(), "uploads"), "/uploads", 0)
		require.NoError(t, err)
		assert.NotNil(t, fs)
	})

	t.Run("invalid directory", func(t *testing.T) {
		_, err := storage.NewLocalFileStorage("/proc/nonexistent/path", "/uploads", 0)
		assert.Error(t, err)
	})
}

func TestNewUploadName(t *testing.T) {
	t.Run("keeps extension lowercased", func(t *testing.T) {
		name := storage.NewUploadName("images", "party.JPG")
		assert.True(t, strings.HasPrefix(name, "images-"))
		assert.True(t, strings.HasSuffix(name, ".jpg"))
	})

	t.Run("no extension", func(t *testing.T) {
		name := storage.NewUploadName("images", "raw")
		assert.True(t, strings.HasPrefix(name, "images-"))
		assert.False(t, strings.Contains(name, "."))
	})

	t.Run("unique across calls", func(t *testing.T) {
		seen := make(map[string]struct{})
		for i := 0; i < 100; i++ {
			seen[storage.NewUploadName("images", "same.png")] = struct{}{}
		}
		assert.Greater(t, len(seen), 1)
	})
}

func TestConcurrentSaves(t *testing.T) {
	fs := setupFileStorage(t, 0)

	ctx := context.Background()
	testFile := createTestFile(t, "concurrent.jpg", "data")

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := fs.Save(ctx, testFile, storage.NewUploadName("images", "concurrent.jpg"))
			assert.NoError(t, err)
		}()
	}
	wg.Wait()
}
