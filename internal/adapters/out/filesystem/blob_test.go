package filesystem

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/bnema/zerowrap"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/pkgvault/internal/domain"
)

func testLogger() zerowrap.Logger {
	return zerowrap.Default()
}

func TestNewBlobStorage(t *testing.T) {
	tmpDir := t.TempDir()

	storage, err := NewBlobStorage(tmpDir, testLogger())

	require.NoError(t, err)
	assert.NotNil(t, storage)
	assert.DirExists(t, filepath.Join(tmpDir, "blobs"))
	assert.DirExists(t, filepath.Join(tmpDir, "uploads"))
}

func TestNewBlobStorage_InvalidPath(t *testing.T) {
	file := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0600))

	_, err := NewBlobStorage(filepath.Join(file, "nested"), testLogger())

	assert.Error(t, err)
}

func TestBlobStorage_PutAndGetBlob(t *testing.T) {
	storage, err := NewBlobStorage(t.TempDir(), testLogger())
	require.NoError(t, err)
	ctx := context.Background()

	blobData := []byte("test blob content")
	key := uuid.NewString()

	n, err := storage.PutBlob(ctx, key, bytes.NewReader(blobData), int64(len(blobData)))
	require.NoError(t, err)
	assert.Equal(t, int64(len(blobData)), n)

	reader, err := storage.GetBlob(ctx, key)
	require.NoError(t, err)
	defer reader.Close()

	data, err := io.ReadAll(reader)
	require.NoError(t, err)
	assert.Equal(t, blobData, data)
}

func TestBlobStorage_GetBlob_NotFound(t *testing.T) {
	storage, err := NewBlobStorage(t.TempDir(), testLogger())
	require.NoError(t, err)

	reader, err := storage.GetBlob(context.Background(), uuid.NewString())

	assert.Nil(t, reader)
	assert.True(t, errors.Is(err, domain.ErrBlobNotFound))
}

func TestBlobStorage_PutBlob_SizeMismatch(t *testing.T) {
	tmpDir := t.TempDir()
	storage, err := NewBlobStorage(tmpDir, testLogger())
	require.NoError(t, err)
	key := uuid.NewString()

	_, err = storage.PutBlob(context.Background(), key, bytes.NewReader([]byte("short")), 100)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "size mismatch")
	exists, err := storage.BlobExists(context.Background(), key)
	require.NoError(t, err)
	assert.False(t, exists)

	entries, err := os.ReadDir(filepath.Join(tmpDir, "uploads"))
	require.NoError(t, err)
	assert.Empty(t, entries, "temporary file must be cleaned up")
}

func TestBlobStorage_PutBlob_UnknownSize(t *testing.T) {
	storage, err := NewBlobStorage(t.TempDir(), testLogger())
	require.NoError(t, err)

	n, err := storage.PutBlob(context.Background(), uuid.NewString(), bytes.NewReader([]byte("streamed")), 0)

	require.NoError(t, err)
	assert.Equal(t, int64(8), n)
}

func TestBlobStorage_PutBlob_CancelledContext(t *testing.T) {
	storage, err := NewBlobStorage(t.TempDir(), testLogger())
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = storage.PutBlob(ctx, uuid.NewString(), bytes.NewReader([]byte("data")), 4)

	assert.True(t, errors.Is(err, context.Canceled))
}

func TestBlobStorage_DeleteBlob(t *testing.T) {
	storage, err := NewBlobStorage(t.TempDir(), testLogger())
	require.NoError(t, err)
	ctx := context.Background()
	key := uuid.NewString()

	_, err = storage.PutBlob(ctx, key, bytes.NewReader([]byte("x")), 1)
	require.NoError(t, err)

	require.NoError(t, storage.DeleteBlob(ctx, key))
	exists, err := storage.BlobExists(ctx, key)
	require.NoError(t, err)
	assert.False(t, exists)

	assert.NoError(t, storage.DeleteBlob(ctx, key), "deleting a missing blob is a no-op")
}

func TestBlobStorage_BlobPathStructure(t *testing.T) {
	tmpDir := t.TempDir()
	storage, err := NewBlobStorage(tmpDir, testLogger())
	require.NoError(t, err)
	key := "550e8400-e29b-41d4-a716-446655440000"

	_, err = storage.PutBlob(context.Background(), key, bytes.NewReader([]byte("x")), 1)
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(tmpDir, "blobs", "55", key))
}

func TestBlobStorage_RejectsInvalidKeys(t *testing.T) {
	storage, err := NewBlobStorage(t.TempDir(), testLogger())
	require.NoError(t, err)
	ctx := context.Background()

	for _, key := range []string{"", "../../etc/passwd", "abc", "550e8400/e29b-41d4-a716-446655440000"} {
		_, err := storage.PutBlob(ctx, key, bytes.NewReader(nil), 0)
		assert.True(t, errors.Is(err, domain.ErrValidation), key)

		_, err = storage.GetBlob(ctx, key)
		assert.True(t, errors.Is(err, domain.ErrValidation), key)
	}
}
