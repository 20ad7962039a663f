// Package filesystem implements storage adapters using the local filesystem.
package filesystem

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/bnema/zerowrap"

	"github.com/bnema/pkgvault/internal/boundaries/out"
	"github.com/bnema/pkgvault/internal/domain"
	"github.com/bnema/pkgvault/pkg/validation"
)

// Ensure BlobStorage implements out.BlobStorage.
var _ out.BlobStorage = (*BlobStorage)(nil)

// BlobStorage implements the BlobStorage interface using the local filesystem.
type BlobStorage struct {
	rootDir string
	log     zerowrap.Logger
}

// NewBlobStorage creates a new filesystem blob storage instance.
func NewBlobStorage(rootDir string, log zerowrap.Logger) (*BlobStorage, error) {
	dirs := []string{
		filepath.Join(rootDir, "blobs"),
		filepath.Join(rootDir, "uploads"),
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	log.Info().
		Str(zerowrap.FieldLayer, "adapter").
		Str(zerowrap.FieldAdapter, "filesystem").
		Str("root_dir", rootDir).
		Msg("blob storage initialized")

	return &BlobStorage{
		rootDir: rootDir,
		log:     log,
	}, nil
}

// GetBlob opens the content stored under key.
func (s *BlobStorage) GetBlob(ctx context.Context, key string) (io.ReadCloser, error) {
	blobPath, err := s.blobPath(key)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(blobPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", domain.ErrBlobNotFound, key)
		}
		return nil, fmt.Errorf("failed to open blob: %w", err)
	}

	return file, nil
}

// PutBlob stores content under key and returns the number of bytes written.
// Content is staged in the uploads directory and moved into place once complete.
func (s *BlobStorage) PutBlob(ctx context.Context, key string, data io.Reader, size int64) (int64, error) {
	blobPath, err := s.blobPath(key)
	if err != nil {
		return 0, err
	}

	if err := os.MkdirAll(filepath.Dir(blobPath), 0750); err != nil {
		return 0, fmt.Errorf("failed to create blob directory: %w", err)
	}

	tmpPath := filepath.Join(s.rootDir, "uploads", key+".tmp")
	file, err := os.Create(tmpPath)
	if err != nil {
		return 0, fmt.Errorf("failed to create temporary blob file: %w", err)
	}

	written, err := io.Copy(file, &ctxReader{ctx: ctx, r: data})
	closeErr := file.Close()
	if err != nil {
		_ = os.Remove(tmpPath)
		return 0, fmt.Errorf("failed to write blob data: %w", err)
	}
	if closeErr != nil {
		_ = os.Remove(tmpPath)
		return 0, fmt.Errorf("failed to flush blob data: %w", closeErr)
	}

	if size > 0 && written != size {
		_ = os.Remove(tmpPath)
		return 0, fmt.Errorf("blob size mismatch: expected %d, got %d", size, written)
	}

	if err := os.Rename(tmpPath, blobPath); err != nil {
		_ = os.Remove(tmpPath)
		return 0, fmt.Errorf("failed to move blob to final location: %w", err)
	}

	s.log.Debug().
		Str(zerowrap.FieldLayer, "adapter").
		Str(zerowrap.FieldAdapter, "filesystem").
		Str("key", key).
		Int64(zerowrap.FieldSize, written).
		Msg("blob stored")

	return written, nil
}

// DeleteBlob removes the content stored under key. A missing blob is not an error.
func (s *BlobStorage) DeleteBlob(ctx context.Context, key string) error {
	blobPath, err := s.blobPath(key)
	if err != nil {
		return err
	}

	if err := os.Remove(blobPath); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to delete blob: %w", err)
	}

	s.log.Debug().
		Str(zerowrap.FieldLayer, "adapter").
		Str(zerowrap.FieldAdapter, "filesystem").
		Str("key", key).
		Msg("blob deleted")

	return nil
}

// BlobExists checks if a blob exists.
func (s *BlobStorage) BlobExists(ctx context.Context, key string) (bool, error) {
	blobPath, err := s.blobPath(key)
	if err != nil {
		return false, err
	}
	if _, err := os.Stat(blobPath); err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to stat blob: %w", err)
	}
	return true, nil
}

// blobPath maps a key to blobs/<first two chars>/<key>.
func (s *BlobStorage) blobPath(key string) (string, error) {
	if err := validation.ValidateUUID(key); err != nil {
		return "", &domain.ValidationError{Field: "blob_key", Reason: err.Error()}
	}

	p := filepath.Join(s.rootDir, "blobs", key[:2], key)
	if err := validation.ValidatePathWithinRoot(s.rootDir, p); err != nil {
		return "", err
	}
	return p, nil
}

// ctxReader stops a copy once the context is cancelled.
type ctxReader struct {
	ctx context.Context
	r   io.Reader
}

func (c *ctxReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(p)
}
