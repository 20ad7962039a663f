// Package gcsblob stores artifact content in a Google Cloud Storage bucket.
package gcsblob

import (
	"context"
	"errors"
	"fmt"
	"io"

	"cloud.google.com/go/storage"
	"github.com/bnema/zerowrap"

	"github.com/bnema/pkgvault/internal/boundaries/out"
	"github.com/bnema/pkgvault/internal/domain"
)

// Ensure Store implements out.BlobStorage.
var _ out.BlobStorage = (*Store)(nil)

// Config holds the bucket settings.
type Config struct {
	Bucket string `mapstructure:"bucket"`
	Prefix string `mapstructure:"prefix"`
}

// Store implements out.BlobStorage on top of GCS.
type Store struct {
	client *storage.Client
	bucket string
	prefix string
	log    zerowrap.Logger
}

// NewStore creates a GCS client using application default credentials.
// STORAGE_EMULATOR_HOST redirects the client to an emulator.
func NewStore(ctx context.Context, cfg Config, log zerowrap.Logger) (*Store, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("gcs bucket is required")
	}

	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCS client: %w", err)
	}

	log.Info().
		Str(zerowrap.FieldLayer, "adapter").
		Str(zerowrap.FieldAdapter, "gcs").
		Str("bucket", cfg.Bucket).
		Msg("blob storage initialized")

	return &Store{client: client, bucket: cfg.Bucket, prefix: cfg.Prefix, log: log}, nil
}

// Close releases the client.
func (s *Store) Close() error {
	return s.client.Close()
}

func (s *Store) object(key string) *storage.ObjectHandle {
	return s.client.Bucket(s.bucket).Object(s.prefix + key)
}

// PutBlob streams content into the object stored under key.
func (s *Store) PutBlob(ctx context.Context, key string, data io.Reader, size int64) (int64, error) {
	wctx, cancel := context.WithCancel(ctx)
	defer cancel()

	w := s.object(key).NewWriter(wctx)
	w.ContentType = "application/octet-stream"

	written, err := io.Copy(w, data)
	if err != nil {
		cancel()
		_ = w.Close()
		return 0, fmt.Errorf("gcs write failed for %s: %w", key, err)
	}
	if size > 0 && written != size {
		// Cancelling before Close aborts the upload.
		cancel()
		_ = w.Close()
		return 0, fmt.Errorf("blob size mismatch: expected %d, got %d", size, written)
	}
	if err := w.Close(); err != nil {
		return 0, fmt.Errorf("gcs close failed for %s: %w", key, err)
	}

	s.log.Debug().
		Str(zerowrap.FieldLayer, "adapter").
		Str(zerowrap.FieldAdapter, "gcs").
		Str("key", key).
		Int64(zerowrap.FieldSize, written).
		Msg("blob stored")

	return written, nil
}

// GetBlob streams the object stored under key.
func (s *Store) GetBlob(ctx context.Context, key string) (io.ReadCloser, error) {
	reader, err := s.object(key).NewReader(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotExist) {
			return nil, fmt.Errorf("%w: %s", domain.ErrBlobNotFound, key)
		}
		return nil, fmt.Errorf("gcs get failed for %s: %w", key, err)
	}
	return reader, nil
}

// DeleteBlob removes the object stored under key.
func (s *Store) DeleteBlob(ctx context.Context, key string) error {
	err := s.object(key).Delete(ctx)
	if err != nil && !errors.Is(err, storage.ErrObjectNotExist) {
		return fmt.Errorf("gcs delete failed for %s: %w", key, err)
	}
	return nil
}

// BlobExists checks whether an object exists under key.
func (s *Store) BlobExists(ctx context.Context, key string) (bool, error) {
	_, err := s.object(key).Attrs(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("gcs attrs error for %s: %w", key, err)
	}
	return true, nil
}
