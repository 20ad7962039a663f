package out

import (
	"context"
	"io"
)

// BlobStorage defines the contract for artifact content storage.
// Keys are opaque identifiers allocated by the caller.
type BlobStorage interface {
	// PutBlob stores data under key and returns the number of bytes written.
	// A positive size is verified against the bytes read.
	PutBlob(ctx context.Context, key string, data io.Reader, size int64) (int64, error)

	// GetBlob opens the content stored under key.
	GetBlob(ctx context.Context, key string) (io.ReadCloser, error)

	// DeleteBlob removes the content stored under key. Missing keys are not an error.
	DeleteBlob(ctx context.Context, key string) error

	// BlobExists checks if content is stored under key.
	BlobExists(ctx context.Context, key string) (bool, error)
}
