// Package s3blob stores artifact content in an S3 compatible bucket.
package s3blob

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/bnema/zerowrap"

	"github.com/bnema/pkgvault/internal/boundaries/out"
	"github.com/bnema/pkgvault/internal/domain"
)

// Ensure Store implements out.BlobStorage.
var _ out.BlobStorage = (*Store)(nil)

// Config holds the bucket settings.
type Config struct {
	Bucket   string `mapstructure:"bucket"`
	Region   string `mapstructure:"region"`
	Endpoint string `mapstructure:"endpoint"` // MinIO, LocalStack, ...
	Prefix   string `mapstructure:"prefix"`
}

// Store implements out.BlobStorage on top of S3.
type Store struct {
	client *s3.Client
	bucket string
	prefix string
	log    zerowrap.Logger
}

// NewStore loads the default AWS configuration and creates the S3 client.
func NewStore(ctx context.Context, cfg Config, log zerowrap.Logger) (*Store, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("s3 bucket is required")
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(cfg.Region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	log.Info().
		Str(zerowrap.FieldLayer, "adapter").
		Str(zerowrap.FieldAdapter, "s3").
		Str("bucket", cfg.Bucket).
		Str("region", cfg.Region).
		Msg("blob storage initialized")

	return &Store{client: client, bucket: cfg.Bucket, prefix: cfg.Prefix, log: log}, nil
}

func (s *Store) objectKey(key string) string {
	return s.prefix + key
}

// PutBlob uploads content under key. Non-seekable bodies are spooled to a
// temporary file first since request signing needs to rewind the payload.
func (s *Store) PutBlob(ctx context.Context, key string, data io.Reader, size int64) (int64, error) {
	body, written, cleanup, err := seekable(data)
	if err != nil {
		return 0, err
	}
	defer cleanup()

	if size > 0 && written != size {
		return 0, fmt.Errorf("blob size mismatch: expected %d, got %d", size, written)
	}

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(s.objectKey(key)),
		Body:          body,
		ContentLength: aws.Int64(written),
		ContentType:   aws.String("application/octet-stream"),
	})
	if err != nil {
		return 0, fmt.Errorf("s3 put failed for %s: %w", key, err)
	}

	s.log.Debug().
		Str(zerowrap.FieldLayer, "adapter").
		Str(zerowrap.FieldAdapter, "s3").
		Str("key", key).
		Int64(zerowrap.FieldSize, written).
		Msg("blob stored")

	return written, nil
}

// GetBlob streams the object stored under key.
func (s *Store) GetBlob(ctx context.Context, key string) (io.ReadCloser, error) {
	result, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.objectKey(key)),
	})
	if err != nil {
		if isNotFound(err) {
			return nil, fmt.Errorf("%w: %s", domain.ErrBlobNotFound, key)
		}
		return nil, fmt.Errorf("s3 get failed for %s: %w", key, err)
	}
	return result.Body, nil
}

// DeleteBlob removes the object stored under key.
func (s *Store) DeleteBlob(ctx context.Context, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.objectKey(key)),
	})
	if err != nil && !isNotFound(err) {
		return fmt.Errorf("s3 delete failed for %s: %w", key, err)
	}
	return nil
}

// BlobExists checks whether an object exists under key.
func (s *Store) BlobExists(ctx context.Context, key string) (bool, error) {
	_, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.objectKey(key)),
	})
	if err != nil {
		if isNotFound(err) {
			return false, nil
		}
		return false, fmt.Errorf("s3 head failed for %s: %w", key, err)
	}
	return true, nil
}

func isNotFound(err error) bool {
	var re *awshttp.ResponseError
	return errors.As(err, &re) && re.HTTPStatusCode() == http.StatusNotFound
}

// seekable returns a rewindable body for data together with its length.
func seekable(data io.Reader) (io.ReadSeeker, int64, func(), error) {
	if rs, ok := data.(io.ReadSeeker); ok {
		n, err := rs.Seek(0, io.SeekEnd)
		if err != nil {
			return nil, 0, nil, fmt.Errorf("failed to measure blob: %w", err)
		}
		if _, err := rs.Seek(0, io.SeekStart); err != nil {
			return nil, 0, nil, fmt.Errorf("failed to rewind blob: %w", err)
		}
		return rs, n, func() {}, nil
	}

	tmp, err := os.CreateTemp("", "pkgvault-s3-*")
	if err != nil {
		return nil, 0, nil, fmt.Errorf("failed to create spool file: %w", err)
	}
	cleanup := func() {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
	}
	n, err := io.Copy(tmp, data)
	if err != nil {
		cleanup()
		return nil, 0, nil, fmt.Errorf("failed to spool blob: %w", err)
	}
	if _, err := tmp.Seek(0, io.SeekStart); err != nil {
		cleanup()
		return nil, 0, nil, fmt.Errorf("failed to rewind spool file: %w", err)
	}
	return tmp, n, cleanup, nil
}
