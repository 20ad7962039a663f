package out

import "context"

// MetricsRecorder receives artifact traffic measurements.
type MetricsRecorder interface {
	ArtifactUploaded(ctx context.Context, kind string, created bool, bytes int64)
	ArtifactDownloaded(ctx context.Context, kind string, bytes int64)
	IntegrityError(ctx context.Context, kind, code string)
}
