package telemetry

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/bnema/pkgvault/internal/boundaries/out"
)

// Ensure Metrics implements out.MetricsRecorder.
var _ out.MetricsRecorder = (*Metrics)(nil)

// Metrics holds pkgvault OTel metrics instruments.
type Metrics struct {
	// Uploads
	UploadTotal metric.Int64Counter
	UploadBytes metric.Int64Counter

	// Downloads
	DownloadTotal metric.Int64Counter
	DownloadBytes metric.Int64Counter

	// Duplicate and corrupt artifacts
	IntegrityErrors metric.Int64Counter
}

// NewMetrics creates and registers all pkgvault metric instruments.
// All fields are always initialized; OTel hands out noop instruments when no
// MeterProvider is set.
func NewMetrics() (*Metrics, error) {
	return newMetrics(otel.Meter("pkgvault"))
}

func newMetrics(meter metric.Meter) (*Metrics, error) {
	m := &Metrics{}
	var err error

	if m.UploadTotal, err = meter.Int64Counter("pkgvault.artifact.upload.total",
		metric.WithDescription("Total artifact uploads")); err != nil {
		return nil, err
	}
	if m.UploadBytes, err = meter.Int64Counter("pkgvault.artifact.upload.bytes",
		metric.WithDescription("Total bytes uploaded"),
		metric.WithUnit("By")); err != nil {
		return nil, err
	}
	if m.DownloadTotal, err = meter.Int64Counter("pkgvault.artifact.download.total",
		metric.WithDescription("Total completed artifact downloads")); err != nil {
		return nil, err
	}
	if m.DownloadBytes, err = meter.Int64Counter("pkgvault.artifact.download.bytes",
		metric.WithDescription("Total bytes served"),
		metric.WithUnit("By")); err != nil {
		return nil, err
	}
	if m.IntegrityErrors, err = meter.Int64Counter("pkgvault.artifact.integrity_errors",
		metric.WithDescription("Duplicate or corrupt artifacts detected")); err != nil {
		return nil, err
	}

	return m, nil
}

// ArtifactUploaded records one upsert.
func (m *Metrics) ArtifactUploaded(ctx context.Context, kind string, created bool, bytes int64) {
	op := "update"
	if created {
		op = "create"
	}
	m.UploadTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("kind", kind),
		attribute.String("operation", op),
	))
	if bytes > 0 {
		m.UploadBytes.Add(ctx, bytes, metric.WithAttributes(attribute.String("kind", kind)))
	}
}

// ArtifactDownloaded records one completed download.
func (m *Metrics) ArtifactDownloaded(ctx context.Context, kind string, bytes int64) {
	m.DownloadTotal.Add(ctx, 1, metric.WithAttributes(attribute.String("kind", kind)))
	if bytes > 0 {
		m.DownloadBytes.Add(ctx, bytes, metric.WithAttributes(attribute.String("kind", kind)))
	}
}

// IntegrityError records a duplicate or corrupt artifact.
func (m *Metrics) IntegrityError(ctx context.Context, kind, code string) {
	m.IntegrityErrors.Add(ctx, 1, metric.WithAttributes(
		attribute.String("kind", kind),
		attribute.String("code", code),
	))
}
