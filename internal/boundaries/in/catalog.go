package in

import (
	"context"

	"github.com/bnema/pkgvault/internal/domain"
)

// ApplicationService defines the contract for application registration.
type ApplicationService interface {
	CreateApplication(ctx context.Context, req domain.CreateApplicationRequest) (*domain.Node, error)
	GetApplication(ctx context.Context, id string) (*domain.Node, error)
	ListApplications(ctx context.Context, q domain.ApplicationQuery) ([]*domain.Node, error)
	DeleteApplication(ctx context.Context, id string) (*domain.Node, error)
}

// ReleaseService defines the contract for release resolution and lifecycle.
type ReleaseService interface {
	// ResolveReleaseContainer returns the stable release recording revision,
	// or the draft revision container for it, creating the latter if needed.
	ResolveReleaseContainer(ctx context.Context, app *domain.Node, revision string) (*domain.Node, error)

	// EnsureSubContainer finds or creates the named folder below parent.
	EnsureSubContainer(ctx context.Context, parent *domain.Node, name, description string) (*domain.Node, error)

	// OwningRelease walks the ancestors of node up to its release.
	OwningRelease(ctx context.Context, node *domain.Node) (*domain.ReleaseRef, error)

	CreateRelease(ctx context.Context, req domain.CreateReleaseRequest) (*domain.Node, error)
	GetReleases(ctx context.Context, appID string, page domain.Page) ([]*domain.Node, error)
	GetRelease(ctx context.Context, appID, idOrName string) (*domain.Node, error)
	GetDraftRevisions(ctx context.Context, appID, revision string, page domain.Page) ([]*domain.Node, error)
	DeleteRelease(ctx context.Context, appID, idOrName string) (*domain.Node, error)
}

// ArtifactService defines the contract for package and extension artifacts.
type ArtifactService interface {
	// Upsert creates the artifact or updates the single existing one with the
	// same identity. The boolean reports whether it was created.
	Upsert(ctx context.Context, kind domain.ArtifactKind, req domain.UpsertArtifactRequest) (*domain.Artifact, bool, error)

	// AttachContent replaces the binary content of an existing artifact.
	AttachContent(ctx context.Context, kind domain.ArtifactKind, appID, id string, upload *domain.Upload) (*domain.Artifact, error)

	GetArtifact(ctx context.Context, kind domain.ArtifactKind, appID, id string) (*domain.Artifact, error)
	ListArtifacts(ctx context.Context, kind domain.ArtifactKind, appID string, filter domain.ArtifactFilter) ([]*domain.Artifact, error)
	DeleteArtifact(ctx context.Context, kind domain.ArtifactKind, appID, id string) (*domain.Artifact, error)

	// OpenContent opens the single file of an artifact for streaming.
	OpenContent(ctx context.Context, kind domain.ArtifactKind, appID, id string) (*domain.Content, error)

	// DownloadCompleted runs the post-download hooks for a fully served file.
	DownloadCompleted(ctx context.Context, fileID string) error
}

// StatsService defines the contract for download statistics.
type StatsService interface {
	// RecordDownload increments the counter owning item.
	RecordDownload(ctx context.Context, item *domain.Node) error

	// GetStats returns the merged download statistics of an application.
	GetStats(ctx context.Context, appID string) (domain.DownloadStats, error)
}
