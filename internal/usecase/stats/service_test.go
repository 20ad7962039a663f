package stats

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	inmocks "github.com/bnema/pkgvault/internal/boundaries/in/mocks"
	outmocks "github.com/bnema/pkgvault/internal/boundaries/out/mocks"
	"github.com/bnema/pkgvault/internal/domain"
	"github.com/bnema/pkgvault/internal/testutils"
	"github.com/bnema/pkgvault/internal/usecase/application"
	"github.com/bnema/pkgvault/internal/usecase/release"
)

var (
	packageKind   = domain.PackageKind()
	extensionKind = domain.ExtensionKind(nil, nil)
)

type fixture struct {
	svc      *Service
	b        *testutils.Backends
	releases *release.Service
	app      *domain.Node
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	b := testutils.NewBackends(t)
	apps := application.NewService(b.Store, b.Blobs, b.Locker, application.Config{})
	app, err := apps.CreateApplication(testutils.TestContext(t), domain.CreateApplicationRequest{Name: "App"})
	require.NoError(t, err)
	releases := release.NewService(b.Store, b.Blobs, b.Locker)
	return &fixture{
		svc:      NewService(b.Store, releases, packageKind, extensionKind),
		b:        b,
		releases: releases,
		app:      app,
	}
}

func (f *fixture) item(t *testing.T, parentID string, kind domain.NodeKind, meta domain.Metadata) *domain.Node {
	t.Helper()
	n, err := f.b.Store.CreateItem(testutils.TestContext(t), parentID, domain.ItemSpec{Kind: kind, Name: string(kind), Meta: meta})
	require.NoError(t, err)
	return n
}

func TestService_RecordDownload_StablePackage(t *testing.T) {
	f := newFixture(t)
	ctx := testutils.TestContext(t)

	rel, err := f.releases.CreateRelease(ctx, domain.CreateReleaseRequest{ApplicationID: f.app.ID, Name: "Release", Revision: "r1"})
	require.NoError(t, err)
	pkg := f.item(t, rel.ID, domain.NodePackage, domain.Metadata{"os": "win", "arch": "i386", "revision": "r1"})

	require.NoError(t, f.svc.RecordDownload(ctx, pkg))
	require.NoError(t, f.svc.RecordDownload(ctx, pkg))

	loaded, err := f.b.Store.LoadNode(ctx, rel.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), domain.StatsCount(loaded.Meta, "downloadStats", "applications", "win", "i386"))

	doc, err := f.svc.GetStats(ctx, f.app.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), domain.StatsCount(doc, "r1", "applications", "win", "i386"))
}

func TestService_RecordDownload_DraftExtensionSurvivesDeletion(t *testing.T) {
	f := newFixture(t)
	ctx := testutils.TestContext(t)

	rev, err := f.releases.ResolveReleaseContainer(ctx, f.app, "0000")
	require.NoError(t, err)
	sub, err := f.releases.EnsureSubContainer(ctx, rev, domain.ExtensionsFolderName, domain.ExtensionsDescription)
	require.NoError(t, err)
	ext := f.item(t, sub.ID, domain.NodeExtension, domain.Metadata{
		"baseName": "SlicerFoo", "os": "linux", "arch": "amd64", "app_revision": "0000", "revision": "abc",
	})

	for i := 0; i < 3; i++ {
		require.NoError(t, f.svc.RecordDownload(ctx, ext))
	}

	doc, err := f.svc.GetStats(ctx, f.app.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), domain.StatsCount(doc, "0000", "extensions", "SlicerFoo", "linux", "amd64"))

	_, err = f.b.Store.DeleteNode(ctx, ext.ID)
	require.NoError(t, err)
	_, err = f.releases.DeleteRelease(ctx, f.app.ID, "0000")
	require.NoError(t, err)

	doc, err = f.svc.GetStats(ctx, f.app.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), domain.StatsCount(doc, "0000", "extensions", "SlicerFoo", "linux", "amd64"))
}

func TestService_GetStats_MergesReleases(t *testing.T) {
	f := newFixture(t)
	ctx := testutils.TestContext(t)

	rel, err := f.releases.CreateRelease(ctx, domain.CreateReleaseRequest{ApplicationID: f.app.ID, Name: "Release", Revision: "r1"})
	require.NoError(t, err)
	rev, err := f.releases.ResolveReleaseContainer(ctx, f.app, "r2")
	require.NoError(t, err)

	stablePkg := f.item(t, rel.ID, domain.NodePackage, domain.Metadata{"os": "linux", "arch": "amd64", "revision": "r1"})
	draftPkg := f.item(t, rev.ID, domain.NodePackage, domain.Metadata{"os": "linux", "arch": "amd64", "revision": "r2"})
	draftMac := f.item(t, rev.ID, domain.NodePackage, domain.Metadata{"os": "macosx", "arch": "amd64", "revision": "r2"})

	require.NoError(t, f.svc.RecordDownload(ctx, stablePkg))
	require.NoError(t, f.svc.RecordDownload(ctx, draftPkg))
	require.NoError(t, f.svc.RecordDownload(ctx, draftPkg))
	require.NoError(t, f.svc.RecordDownload(ctx, draftMac))

	doc, err := f.svc.GetStats(ctx, f.app.ID)
	require.NoError(t, err)

	assert.Equal(t, int64(1), domain.StatsCount(doc, "r1", "applications", "linux", "amd64"))
	assert.Equal(t, int64(2), domain.StatsCount(doc, "r2", "applications", "linux", "amd64"))
	assert.Equal(t, int64(1), domain.StatsCount(doc, "r2", "applications", "macosx", "amd64"))
}

func TestService_RecordDownload_Concurrent(t *testing.T) {
	f := newFixture(t)
	ctx := testutils.TestContext(t)

	rev, err := f.releases.ResolveReleaseContainer(ctx, f.app, "r3")
	require.NoError(t, err)
	pkg := f.item(t, rev.ID, domain.NodePackage, domain.Metadata{"os": "win", "arch": "amd64", "revision": "r3"})

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, f.svc.RecordDownload(ctx, pkg))
		}()
	}
	wg.Wait()

	doc, err := f.svc.GetStats(ctx, f.app.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(10), domain.StatsCount(doc, "r3", "applications", "win", "amd64"))
}

func TestService_GetStats_Empty(t *testing.T) {
	f := newFixture(t)

	doc, err := f.svc.GetStats(testutils.TestContext(t), f.app.ID)

	require.NoError(t, err)
	assert.Empty(t, doc)
}

func TestService_RecordDownload_NotAnArtifact(t *testing.T) {
	store := outmocks.NewMockTreeStore(t)
	releases := inmocks.NewMockReleaseService(t)
	svc := NewService(store, releases, packageKind)

	err := svc.RecordDownload(testutils.TestContext(t), &domain.Node{ID: "x", Kind: domain.NodeFolder})

	assert.True(t, errors.Is(err, domain.ErrValidation))
}

func TestService_RecordDownload_IncrementsOwningRelease(t *testing.T) {
	store := outmocks.NewMockTreeStore(t)
	releases := inmocks.NewMockReleaseService(t)
	svc := NewService(store, releases, packageKind, extensionKind)
	ctx := testutils.TestContext(t)

	item := &domain.Node{ID: "ext-1", Kind: domain.NodeExtension, Meta: domain.Metadata{
		"baseName": "Foo", "os": "win", "arch": "amd64", "app_revision": "42",
	}}
	draft := &domain.Node{ID: "draft-1", Name: domain.DraftReleaseName}
	releases.EXPECT().OwningRelease(mock.Anything, item).Return(&domain.ReleaseRef{
		Release:  draft,
		Revision: &domain.Node{ID: "rev-1"},
	}, nil)
	store.EXPECT().IncrementMetadataField(mock.Anything, "draft-1",
		[]string{"downloadStats", "42", "extensions", "Foo", "win", "amd64"}, int64(1)).
		Return(draft, nil)

	require.NoError(t, svc.RecordDownload(ctx, item))
}
