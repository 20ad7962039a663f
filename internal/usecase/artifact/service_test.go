package artifact

import (
	"context"
	"errors"
	"io"
	"strings"
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
	"github.com/bnema/pkgvault/internal/usecase/stats"
)

var (
	packageKind   = domain.PackageKind()
	extensionKind = domain.ExtensionKind(nil, nil)
)

type fixture struct {
	svc      *Service
	b        *testutils.Backends
	apps     *application.Service
	releases *release.Service
	stats    *stats.Service
	metrics  *recordingMetrics
	app      *domain.Node
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	b := testutils.NewBackends(t)
	apps := application.NewService(b.Store, b.Blobs, b.Locker, application.Config{})
	app, err := apps.CreateApplication(testutils.TestContext(t), domain.CreateApplicationRequest{Name: "App"})
	require.NoError(t, err)

	releases := release.NewService(b.Store, b.Blobs, b.Locker)
	st := stats.NewService(b.Store, releases, packageKind, extensionKind)
	metrics := &recordingMetrics{}
	svc, err := NewService(b.Store, b.Blobs, b.Locker, releases, st, metrics, packageKind, extensionKind)
	require.NoError(t, err)

	return &fixture{svc: svc, b: b, apps: apps, releases: releases, stats: st, metrics: metrics, app: app}
}

func packageMeta(appID, os, revision string) domain.Metadata {
	return domain.Metadata{
		"app_id":          appID,
		"baseName":        "pkg",
		"os":              os,
		"arch":            "i386",
		"revision":        revision,
		"repository_type": "git",
		"repository_url":  "https://example.com/pkg.git",
	}
}

func extensionMeta(appID, appRevision string) domain.Metadata {
	return domain.Metadata{
		"app_id":          appID,
		"baseName":        "SlicerFoo",
		"os":              "linux",
		"arch":            "amd64",
		"revision":        "abc123",
		"app_revision":    appRevision,
		"repository_type": "git",
		"repository_url":  "https://example.com/foo.git",
		"description":     "Foo extension",
	}
}

func upload(name, body string) *domain.Upload {
	return &domain.Upload{Filename: name, Size: int64(len(body)), Body: strings.NewReader(body)}
}

func (f *fixture) upsert(t *testing.T, kind domain.ArtifactKind, meta domain.Metadata, content *domain.Upload) (*domain.Artifact, bool) {
	t.Helper()
	a, created, err := f.svc.Upsert(testutils.TestContext(t), kind, domain.UpsertArtifactRequest{
		ApplicationID: f.app.ID,
		Meta:          meta,
		Content:       content,
	})
	require.NoError(t, err)
	return a, created
}

func TestService_Upsert_EndToEndScenario(t *testing.T) {
	f := newFixture(t)
	ctx := testutils.TestContext(t)

	rel, err := f.releases.CreateRelease(ctx, domain.CreateReleaseRequest{ApplicationID: f.app.ID, Name: "Release", Revision: "r1"})
	require.NoError(t, err)

	stable, created := f.upsert(t, packageKind, packageMeta(f.app.ID, "win", "r1"), upload("pkg.exe", "v1"))
	assert.True(t, created)
	assert.Equal(t, rel.ID, stable.ParentID)
	assert.Equal(t, "pkg_win_i386_r1", stable.Name)
	assert.Equal(t, "Release", stable.Meta.String(domain.MetaRelease))

	draft, created := f.upsert(t, packageKind, packageMeta(f.app.ID, "win", "r2"), upload("pkg.exe", "v2"))
	assert.True(t, created)
	revisions, err := f.releases.GetDraftRevisions(ctx, f.app.ID, "r2", domain.Page{})
	require.NoError(t, err)
	require.Len(t, revisions, 1)
	assert.Equal(t, "r2", revisions[0].Name)
	assert.Equal(t, revisions[0].ID, draft.ParentID)
	assert.Equal(t, domain.DraftReleaseName, draft.Meta.String(domain.MetaRelease))

	all, err := f.svc.ListArtifacts(ctx, packageKind, f.app.ID, domain.ArtifactFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)
	for _, a := range all {
		assert.NotEmpty(t, a.Files, "listed artifacts carry their file")
	}
}

func TestService_Upsert_CreateVersusUpdate(t *testing.T) {
	f := newFixture(t)
	ctx := testutils.TestContext(t)

	meta := packageMeta(f.app.ID, "linux", "0000")
	first, created := f.upsert(t, packageKind, meta, upload("pkg.tar.gz", "one"))
	require.True(t, created)

	meta = packageMeta(f.app.ID, "linux", "0000")
	meta["description"] = "updated"
	second, created := f.upsert(t, packageKind, meta, nil)
	assert.False(t, created)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "updated", second.Meta.String("description"))
	assert.Len(t, second.Files, 1)

	third, created := f.upsert(t, packageKind, packageMeta(f.app.ID, "macosx", "0000"), upload("pkg.dmg", "mac"))
	assert.True(t, created)
	assert.NotEqual(t, first.ID, third.ID)

	all, err := f.svc.ListArtifacts(ctx, packageKind, f.app.ID, domain.ArtifactFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)
	assert.Equal(t, []bool{true, false, true}, f.metrics.created)
}

func TestService_Upsert_ReplacesContent(t *testing.T) {
	f := newFixture(t)
	ctx := testutils.TestContext(t)

	first, _ := f.upsert(t, packageKind, packageMeta(f.app.ID, "linux", "0001"), upload("upload.tar.gz", "old content"))
	require.Len(t, first.Files, 1)
	oldKey := first.Files[0].BlobKey
	assert.Equal(t, "pkg_linux_i386_0001.gz", first.Files[0].Name)

	second, created := f.upsert(t, packageKind, packageMeta(f.app.ID, "linux", "0001"), upload("upload.tar.gz", "new content"))

	assert.False(t, created)
	require.Len(t, second.Files, 1, "the superseded file is removed")
	assert.Equal(t, "pkg_linux_i386_0001.gz", second.Files[0].Name)
	assert.Equal(t, int64(len("new content")), second.Files[0].Size)
	assert.Len(t, second.Files[0].SHA512, 128)

	exists, err := f.b.Blobs.BlobExists(ctx, oldKey)
	require.NoError(t, err)
	assert.False(t, exists)

	content, err := f.svc.OpenContent(ctx, packageKind, f.app.ID, second.ID)
	require.NoError(t, err)
	defer content.Body.Close()
	data, err := io.ReadAll(content.Body)
	require.NoError(t, err)
	assert.Equal(t, "new content", string(data))
}

func TestService_Upsert_Extension(t *testing.T) {
	f := newFixture(t)
	ctx := testutils.TestContext(t)

	ext, created := f.upsert(t, extensionKind, extensionMeta(f.app.ID, "0042"), upload("foo.zip", "zip"))

	require.True(t, created)
	assert.Equal(t, "0042_SlicerFoo_linux_amd64_abc123", ext.Name)
	assert.Equal(t, "Foo extension", ext.Description)
	parent, err := f.b.Store.LoadNode(ctx, ext.ParentID)
	require.NoError(t, err)
	assert.Equal(t, domain.ExtensionsFolderName, parent.Name)
	rev, err := f.b.Store.LoadNode(ctx, parent.ParentID)
	require.NoError(t, err)
	assert.Equal(t, "0042", rev.Name)

	meta := extensionMeta(f.app.ID, "0042")
	meta["revision"] = "def456"
	updated, created := f.upsert(t, extensionKind, meta, nil)
	assert.False(t, created, "identity ignores the extension revision")
	assert.Equal(t, ext.ID, updated.ID)
	assert.Equal(t, "0042_SlicerFoo_linux_amd64_def456", updated.Name)
}

func TestService_Upsert_ValidationErrors(t *testing.T) {
	f := newFixture(t)
	ctx := testutils.TestContext(t)

	extra := packageMeta(f.app.ID, "linux", "1")
	extra["unexpected"] = "x"
	wrongApp := packageMeta("other-app", "linux", "1")
	badType := packageMeta(f.app.ID, "linux", "1")
	badType["os"] = 12
	missing := packageMeta(f.app.ID, "linux", "1")
	delete(missing, "baseName")

	tests := []struct {
		name string
		meta domain.Metadata
	}{
		{name: "extra field", meta: extra},
		{name: "app id mismatch", meta: wrongApp},
		{name: "wrong type", meta: badType},
		{name: "missing required field", meta: missing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := f.svc.Upsert(ctx, packageKind, domain.UpsertArtifactRequest{ApplicationID: f.app.ID, Meta: tt.meta})
			assert.True(t, errors.Is(err, domain.ErrValidation), "got %v", err)
		})
	}

	all, err := f.svc.ListArtifacts(ctx, packageKind, f.app.ID, domain.ArtifactFilter{})
	require.NoError(t, err)
	assert.Empty(t, all, "nothing is written on rejected input")
}

func TestService_Upsert_MissingTemplateField(t *testing.T) {
	f := newFixture(t)
	ctx := testutils.TestContext(t)

	app, err := f.apps.CreateApplication(ctx, domain.CreateApplicationRequest{Name: "Templated", ApplicationTemplate: "{baseName}_{version}"})
	require.NoError(t, err)

	_, _, err = f.svc.Upsert(ctx, packageKind, domain.UpsertArtifactRequest{
		ApplicationID: app.ID,
		Meta:          packageMeta(app.ID, "linux", "1"),
	})

	var missing *domain.MissingFieldError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, "version", missing.Field)
}

func TestService_Upsert_CorruptArtifact(t *testing.T) {
	f := newFixture(t)
	ctx := testutils.TestContext(t)

	first, _ := f.upsert(t, packageKind, packageMeta(f.app.ID, "linux", "0003"), nil)
	require.Empty(t, first.Files)

	_, _, err := f.svc.Upsert(ctx, packageKind, domain.UpsertArtifactRequest{
		ApplicationID: f.app.ID,
		Meta:          packageMeta(f.app.ID, "linux", "0003"),
		Content:       upload("pkg.tgz", "x"),
	})

	var corrupt *domain.CorruptArtifactError
	require.True(t, errors.As(err, &corrupt))
	assert.Equal(t, first.ID, corrupt.ArtifactID)
	assert.Equal(t, []string{CodeCorruptArtifact}, f.metrics.integrity)

	_, err = f.svc.OpenContent(ctx, packageKind, f.app.ID, first.ID)
	assert.True(t, errors.Is(err, domain.ErrCorruptArtifact))
}

func TestService_Upsert_RevisionsDifferingInCase(t *testing.T) {
	f := newFixture(t)

	lower, created := f.upsert(t, packageKind, packageMeta(f.app.ID, "linux", "abc"), upload("pkg.tgz", "a"))
	require.True(t, created)
	upper, created := f.upsert(t, packageKind, packageMeta(f.app.ID, "linux", "ABC"), upload("pkg.tgz", "b"))
	require.True(t, created)

	assert.NotEqual(t, lower.ID, upper.ID)
	assert.NotEqual(t, lower.ParentID, upper.ParentID)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("client hung up") }

func TestService_Upsert_FailedContentDiscardsNewArtifact(t *testing.T) {
	f := newFixture(t)
	ctx := testutils.TestContext(t)
	meta := packageMeta(f.app.ID, "linux", "0004")

	_, _, err := f.svc.Upsert(ctx, packageKind, domain.UpsertArtifactRequest{
		ApplicationID: f.app.ID,
		Meta:          meta,
		Content:       &domain.Upload{Filename: "pkg.tgz", Size: -1, Body: failingReader{}},
	})
	require.Error(t, err)

	left, err := f.svc.ListArtifacts(ctx, packageKind, f.app.ID, domain.ArtifactFilter{})
	require.NoError(t, err)
	assert.Empty(t, left)

	retried, created := f.upsert(t, packageKind, packageMeta(f.app.ID, "linux", "0004"), upload("pkg.tgz", "payload"))
	assert.True(t, created)
	require.Len(t, retried.Files, 1)
	assert.Equal(t, int64(len("payload")), retried.Files[0].Size)
}

func TestService_Upsert_FailedContentKeepsExistingArtifact(t *testing.T) {
	f := newFixture(t)
	ctx := testutils.TestContext(t)

	first, _ := f.upsert(t, packageKind, packageMeta(f.app.ID, "linux", "0005"), upload("pkg.tgz", "v1"))

	_, _, err := f.svc.Upsert(ctx, packageKind, domain.UpsertArtifactRequest{
		ApplicationID: f.app.ID,
		Meta:          packageMeta(f.app.ID, "linux", "0005"),
		Content:       &domain.Upload{Filename: "pkg.tgz", Size: -1, Body: failingReader{}},
	})
	require.Error(t, err)

	got, err := f.svc.GetArtifact(ctx, packageKind, f.app.ID, first.ID)
	require.NoError(t, err)
	require.Len(t, got.Files, 1)
	assert.Equal(t, first.Files[0].ID, got.Files[0].ID)
}

func TestService_Upsert_DuplicateArtifact(t *testing.T) {
	store := outmocks.NewMockTreeStore(t)
	blobs := outmocks.NewMockBlobStorage(t)
	locker := outmocks.NewMockLocker(t)
	releases := inmocks.NewMockReleaseService(t)
	statsSvc := inmocks.NewMockStatsService(t)
	metrics := &recordingMetrics{}
	svc, err := NewService(store, blobs, locker, releases, statsSvc, metrics, packageKind)
	require.NoError(t, err)
	ctx := testutils.TestContext(t)

	app := &domain.Node{ID: "app-1", Kind: domain.NodeFolder, Meta: domain.Metadata{
		domain.MetaApplicationTemplate: domain.DefaultApplicationTemplate,
		domain.MetaExtensionTemplate:   domain.DefaultExtensionTemplate,
	}}
	rev := &domain.Node{ID: "rev-1", ParentID: "draft-1", Name: "r1"}

	store.EXPECT().LoadNode(mock.Anything, "app-1").Return(app, nil)
	releases.EXPECT().ResolveReleaseContainer(mock.Anything, app, "r1").Return(rev, nil)
	releases.EXPECT().OwningRelease(mock.Anything, rev).Return(&domain.ReleaseRef{
		Application: app,
		Release:     &domain.Node{ID: "draft-1", Name: domain.DraftReleaseName},
		Revision:    rev,
	}, nil)
	locker.EXPECT().Lock(mock.Anything, mock.AnythingOfType("string")).Return(func() {}, nil)
	store.EXPECT().FindItems(mock.Anything, mock.MatchedBy(func(q domain.ItemQuery) bool {
		return q.ParentID == "rev-1" && q.MetaEquals["os"] == "linux" && q.MetaEquals["revision"] == "r1"
	})).Return([]*domain.Node{{ID: "a"}, {ID: "b"}}, nil)

	_, _, err = svc.Upsert(ctx, packageKind, domain.UpsertArtifactRequest{
		ApplicationID: "app-1",
		Meta:          packageMeta("app-1", "linux", "r1"),
	})

	var dup *domain.DuplicateArtifactError
	require.True(t, errors.As(err, &dup))
	assert.Equal(t, 2, dup.Count)
	assert.Equal(t, "rev-1", dup.ContainerID)
	assert.Equal(t, []string{CodeDuplicateArtifact}, metrics.integrity)
}

func TestService_Upsert_StorageConflict(t *testing.T) {
	store := outmocks.NewMockTreeStore(t)
	blobs := outmocks.NewMockBlobStorage(t)
	locker := outmocks.NewMockLocker(t)
	releases := inmocks.NewMockReleaseService(t)
	statsSvc := inmocks.NewMockStatsService(t)
	svc, err := NewService(store, blobs, locker, releases, statsSvc, nil, packageKind)
	require.NoError(t, err)
	ctx := testutils.TestContext(t)

	app := &domain.Node{ID: "app-1", Kind: domain.NodeFolder, Meta: domain.Metadata{
		domain.MetaApplicationTemplate: domain.DefaultApplicationTemplate,
		domain.MetaExtensionTemplate:   domain.DefaultExtensionTemplate,
	}}
	rel := &domain.Node{ID: "rel-1", ParentID: "app-1", Name: "Release"}

	store.EXPECT().LoadNode(mock.Anything, "app-1").Return(app, nil)
	releases.EXPECT().ResolveReleaseContainer(mock.Anything, app, "r1").Return(rel, nil)
	releases.EXPECT().OwningRelease(mock.Anything, rel).Return(&domain.ReleaseRef{Application: app, Release: rel}, nil)
	locker.EXPECT().Lock(mock.Anything, mock.AnythingOfType("string")).Return(func() {}, nil)
	store.EXPECT().FindItems(mock.Anything, mock.Anything).Return(nil, nil)
	store.EXPECT().CreateItem(mock.Anything, "rel-1", mock.MatchedBy(func(spec domain.ItemSpec) bool {
		return spec.UniqueKey == "app-1|package|pkg_linux_i386_r1|linux|i386|r1" && spec.Meta.String("release") == "Release"
	})).Return(nil, domain.ErrConflict)

	_, _, err = svc.Upsert(ctx, packageKind, domain.UpsertArtifactRequest{
		ApplicationID: "app-1",
		Meta:          packageMeta("app-1", "linux", "r1"),
	})

	assert.True(t, errors.Is(err, domain.ErrConflict))
}

func TestService_ListArtifacts_Filters(t *testing.T) {
	f := newFixture(t)
	ctx := testutils.TestContext(t)

	_, err := f.releases.CreateRelease(ctx, domain.CreateReleaseRequest{ApplicationID: f.app.ID, Name: "Release", Revision: "r1"})
	require.NoError(t, err)
	linux, _ := f.upsert(t, packageKind, packageMeta(f.app.ID, "linux", "r1"), upload("a", "a"))
	f.upsert(t, packageKind, packageMeta(f.app.ID, "win", "r1"), upload("b", "b"))
	f.upsert(t, packageKind, packageMeta(f.app.ID, "linux", "r2"), upload("c", "c"))

	tests := []struct {
		name   string
		filter domain.ArtifactFilter
		want   int
	}{
		{name: "no filter", filter: domain.ArtifactFilter{}, want: 3},
		{name: "os", filter: domain.ArtifactFilter{OS: "linux"}, want: 2},
		{name: "os and revision", filter: domain.ArtifactFilter{OS: "linux", Revision: "r2"}, want: 1},
		{name: "arch mismatch", filter: domain.ArtifactFilter{Arch: "amd64"}, want: 0},
		{name: "base name", filter: domain.ArtifactFilter{BaseName: "pkg"}, want: 3},
		{name: "exact name", filter: domain.ArtifactFilter{Name: "PKG_WIN_I386_R1"}, want: 1},
		{name: "stable release", filter: domain.ArtifactFilter{ReleaseIDOrName: "release"}, want: 2},
		{name: "draft release", filter: domain.ArtifactFilter{ReleaseIDOrName: domain.DraftReleaseName}, want: 1},
		{name: "draft revision", filter: domain.ArtifactFilter{ReleaseIDOrName: domain.DraftReleaseName, Revision: "r9"}, want: 0},
		{name: "by id", filter: domain.ArtifactFilter{ID: linux.ID}, want: 1},
		{name: "unknown id", filter: domain.ArtifactFilter{ID: "missing"}, want: 0},
		{name: "limit", filter: domain.ArtifactFilter{Page: domain.Page{Limit: 2}}, want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := f.svc.ListArtifacts(ctx, packageKind, f.app.ID, tt.filter)
			require.NoError(t, err)
			assert.Len(t, got, tt.want)
		})
	}

	_, err = f.svc.ListArtifacts(ctx, packageKind, f.app.ID, domain.ArtifactFilter{ReleaseIDOrName: "unknown"})
	assert.True(t, errors.Is(err, domain.ErrReleaseNotFound))
}

func TestService_ListArtifacts_DraftGlobalLimit(t *testing.T) {
	f := newFixture(t)
	ctx := testutils.TestContext(t)

	for _, rev := range []string{"r1", "r2", "r3"} {
		for _, os := range []string{"linux", "win"} {
			meta := extensionMeta(f.app.ID, rev)
			meta["os"] = os
			f.upsert(t, extensionKind, meta, upload("e.zip", rev+os))
		}
	}

	all, err := f.svc.ListArtifacts(ctx, extensionKind, f.app.ID, domain.ArtifactFilter{ReleaseIDOrName: domain.DraftReleaseName})
	require.NoError(t, err)
	assert.Len(t, all, 6)

	limited, err := f.svc.ListArtifacts(ctx, extensionKind, f.app.ID, domain.ArtifactFilter{
		ReleaseIDOrName: domain.DraftReleaseName,
		Page:            domain.Page{Limit: 3},
	})
	require.NoError(t, err)
	require.Len(t, limited, 3)
	assert.Equal(t, "r3", limited[0].Meta.String("app_revision"), "newest revision container first")
	assert.Equal(t, "r3", limited[1].Meta.String("app_revision"))
	assert.Equal(t, "r2", limited[2].Meta.String("app_revision"))

	offset, err := f.svc.ListArtifacts(ctx, extensionKind, f.app.ID, domain.ArtifactFilter{
		ReleaseIDOrName: domain.DraftReleaseName,
		Page:            domain.Page{Limit: 2, Offset: 3},
	})
	require.NoError(t, err)
	require.Len(t, offset, 2)
	assert.Equal(t, "r2", offset[0].Meta.String("app_revision"))
	assert.Equal(t, "r1", offset[1].Meta.String("app_revision"))

	oneRevision, err := f.svc.ListArtifacts(ctx, extensionKind, f.app.ID, domain.ArtifactFilter{
		ReleaseIDOrName: domain.DraftReleaseName,
		AppRevision:     "r1",
	})
	require.NoError(t, err)
	assert.Len(t, oneRevision, 2)
}

func TestService_DeleteArtifact_KeepsCounters(t *testing.T) {
	f := newFixture(t)
	ctx := testutils.TestContext(t)

	ext, _ := f.upsert(t, extensionKind, extensionMeta(f.app.ID, "0000"), upload("foo.zip", "zip"))
	for i := 0; i < 3; i++ {
		content, err := f.svc.OpenContent(ctx, extensionKind, f.app.ID, ext.ID)
		require.NoError(t, err)
		_, err = io.Copy(io.Discard, content.Body)
		require.NoError(t, err)
		require.NoError(t, content.Body.Close())
		require.NoError(t, f.svc.DownloadCompleted(ctx, content.File.ID))
	}
	assert.Equal(t, int64(9), f.metrics.downloadedBytes)

	deleted, err := f.svc.DeleteArtifact(ctx, extensionKind, f.app.ID, ext.ID)
	require.NoError(t, err)
	assert.Equal(t, ext.ID, deleted.ID)
	exists, err := f.b.Blobs.BlobExists(ctx, ext.Files[0].BlobKey)
	require.NoError(t, err)
	assert.False(t, exists)

	_, err = f.releases.DeleteRelease(ctx, f.app.ID, "0000")
	require.NoError(t, err)

	doc, err := f.stats.GetStats(ctx, f.app.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), domain.StatsCount(doc, "0000", "extensions", "SlicerFoo", "linux", "amd64"))

	_, err = f.svc.GetArtifact(ctx, extensionKind, f.app.ID, ext.ID)
	assert.True(t, errors.Is(err, domain.ErrArtifactNotFound))
}

func TestService_GetArtifact_WrongKindOrApplication(t *testing.T) {
	f := newFixture(t)
	ctx := testutils.TestContext(t)

	pkg, _ := f.upsert(t, packageKind, packageMeta(f.app.ID, "linux", "1"), upload("p", "p"))
	other, err := f.apps.CreateApplication(ctx, domain.CreateApplicationRequest{Name: "Other"})
	require.NoError(t, err)

	_, err = f.svc.GetArtifact(ctx, extensionKind, f.app.ID, pkg.ID)
	assert.True(t, errors.Is(err, domain.ErrArtifactNotFound))

	_, err = f.svc.GetArtifact(ctx, packageKind, other.ID, pkg.ID)
	assert.True(t, errors.Is(err, domain.ErrArtifactNotFound))

	got, err := f.svc.GetArtifact(ctx, packageKind, f.app.ID, pkg.ID)
	require.NoError(t, err)
	assert.Equal(t, pkg.ID, got.ID)
}

func TestService_AttachContent(t *testing.T) {
	f := newFixture(t)
	ctx := testutils.TestContext(t)

	pkg, _ := f.upsert(t, packageKind, packageMeta(f.app.ID, "linux", "1"), nil)

	updated, err := f.svc.AttachContent(ctx, packageKind, f.app.ID, pkg.ID, upload("build.tgz", "payload"))
	require.NoError(t, err)
	require.Len(t, updated.Files, 1)
	assert.Equal(t, "pkg_linux_i386_1.tgz", updated.Files[0].Name)

	again, err := f.svc.AttachContent(ctx, packageKind, f.app.ID, pkg.ID, upload("build.tgz", "payload 2"))
	require.NoError(t, err)
	require.Len(t, again.Files, 1)
	assert.NotEqual(t, updated.Files[0].ID, again.Files[0].ID)

	_, err = f.svc.AttachContent(ctx, packageKind, f.app.ID, pkg.ID, nil)
	assert.True(t, errors.Is(err, domain.ErrValidation))
}

func TestService_OpenContent_MissingBlob(t *testing.T) {
	f := newFixture(t)
	ctx := testutils.TestContext(t)

	pkg, _ := f.upsert(t, packageKind, packageMeta(f.app.ID, "linux", "1"), upload("p", "p"))
	require.NoError(t, f.b.Blobs.DeleteBlob(ctx, pkg.Files[0].BlobKey))

	_, err := f.svc.OpenContent(ctx, packageKind, f.app.ID, pkg.ID)

	assert.True(t, errors.Is(err, domain.ErrCorruptArtifact))
	assert.True(t, errors.Is(err, domain.ErrBlobNotFound))
}

type recordingMetrics struct {
	created         []bool
	downloadedBytes int64
	integrity       []string
}

func (m *recordingMetrics) ArtifactUploaded(_ context.Context, _ string, created bool, _ int64) {
	m.created = append(m.created, created)
}

func (m *recordingMetrics) ArtifactDownloaded(_ context.Context, _ string, bytes int64) {
	m.downloadedBytes += bytes
}

func (m *recordingMetrics) IntegrityError(_ context.Context, _ string, code string) {
	m.integrity = append(m.integrity, code)
}
