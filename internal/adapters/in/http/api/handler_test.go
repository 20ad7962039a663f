package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bnema/zerowrap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/pkgvault/internal/adapters/dto"
	inmocks "github.com/bnema/pkgvault/internal/boundaries/in/mocks"
	"github.com/bnema/pkgvault/internal/domain"
)

type testServer struct {
	apps      *inmocks.MockApplicationService
	releases  *inmocks.MockReleaseService
	artifacts *inmocks.MockArtifactService
	stats     *inmocks.MockStatsService
	mux       *http.ServeMux
}

func newTestServer(t *testing.T, cfg Config) *testServer {
	t.Helper()
	s := &testServer{
		apps:      inmocks.NewMockApplicationService(t),
		releases:  inmocks.NewMockReleaseService(t),
		artifacts: inmocks.NewMockArtifactService(t),
		stats:     inmocks.NewMockStatsService(t),
		mux:       http.NewServeMux(),
	}
	h := NewHandler(s.apps, s.releases, s.artifacts, s.stats, cfg, zerowrap.Default(),
		domain.PackageKind(), domain.ExtensionKind(nil, nil))
	h.RegisterRoutes(s.mux)
	return s
}

func (s *testServer) do(req *http.Request) *httptest.ResponseRecorder {
	req = req.WithContext(zerowrap.WithCtx(req.Context(), zerowrap.Default()))
	rec := httptest.NewRecorder()
	s.mux.ServeHTTP(rec, req)
	return rec
}

func isKind(node domain.NodeKind) any {
	return mock.MatchedBy(func(k domain.ArtifactKind) bool { return k.Node == node })
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()
	var body dto.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body
}

func TestHandler_Health(t *testing.T) {
	s := newTestServer(t, Config{Version: "1.2.3"})

	rec := s.do(httptest.NewRequest("GET", "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"version":"1.2.3"`)
}

func TestHandler_Ready(t *testing.T) {
	tests := []struct {
		name       string
		report     *domain.HealthReport
		wantStatus int
		wantBody   string
	}{
		{
			name: "healthy",
			report: &domain.HealthReport{Healthy: true, Components: []domain.ComponentHealth{
				{Name: "treestore", Healthy: true},
			}},
			wantStatus: http.StatusOK,
			wantBody:   `"status":"ok"`,
		},
		{
			name: "unhealthy",
			report: &domain.HealthReport{Healthy: false, Components: []domain.ComponentHealth{
				{Name: "blobs", Healthy: false, Error: "bucket not found"},
			}},
			wantStatus: http.StatusServiceUnavailable,
			wantBody:   `"error":"bucket not found"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			health := inmocks.NewMockHealthService(t)
			health.EXPECT().Check(mock.Anything).Return(tt.report)
			s := newTestServer(t, Config{Health: health})

			rec := s.do(httptest.NewRequest("GET", "/health/ready", nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}

func TestHandler_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
		retryable  bool
	}{
		{name: "not found", err: domain.ErrApplicationNotFound, wantStatus: http.StatusNotFound, wantCode: CodeNotFound},
		{name: "already exists", err: fmt.Errorf("wrapped: %w", domain.ErrAlreadyExists), wantStatus: http.StatusConflict, wantCode: CodeAlreadyExists},
		{name: "conflict", err: domain.ErrConflict, wantStatus: http.StatusConflict, wantCode: CodeConflict, retryable: true},
		{name: "validation", err: &domain.ValidationError{Field: "os", Reason: "bad"}, wantStatus: http.StatusBadRequest, wantCode: CodeValidation},
		{name: "missing field", err: &domain.MissingFieldError{Field: "version", Template: "{version}"}, wantStatus: http.StatusBadRequest, wantCode: CodeMissingField},
		{name: "duplicate", err: &domain.DuplicateArtifactError{ContainerID: "c", Identity: "i", Count: 2}, wantStatus: http.StatusInternalServerError, wantCode: CodeDuplicateArtifact},
		{name: "corrupt", err: &domain.CorruptArtifactError{ArtifactID: "a"}, wantStatus: http.StatusInternalServerError, wantCode: CodeCorruptArtifact},
		{name: "unknown", err: errors.New("disk on fire"), wantStatus: http.StatusInternalServerError, wantCode: CodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(t, Config{})
			s.apps.EXPECT().GetApplication(mock.Anything, "app-1").Return(nil, tt.err)

			rec := s.do(httptest.NewRequest("GET", "/api/v1/app/app-1", nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			body := decodeError(t, rec)
			assert.Equal(t, tt.wantCode, body.Code)
			assert.Equal(t, tt.retryable, body.Retryable)
			if tt.wantCode == CodeInternal {
				assert.NotContains(t, body.Error, "disk on fire")
			}
		})
	}
}

func TestHandler_CreateApplication(t *testing.T) {
	s := newTestServer(t, Config{})
	s.apps.EXPECT().CreateApplication(mock.Anything, domain.CreateApplicationRequest{
		Name: "Slicer", Description: "desc", CollectionName: "Nightlies",
	}).Return(&domain.Node{ID: "app-1", Name: "Slicer", Kind: domain.NodeFolder}, nil)

	body := `{"name":"Slicer","description":"desc","collection_name":"Nightlies"}`
	rec := s.do(httptest.NewRequest("POST", "/api/v1/app", strings.NewReader(body)))

	assert.Equal(t, http.StatusCreated, rec.Code)
	var resp dto.NodeResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "app-1", resp.ID)
	assert.NotNil(t, resp.Meta)
}

func TestHandler_CreateApplication_UnknownField(t *testing.T) {
	s := newTestServer(t, Config{})

	rec := s.do(httptest.NewRequest("POST", "/api/v1/app", strings.NewReader(`{"nam":"x"}`)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, CodeValidation, decodeError(t, rec).Code)
}

func TestHandler_ListApplications(t *testing.T) {
	s := newTestServer(t, Config{})
	s.apps.EXPECT().ListApplications(mock.Anything, domain.ApplicationQuery{
		Name: "Slicer", Text: "slic", CollectionName: "Applications",
		Page: domain.Page{Limit: 5, Offset: 10, Sort: domain.SortByName, SortDir: -1},
	}).Return(nil, nil)

	rec := s.do(httptest.NewRequest("GET",
		"/api/v1/app?name=Slicer&q=slic&collection_name=Applications&limit=5&offset=10&sort=name&sortdir=-1", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestHandler_BadPaging(t *testing.T) {
	for _, query := range []string{"limit=-1", "offset=x", "sort=size", "sortdir=2"} {
		t.Run(query, func(t *testing.T) {
			s := newTestServer(t, Config{})

			rec := s.do(httptest.NewRequest("GET", "/api/v1/app?"+query, nil))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestHandler_DeleteApplication(t *testing.T) {
	s := newTestServer(t, Config{})
	s.apps.EXPECT().DeleteApplication(mock.Anything, "app-1").Return(&domain.Node{ID: "app-1"}, nil)

	rec := s.do(httptest.NewRequest("DELETE", "/api/v1/app/app-1", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandler_Releases(t *testing.T) {
	s := newTestServer(t, Config{})
	rel := &domain.Node{ID: "rel-1", Name: "1.0", Meta: domain.Metadata{domain.MetaRevision: "r1"}}
	s.releases.EXPECT().CreateRelease(mock.Anything, domain.CreateReleaseRequest{
		ApplicationID: "app-1", Name: "1.0", Revision: "r1",
	}).Return(rel, nil)
	s.releases.EXPECT().GetReleases(mock.Anything, "app-1", domain.Page{}).Return([]*domain.Node{rel}, nil)
	s.releases.EXPECT().GetRelease(mock.Anything, "app-1", "1.0").Return(rel, nil)
	s.releases.EXPECT().DeleteRelease(mock.Anything, "app-1", "0000").Return(&domain.Node{ID: "rev-0"}, nil)
	s.releases.EXPECT().GetDraftRevisions(mock.Anything, "app-1", "0001", domain.Page{Limit: 1}).Return(nil, nil)

	rec := s.do(httptest.NewRequest("POST", "/api/v1/app/app-1/release", strings.NewReader(`{"name":"1.0","revision":"r1"}`)))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"revision":"r1"`)

	rec = s.do(httptest.NewRequest("GET", "/api/v1/app/app-1/release", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = s.do(httptest.NewRequest("GET", "/api/v1/app/app-1/release/1.0", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = s.do(httptest.NewRequest("DELETE", "/api/v1/app/app-1/release/0000", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"rev-0"`)

	rec = s.do(httptest.NewRequest("GET", "/api/v1/app/app-1/draft?revision=0001&limit=1", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandler_DownloadStats(t *testing.T) {
	s := newTestServer(t, Config{})
	s.stats.EXPECT().GetStats(mock.Anything, "app-1").Return(domain.DownloadStats{
		"r1": map[string]any{"applications": map[string]any{"linux": map[string]any{"amd64": int64(4)}}},
	}, nil)

	rec := s.do(httptest.NewRequest("GET", "/api/v1/app/app-1/downloadstats", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"r1":{"applications":{"linux":{"amd64":4}}}}`, rec.Body.String())
}

func TestHandler_UpsertArtifact_JSON(t *testing.T) {
	s := newTestServer(t, Config{})
	artifact := &domain.Artifact{Node: &domain.Node{ID: "pkg-1", Kind: domain.NodePackage}}
	s.artifacts.EXPECT().Upsert(mock.Anything, isKind(domain.NodePackage), mock.MatchedBy(func(req domain.UpsertArtifactRequest) bool {
		return req.ApplicationID == "app-1" && req.Meta.String("os") == "linux" && req.Content == nil
	})).Return(artifact, false, nil)

	rec := s.do(httptest.NewRequest("POST", "/api/v1/app/app-1/package", strings.NewReader(`{"os":"linux"}`)))

	assert.Equal(t, http.StatusOK, rec.Code)
	var resp dto.UpsertResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.False(t, resp.Created)
	assert.Equal(t, "pkg-1", resp.ID)
	assert.NotNil(t, resp.Files)
}

func TestHandler_UpsertArtifact_MultipartStreamsFile(t *testing.T) {
	s := newTestServer(t, Config{})

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("metadata", `{"os":"win","baseName":"SlicerFoo"}`))
	fw, err := mw.CreateFormFile("file", "SlicerFoo.zip")
	require.NoError(t, err)
	_, err = fw.Write([]byte("zip-bytes"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	var received string
	s.artifacts.EXPECT().Upsert(mock.Anything, isKind(domain.NodeExtension), mock.Anything).
		RunAndReturn(func(_ context.Context, _ domain.ArtifactKind, req domain.UpsertArtifactRequest) (*domain.Artifact, bool, error) {
			require.NotNil(t, req.Content)
			assert.Equal(t, "SlicerFoo.zip", req.Content.Filename)
			assert.Equal(t, "SlicerFoo", req.Meta.String("baseName"))
			data, err := io.ReadAll(req.Content.Body)
			require.NoError(t, err)
			received = string(data)
			return &domain.Artifact{Node: &domain.Node{ID: "ext-1"}, Files: []domain.File{{ID: "f-1", Name: "x.zip", Size: 9}}}, true, nil
		})

	req := httptest.NewRequest("POST", "/api/v1/app/app-1/extension", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := s.do(req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "zip-bytes", received)
	assert.Contains(t, rec.Body.String(), `"created":true`)
}

func TestHandler_UpsertArtifact_FileBeforeMetadata(t *testing.T) {
	s := newTestServer(t, Config{})

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", "a.tgz")
	require.NoError(t, err)
	_, _ = fw.Write([]byte("x"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest("POST", "/api/v1/app/app-1/package", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := s.do(req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_UpsertArtifact_TooLarge(t *testing.T) {
	s := newTestServer(t, Config{MaxUploadSize: 8})

	rec := s.do(httptest.NewRequest("POST", "/api/v1/app/app-1/package", strings.NewReader(`{"os":"linux","arch":"amd64"}`)))

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Equal(t, CodeTooLarge, decodeError(t, rec).Code)
}

func TestHandler_UpsertArtifact_UnsupportedMediaType(t *testing.T) {
	s := newTestServer(t, Config{})
	req := httptest.NewRequest("POST", "/api/v1/app/app-1/package", strings.NewReader("x"))
	req.Header.Set("Content-Type", "text/plain")

	rec := s.do(req)

	assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)
}

func TestHandler_ListArtifacts_Filters(t *testing.T) {
	s := newTestServer(t, Config{})
	s.artifacts.EXPECT().ListArtifacts(mock.Anything, isKind(domain.NodeExtension), "app-1", domain.ArtifactFilter{
		OS: "linux", Arch: "amd64", BaseName: "Foo", AppRevision: "0001", ReleaseIDOrName: "draft", Text: "foo",
		Page: domain.Page{Limit: 2},
	}).Return([]*domain.Artifact{{Node: &domain.Node{ID: "ext-1"}}}, nil)

	rec := s.do(httptest.NewRequest("GET",
		"/api/v1/app/app-1/extension?os=linux&arch=amd64&baseName=Foo&app_revision=0001&release=draft&q=foo&limit=2", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	var resp []dto.ArtifactResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "ext-1", resp[0].ID)
}

func TestHandler_GetAndDeleteArtifact(t *testing.T) {
	s := newTestServer(t, Config{})
	s.artifacts.EXPECT().GetArtifact(mock.Anything, isKind(domain.NodePackage), "app-1", "pkg-1").
		Return(nil, domain.ErrArtifactNotFound)
	s.artifacts.EXPECT().DeleteArtifact(mock.Anything, isKind(domain.NodePackage), "app-1", "pkg-2").
		Return(&domain.Artifact{Node: &domain.Node{ID: "pkg-2"}}, nil)

	rec := s.do(httptest.NewRequest("GET", "/api/v1/app/app-1/package/pkg-1", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = s.do(httptest.NewRequest("DELETE", "/api/v1/app/app-1/package/pkg-2", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandler_AttachContent(t *testing.T) {
	s := newTestServer(t, Config{})
	s.artifacts.EXPECT().AttachContent(mock.Anything, isKind(domain.NodePackage), "app-1", "pkg-1", mock.MatchedBy(func(u *domain.Upload) bool {
		return u.Filename == "pkg.dmg" && u.Size == 4
	})).Return(&domain.Artifact{Node: &domain.Node{ID: "pkg-1"}}, nil)

	req := httptest.NewRequest("PUT", "/api/v1/app/app-1/package/pkg-1/file", strings.NewReader("data"))
	req.Header.Set("Content-Disposition", `attachment; filename="pkg.dmg"`)
	rec := s.do(req)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = s.do(httptest.NewRequest("PUT", "/api/v1/app/app-1/package/pkg-1/file", strings.NewReader("data")))
	assert.Equal(t, http.StatusBadRequest, rec.Code, "file name is required")
}

func TestHandler_Download_RecordsCompletedDownload(t *testing.T) {
	s := newTestServer(t, Config{})
	file := domain.File{ID: "file-1", Name: "pkg_linux_amd64_r1.tar.gz", Size: 7, SHA512: "abc"}
	s.artifacts.EXPECT().OpenContent(mock.Anything, isKind(domain.NodePackage), "app-1", "pkg-1").Return(&domain.Content{
		Artifact: &domain.Artifact{Node: &domain.Node{ID: "pkg-1"}},
		File:     file,
		Body:     io.NopCloser(strings.NewReader("content")),
	}, nil)
	s.artifacts.EXPECT().DownloadCompleted(mock.Anything, "file-1").Return(nil)

	rec := s.do(httptest.NewRequest("GET", "/api/v1/app/app-1/package/pkg-1/download", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "content", rec.Body.String())
	assert.Equal(t, "7", rec.Header().Get("Content-Length"))
	assert.Equal(t, "application/octet-stream", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "pkg_linux_amd64_r1.tar.gz")
}

func TestHandler_Download_ShortBodySkipsHook(t *testing.T) {
	s := newTestServer(t, Config{})
	s.artifacts.EXPECT().OpenContent(mock.Anything, isKind(domain.NodePackage), "app-1", "pkg-1").Return(&domain.Content{
		Artifact: &domain.Artifact{Node: &domain.Node{ID: "pkg-1"}},
		File:     domain.File{ID: "file-1", Name: "a", Size: 100},
		Body:     io.NopCloser(strings.NewReader("short")),
	}, nil)

	rec := s.do(httptest.NewRequest("GET", "/api/v1/app/app-1/package/pkg-1/download", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	s.artifacts.AssertNotCalled(t, "DownloadCompleted", mock.Anything, mock.Anything)
}

func TestHandler_Download_Corrupt(t *testing.T) {
	s := newTestServer(t, Config{})
	s.artifacts.EXPECT().OpenContent(mock.Anything, isKind(domain.NodeExtension), "app-1", "ext-1").
		Return(nil, &domain.CorruptArtifactError{ArtifactID: "ext-1"})

	rec := s.do(httptest.NewRequest("GET", "/api/v1/app/app-1/extension/ext-1/download", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, CodeCorruptArtifact, decodeError(t, rec).Code)
}
