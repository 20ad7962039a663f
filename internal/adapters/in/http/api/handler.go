// Package api implements the HTTP adapter for the package catalog REST API.
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/bnema/zerowrap"

	"github.com/bnema/pkgvault/internal/adapters/dto"
	"github.com/bnema/pkgvault/internal/boundaries/in"
	"github.com/bnema/pkgvault/internal/domain"
)

// Error codes returned in dto.ErrorResponse.Code.
const (
	CodeNotFound          = "NOT_FOUND"
	CodeAlreadyExists     = "ALREADY_EXISTS"
	CodeConflict          = "CONFLICT"
	CodeValidation        = "VALIDATION_FAILED"
	CodeMissingField      = "MISSING_FIELD"
	CodeDuplicateArtifact = "DUPLICATE_ARTIFACT"
	CodeCorruptArtifact   = "CORRUPT_ARTIFACT"
	CodeDraftMissing      = "DRAFT_RELEASE_MISSING"
	CodeTooLarge          = "PAYLOAD_TOO_LARGE"
	CodeInternal          = "INTERNAL"
)

const defaultMaxUploadSize int64 = 2 << 30

// Handler serves the /api/v1 routes.
type Handler struct {
	apps      in.ApplicationService
	releases  in.ReleaseService
	artifacts in.ArtifactService
	stats     in.StatsService
	health    in.HealthService
	kinds     []domain.ArtifactKind
	maxUpload int64
	version   string
	log       zerowrap.Logger
}

// Config holds handler limits.
type Config struct {
	// MaxUploadSize caps request bodies on upload routes. Zero selects 2 GiB.
	MaxUploadSize int64
	Version       string
	// Health backs GET /health/ready. Nil reports ready unconditionally.
	Health in.HealthService
}

// NewHandler creates a new API handler. One set of artifact routes is
// registered per kind, keyed by kind.Route.
func NewHandler(
	apps in.ApplicationService,
	releases in.ReleaseService,
	artifacts in.ArtifactService,
	stats in.StatsService,
	cfg Config,
	log zerowrap.Logger,
	kinds ...domain.ArtifactKind,
) *Handler {
	if cfg.MaxUploadSize <= 0 {
		cfg.MaxUploadSize = defaultMaxUploadSize
	}
	return &Handler{
		apps:      apps,
		releases:  releases,
		artifacts: artifacts,
		stats:     stats,
		health:    cfg.Health,
		kinds:     kinds,
		maxUpload: cfg.MaxUploadSize,
		version:   cfg.Version,
		log:       log,
	}
}

// RegisterRoutes registers the API routes on the given mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /health", h.handleHealth)
	mux.HandleFunc("GET /health/ready", h.handleReady)

	mux.HandleFunc("POST /api/v1/app", h.handleCreateApplication)
	mux.HandleFunc("GET /api/v1/app", h.handleListApplications)
	mux.HandleFunc("GET /api/v1/app/{app_id}", h.handleGetApplication)
	mux.HandleFunc("DELETE /api/v1/app/{app_id}", h.handleDeleteApplication)

	mux.HandleFunc("POST /api/v1/app/{app_id}/release", h.handleCreateRelease)
	mux.HandleFunc("GET /api/v1/app/{app_id}/release", h.handleListReleases)
	mux.HandleFunc("GET /api/v1/app/{app_id}/release/{release}", h.handleGetRelease)
	mux.HandleFunc("DELETE /api/v1/app/{app_id}/release/{release}", h.handleDeleteRelease)
	mux.HandleFunc("GET /api/v1/app/{app_id}/draft", h.handleListDraftRevisions)

	mux.HandleFunc("GET /api/v1/app/{app_id}/downloadstats", h.handleDownloadStats)

	for _, kind := range h.kinds {
		base := "/api/v1/app/{app_id}/" + kind.Route
		mux.HandleFunc("POST "+base, h.withKind(kind, h.handleUpsertArtifact))
		mux.HandleFunc("GET "+base, h.withKind(kind, h.handleListArtifacts))
		mux.HandleFunc("GET "+base+"/{id}", h.withKind(kind, h.handleGetArtifact))
		mux.HandleFunc("DELETE "+base+"/{id}", h.withKind(kind, h.handleDeleteArtifact))
		mux.HandleFunc("PUT "+base+"/{id}/file", h.withKind(kind, h.handleAttachContent))
		mux.HandleFunc("GET "+base+"/{id}/download", h.withKind(kind, h.handleDownload))
	}
}

type kindHandler func(w http.ResponseWriter, r *http.Request, kind domain.ArtifactKind)

func (h *Handler) withKind(kind domain.ArtifactKind, next kindHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		next(w, r, kind)
	}
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	h.sendJSON(w, http.StatusOK, dto.HealthResponse{Status: "ok", Version: h.version})
}

func (h *Handler) handleReady(w http.ResponseWriter, r *http.Request) {
	if h.health == nil {
		h.sendJSON(w, http.StatusOK, dto.HealthResponse{Status: "ok", Version: h.version})
		return
	}

	report := h.health.Check(r.Context())
	resp := dto.NewHealthResponse(report, h.version)
	if !report.Healthy {
		h.sendJSON(w, http.StatusServiceUnavailable, resp)
		return
	}
	h.sendJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleDownloadStats(w http.ResponseWriter, r *http.Request) {
	doc, err := h.stats.GetStats(r.Context(), r.PathValue("app_id"))
	if err != nil {
		h.sendDomainError(w, r, err)
		return
	}
	if doc == nil {
		doc = domain.DownloadStats{}
	}
	h.sendJSON(w, http.StatusOK, doc)
}

// sendJSON sends a JSON response.
func (h *Handler) sendJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// sendError sends an error response.
func (h *Handler) sendError(w http.ResponseWriter, status int, code, message string) {
	h.sendJSON(w, status, dto.ErrorResponse{Error: message, Code: code})
}

// sendDomainError maps a use case error to its HTTP status and code.
func (h *Handler) sendDomainError(w http.ResponseWriter, r *http.Request, err error) {
	status, resp := errorResponse(err)
	if status >= http.StatusInternalServerError {
		log := zerowrap.FromCtx(r.Context())
		log.Error().
			Err(err).
			Str(zerowrap.FieldLayer, "adapter").
			Str(zerowrap.FieldAdapter, "http").
			Str(zerowrap.FieldPath, r.URL.Path).
			Str("code", resp.Code).
			Msg("request failed")
	}
	h.sendJSON(w, status, resp)
}

func errorResponse(err error) (int, dto.ErrorResponse) {
	var maxBytes *http.MaxBytesError
	switch {
	case errors.As(err, &maxBytes):
		return http.StatusRequestEntityTooLarge, dto.ErrorResponse{Error: err.Error(), Code: CodeTooLarge}
	case errors.Is(err, domain.ErrDuplicateArtifact):
		return http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error(), Code: CodeDuplicateArtifact}
	case errors.Is(err, domain.ErrCorruptArtifact):
		return http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error(), Code: CodeCorruptArtifact}
	case errors.Is(err, domain.ErrDraftReleaseMissing):
		return http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error(), Code: CodeDraftMissing}
	case errors.Is(err, domain.ErrMissingField):
		return http.StatusBadRequest, dto.ErrorResponse{Error: err.Error(), Code: CodeMissingField}
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest, dto.ErrorResponse{Error: err.Error(), Code: CodeValidation}
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict, dto.ErrorResponse{Error: err.Error(), Code: CodeConflict, Retryable: true}
	case errors.Is(err, domain.ErrAlreadyExists):
		return http.StatusConflict, dto.ErrorResponse{Error: err.Error(), Code: CodeAlreadyExists}
	case isNotFound(err):
		return http.StatusNotFound, dto.ErrorResponse{Error: err.Error(), Code: CodeNotFound}
	default:
		return http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error", Code: CodeInternal}
	}
}

func isNotFound(err error) bool {
	for _, target := range []error{
		domain.ErrNodeNotFound,
		domain.ErrCollectionNotFound,
		domain.ErrApplicationNotFound,
		domain.ErrReleaseNotFound,
		domain.ErrRevisionNotFound,
		domain.ErrArtifactNotFound,
		domain.ErrFileNotFound,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// parsePage reads limit, offset, sort and sortdir from the query string.
func parsePage(r *http.Request) (domain.Page, error) {
	q := r.URL.Query()
	var page domain.Page

	for _, p := range []struct {
		name string
		dst  *int
	}{{"limit", &page.Limit}, {"offset", &page.Offset}} {
		raw := q.Get(p.name)
		if raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return page, &domain.ValidationError{Field: p.name, Reason: "must be a non-negative integer"}
		}
		*p.dst = n
	}

	switch sort := q.Get("sort"); sort {
	case "", domain.SortByName, domain.SortByCreated, domain.SortByUpdated:
		page.Sort = sort
	default:
		return page, &domain.ValidationError{Field: "sort", Reason: "must be one of name, created, updated"}
	}

	switch dir := q.Get("sortdir"); dir {
	case "":
	case "1":
		page.SortDir = 1
	case "-1":
		page.SortDir = -1
	default:
		return page, &domain.ValidationError{Field: "sortdir", Reason: "must be 1 or -1"}
	}
	return page, nil
}

func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return wrapBodyError(err, "invalid JSON body")
	}
	return nil
}
