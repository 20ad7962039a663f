package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"
	"strconv"

	"github.com/bnema/zerowrap"

	"github.com/bnema/pkgvault/internal/adapters/dto"
	"github.com/bnema/pkgvault/internal/domain"
)

// Multipart form field names of the upsert route.
const (
	formMetadata = "metadata"
	formFile     = "file"
)

// handleUpsertArtifact accepts either a JSON metadata document or a
// multipart form whose "metadata" part precedes an optional "file" part.
// The file part is streamed to blob storage without buffering.
func (h *Handler) handleUpsertArtifact(w http.ResponseWriter, r *http.Request, kind domain.ArtifactKind) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUpload)

	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil {
		mediaType = ""
	}

	switch mediaType {
	case "application/json", "":
		var meta domain.Metadata
		if err := decodeJSON(r, &meta); err != nil {
			h.sendDomainError(w, r, err)
			return
		}
		h.upsert(w, r, kind, meta, nil)
	case "multipart/form-data":
		h.upsertMultipart(w, r, kind)
	default:
		h.sendError(w, http.StatusUnsupportedMediaType, "UNSUPPORTED_MEDIA_TYPE",
			"expected application/json or multipart/form-data")
	}
}

func (h *Handler) upsertMultipart(w http.ResponseWriter, r *http.Request, kind domain.ArtifactKind) {
	mr, err := r.MultipartReader()
	if err != nil {
		h.sendDomainError(w, r, &domain.ValidationError{Reason: "invalid multipart body: " + err.Error()})
		return
	}

	var meta domain.Metadata
	for {
		part, err := mr.NextPart()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			h.sendDomainError(w, r, wrapBodyError(err, "invalid multipart body"))
			return
		}

		switch part.FormName() {
		case formMetadata:
			if err := json.NewDecoder(part).Decode(&meta); err != nil {
				h.sendDomainError(w, r, wrapBodyError(err, "invalid metadata part"))
				return
			}
		case formFile:
			if meta == nil {
				h.sendDomainError(w, r, &domain.ValidationError{Field: formMetadata, Reason: "metadata part must precede the file part"})
				return
			}
			h.upsert(w, r, kind, meta, &domain.Upload{
				Filename: part.FileName(),
				MimeType: part.Header.Get("Content-Type"),
				Size:     -1,
				Body:     part,
			})
			return
		default:
			h.sendDomainError(w, r, &domain.ValidationError{Field: part.FormName(), Reason: "unexpected form field"})
			return
		}
	}

	if meta == nil {
		h.sendDomainError(w, r, &domain.ValidationError{Field: formMetadata, Reason: "metadata part is required"})
		return
	}
	h.upsert(w, r, kind, meta, nil)
}

func (h *Handler) upsert(w http.ResponseWriter, r *http.Request, kind domain.ArtifactKind, meta domain.Metadata, upload *domain.Upload) {
	artifact, created, err := h.artifacts.Upsert(r.Context(), kind, domain.UpsertArtifactRequest{
		ApplicationID: r.PathValue("app_id"),
		Meta:          meta,
		Content:       upload,
	})
	if err != nil {
		h.sendDomainError(w, r, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	h.sendJSON(w, status, dto.UpsertResponse{ArtifactResponse: dto.NewArtifactResponse(artifact), Created: created})
}

func (h *Handler) handleListArtifacts(w http.ResponseWriter, r *http.Request, kind domain.ArtifactKind) {
	page, err := parsePage(r)
	if err != nil {
		h.sendDomainError(w, r, err)
		return
	}
	q := r.URL.Query()
	artifacts, err := h.artifacts.ListArtifacts(r.Context(), kind, r.PathValue("app_id"), domain.ArtifactFilter{
		ID:              q.Get("id"),
		Name:            q.Get("name"),
		Text:            q.Get("q"),
		OS:              q.Get("os"),
		Arch:            q.Get("arch"),
		BaseName:        q.Get("baseName"),
		Revision:        q.Get("revision"),
		AppRevision:     q.Get("app_revision"),
		ReleaseIDOrName: q.Get("release"),
		Page:            page,
	})
	if err != nil {
		h.sendDomainError(w, r, err)
		return
	}
	h.sendJSON(w, http.StatusOK, dto.NewArtifactList(artifacts))
}

func (h *Handler) handleGetArtifact(w http.ResponseWriter, r *http.Request, kind domain.ArtifactKind) {
	artifact, err := h.artifacts.GetArtifact(r.Context(), kind, r.PathValue("app_id"), r.PathValue("id"))
	if err != nil {
		h.sendDomainError(w, r, err)
		return
	}
	h.sendJSON(w, http.StatusOK, dto.NewArtifactResponse(artifact))
}

func (h *Handler) handleDeleteArtifact(w http.ResponseWriter, r *http.Request, kind domain.ArtifactKind) {
	artifact, err := h.artifacts.DeleteArtifact(r.Context(), kind, r.PathValue("app_id"), r.PathValue("id"))
	if err != nil {
		h.sendDomainError(w, r, err)
		return
	}
	h.sendJSON(w, http.StatusOK, dto.NewArtifactResponse(artifact))
}

// handleAttachContent replaces the content of an existing artifact with the
// raw request body. The file name comes from ?filename= or Content-Disposition.
func (h *Handler) handleAttachContent(w http.ResponseWriter, r *http.Request, kind domain.ArtifactKind) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUpload)

	filename := r.URL.Query().Get("filename")
	if filename == "" {
		if _, params, err := mime.ParseMediaType(r.Header.Get("Content-Disposition")); err == nil {
			filename = params["filename"]
		}
	}
	if filename == "" {
		h.sendDomainError(w, r, &domain.ValidationError{Field: "filename", Reason: "file name is required"})
		return
	}

	size := r.ContentLength
	if size < 0 {
		size = -1
	}
	artifact, err := h.artifacts.AttachContent(r.Context(), kind, r.PathValue("app_id"), r.PathValue("id"), &domain.Upload{
		Filename: filename,
		MimeType: r.Header.Get("Content-Type"),
		Size:     size,
		Body:     r.Body,
	})
	if err != nil {
		h.sendDomainError(w, r, err)
		return
	}
	h.sendJSON(w, http.StatusOK, dto.NewArtifactResponse(artifact))
}

// handleDownload streams the artifact file and runs the post-download hook
// once the whole body has been written.
func (h *Handler) handleDownload(w http.ResponseWriter, r *http.Request, kind domain.ArtifactKind) {
	ctx := r.Context()
	content, err := h.artifacts.OpenContent(ctx, kind, r.PathValue("app_id"), r.PathValue("id"))
	if err != nil {
		h.sendDomainError(w, r, err)
		return
	}
	defer content.Body.Close()

	f := content.File
	contentType := f.MimeType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": f.Name}))
	if f.Size > 0 {
		w.Header().Set("Content-Length", strconv.FormatInt(f.Size, 10))
	}
	if f.SHA512 != "" {
		w.Header().Set("X-Checksum-Sha512", f.SHA512)
	}
	w.WriteHeader(http.StatusOK)

	log := zerowrap.FromCtx(ctx)
	written, err := io.Copy(w, content.Body)
	if err != nil {
		log.Warn().Err(err).Str("file_id", f.ID).Int64("written", written).Msg("download interrupted")
		return
	}
	if f.Size > 0 && written != f.Size {
		log.Warn().Str("file_id", f.ID).Int64("written", written).Int64(zerowrap.FieldSize, f.Size).Msg("download size mismatch")
		return
	}

	if err := h.artifacts.DownloadCompleted(context.WithoutCancel(ctx), f.ID); err != nil {
		log.Error().Err(err).Str("file_id", f.ID).Msg("failed to record completed download")
	}
}

func wrapBodyError(err error, reason string) error {
	var maxBytes *http.MaxBytesError
	if errors.As(err, &maxBytes) {
		return err
	}
	return &domain.ValidationError{Reason: reason + ": " + err.Error()}
}
