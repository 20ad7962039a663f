package api

import (
	"net/http"

	"github.com/bnema/pkgvault/internal/adapters/dto"
	"github.com/bnema/pkgvault/internal/domain"
)

func (h *Handler) handleCreateRelease(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	var req dto.CreateReleaseRequest
	if err := decodeJSON(r, &req); err != nil {
		h.sendDomainError(w, r, err)
		return
	}

	rel, err := h.releases.CreateRelease(r.Context(), domain.CreateReleaseRequest{
		ApplicationID: r.PathValue("app_id"),
		Name:          req.Name,
		Revision:      req.Revision,
		Description:   req.Description,
	})
	if err != nil {
		h.sendDomainError(w, r, err)
		return
	}
	h.sendJSON(w, http.StatusCreated, dto.NewNodeResponse(rel))
}

func (h *Handler) handleListReleases(w http.ResponseWriter, r *http.Request) {
	page, err := parsePage(r)
	if err != nil {
		h.sendDomainError(w, r, err)
		return
	}
	releases, err := h.releases.GetReleases(r.Context(), r.PathValue("app_id"), page)
	if err != nil {
		h.sendDomainError(w, r, err)
		return
	}
	h.sendJSON(w, http.StatusOK, dto.NewNodeList(releases))
}

func (h *Handler) handleGetRelease(w http.ResponseWriter, r *http.Request) {
	rel, err := h.releases.GetRelease(r.Context(), r.PathValue("app_id"), r.PathValue("release"))
	if err != nil {
		h.sendDomainError(w, r, err)
		return
	}
	h.sendJSON(w, http.StatusOK, dto.NewNodeResponse(rel))
}

// handleDeleteRelease deletes a stable release, or a draft revision
// container when no release matches.
func (h *Handler) handleDeleteRelease(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.releases.DeleteRelease(r.Context(), r.PathValue("app_id"), r.PathValue("release"))
	if err != nil {
		h.sendDomainError(w, r, err)
		return
	}
	h.sendJSON(w, http.StatusOK, dto.NewNodeResponse(deleted))
}

func (h *Handler) handleListDraftRevisions(w http.ResponseWriter, r *http.Request) {
	page, err := parsePage(r)
	if err != nil {
		h.sendDomainError(w, r, err)
		return
	}
	revisions, err := h.releases.GetDraftRevisions(r.Context(), r.PathValue("app_id"), r.URL.Query().Get("revision"), page)
	if err != nil {
		h.sendDomainError(w, r, err)
		return
	}
	h.sendJSON(w, http.StatusOK, dto.NewNodeList(revisions))
}
