package api

import (
	"net/http"

	"github.com/bnema/pkgvault/internal/adapters/dto"
	"github.com/bnema/pkgvault/internal/domain"
)

func (h *Handler) handleCreateApplication(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	var req dto.CreateApplicationRequest
	if err := decodeJSON(r, &req); err != nil {
		h.sendDomainError(w, r, err)
		return
	}

	app, err := h.apps.CreateApplication(r.Context(), domain.CreateApplicationRequest{
		Name:                req.Name,
		Description:         req.Description,
		CollectionID:        req.CollectionID,
		CollectionName:      req.CollectionName,
		ApplicationTemplate: req.ApplicationTemplate,
		ExtensionTemplate:   req.ExtensionTemplate,
		Public:              req.Public,
	})
	if err != nil {
		h.sendDomainError(w, r, err)
		return
	}
	h.sendJSON(w, http.StatusCreated, dto.NewNodeResponse(app))
}

func (h *Handler) handleListApplications(w http.ResponseWriter, r *http.Request) {
	page, err := parsePage(r)
	if err != nil {
		h.sendDomainError(w, r, err)
		return
	}
	q := r.URL.Query()
	apps, err := h.apps.ListApplications(r.Context(), domain.ApplicationQuery{
		ID:             q.Get("app_id"),
		Name:           q.Get("name"),
		Text:           q.Get("q"),
		CollectionID:   q.Get("collection_id"),
		CollectionName: q.Get("collection_name"),
		Page:           page,
	})
	if err != nil {
		h.sendDomainError(w, r, err)
		return
	}
	h.sendJSON(w, http.StatusOK, dto.NewNodeList(apps))
}

func (h *Handler) handleGetApplication(w http.ResponseWriter, r *http.Request) {
	app, err := h.apps.GetApplication(r.Context(), r.PathValue("app_id"))
	if err != nil {
		h.sendDomainError(w, r, err)
		return
	}
	h.sendJSON(w, http.StatusOK, dto.NewNodeResponse(app))
}

func (h *Handler) handleDeleteApplication(w http.ResponseWriter, r *http.Request) {
	app, err := h.apps.DeleteApplication(r.Context(), r.PathValue("app_id"))
	if err != nil {
		h.sendDomainError(w, r, err)
		return
	}
	h.sendJSON(w, http.StatusOK, dto.NewNodeResponse(app))
}
