package dto

import (
	"time"

	"github.com/bnema/pkgvault/internal/domain"
)

// NodeResponse represents an application, release or revision container.
type NodeResponse struct {
	ID          string         `json:"_id"`
	ParentID    string         `json:"parentId,omitempty"`
	Kind        string         `json:"kind"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Public      bool           `json:"public"`
	Creator     string         `json:"creator,omitempty"`
	Meta        map[string]any `json:"meta"`
	Created     time.Time      `json:"created"`
	Updated     time.Time      `json:"updated"`
}

// FileResponse represents the binary content attached to an artifact.
type FileResponse struct {
	ID       string    `json:"_id"`
	Name     string    `json:"name"`
	Size     int64     `json:"size"`
	SHA512   string    `json:"sha512,omitempty"`
	MimeType string    `json:"mimeType,omitempty"`
	Created  time.Time `json:"created"`
}

// ArtifactResponse represents a package or extension.
type ArtifactResponse struct {
	NodeResponse
	Files []FileResponse `json:"files"`
}

// UpsertResponse wraps an artifact with whether the call created it.
type UpsertResponse struct {
	ArtifactResponse
	Created bool `json:"created"`
}

// NewNodeResponse converts a domain node.
func NewNodeResponse(n *domain.Node) NodeResponse {
	meta := map[string]any(n.Meta)
	if meta == nil {
		meta = map[string]any{}
	}
	return NodeResponse{
		ID:          n.ID,
		ParentID:    n.ParentID,
		Kind:        string(n.Kind),
		Name:        n.Name,
		Description: n.Description,
		Public:      n.Public,
		Creator:     n.Creator,
		Meta:        meta,
		Created:     n.Created,
		Updated:     n.Updated,
	}
}

// NewNodeList converts a slice of nodes, never returning nil.
func NewNodeList(nodes []*domain.Node) []NodeResponse {
	out := make([]NodeResponse, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, NewNodeResponse(n))
	}
	return out
}

// NewArtifactResponse converts an artifact with its files.
func NewArtifactResponse(a *domain.Artifact) ArtifactResponse {
	files := make([]FileResponse, 0, len(a.Files))
	for _, f := range a.Files {
		files = append(files, FileResponse{
			ID:       f.ID,
			Name:     f.Name,
			Size:     f.Size,
			SHA512:   f.SHA512,
			MimeType: f.MimeType,
			Created:  f.Created,
		})
	}
	return ArtifactResponse{NodeResponse: NewNodeResponse(a.Node), Files: files}
}

// NewArtifactList converts a slice of artifacts, never returning nil.
func NewArtifactList(artifacts []*domain.Artifact) []ArtifactResponse {
	out := make([]ArtifactResponse, 0, len(artifacts))
	for _, a := range artifacts {
		out = append(out, NewArtifactResponse(a))
	}
	return out
}

// HealthResponse is returned by the health endpoint.
type HealthResponse struct {
	Status     string              `json:"status"`
	Version    string              `json:"version,omitempty"`
	Components []ComponentResponse `json:"components,omitempty"`
}

// ComponentResponse is the probe result of one backend.
type ComponentResponse struct {
	Name      string `json:"name"`
	Healthy   bool   `json:"healthy"`
	Error     string `json:"error,omitempty"`
	LatencyMs int64  `json:"latencyMs"`
}

// NewHealthResponse converts a readiness report.
func NewHealthResponse(report *domain.HealthReport, version string) HealthResponse {
	resp := HealthResponse{Status: "ok", Version: version}
	if !report.Healthy {
		resp.Status = "unavailable"
	}
	for _, c := range report.Components {
		resp.Components = append(resp.Components, ComponentResponse{
			Name:      c.Name,
			Healthy:   c.Healthy,
			Error:     c.Error,
			LatencyMs: c.LatencyMs,
		})
	}
	return resp
}
