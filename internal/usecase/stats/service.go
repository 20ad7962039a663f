// Package stats implements download counting and the per-application
// download statistics document.
package stats

import (
	"context"
	"fmt"

	"github.com/bnema/zerowrap"

	"github.com/bnema/pkgvault/internal/boundaries/in"
	"github.com/bnema/pkgvault/internal/boundaries/out"
	"github.com/bnema/pkgvault/internal/domain"
	"github.com/bnema/pkgvault/internal/usecase/tree"
)

// Ensure Service implements in.StatsService.
var _ in.StatsService = (*Service)(nil)

// Service implements the StatsService interface.
type Service struct {
	store    out.TreeStore
	releases in.ReleaseService
	kinds    map[domain.NodeKind]domain.ArtifactKind
}

// NewService creates a new stats service for the given artifact kinds.
func NewService(store out.TreeStore, releases in.ReleaseService, kinds ...domain.ArtifactKind) *Service {
	byNode := make(map[domain.NodeKind]domain.ArtifactKind, len(kinds))
	for _, k := range kinds {
		byNode[k.Node] = k
	}
	return &Service{
		store:    store,
		releases: releases,
		kinds:    byNode,
	}
}

// RecordDownload increments the counter of item on its owning release. Draft
// artifacts count on the draft release under their revision.
func (s *Service) RecordDownload(ctx context.Context, item *domain.Node) error {
	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:    "usecase",
		zerowrap.FieldUseCase:  "RecordDownload",
		zerowrap.FieldEntityID: item.ID,
	})
	log := zerowrap.FromCtx(ctx)

	kind, ok := s.kinds[item.Kind]
	if !ok {
		return log.WrapErr(fmt.Errorf("%w: %s is not an artifact", domain.ErrValidation, item.Kind), "failed to record download")
	}

	ref, err := s.releases.OwningRelease(ctx, item)
	if err != nil {
		return log.WrapErr(err, "failed to resolve owning release")
	}

	path := append([]string{domain.MetaDownloadStats}, domain.StatsPath(kind, item.Meta, ref.Draft())...)
	if _, err := s.store.IncrementMetadataField(ctx, ref.Release.ID, path, 1); err != nil {
		return log.WrapErr(err, "failed to increment download counter")
	}

	log.Debug().Strs("path", path).Str("release_id", ref.Release.ID).Msg("download recorded")
	return nil
}

// GetStats merges the counters of every release of an application. The draft
// document is merged as is, stable documents under their revision.
func (s *Service) GetStats(ctx context.Context, appID string) (domain.DownloadStats, error) {
	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:   "usecase",
		zerowrap.FieldUseCase: "GetStats",
		"app_id":              appID,
	})
	log := zerowrap.FromCtx(ctx)

	app, err := tree.LoadApplication(ctx, s.store, appID)
	if err != nil {
		return nil, log.WrapErr(err, "failed to get application")
	}

	releases, err := s.store.ListChildContainers(ctx, app.ID, domain.ListQuery{})
	if err != nil {
		return nil, log.WrapErr(err, "failed to list releases")
	}

	doc := domain.DownloadStats{}
	for _, rel := range releases {
		counters, ok := rel.Meta[domain.MetaDownloadStats].(map[string]any)
		if !ok {
			continue
		}
		if domain.IsDraftRelease(rel, app) {
			domain.MergeStats(doc, counters)
			continue
		}
		revision := rel.Meta.String(domain.MetaRevision)
		if revision == "" {
			continue
		}
		domain.MergeStats(doc, map[string]any{revision: counters})
	}

	return doc, nil
}
