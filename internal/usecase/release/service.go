// Package release implements release resolution and the release lifecycle.
package release

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/zerowrap"

	"github.com/bnema/pkgvault/internal/boundaries/in"
	"github.com/bnema/pkgvault/internal/boundaries/out"
	"github.com/bnema/pkgvault/internal/domain"
	"github.com/bnema/pkgvault/internal/usecase/tree"
	"github.com/bnema/pkgvault/pkg/validation"
)

// Ensure Service implements in.ReleaseService.
var _ in.ReleaseService = (*Service)(nil)

// maxAncestorDepth bounds the ancestor walk from an artifact to its application.
const maxAncestorDepth = 8

// Service implements the ReleaseService interface.
type Service struct {
	store  out.TreeStore
	blobs  out.BlobStorage
	locker out.Locker
}

// NewService creates a new release service.
func NewService(store out.TreeStore, blobs out.BlobStorage, locker out.Locker) *Service {
	return &Service{
		store:  store,
		blobs:  blobs,
		locker: locker,
	}
}

func revisionLockKey(appID, revision string) string {
	return "revision:" + appID + ":" + revision
}

// ResolveReleaseContainer returns the stable release recording revision. When
// none exists it returns the draft revision container for it, creating the
// container on first use.
func (s *Service) ResolveReleaseContainer(ctx context.Context, app *domain.Node, revision string) (*domain.Node, error) {
	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:   "usecase",
		zerowrap.FieldUseCase: "ResolveReleaseContainer",
		"app_id":              app.ID,
		"revision":            revision,
	})
	log := zerowrap.FromCtx(ctx)

	if err := validation.ValidateNodeName(revision); err != nil {
		return nil, &domain.ValidationError{Field: domain.MetaRevision, Reason: err.Error()}
	}

	unlock, err := s.locker.Lock(ctx, revisionLockKey(app.ID, revision))
	if err != nil {
		return nil, log.WrapErr(err, "failed to lock revision")
	}
	defer unlock()

	stable, err := s.findStable(ctx, app.ID, revision)
	if err != nil {
		return nil, log.WrapErr(err, "failed to scan stable releases")
	}
	if stable != nil {
		return stable, nil
	}

	draft, err := s.draftRelease(ctx, app.ID)
	if err != nil {
		return nil, log.WrapErr(err, "failed to load draft release")
	}

	existing, err := s.store.ListChildContainers(ctx, draft.ID, domain.ListQuery{
		MetaEquals: map[string]string{domain.MetaRevision: revision},
		Page:       domain.Page{Limit: 1},
	})
	if err != nil {
		return nil, log.WrapErr(err, "failed to scan draft revisions")
	}
	if len(existing) > 0 {
		return existing[0], nil
	}

	container, err := s.store.CreateContainer(ctx, draft.ID, domain.ContainerSpec{
		Name:      revision,
		Meta:      domain.Metadata{domain.MetaRevision: revision},
		ExactName: true,
	})
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			err = fmt.Errorf("%w: revision container %q was created concurrently", domain.ErrConflict, revision)
		}
		return nil, log.WrapErr(err, "failed to create revision container")
	}

	log.Info().Str(zerowrap.FieldEntityID, container.ID).Msg("draft revision container created")
	return container, nil
}

// EnsureSubContainer finds or creates the named folder below parent.
func (s *Service) EnsureSubContainer(ctx context.Context, parent *domain.Node, name, description string) (*domain.Node, error) {
	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:   "usecase",
		zerowrap.FieldUseCase: "EnsureSubContainer",
		"parent_id":           parent.ID,
		"name":                name,
	})
	log := zerowrap.FromCtx(ctx)

	n, err := tree.EnsureContainer(ctx, s.store, s.locker, parent.ID, domain.ContainerSpec{
		Name:        name,
		Description: description,
	})
	if err != nil {
		return nil, log.WrapErr(err, "failed to ensure sub container")
	}
	return n, nil
}

// OwningRelease walks the ancestors of node until it reaches the application
// and reports the release (and draft revision container) on the way.
func (s *Service) OwningRelease(ctx context.Context, node *domain.Node) (*domain.ReleaseRef, error) {
	chain := []*domain.Node{node}
	cur := node
	for depth := 0; depth < maxAncestorDepth && cur.ParentID != ""; depth++ {
		parent, err := s.store.LoadNode(ctx, cur.ParentID)
		if err != nil {
			return nil, fmt.Errorf("failed to load ancestor %s: %w", cur.ParentID, err)
		}
		if domain.IsApplication(parent) {
			ref := &domain.ReleaseRef{Application: parent, Release: cur}
			if domain.IsDraftRelease(cur, parent) && len(chain) >= 2 {
				ref.Revision = chain[len(chain)-2]
			}
			return ref, nil
		}
		chain = append(chain, parent)
		cur = parent
	}
	return nil, fmt.Errorf("%w: no release above node %s", domain.ErrReleaseNotFound, node.ID)
}

// CreateRelease creates a stable release recording revision.
func (s *Service) CreateRelease(ctx context.Context, req domain.CreateReleaseRequest) (*domain.Node, error) {
	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:   "usecase",
		zerowrap.FieldUseCase: "CreateRelease",
		"app_id":              req.ApplicationID,
		"name":                req.Name,
		"revision":            req.Revision,
	})
	log := zerowrap.FromCtx(ctx)

	if err := validation.ValidateNodeName(req.Name); err != nil {
		return nil, &domain.ValidationError{Field: "name", Reason: err.Error()}
	}
	if domain.SameName(req.Name, domain.DraftReleaseName) {
		return nil, &domain.ValidationError{Field: "name", Reason: fmt.Sprintf("%q is reserved", domain.DraftReleaseName)}
	}
	if err := validation.ValidateNodeName(req.Revision); err != nil {
		return nil, &domain.ValidationError{Field: domain.MetaRevision, Reason: err.Error()}
	}

	app, err := tree.LoadApplication(ctx, s.store, req.ApplicationID)
	if err != nil {
		return nil, log.WrapErr(err, "failed to get application")
	}

	unlock, err := s.locker.Lock(ctx, revisionLockKey(app.ID, req.Revision))
	if err != nil {
		return nil, log.WrapErr(err, "failed to lock revision")
	}
	defer unlock()

	existing, err := s.findStable(ctx, app.ID, req.Revision)
	if err != nil {
		return nil, log.WrapErr(err, "failed to scan stable releases")
	}
	if existing != nil {
		err := fmt.Errorf("%w: release %q already records revision %q", domain.ErrAlreadyExists, existing.Name, req.Revision)
		return nil, log.WrapErr(err, "failed to create release")
	}

	rel, err := s.store.CreateContainer(ctx, app.ID, domain.ContainerSpec{
		Name:        req.Name,
		Description: req.Description,
		Public:      app.Public,
		Creator:     req.Creator,
		Meta:        domain.Metadata{domain.MetaRevision: req.Revision},
	})
	if err != nil {
		return nil, log.WrapErr(err, "failed to create release")
	}

	log.Info().Str(zerowrap.FieldEntityID, rel.ID).Msg("release created")
	return rel, nil
}

// GetReleases lists the stable releases of an application.
func (s *Service) GetReleases(ctx context.Context, appID string, page domain.Page) ([]*domain.Node, error) {
	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:   "usecase",
		zerowrap.FieldUseCase: "GetReleases",
		"app_id":              appID,
	})
	log := zerowrap.FromCtx(ctx)

	app, err := tree.LoadApplication(ctx, s.store, appID)
	if err != nil {
		return nil, log.WrapErr(err, "failed to get application")
	}

	releases, err := s.store.ListChildContainers(ctx, app.ID, domain.ListQuery{
		ExcludeName: domain.DraftReleaseName,
		Page:        defaultNewestFirst(page),
	})
	if err != nil {
		return nil, log.WrapErr(err, "failed to list releases")
	}
	return releases, nil
}

// GetRelease loads a release of an application by id or name. The draft
// release itself is addressable by its reserved name.
func (s *Service) GetRelease(ctx context.Context, appID, idOrName string) (*domain.Node, error) {
	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:   "usecase",
		zerowrap.FieldUseCase: "GetRelease",
		"app_id":              appID,
		"release":             idOrName,
	})
	log := zerowrap.FromCtx(ctx)

	app, err := tree.LoadApplication(ctx, s.store, appID)
	if err != nil {
		return nil, log.WrapErr(err, "failed to get application")
	}

	rel, err := s.releaseOf(ctx, app, idOrName)
	if err != nil {
		return nil, log.WrapErr(err, "failed to get release")
	}
	return rel, nil
}

// GetDraftRevisions lists the revision containers of the draft release,
// optionally restricted to one revision.
func (s *Service) GetDraftRevisions(ctx context.Context, appID, revision string, page domain.Page) ([]*domain.Node, error) {
	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:   "usecase",
		zerowrap.FieldUseCase: "GetDraftRevisions",
		"app_id":              appID,
	})
	log := zerowrap.FromCtx(ctx)

	app, err := tree.LoadApplication(ctx, s.store, appID)
	if err != nil {
		return nil, log.WrapErr(err, "failed to get application")
	}
	draft, err := s.draftRelease(ctx, app.ID)
	if err != nil {
		return nil, log.WrapErr(err, "failed to load draft release")
	}

	q := domain.ListQuery{Page: defaultNewestFirst(page)}
	if revision != "" {
		q.MetaEquals = map[string]string{domain.MetaRevision: revision}
	}
	revisions, err := s.store.ListChildContainers(ctx, draft.ID, q)
	if err != nil {
		return nil, log.WrapErr(err, "failed to list draft revisions")
	}
	return revisions, nil
}

// DeleteRelease deletes a stable release by id or name. A name that matches
// no stable release is looked up among the draft revision containers.
// Download counters stored on the draft release are kept.
func (s *Service) DeleteRelease(ctx context.Context, appID, idOrName string) (*domain.Node, error) {
	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:   "usecase",
		zerowrap.FieldUseCase: "DeleteRelease",
		"app_id":              appID,
		"release":             idOrName,
	})
	log := zerowrap.FromCtx(ctx)

	app, err := tree.LoadApplication(ctx, s.store, appID)
	if err != nil {
		return nil, log.WrapErr(err, "failed to get application")
	}

	target, err := s.releaseOf(ctx, app, idOrName)
	if err != nil && !errors.Is(err, domain.ErrReleaseNotFound) {
		return nil, log.WrapErr(err, "failed to resolve release")
	}
	if target != nil && target.ParentID == app.ID && target.Name == domain.DraftReleaseName {
		return nil, &domain.ValidationError{Field: "release", Reason: "the draft release cannot be deleted, delete its revisions instead"}
	}

	if target == nil {
		draft, err := s.draftRelease(ctx, app.ID)
		if err != nil {
			return nil, log.WrapErr(err, "failed to load draft release")
		}
		target, err = s.draftRevision(ctx, draft, idOrName)
		if err != nil {
			return nil, log.WrapErr(err, "failed to resolve draft revision")
		}
		if target == nil {
			return nil, log.WrapErr(fmt.Errorf("%w: %s", domain.ErrReleaseNotFound, idOrName), "failed to resolve release")
		}
	}

	files, err := s.store.DeleteNode(ctx, target.ID)
	if err != nil {
		return nil, log.WrapErr(err, "failed to delete release")
	}
	tree.ReleaseFiles(ctx, s.blobs, files)

	log.Info().
		Str(zerowrap.FieldEntityID, target.ID).
		Int(zerowrap.FieldCount, len(files)).
		Msg("release deleted")
	return target, nil
}

// releaseOf resolves a direct child of app by id or case-insensitive name.
func (s *Service) releaseOf(ctx context.Context, app *domain.Node, idOrName string) (*domain.Node, error) {
	n, err := s.childOf(ctx, app, idOrName)
	if err != nil {
		return nil, err
	}
	if n == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrReleaseNotFound, idOrName)
	}
	return n, nil
}

// childOf returns the container child of parent whose id or name is
// idOrName, or nil.
func (s *Service) childOf(ctx context.Context, parent *domain.Node, idOrName string) (*domain.Node, error) {
	if idOrName == "" {
		return nil, &domain.ValidationError{Field: "release", Reason: "id or name is required"}
	}
	n, err := s.store.LoadNode(ctx, idOrName)
	switch {
	case err == nil && n.ParentID == parent.ID && !n.Kind.IsItem():
		return n, nil
	case err != nil && !errors.Is(err, domain.ErrNodeNotFound):
		return nil, err
	}
	return tree.FindChild(ctx, s.store, parent.ID, idOrName)
}

// draftRevision resolves a revision container of draft by id or exact revision.
func (s *Service) draftRevision(ctx context.Context, draft *domain.Node, idOrRevision string) (*domain.Node, error) {
	n, err := s.store.LoadNode(ctx, idOrRevision)
	switch {
	case err == nil && n.ParentID == draft.ID && !n.Kind.IsItem():
		return n, nil
	case err != nil && !errors.Is(err, domain.ErrNodeNotFound):
		return nil, err
	}
	nodes, err := s.store.ListChildContainers(ctx, draft.ID, domain.ListQuery{
		MetaEquals: map[string]string{domain.MetaRevision: idOrRevision},
		Page:       domain.Page{Limit: 1},
	})
	if err != nil || len(nodes) == 0 {
		return nil, err
	}
	return nodes[0], nil
}

func (s *Service) findStable(ctx context.Context, appID, revision string) (*domain.Node, error) {
	nodes, err := s.store.ListChildContainers(ctx, appID, domain.ListQuery{
		ExcludeName: domain.DraftReleaseName,
		MetaEquals:  map[string]string{domain.MetaRevision: revision},
		Page:        domain.Page{Limit: 1},
	})
	if err != nil || len(nodes) == 0 {
		return nil, err
	}
	return nodes[0], nil
}

func (s *Service) draftRelease(ctx context.Context, appID string) (*domain.Node, error) {
	draft, err := tree.FindChild(ctx, s.store, appID, domain.DraftReleaseName)
	if err != nil {
		return nil, err
	}
	if draft == nil {
		return nil, fmt.Errorf("%w: application %s", domain.ErrDraftReleaseMissing, appID)
	}
	return draft, nil
}

func defaultNewestFirst(p domain.Page) domain.Page {
	if p.Sort == "" {
		p.Sort = domain.SortByCreated
		if p.SortDir == 0 {
			p.SortDir = -1
		}
	}
	return p
}
