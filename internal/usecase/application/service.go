// Package application implements application registration and listing.
package application

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

// Ensure Service implements in.ApplicationService.
var _ in.ApplicationService = (*Service)(nil)

// Config holds the application defaults.
type Config struct {
	CollectionName      string
	ApplicationTemplate string
	ExtensionTemplate   string
}

// Service implements the ApplicationService interface.
type Service struct {
	store  out.TreeStore
	blobs  out.BlobStorage
	locker out.Locker
	config Config
}

// NewService creates a new application service.
func NewService(store out.TreeStore, blobs out.BlobStorage, locker out.Locker, config Config) *Service {
	if config.CollectionName == "" {
		config.CollectionName = domain.DefaultCollectionName
	}
	if config.ApplicationTemplate == "" {
		config.ApplicationTemplate = domain.DefaultApplicationTemplate
	}
	if config.ExtensionTemplate == "" {
		config.ExtensionTemplate = domain.DefaultExtensionTemplate
	}
	return &Service{
		store:  store,
		blobs:  blobs,
		locker: locker,
		config: config,
	}
}

// CreateApplication registers an application under the packages folder of
// its collection and creates its draft release.
func (s *Service) CreateApplication(ctx context.Context, req domain.CreateApplicationRequest) (*domain.Node, error) {
	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:   "usecase",
		zerowrap.FieldUseCase: "CreateApplication",
		"name":                req.Name,
	})
	log := zerowrap.FromCtx(ctx)

	if err := validation.ValidateNodeName(req.Name); err != nil {
		return nil, &domain.ValidationError{Field: "name", Reason: err.Error()}
	}

	appTemplate := firstNonEmpty(req.ApplicationTemplate, s.config.ApplicationTemplate)
	extTemplate := firstNonEmpty(req.ExtensionTemplate, s.config.ExtensionTemplate)
	for _, tpl := range []string{appTemplate, extTemplate} {
		if err := domain.ValidateTemplate(tpl); err != nil {
			return nil, err
		}
	}

	collection, err := s.resolveCollection(ctx, req.CollectionID, req.CollectionName, true)
	if err != nil {
		return nil, log.WrapErr(err, "failed to resolve collection")
	}

	top, err := tree.EnsureContainer(ctx, s.store, s.locker, collection.ID, domain.ContainerSpec{
		Name:    domain.TopLevelFolderName,
		Creator: req.Creator,
	})
	if err != nil {
		return nil, log.WrapErr(err, "failed to resolve packages folder")
	}

	app, err := s.store.CreateContainer(ctx, top.ID, domain.ContainerSpec{
		Name:        req.Name,
		Description: req.Description,
		Public:      req.Public,
		Creator:     req.Creator,
		Meta: domain.Metadata{
			domain.MetaApplicationTemplate: appTemplate,
			domain.MetaExtensionTemplate:   extTemplate,
		},
	})
	if err != nil {
		return nil, log.WrapErr(err, "failed to create application")
	}

	if _, err := s.store.CreateContainer(ctx, app.ID, domain.ContainerSpec{
		Name:        domain.DraftReleaseName,
		Description: domain.DraftReleaseDescription,
		Public:      req.Public,
		Creator:     req.Creator,
	}); err != nil {
		if files, derr := s.store.DeleteNode(context.WithoutCancel(ctx), app.ID); derr != nil {
			log.Warn().Err(derr).Str(zerowrap.FieldEntityID, app.ID).Msg("failed to discard application without draft release")
		} else {
			tree.ReleaseFiles(ctx, s.blobs, files)
		}
		return nil, log.WrapErr(err, "failed to create draft release")
	}

	log.Info().Str(zerowrap.FieldEntityID, app.ID).Msg("application created")
	return app, nil
}

// GetApplication loads an application by id.
func (s *Service) GetApplication(ctx context.Context, id string) (*domain.Node, error) {
	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:    "usecase",
		zerowrap.FieldUseCase:  "GetApplication",
		zerowrap.FieldEntityID: id,
	})
	log := zerowrap.FromCtx(ctx)

	app, err := tree.LoadApplication(ctx, s.store, id)
	if err != nil {
		return nil, log.WrapErr(err, "failed to get application")
	}
	return app, nil
}

// ListApplications lists the applications of a collection. A missing
// collection or packages folder yields an empty list.
func (s *Service) ListApplications(ctx context.Context, q domain.ApplicationQuery) ([]*domain.Node, error) {
	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:   "usecase",
		zerowrap.FieldUseCase: "ListApplications",
	})
	log := zerowrap.FromCtx(ctx)

	if q.ID != "" {
		app, err := tree.LoadApplication(ctx, s.store, q.ID)
		if err != nil {
			return nil, log.WrapErr(err, "failed to get application")
		}
		return []*domain.Node{app}, nil
	}

	collection, err := s.resolveCollection(ctx, q.CollectionID, q.CollectionName, false)
	if err != nil {
		if errors.Is(err, domain.ErrCollectionNotFound) {
			return []*domain.Node{}, nil
		}
		return nil, log.WrapErr(err, "failed to resolve collection")
	}

	top, err := tree.FindChild(ctx, s.store, collection.ID, domain.TopLevelFolderName)
	if err != nil {
		return nil, log.WrapErr(err, "failed to resolve packages folder")
	}
	if top == nil {
		return []*domain.Node{}, nil
	}

	page := q.Page
	if page.Sort == "" {
		page.Sort = domain.SortByName
		if page.SortDir == 0 {
			page.SortDir = 1
		}
	}
	nodes, err := s.store.ListChildContainers(ctx, top.ID, domain.ListQuery{
		Name: q.Name,
		Text: q.Text,
		Page: page,
	})
	if err != nil {
		return nil, log.WrapErr(err, "failed to list applications")
	}

	apps := make([]*domain.Node, 0, len(nodes))
	for _, n := range nodes {
		if domain.IsApplication(n) {
			apps = append(apps, n)
		}
	}
	return apps, nil
}

// DeleteApplication removes an application with all of its releases,
// artifacts and files.
func (s *Service) DeleteApplication(ctx context.Context, id string) (*domain.Node, error) {
	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:    "usecase",
		zerowrap.FieldUseCase:  "DeleteApplication",
		zerowrap.FieldEntityID: id,
	})
	log := zerowrap.FromCtx(ctx)

	app, err := tree.LoadApplication(ctx, s.store, id)
	if err != nil {
		return nil, log.WrapErr(err, "failed to get application")
	}

	files, err := s.store.DeleteNode(ctx, app.ID)
	if err != nil {
		return nil, log.WrapErr(err, "failed to delete application")
	}
	tree.ReleaseFiles(ctx, s.blobs, files)

	log.Info().Int(zerowrap.FieldCount, len(files)).Msg("application deleted")
	return app, nil
}

// resolveCollection loads a collection by id, else by name (the configured
// default when empty). With create set, a missing named collection is created.
func (s *Service) resolveCollection(ctx context.Context, id, name string, create bool) (*domain.Node, error) {
	if id != "" {
		n, err := s.store.LoadNode(ctx, id)
		if err != nil {
			if errors.Is(err, domain.ErrNodeNotFound) {
				return nil, fmt.Errorf("%w: %s", domain.ErrCollectionNotFound, id)
			}
			return nil, err
		}
		if n.Kind != domain.NodeCollection {
			return nil, fmt.Errorf("%w: %s", domain.ErrCollectionNotFound, id)
		}
		return n, nil
	}

	name = firstNonEmpty(name, s.config.CollectionName)
	n, err := s.store.FindCollection(ctx, name)
	if err == nil || !create || !errors.Is(err, domain.ErrCollectionNotFound) {
		return n, err
	}

	unlock, err := s.locker.Lock(ctx, tree.ContainerLockKey("", name))
	if err != nil {
		return nil, fmt.Errorf("failed to lock collection %q: %w", name, err)
	}
	defer unlock()

	if n, err := s.store.FindCollection(ctx, name); !errors.Is(err, domain.ErrCollectionNotFound) {
		return n, err
	}

	n, err = s.store.CreateContainer(ctx, "", domain.ContainerSpec{Kind: domain.NodeCollection, Name: name})
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, fmt.Errorf("%w: collection %q was created concurrently", domain.ErrConflict, name)
		}
		return nil, err
	}
	return n, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
