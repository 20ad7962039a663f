// Package artifact implements the upsert engine and lifecycle of packages
// and extensions.
package artifact

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/bnema/zerowrap"
	"github.com/google/uuid"

	"github.com/bnema/pkgvault/internal/boundaries/in"
	"github.com/bnema/pkgvault/internal/boundaries/out"
	"github.com/bnema/pkgvault/internal/domain"
	"github.com/bnema/pkgvault/internal/usecase/tree"
	"github.com/bnema/pkgvault/pkg/checksum"
	"github.com/bnema/pkgvault/pkg/validation"
)

// Ensure Service implements in.ArtifactService.
var _ in.ArtifactService = (*Service)(nil)

// Error codes reported to the metrics recorder.
const (
	CodeDuplicateArtifact = "DUPLICATE_ARTIFACT"
	CodeCorruptArtifact   = "CORRUPT_ARTIFACT"
)

// Service implements the ArtifactService interface.
type Service struct {
	store      out.TreeStore
	blobs      out.BlobStorage
	locker     out.Locker
	releases   in.ReleaseService
	stats      in.StatsService
	metrics    out.MetricsRecorder
	kinds      map[domain.NodeKind]domain.ArtifactKind
	validators map[domain.NodeKind]*validation.MetadataValidator
}

// NewService creates a new artifact service handling the given kinds.
// A nil metrics recorder disables measurements.
func NewService(
	store out.TreeStore,
	blobs out.BlobStorage,
	locker out.Locker,
	releases in.ReleaseService,
	stats in.StatsService,
	metrics out.MetricsRecorder,
	kinds ...domain.ArtifactKind,
) (*Service, error) {
	if metrics == nil {
		metrics = nopMetrics{}
	}
	s := &Service{
		store:      store,
		blobs:      blobs,
		locker:     locker,
		releases:   releases,
		stats:      stats,
		metrics:    metrics,
		kinds:      make(map[domain.NodeKind]domain.ArtifactKind, len(kinds)),
		validators: make(map[domain.NodeKind]*validation.MetadataValidator, len(kinds)),
	}
	for _, k := range kinds {
		v, err := validation.NewMetadataValidator(k)
		if err != nil {
			return nil, fmt.Errorf("failed to build %s validator: %w", k.Node, err)
		}
		s.kinds[k.Node] = k
		s.validators[k.Node] = v
	}
	return s, nil
}

func artifactLockKey(containerID, identity string) string {
	return "artifact:" + containerID + ":" + identity
}

// Upsert validates the metadata, resolves the owning release container and
// creates the artifact or updates the single existing one sharing its
// identity. Content, when given, replaces the previous file.
func (s *Service) Upsert(ctx context.Context, kind domain.ArtifactKind, req domain.UpsertArtifactRequest) (*domain.Artifact, bool, error) {
	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:   "usecase",
		zerowrap.FieldUseCase: "UpsertArtifact",
		"kind":                string(kind.Node),
		"app_id":              req.ApplicationID,
	})
	log := zerowrap.FromCtx(ctx)

	validator, ok := s.validators[kind.Node]
	if !ok {
		return nil, false, log.WrapErr(fmt.Errorf("%w: unsupported artifact kind %q", domain.ErrValidation, kind.Node), "failed to upsert artifact")
	}
	meta, err := validator.Validate(req.Meta)
	if err != nil {
		return nil, false, log.WrapErr(err, "failed to validate metadata")
	}
	if meta.String(domain.MetaAppID) != req.ApplicationID {
		return nil, false, &domain.ValidationError{Field: domain.MetaAppID, Reason: "does not match the application"}
	}

	app, err := tree.LoadApplication(ctx, s.store, req.ApplicationID)
	if err != nil {
		return nil, false, log.WrapErr(err, "failed to get application")
	}

	container, err := s.releases.ResolveReleaseContainer(ctx, app, meta.String(kind.ReleaseField))
	if err != nil {
		return nil, false, log.WrapErr(err, "failed to resolve release container")
	}
	ref, err := s.releases.OwningRelease(ctx, container)
	if err != nil {
		return nil, false, log.WrapErr(err, "failed to resolve owning release")
	}
	if kind.SubContainer != "" {
		container, err = s.releases.EnsureSubContainer(ctx, container, kind.SubContainer, domain.ExtensionsDescription)
		if err != nil {
			return nil, false, log.WrapErr(err, "failed to resolve sub container")
		}
	}

	template := app.Meta.String(kind.TemplateKey)
	if template == "" {
		template = kind.DefaultTemplate
	}
	name, err := domain.RenderName(template, meta)
	if err != nil {
		return nil, false, log.WrapErr(err, "failed to render artifact name")
	}
	meta[domain.MetaRelease] = ref.Release.Name

	identity := kind.Identity(meta)
	unlock, err := s.locker.Lock(ctx, artifactLockKey(container.ID, identity))
	if err != nil {
		return nil, false, log.WrapErr(err, "failed to lock artifact identity")
	}
	defer unlock()

	existing, err := s.store.FindItems(ctx, domain.ItemQuery{
		Kind:       kind.Node,
		ParentID:   container.ID,
		MetaEquals: kind.IdentityFilter(meta),
	})
	if err != nil {
		return nil, false, log.WrapErr(err, "failed to scan existing artifacts")
	}

	var (
		item    *domain.Node
		created bool
	)
	switch len(existing) {
	case 0:
		item, err = s.store.CreateItem(ctx, container.ID, domain.ItemSpec{
			Kind:        kind.Node,
			Name:        name,
			Description: meta.String(domain.MetaDescription),
			Creator:     req.Creator,
			Meta:        meta,
			UniqueKey:   kind.UniqueKey(app.ID, name, meta),
		})
		if err != nil {
			return nil, false, log.WrapErr(err, "failed to create artifact")
		}
		created = true
	case 1:
		files, err := s.store.ListFiles(ctx, existing[0].ID)
		if err != nil {
			return nil, false, log.WrapErr(err, "failed to list artifact files")
		}
		if len(files) == 0 {
			s.metrics.IntegrityError(ctx, kind.Route, CodeCorruptArtifact)
			return nil, false, log.WrapErr(&domain.CorruptArtifactError{ArtifactID: existing[0].ID}, "failed to update artifact")
		}
		item, err = s.store.UpdateItem(ctx, existing[0].ID, domain.ItemUpdate{
			Name:        name,
			Description: meta.String(domain.MetaDescription),
			Meta:        meta,
			UniqueKey:   kind.UniqueKey(app.ID, name, meta),
		})
		if err != nil {
			return nil, false, log.WrapErr(err, "failed to update artifact")
		}
	default:
		s.metrics.IntegrityError(ctx, kind.Route, CodeDuplicateArtifact)
		dup := &domain.DuplicateArtifactError{ContainerID: container.ID, Identity: identity, Count: len(existing)}
		return nil, false, log.WrapErr(dup, "failed to upsert artifact")
	}

	var size int64
	if req.Content != nil {
		f, err := s.replaceContent(ctx, item, req.Content)
		if err != nil {
			if created {
				s.discardItem(ctx, item.ID)
			}
			return nil, false, log.WrapErr(err, "failed to store artifact content")
		}
		size = f.Size
	}

	artifact, err := s.withFiles(ctx, item)
	if err != nil {
		return nil, false, log.WrapErr(err, "failed to list artifact files")
	}

	s.metrics.ArtifactUploaded(ctx, kind.Route, created, size)
	log.Info().
		Str(zerowrap.FieldEntityID, item.ID).
		Str("name", item.Name).
		Bool("created", created).
		Msg("artifact saved")

	return artifact, created, nil
}

// AttachContent replaces the content of an existing artifact.
func (s *Service) AttachContent(ctx context.Context, kind domain.ArtifactKind, appID, id string, upload *domain.Upload) (*domain.Artifact, error) {
	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:    "usecase",
		zerowrap.FieldUseCase:  "AttachContent",
		zerowrap.FieldEntityID: id,
		"kind":                 string(kind.Node),
		"app_id":               appID,
	})
	log := zerowrap.FromCtx(ctx)

	if upload == nil || upload.Body == nil {
		return nil, &domain.ValidationError{Field: "file", Reason: "is required"}
	}

	current, err := s.GetArtifact(ctx, kind, appID, id)
	if err != nil {
		return nil, err
	}

	unlock, err := s.locker.Lock(ctx, artifactLockKey(current.ParentID, kind.Identity(current.Meta)))
	if err != nil {
		return nil, log.WrapErr(err, "failed to lock artifact identity")
	}
	defer unlock()

	f, err := s.replaceContent(ctx, current.Node, upload)
	if err != nil {
		return nil, log.WrapErr(err, "failed to store artifact content")
	}

	artifact, err := s.withFiles(ctx, current.Node)
	if err != nil {
		return nil, log.WrapErr(err, "failed to list artifact files")
	}

	s.metrics.ArtifactUploaded(ctx, kind.Route, false, f.Size)
	log.Info().Str("file_id", f.ID).Int64(zerowrap.FieldSize, f.Size).Msg("artifact content replaced")
	return artifact, nil
}

// GetArtifact loads an artifact of the given kind belonging to appID.
func (s *Service) GetArtifact(ctx context.Context, kind domain.ArtifactKind, appID, id string) (*domain.Artifact, error) {
	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:    "usecase",
		zerowrap.FieldUseCase:  "GetArtifact",
		zerowrap.FieldEntityID: id,
		"kind":                 string(kind.Node),
		"app_id":               appID,
	})
	log := zerowrap.FromCtx(ctx)

	app, err := tree.LoadApplication(ctx, s.store, appID)
	if err != nil {
		return nil, log.WrapErr(err, "failed to get application")
	}
	item, err := s.loadItem(ctx, kind, app, id)
	if err != nil {
		return nil, log.WrapErr(err, "failed to get artifact")
	}
	artifact, err := s.withFiles(ctx, item)
	if err != nil {
		return nil, log.WrapErr(err, "failed to list artifact files")
	}
	return artifact, nil
}

// ListArtifacts lists the artifacts of an application. A release filter
// restricts the listing to that release; on the draft release either one
// revision or every revision container is scanned, honoring one global limit.
func (s *Service) ListArtifacts(ctx context.Context, kind domain.ArtifactKind, appID string, filter domain.ArtifactFilter) ([]*domain.Artifact, error) {
	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:   "usecase",
		zerowrap.FieldUseCase: "ListArtifacts",
		"kind":                string(kind.Node),
		"app_id":              appID,
	})
	log := zerowrap.FromCtx(ctx)

	app, err := tree.LoadApplication(ctx, s.store, appID)
	if err != nil {
		return nil, log.WrapErr(err, "failed to get application")
	}

	if filter.ID != "" {
		item, err := s.loadItem(ctx, kind, app, filter.ID)
		if err != nil {
			if errors.Is(err, domain.ErrArtifactNotFound) {
				return []*domain.Artifact{}, nil
			}
			return nil, log.WrapErr(err, "failed to get artifact")
		}
		artifact, err := s.withFiles(ctx, item)
		if err != nil {
			return nil, log.WrapErr(err, "failed to list artifact files")
		}
		return []*domain.Artifact{artifact}, nil
	}

	q := domain.ItemQuery{
		Kind:       kind.Node,
		Name:       filter.Name,
		Text:       filter.Text,
		MetaEquals: metaFilter(filter),
		Page:       defaultNewestFirst(filter.Page),
	}

	var items []*domain.Node
	if filter.ReleaseIDOrName == "" {
		q.MetaEquals[domain.MetaAppID] = app.ID
		items, err = s.store.FindItems(ctx, q)
		if err != nil {
			return nil, log.WrapErr(err, "failed to list artifacts")
		}
	} else {
		containers, err := s.releaseContainers(ctx, kind, app, filter)
		if err != nil {
			return nil, log.WrapErr(err, "failed to resolve release")
		}
		items, err = s.collect(ctx, kind, containers, q)
		if err != nil {
			return nil, log.WrapErr(err, "failed to list artifacts")
		}
	}

	artifacts := make([]*domain.Artifact, 0, len(items))
	for _, item := range items {
		a, err := s.withFiles(ctx, item)
		if err != nil {
			return nil, log.WrapErr(err, "failed to list artifact files")
		}
		artifacts = append(artifacts, a)
	}
	return artifacts, nil
}

// DeleteArtifact removes an artifact and its content. Download counters are
// stored on the release and are left untouched.
func (s *Service) DeleteArtifact(ctx context.Context, kind domain.ArtifactKind, appID, id string) (*domain.Artifact, error) {
	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:    "usecase",
		zerowrap.FieldUseCase:  "DeleteArtifact",
		zerowrap.FieldEntityID: id,
		"kind":                 string(kind.Node),
		"app_id":               appID,
	})
	log := zerowrap.FromCtx(ctx)

	artifact, err := s.GetArtifact(ctx, kind, appID, id)
	if err != nil {
		return nil, err
	}

	files, err := s.store.DeleteNode(ctx, artifact.ID)
	if err != nil {
		return nil, log.WrapErr(err, "failed to delete artifact")
	}
	tree.ReleaseFiles(ctx, s.blobs, files)

	log.Info().Int(zerowrap.FieldCount, len(files)).Msg("artifact deleted")
	return artifact, nil
}

// OpenContent opens the current file of an artifact for streaming.
func (s *Service) OpenContent(ctx context.Context, kind domain.ArtifactKind, appID, id string) (*domain.Content, error) {
	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:    "usecase",
		zerowrap.FieldUseCase:  "OpenContent",
		zerowrap.FieldEntityID: id,
		"kind":                 string(kind.Node),
		"app_id":               appID,
	})
	log := zerowrap.FromCtx(ctx)

	artifact, err := s.GetArtifact(ctx, kind, appID, id)
	if err != nil {
		return nil, err
	}
	if len(artifact.Files) == 0 {
		s.metrics.IntegrityError(ctx, kind.Route, CodeCorruptArtifact)
		return nil, log.WrapErr(&domain.CorruptArtifactError{ArtifactID: artifact.ID}, "failed to open artifact content")
	}

	file := artifact.Files[len(artifact.Files)-1]
	body, err := s.blobs.GetBlob(ctx, file.BlobKey)
	if err != nil {
		if errors.Is(err, domain.ErrBlobNotFound) {
			s.metrics.IntegrityError(ctx, kind.Route, CodeCorruptArtifact)
			err = fmt.Errorf("%w: %w", &domain.CorruptArtifactError{ArtifactID: artifact.ID}, err)
		}
		return nil, log.WrapErr(err, "failed to open artifact content")
	}

	return &domain.Content{Artifact: artifact, File: file, Body: body}, nil
}

// DownloadCompleted counts a fully served file on the release owning its artifact.
func (s *Service) DownloadCompleted(ctx context.Context, fileID string) error {
	ctx = zerowrap.CtxWithFields(ctx, map[string]any{
		zerowrap.FieldLayer:   "usecase",
		zerowrap.FieldUseCase: "DownloadCompleted",
		"file_id":             fileID,
	})
	log := zerowrap.FromCtx(ctx)

	f, err := s.store.LoadFile(ctx, fileID)
	if err != nil {
		return log.WrapErr(err, "failed to load file")
	}
	item, err := s.store.LoadNode(ctx, f.ItemID)
	if err != nil {
		return log.WrapErr(err, "failed to load artifact")
	}
	kind, ok := s.kinds[item.Kind]
	if !ok {
		return log.WrapErr(fmt.Errorf("%w: %s", domain.ErrArtifactNotFound, item.ID), "failed to record download")
	}

	if err := s.stats.RecordDownload(ctx, item); err != nil {
		return log.WrapErr(err, "failed to record download")
	}
	s.metrics.ArtifactDownloaded(ctx, kind.Route, f.Size)
	return nil
}

// discardItem removes an item created by a call that then failed, so the
// identity stays free for a retry.
func (s *Service) discardItem(ctx context.Context, id string) {
	files, err := s.store.DeleteNode(context.WithoutCancel(ctx), id)
	if err != nil {
		log := zerowrap.FromCtx(ctx)
		log.Warn().Err(err).Str(zerowrap.FieldEntityID, id).Msg("failed to discard incomplete artifact")
		return
	}
	tree.ReleaseFiles(ctx, s.blobs, files)
}

// replaceContent stores upload as a new file of item, then removes the
// superseded files and renames the survivor after the item.
func (s *Service) replaceContent(ctx context.Context, item *domain.Node, upload *domain.Upload) (*domain.File, error) {
	log := zerowrap.FromCtx(ctx)

	previous, err := s.store.ListFiles(ctx, item.ID)
	if err != nil {
		return nil, err
	}

	key := uuid.NewString()
	sum := checksum.NewSHA512Reader(upload.Body)
	written, err := s.blobs.PutBlob(ctx, key, sum, upload.Size)
	if err != nil {
		return nil, err
	}

	filename := upload.Filename
	if filename == "" {
		filename = item.Name
	}
	f, err := s.store.AttachFile(ctx, item.ID, domain.File{
		Name:     filename,
		BlobKey:  key,
		Size:     written,
		SHA512:   sum.Sum(),
		MimeType: upload.MimeType,
	})
	if err != nil {
		if derr := s.blobs.DeleteBlob(ctx, key); derr != nil {
			log.Warn().Err(derr).Str("blob_key", key).Msg("failed to delete orphaned blob")
		}
		return nil, err
	}

	var removed []domain.File
	for _, old := range previous {
		r, err := s.store.RemoveFile(ctx, old.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to remove superseded file %s: %w", old.ID, err)
		}
		removed = append(removed, *r)
	}
	tree.ReleaseFiles(ctx, s.blobs, removed)

	name := item.Name + filepath.Ext(filename)
	if f.Name != name {
		if err := s.store.RenameFile(ctx, f.ID, name); err != nil {
			return nil, err
		}
		f.Name = name
	}
	return f, nil
}

// loadItem loads id and checks it is an artifact of kind owned by app.
func (s *Service) loadItem(ctx context.Context, kind domain.ArtifactKind, app *domain.Node, id string) (*domain.Node, error) {
	if id == "" {
		return nil, &domain.ValidationError{Field: "id", Reason: "is required"}
	}
	item, err := s.store.LoadNode(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNodeNotFound) {
			return nil, fmt.Errorf("%w: %s", domain.ErrArtifactNotFound, id)
		}
		return nil, err
	}
	if item.Kind != kind.Node || item.Meta.String(domain.MetaAppID) != app.ID {
		return nil, fmt.Errorf("%w: %s", domain.ErrArtifactNotFound, id)
	}
	return item, nil
}

func (s *Service) withFiles(ctx context.Context, item *domain.Node) (*domain.Artifact, error) {
	files, err := s.store.ListFiles(ctx, item.ID)
	if err != nil {
		return nil, err
	}
	return &domain.Artifact{Node: item, Files: files}, nil
}

// releaseContainers returns the containers holding the artifacts of the
// release named in filter, in scan order.
func (s *Service) releaseContainers(ctx context.Context, kind domain.ArtifactKind, app *domain.Node, filter domain.ArtifactFilter) ([]*domain.Node, error) {
	rel, err := s.releases.GetRelease(ctx, app.ID, filter.ReleaseIDOrName)
	if err != nil {
		return nil, err
	}

	containers := []*domain.Node{rel}
	if domain.IsDraftRelease(rel, app) {
		revision := filter.Revision
		if kind.ReleaseField == domain.MetaAppRevision {
			revision = filter.AppRevision
		}
		containers, err = s.releases.GetDraftRevisions(ctx, app.ID, revision, domain.Page{})
		if err != nil {
			return nil, err
		}
	}

	if kind.SubContainer == "" {
		return containers, nil
	}
	subs := make([]*domain.Node, 0, len(containers))
	for _, c := range containers {
		sub, err := tree.FindChild(ctx, s.store, c.ID, kind.SubContainer)
		if err != nil {
			return nil, err
		}
		if sub != nil {
			subs = append(subs, sub)
		}
	}
	return subs, nil
}

// collect runs q against each container in order. Offset and limit apply to
// the merged result and the scan stops once the limit is reached.
func (s *Service) collect(ctx context.Context, kind domain.ArtifactKind, containers []*domain.Node, q domain.ItemQuery) ([]*domain.Node, error) {
	skip, limit := q.Offset, q.Limit
	var items []*domain.Node
	for _, c := range containers {
		if limit > 0 && len(items) >= limit {
			break
		}
		cq := q
		cq.ParentID = c.ID
		cq.Offset = 0
		cq.Limit = 0
		if limit > 0 {
			cq.Limit = skip + limit - len(items)
		}
		found, err := s.store.FindItems(ctx, cq)
		if err != nil {
			return nil, err
		}
		if skip > 0 {
			n := min(skip, len(found))
			found = found[n:]
			skip -= n
		}
		items = append(items, found...)
	}
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	log := zerowrap.FromCtx(ctx)
	log.Debug().
		Int("containers", len(containers)).
		Int(zerowrap.FieldCount, len(items)).
		Str("kind", string(kind.Node)).
		Msg("artifacts collected")
	return items, nil
}

func metaFilter(f domain.ArtifactFilter) map[string]string {
	m := map[string]string{}
	for key, value := range map[string]string{
		domain.MetaOS:          f.OS,
		domain.MetaArch:        f.Arch,
		domain.MetaBaseName:    f.BaseName,
		domain.MetaRevision:    f.Revision,
		domain.MetaAppRevision: f.AppRevision,
	} {
		if value != "" {
			m[key] = value
		}
	}
	return m
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

type nopMetrics struct{}

func (nopMetrics) ArtifactUploaded(context.Context, string, bool, int64) {}
func (nopMetrics) ArtifactDownloaded(context.Context, string, int64)     {}
func (nopMetrics) IntegrityError(context.Context, string, string)        {}
