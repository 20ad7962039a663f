// Package tree holds the find-or-create and lookup helpers shared by the
// application, release and artifact use cases.
package tree

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/zerowrap"

	"github.com/bnema/pkgvault/internal/boundaries/out"
	"github.com/bnema/pkgvault/internal/domain"
)

// ContainerLockKey is the lock key guarding the creation of a named child.
func ContainerLockKey(parentID, name string) string {
	return "container:" + parentID + ":" + strings.ToLower(name)
}

// FindChild returns the container child of parentID named name, or nil.
func FindChild(ctx context.Context, store out.TreeStore, parentID, name string) (*domain.Node, error) {
	nodes, err := store.ListChildContainers(ctx, parentID, domain.ListQuery{Name: name, Page: domain.Page{Limit: 1}})
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, nil
	}
	return nodes[0], nil
}

// EnsureContainer returns the child of parentID named spec.Name, creating it
// when absent. Creation runs under the container lock; a uniqueness violation
// from the store means another writer won the race and is reported as
// domain.ErrConflict.
func EnsureContainer(ctx context.Context, store out.TreeStore, locker out.Locker, parentID string, spec domain.ContainerSpec) (*domain.Node, error) {
	if n, err := FindChild(ctx, store, parentID, spec.Name); err != nil || n != nil {
		return n, err
	}

	unlock, err := locker.Lock(ctx, ContainerLockKey(parentID, spec.Name))
	if err != nil {
		return nil, fmt.Errorf("failed to lock container %q: %w", spec.Name, err)
	}
	defer unlock()

	if n, err := FindChild(ctx, store, parentID, spec.Name); err != nil || n != nil {
		return n, err
	}

	n, err := store.CreateContainer(ctx, parentID, spec)
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, fmt.Errorf("%w: container %q was created concurrently", domain.ErrConflict, spec.Name)
		}
		return nil, err
	}

	log := zerowrap.FromCtx(ctx)
	log.Info().
		Str(zerowrap.FieldEntityID, n.ID).
		Str("name", n.Name).
		Msg("container created")

	return n, nil
}

// LoadApplication loads an application container by id.
func LoadApplication(ctx context.Context, store out.TreeStore, id string) (*domain.Node, error) {
	if id == "" {
		return nil, &domain.ValidationError{Field: "app_id", Reason: "is required"}
	}
	n, err := store.LoadNode(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNodeNotFound) {
			return nil, fmt.Errorf("%w: %s", domain.ErrApplicationNotFound, id)
		}
		return nil, err
	}
	if !domain.IsApplication(n) {
		return nil, fmt.Errorf("%w: %s", domain.ErrApplicationNotFound, id)
	}
	return n, nil
}

// ReleaseFiles deletes the content of removed files. Failures are logged and
// leave an orphaned blob behind.
func ReleaseFiles(ctx context.Context, blobs out.BlobStorage, files []domain.File) {
	log := zerowrap.FromCtx(ctx)
	for _, f := range files {
		if f.BlobKey == "" {
			continue
		}
		if err := blobs.DeleteBlob(ctx, f.BlobKey); err != nil {
			log.Warn().Err(err).Str("blob_key", f.BlobKey).Msg("failed to delete blob")
		}
	}
}
