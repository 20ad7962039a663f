package out

import (
	"context"

	"github.com/bnema/pkgvault/internal/domain"
)

// TreeStore defines the contract for the hierarchical node store that holds
// collections, folders, artifact items and their files.
//
// Container names are unique per parent, compared case-insensitively, and a
// second create with the same name returns domain.ErrAlreadyExists. Item
// unique keys are enforced store-wide and a violation returns domain.ErrConflict.
type TreeStore interface {
	// CreateContainer creates a collection (empty parentID) or folder.
	CreateContainer(ctx context.Context, parentID string, spec domain.ContainerSpec) (*domain.Node, error)

	// LoadNode loads any node by id. Returns domain.ErrNodeNotFound when absent.
	LoadNode(ctx context.Context, id string) (*domain.Node, error)

	// FindCollection loads a collection by name.
	FindCollection(ctx context.Context, name string) (*domain.Node, error)

	// ListChildContainers lists the container children of parentID.
	ListChildContainers(ctx context.Context, parentID string, q domain.ListQuery) ([]*domain.Node, error)

	// SetMetadata merges meta into the node metadata. A nil value removes the key.
	SetMetadata(ctx context.Context, id string, meta domain.Metadata) (*domain.Node, error)

	// IncrementMetadataField atomically adds amount to the numeric field at
	// path, creating intermediate maps as needed.
	IncrementMetadataField(ctx context.Context, id string, path []string, amount int64) (*domain.Node, error)

	// DeleteNode removes the node and every descendant. It returns the files
	// that were attached to removed items so their content can be released.
	DeleteNode(ctx context.Context, id string) ([]domain.File, error)

	// CreateItem creates an artifact item under parentID.
	CreateItem(ctx context.Context, parentID string, spec domain.ItemSpec) (*domain.Node, error)

	// FindItems lists artifact items matching q.
	FindItems(ctx context.Context, q domain.ItemQuery) ([]*domain.Node, error)

	// UpdateItem replaces the name, description, metadata and unique key of an item.
	UpdateItem(ctx context.Context, id string, update domain.ItemUpdate) (*domain.Node, error)

	// AttachFile records a file under an item.
	AttachFile(ctx context.Context, itemID string, file domain.File) (*domain.File, error)

	// LoadFile loads a file by id.
	LoadFile(ctx context.Context, id string) (*domain.File, error)

	// ListFiles lists the files of an item, oldest first.
	ListFiles(ctx context.Context, itemID string) ([]domain.File, error)

	// RenameFile changes a file display name.
	RenameFile(ctx context.Context, id, name string) error

	// RemoveFile deletes a file record and returns it.
	RemoveFile(ctx context.Context, id string) (*domain.File, error)
}
