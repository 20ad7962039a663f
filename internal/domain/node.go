package domain

import (
	"strings"
	"time"
)

// NodeKind identifies what a tree node holds.
type NodeKind string

const (
	NodeCollection NodeKind = "collection"
	NodeFolder     NodeKind = "folder"
	NodePackage    NodeKind = "package"
	NodeExtension  NodeKind = "extension"
)

// IsItem reports whether the kind is a leaf artifact item.
func (k NodeKind) IsItem() bool {
	return k == NodePackage || k == NodeExtension
}

// Reserved names inside the tree.
const (
	DefaultCollectionName = "Applications"
	TopLevelFolderName    = "packages"
	DraftReleaseName      = "draft"
	ExtensionsFolderName  = "extensions"

	DraftReleaseDescription = "Uploaded each night, always up-to-date"
	ExtensionsDescription   = "This directory contains all the extensions packages"
)

// Metadata keys with a fixed meaning.
const (
	MetaRevision            = "revision"
	MetaAppRevision         = "app_revision"
	MetaAppID               = "app_id"
	MetaBaseName            = "baseName"
	MetaOS                  = "os"
	MetaArch                = "arch"
	MetaRelease             = "release"
	MetaDescription         = "description"
	MetaDownloadStats       = "downloadStats"
	MetaApplicationTemplate = "applicationPackageNameTemplate"
	MetaExtensionTemplate   = "extensionPackageNameTemplate"
)

// Metadata is the free-form key/value map attached to a node.
type Metadata map[string]any

// String returns the value at key if it is a string.
func (m Metadata) String(key string) string {
	if m == nil {
		return ""
	}
	s, _ := m[key].(string)
	return s
}

// Has reports whether key is present.
func (m Metadata) Has(key string) bool {
	if m == nil {
		return false
	}
	_, ok := m[key]
	return ok
}

// Clone returns a shallow copy of m.
func (m Metadata) Clone() Metadata {
	out := make(Metadata, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// Node is a container (collection or folder) or an artifact item in the tree store.
type Node struct {
	ID          string
	ParentID    string
	Kind        NodeKind
	Name        string
	Description string
	Public      bool
	Creator     string
	Meta        Metadata
	Created     time.Time
	Updated     time.Time
}

// File is a binary content blob attached to an item node.
type File struct {
	ID       string
	ItemID   string
	Name     string
	BlobKey  string
	Size     int64
	SHA512   string
	MimeType string
	Created  time.Time
}

// ContainerSpec describes a container to create.
type ContainerSpec struct {
	Kind        NodeKind
	Name        string
	Description string
	Public      bool
	Creator     string
	Meta        Metadata
	// ExactName makes the name unique among siblings case-sensitively.
	// Such containers are looked up by id or metadata, not by name.
	ExactName bool
}

// ItemSpec describes an artifact item to create. UniqueKey is enforced by the
// store across all items.
type ItemSpec struct {
	Kind        NodeKind
	Name        string
	Description string
	Creator     string
	Meta        Metadata
	UniqueKey   string
}

// ItemUpdate replaces the mutable fields of an item.
type ItemUpdate struct {
	Name        string
	Description string
	Meta        Metadata
	UniqueKey   string
}

// Sort fields accepted by list queries.
const (
	SortByName    = "name"
	SortByCreated = "created"
	SortByUpdated = "updated"
)

// Page holds paging and ordering options. A zero Limit means unbounded.
type Page struct {
	Limit   int
	Offset  int
	Sort    string
	SortDir int
}

// ListQuery filters the child containers of a node.
type ListQuery struct {
	Name        string
	ExcludeName string
	Text        string
	MetaEquals  map[string]string
	Page
}

// ItemQuery filters artifact items.
type ItemQuery struct {
	Kind       NodeKind
	ParentID   string
	ID         string
	Name       string
	Text       string
	ExcludeID  string
	MetaEquals map[string]string
	Page
}

// SameName compares node names the way the tree store enforces uniqueness.
func SameName(a, b string) bool {
	return strings.EqualFold(a, b)
}
