package domain

import (
	"sort"
	"strings"
)

// ArtifactKind describes how one family of artifacts is validated, named,
// placed and counted. Packages and extensions share one upsert engine that is
// parameterized by this descriptor.
type ArtifactKind struct {
	Node NodeKind
	// Route is the path segment used by the HTTP API.
	Route string
	// StatsBucket is the download counter bucket ("applications" or "extensions").
	StatsBucket string
	// TemplateKey is the application metadata key holding the naming template.
	TemplateKey     string
	DefaultTemplate string
	// ReleaseField selects the metadata field used to resolve the owning release.
	ReleaseField   string
	RequiredFields []string
	OptionalFields []string
	BoolFields     []string
	IdentityFields []string
	// SubContainer, when set, nests artifacts one level below the release.
	SubContainer string
}

// Default field sets. Extension fields can be overridden by configuration.
var (
	PackageRequiredFields = []string{
		MetaAppID, MetaOS, MetaArch, "repository_type", "repository_url", MetaRevision, MetaBaseName,
	}
	PackageOptionalFields = []string{
		"version", "pre_release", "build_date", MetaDescription,
	}
	ExtensionRequiredFields = []string{
		MetaAppID, MetaOS, MetaArch, "repository_type", "repository_url", MetaRevision, MetaAppRevision,
		MetaBaseName, MetaDescription,
	}
	ExtensionOptionalFields = []string{
		"icon_url", "development_status", "category", "enabled", "homepage", "screenshots",
		"contributors", "dependency", "license", "packagetype", "codebase",
	}
)

// PackageKind returns the descriptor for application packages.
func PackageKind() ArtifactKind {
	return ArtifactKind{
		Node:            NodePackage,
		Route:           "package",
		StatsBucket:     "applications",
		TemplateKey:     MetaApplicationTemplate,
		DefaultTemplate: DefaultApplicationTemplate,
		ReleaseField:    MetaRevision,
		RequiredFields:  PackageRequiredFields,
		OptionalFields:  PackageOptionalFields,
		BoolFields:      []string{"pre_release"},
		IdentityFields:  []string{MetaBaseName, MetaOS, MetaArch, MetaRevision},
	}
}

// ExtensionKind returns the descriptor for extensions. Nil field sets fall
// back to the defaults.
func ExtensionKind(required, optional []string) ArtifactKind {
	if len(required) == 0 {
		required = ExtensionRequiredFields
	}
	if optional == nil {
		optional = ExtensionOptionalFields
	}
	return ArtifactKind{
		Node:            NodeExtension,
		Route:           "extension",
		StatsBucket:     "extensions",
		TemplateKey:     MetaExtensionTemplate,
		DefaultTemplate: DefaultExtensionTemplate,
		ReleaseField:    MetaAppRevision,
		RequiredFields:  required,
		OptionalFields:  optional,
		BoolFields:      []string{"enabled"},
		IdentityFields:  []string{MetaBaseName, MetaOS, MetaArch, MetaAppRevision},
		SubContainer:    ExtensionsFolderName,
	}
}

// AllowedFields returns the union of required and optional fields, sorted.
func (k ArtifactKind) AllowedFields() []string {
	seen := make(map[string]struct{}, len(k.RequiredFields)+len(k.OptionalFields))
	var out []string
	for _, f := range append(append([]string{}, k.RequiredFields...), k.OptionalFields...) {
		if _, ok := seen[f]; ok {
			continue
		}
		seen[f] = struct{}{}
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

// ExtraFields returns metadata keys the kind does not accept, sorted.
func (k ArtifactKind) ExtraFields(meta Metadata) []string {
	allowed := make(map[string]struct{})
	for _, f := range k.AllowedFields() {
		allowed[f] = struct{}{}
	}
	var extra []string
	for key := range meta {
		if _, ok := allowed[key]; !ok {
			extra = append(extra, key)
		}
	}
	sort.Strings(extra)
	return extra
}

// IsBool reports whether field carries a boolean value.
func (k ArtifactKind) IsBool(field string) bool {
	for _, f := range k.BoolFields {
		if f == field {
			return true
		}
	}
	return false
}

// IdentityFilter returns the metadata equality filter selecting an existing
// artifact with the same identity.
func (k ArtifactKind) IdentityFilter(meta Metadata) map[string]string {
	filter := make(map[string]string, len(k.IdentityFields))
	for _, f := range k.IdentityFields {
		filter[f] = meta.String(f)
	}
	return filter
}

// Identity renders the identity filter as a stable string for logs and lock keys.
func (k ArtifactKind) Identity(meta Metadata) string {
	parts := make([]string, 0, len(k.IdentityFields))
	for _, f := range k.IdentityFields {
		parts = append(parts, f+"="+meta.String(f))
	}
	return strings.Join(parts, ",")
}

// UniqueKey is the storage-level uniqueness key of an artifact: its name, os,
// arch and revision fields scoped to the application.
func (k ArtifactKind) UniqueKey(appID, name string, meta Metadata) string {
	parts := []string{appID, string(k.Node), strings.ToLower(name), meta.String(MetaOS), meta.String(MetaArch)}
	if k.ReleaseField == MetaAppRevision {
		parts = append(parts, meta.String(MetaAppRevision))
	}
	parts = append(parts, meta.String(MetaRevision))
	return strings.Join(parts, "|")
}

// Artifact is an item node together with its attached files.
type Artifact struct {
	*Node
	Files []File
}
