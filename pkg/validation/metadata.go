package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/Masterminds/semver/v3"
	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/bnema/pkgvault/internal/domain"
)

// Fields with a dedicated format check.
const (
	FieldVersion   = "version"
	FieldBuildDate = "build_date"
)

// listFields may carry a single string or a list of strings.
var listFields = map[string]bool{
	"screenshots":  true,
	"contributors": true,
	"dependency":   true,
}

// MetadataValidator checks artifact metadata against the field set of one
// artifact kind before anything is written.
type MetadataValidator struct {
	kind   domain.ArtifactKind
	schema *jsonschema.Schema
	now    func() time.Time
}

// NewMetadataValidator compiles the JSON schema derived from kind.
func NewMetadataValidator(kind domain.ArtifactKind) (*MetadataValidator, error) {
	raw, err := json.Marshal(SchemaFor(kind))
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s metadata schema: %w", kind.Node, err)
	}

	c := jsonschema.NewCompiler()
	c.Draft = jsonschema.Draft2020
	schemaURL := fmt.Sprintf("https://pkgvault.local/schemas/%s.schema.json", kind.Node)
	if err := c.AddResource(schemaURL, strings.NewReader(string(raw))); err != nil {
		return nil, fmt.Errorf("failed to load %s metadata schema: %w", kind.Node, err)
	}
	compiled, err := c.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("failed to compile %s metadata schema: %w", kind.Node, err)
	}

	return &MetadataValidator{kind: kind, schema: compiled, now: time.Now}, nil
}

// Kind returns the artifact kind this validator serves.
func (v *MetadataValidator) Kind() domain.ArtifactKind {
	return v.kind
}

// SchemaFor builds the JSON schema document for an artifact kind.
func SchemaFor(kind domain.ArtifactKind) map[string]any {
	props := make(map[string]any)
	for _, f := range kind.AllowedFields() {
		switch {
		case kind.IsBool(f):
			props[f] = map[string]any{"type": "boolean"}
		case listFields[f]:
			props[f] = map[string]any{
				"oneOf": []any{
					map[string]any{"type": "string"},
					map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
				},
			}
		default:
			props[f] = map[string]any{"type": "string"}
		}
	}

	required := make([]string, 0, len(kind.RequiredFields))
	for _, f := range kind.RequiredFields {
		required = append(required, f)
		if p, ok := props[f].(map[string]any); ok && p["type"] == "string" {
			p["minLength"] = 1
		}
	}
	sort.Strings(required)

	return map[string]any{
		"$schema":              "https://json-schema.org/draft/2020-12/schema",
		"type":                 "object",
		"properties":           props,
		"required":             required,
		"additionalProperties": false,
	}
}

// Validate rejects metadata with unexpected fields or badly typed values and
// returns a normalized copy. A missing package build_date defaults to now.
func (v *MetadataValidator) Validate(meta domain.Metadata) (domain.Metadata, error) {
	if meta == nil {
		meta = domain.Metadata{}
	}

	if extra := v.kind.ExtraFields(meta); len(extra) > 0 {
		return nil, domain.ExtraFieldsError(extra)
	}

	doc, err := jsonDocument(meta)
	if err != nil {
		return nil, &domain.ValidationError{Reason: err.Error()}
	}
	if err := v.schema.Validate(doc); err != nil {
		return nil, schemaError(err)
	}

	out := meta.Clone()
	if err := v.checkFormats(out); err != nil {
		return nil, err
	}
	return out, nil
}

func (v *MetadataValidator) checkFormats(meta domain.Metadata) error {
	if v.kind.Node != domain.NodePackage {
		return nil
	}

	if version := meta.String(FieldVersion); version != "" {
		if _, err := semver.NewVersion(version); err != nil {
			return &domain.ValidationError{Field: FieldVersion, Reason: fmt.Sprintf("invalid semantic version %q", version)}
		}
	}

	switch bd := meta.String(FieldBuildDate); bd {
	case "":
		meta[FieldBuildDate] = v.now().UTC().Format(time.RFC3339)
	default:
		if _, err := time.Parse(time.RFC3339, bd); err != nil {
			return &domain.ValidationError{Field: FieldBuildDate, Reason: fmt.Sprintf("invalid RFC 3339 date %q", bd)}
		}
	}
	return nil
}

// jsonDocument converts metadata to the plain JSON value model the schema
// validator expects.
func jsonDocument(meta domain.Metadata) (any, error) {
	raw, err := json.Marshal(meta)
	if err != nil {
		return nil, fmt.Errorf("metadata is not valid JSON: %w", err)
	}
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("metadata is not valid JSON: %w", err)
	}
	return doc, nil
}

// schemaError turns the innermost schema failure into a ValidationError
// naming the offending field.
func schemaError(err error) error {
	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return &domain.ValidationError{Reason: err.Error()}
	}
	leaf := ve
	for len(leaf.Causes) > 0 {
		leaf = leaf.Causes[0]
	}
	field := strings.TrimPrefix(leaf.InstanceLocation, "/")
	if i := strings.Index(field, "/"); i >= 0 {
		field = field[:i]
	}
	return &domain.ValidationError{Field: field, Reason: leaf.Message}
}
