// Package validation checks client-supplied names, storage keys and
// artifact metadata before they reach the stores.
package validation

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/google/uuid"
)

// MaxNameLength is the maximum allowed length for node names.
const MaxNameLength = 255

// ValidateUUID accepts only the canonical lowercase 36-character form
// produced by uuid.NewString, the form blob keys are minted in.
func ValidateUUID(key string) error {
	if key == "" {
		return errors.New("key cannot be empty")
	}
	id, err := uuid.Parse(key)
	if err != nil {
		return fmt.Errorf("invalid key: %w", err)
	}
	if id.String() != key {
		return errors.New("key is not in canonical form")
	}
	return nil
}

// ValidateNodeName checks a container or item name supplied by a client.
// Names end up in file names and download headers.
func ValidateNodeName(name string) error {
	switch {
	case strings.TrimSpace(name) == "":
		return errors.New("name cannot be empty")
	case len(name) > MaxNameLength:
		return fmt.Errorf("name too long: %d bytes (max %d)", len(name), MaxNameLength)
	case name == "." || name == "..":
		return fmt.Errorf("name %q is reserved", name)
	}

	for _, r := range name {
		if r == '/' || r == '\\' || unicode.IsControl(r) {
			return fmt.Errorf("name contains invalid character %q", r)
		}
	}
	return nil
}

// ValidatePathWithinRoot reports an error when fullPath resolves outside rootDir.
func ValidatePathWithinRoot(rootDir, fullPath string) error {
	rel, err := filepath.Rel(filepath.Clean(rootDir), filepath.Clean(fullPath))
	if err != nil {
		return fmt.Errorf("path escapes root directory: %w", err)
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) || filepath.IsAbs(rel) {
		return errors.New("path escapes root directory")
	}
	return nil
}
