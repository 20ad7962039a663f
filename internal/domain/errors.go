package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Domain errors represent business-level errors that can occur in the system.
// These errors are used across layers to communicate specific failure conditions.
var (
	// Lookup errors
	ErrNodeNotFound        = errors.New("node not found")
	ErrCollectionNotFound  = errors.New("collection not found")
	ErrApplicationNotFound = errors.New("application not found")
	ErrReleaseNotFound     = errors.New("release not found")
	ErrRevisionNotFound    = errors.New("revision not found")
	ErrArtifactNotFound    = errors.New("artifact not found")
	ErrFileNotFound        = errors.New("file not found")
	ErrBlobNotFound        = errors.New("blob not found")

	// Write errors
	ErrAlreadyExists = errors.New("already exists")
	ErrConflict      = errors.New("conflicting concurrent write")

	// Integrity errors
	ErrDraftReleaseMissing = errors.New("draft release missing")
	ErrDuplicateArtifact   = errors.New("duplicate artifact")
	ErrCorruptArtifact     = errors.New("corrupt artifact")

	// Input errors
	ErrValidation   = errors.New("validation failed")
	ErrMissingField = errors.New("missing field")
)

// MissingFieldError is returned when a naming template references a field
// the metadata does not carry.
type MissingFieldError struct {
	Field    string
	Template string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("template %q references missing field %q", e.Template, e.Field)
}

// Is reports whether target is ErrMissingField.
func (e *MissingFieldError) Is(target error) bool {
	return target == ErrMissingField
}

// ValidationError describes why an input record was rejected.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// Is reports whether target is ErrValidation.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// DuplicateArtifactError is returned when more than one artifact matches an
// identity key inside a single container.
type DuplicateArtifactError struct {
	ContainerID string
	Identity    string
	Count       int
}

func (e *DuplicateArtifactError) Error() string {
	return fmt.Sprintf("%d artifacts match identity %q in container %s", e.Count, e.Identity, e.ContainerID)
}

// Is reports whether target is ErrDuplicateArtifact.
func (e *DuplicateArtifactError) Is(target error) bool {
	return target == ErrDuplicateArtifact
}

// CorruptArtifactError is returned for an artifact that has no attached file.
type CorruptArtifactError struct {
	ArtifactID string
}

func (e *CorruptArtifactError) Error() string {
	return fmt.Sprintf("artifact %s exists without any binary file", e.ArtifactID)
}

// Is reports whether target is ErrCorruptArtifact.
func (e *CorruptArtifactError) Is(target error) bool {
	return target == ErrCorruptArtifact
}

// ExtraFieldsError lists metadata keys that are neither required nor optional.
func ExtraFieldsError(fields []string) error {
	return &ValidationError{Reason: "unexpected extra fields: " + strings.Join(fields, ", ")}
}
