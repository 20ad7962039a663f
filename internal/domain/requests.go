package domain

import "io"

// CreateApplicationRequest holds the inputs for registering an application.
type CreateApplicationRequest struct {
	Name                string
	Description         string
	CollectionID        string
	CollectionName      string
	ApplicationTemplate string
	ExtensionTemplate   string
	Public              bool
	Creator             string
}

// ApplicationQuery filters the applications of a collection.
type ApplicationQuery struct {
	ID             string
	Name           string
	Text           string
	CollectionID   string
	CollectionName string
	Page
}

// CreateReleaseRequest holds the inputs for a new stable release.
type CreateReleaseRequest struct {
	ApplicationID string
	Name          string
	Revision      string
	Description   string
	Creator       string
}

// Upload is binary content attached to an artifact.
type Upload struct {
	Filename string
	MimeType string
	Size     int64
	Body     io.Reader
}

// UpsertArtifactRequest creates or updates one artifact.
type UpsertArtifactRequest struct {
	ApplicationID string
	Meta          Metadata
	Content       *Upload
	Creator       string
}

// ArtifactFilter narrows an artifact listing.
type ArtifactFilter struct {
	ID              string
	Name            string
	Text            string
	OS              string
	Arch            string
	BaseName        string
	Revision        string
	AppRevision     string
	ReleaseIDOrName string
	Page
}

// Content is an open artifact file ready for streaming.
type Content struct {
	Artifact *Artifact
	File     File
	Body     io.ReadCloser
}
