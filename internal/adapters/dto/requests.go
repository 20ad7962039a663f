package dto

// CreateApplicationRequest is the JSON body of POST /api/v1/app.
type CreateApplicationRequest struct {
	Name                string `json:"name"`
	Description         string `json:"description"`
	CollectionID        string `json:"collection_id"`
	CollectionName      string `json:"collection_name"`
	ApplicationTemplate string `json:"applicationPackageNameTemplate"`
	ExtensionTemplate   string `json:"extensionPackageNameTemplate"`
	Public              bool   `json:"public"`
}

// CreateReleaseRequest is the JSON body of POST /api/v1/app/{app_id}/release.
type CreateReleaseRequest struct {
	Name        string `json:"name"`
	Revision    string `json:"revision"`
	Description string `json:"description"`
}
