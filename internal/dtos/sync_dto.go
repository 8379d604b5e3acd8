package dtos

import "github.com/devtrackhq/jobgrid/internal/models"

// SyncResponse is the bulk-sync reply shape shared by the store handlers and
// the gateway client: {message} on success, {error} otherwise.
type SyncResponse struct {
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// ShareResponse bundles both collections for the read-only share view.
type ShareResponse struct {
	Jobs    []models.JobApplication `json:"jobs"`
	Portals []models.JobPortal      `json:"portals"`
}
