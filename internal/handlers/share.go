package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/devtrackhq/jobgrid/internal/dtos"
	"github.com/devtrackhq/jobgrid/internal/models"
	"github.com/devtrackhq/jobgrid/internal/services"
)

// ShareHandler serves the read-only public sharing view: both collections,
// no mutation affordances, no identity gate.
type ShareHandler struct {
	Sync *services.SyncService
}

func NewShareHandler(sync *services.SyncService) *ShareHandler {
	return &ShareHandler{Sync: sync}
}

func (h *ShareHandler) Share(c *gin.Context) {
	jobs, err := h.Sync.ListJobs()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load jobs: " + err.Error()})
		return
	}
	portals, err := h.Sync.ListPortals()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load portals: " + err.Error()})
		return
	}
	if jobs == nil {
		jobs = []models.JobApplication{}
	}
	if portals == nil {
		portals = []models.JobPortal{}
	}
	c.JSON(http.StatusOK, dtos.ShareResponse{Jobs: jobs, Portals: portals})
}

func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
