package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/devtrackhq/jobgrid/internal/models"
	"github.com/devtrackhq/jobgrid/internal/services"
)

type PortalHandler struct {
	Sync *services.SyncService
}

func NewPortalHandler(sync *services.SyncService) *PortalHandler {
	return &PortalHandler{Sync: sync}
}

func (h *PortalHandler) ListPortals(c *gin.Context) {
	portals, err := h.Sync.ListPortals()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load portals: " + err.Error()})
		return
	}
	if portals == nil {
		portals = []models.JobPortal{}
	}
	c.JSON(http.StatusOK, portals)
}

func (h *PortalHandler) SyncPortals(c *gin.Context) {
	var portals []models.JobPortal
	if err := c.ShouldBindJSON(&portals); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}
	if err := h.Sync.ReplacePortals(portals); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save portals: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("Saved %d portals to database", len(portals))})
}
