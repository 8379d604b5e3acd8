package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/devtrackhq/jobgrid/internal/models"
	"github.com/devtrackhq/jobgrid/internal/services"
)

type JobHandler struct {
	Sync *services.SyncService
}

func NewJobHandler(sync *services.SyncService) *JobHandler {
	return &JobHandler{Sync: sync}
}

// ListJobs is GET /api/jobs. An empty store returns an empty array; the
// client decides whether to substitute demo data.
func (h *JobHandler) ListJobs(c *gin.Context) {
	jobs, err := h.Sync.ListJobs()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load jobs: " + err.Error()})
		return
	}
	if jobs == nil {
		jobs = []models.JobApplication{}
	}
	c.JSON(http.StatusOK, jobs)
}

// SyncJobs is POST /api/jobs/sync: the body is the entire collection and it
// replaces the stored one.
func (h *JobHandler) SyncJobs(c *gin.Context) {
	var jobs []models.JobApplication
	if err := c.ShouldBindJSON(&jobs); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}
	if err := h.Sync.ReplaceJobs(jobs); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save jobs: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("Saved %d jobs to database", len(jobs))})
}

// DeleteJob is DELETE /api/jobs/:id, the only targeted mutation.
func (h *JobHandler) DeleteJob(c *gin.Context) {
	id := c.Param("id")
	if err := h.Sync.DeleteJob(id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Job deleted"})
}
