package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rlin/jobdeck/internal/domain"
	"github.com/rlin/jobdeck/internal/repository"
	"github.com/rlin/jobdeck/internal/service"
)

// JobHandler handles job CRUD and the job-scoped activity endpoints.
type JobHandler struct {
	jobs *service.JobService
}

// NewJobHandler creates a new job handler.
// Parameters:
//   - jobs: job service instance.
// Returns:
//   - *JobHandler: initialized handler.
func NewJobHandler(jobs *service.JobService) *JobHandler {
	return &JobHandler{jobs: jobs}
}

// idParam parses the :id path parameter.
func idParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return 0, false
	}
	return uint(id), true
}

// ListJobs handles GET /api/jobs.
// Parameters:
//   - c: Gin request context.
// Returns: none (writes JSON response).
func (h *JobHandler) ListJobs(c *gin.Context) {
	jobs, err := h.jobs.List(c.Request.Context(), repository.JobFilter{
		Status: c.Query("status"),
		Search: c.Query("search"),
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list jobs: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, jobs)
}

// GetJob handles GET /api/jobs/:id, embedding contacts, interviews, and
// recent activity.
// Parameters:
//   - c: Gin request context.
// Returns: none (writes JSON response).
func (h *JobHandler) GetJob(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	detail, err := h.jobs.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Job not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get job: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, detail)
}

// CreateJob handles POST /api/jobs.
// Parameters:
//   - c: Gin request context.
// Returns: none (writes JSON response).
func (h *JobHandler) CreateJob(c *gin.Context) {
	var job domain.Job
	if err := c.ShouldBindJSON(&job); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}
	if job.Company == "" || job.Position == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "company and position are required"})
		return
	}
	created, err := h.jobs.Create(c.Request.Context(), &job)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create job: " + err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateJob handles PUT /api/jobs/:id. Full-record update: the client
// resends every field.
// Parameters:
//   - c: Gin request context.
// Returns: none (writes JSON response).
func (h *JobHandler) UpdateJob(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var job domain.Job
	if err := c.ShouldBindJSON(&job); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}
	updated, err := h.jobs.Update(c.Request.Context(), id, &job)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Job not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update job: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteJob handles DELETE /api/jobs/:id, cascading to contacts, interview
// rounds, and activity entries.
// Parameters:
//   - c: Gin request context.
// Returns: none (writes JSON response).
func (h *JobHandler) DeleteJob(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := h.jobs.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Job not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete job: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// activityRequest is the body for user-authored activity entries.
type activityRequest struct {
	Type        domain.ActivityType `json:"type"`
	Description string              `json:"description"`
}

// GetActivity handles GET /api/jobs/:id/activity, newest first, unbounded.
// Parameters:
//   - c: Gin request context.
// Returns: none (writes JSON response).
func (h *JobHandler) GetActivity(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	entries, err := h.jobs.Activity(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list activity: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, entries)
}

// AddActivity handles POST /api/jobs/:id/activity. The submitted text is
// stored verbatim; the type defaults to note.
// Parameters:
//   - c: Gin request context.
// Returns: none (writes JSON response).
func (h *JobHandler) AddActivity(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req activityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}
	if req.Description == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "description is required"})
		return
	}
	entry, err := h.jobs.AddNote(c.Request.Context(), id, req.Type, req.Description)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Job not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add activity: " + err.Error()})
		return
	}
	c.JSON(http.StatusCreated, entry)
}
