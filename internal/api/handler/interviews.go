package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rlin/jobdeck/internal/domain"
	"github.com/rlin/jobdeck/internal/service"
)

// InterviewHandler handles interview-round endpoints.
type InterviewHandler struct {
	jobs *service.JobService
}

// NewInterviewHandler creates a new interview handler.
func NewInterviewHandler(jobs *service.JobService) *InterviewHandler {
	return &InterviewHandler{jobs: jobs}
}

// AddInterview handles POST /api/jobs/:id/interviews.
// Parameters:
//   - c: Gin request context.
// Returns: none (writes JSON response).
func (h *InterviewHandler) AddInterview(c *gin.Context) {
	jobID, ok := idParam(c, "id")
	if !ok {
		return
	}
	var round domain.InterviewRound
	if err := c.ShouldBindJSON(&round); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}
	if round.RoundType == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "round_type is required"})
		return
	}
	created, err := h.jobs.AddInterview(c.Request.Context(), jobID, &round)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Job not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add interview: " + err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateInterview handles PUT /api/interviews/:id.
// Parameters:
//   - c: Gin request context.
// Returns: none (writes JSON response).
func (h *InterviewHandler) UpdateInterview(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var round domain.InterviewRound
	if err := c.ShouldBindJSON(&round); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}
	updated, err := h.jobs.UpdateInterview(c.Request.Context(), id, &round)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Interview round not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update interview: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteInterview handles DELETE /api/interviews/:id.
// Parameters:
//   - c: Gin request context.
// Returns: none (writes JSON response).
func (h *InterviewHandler) DeleteInterview(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := h.jobs.DeleteInterview(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete interview: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
