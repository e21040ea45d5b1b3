package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rlin/jobdeck/internal/domain"
	"github.com/rlin/jobdeck/internal/service"
)

// ContactHandler handles contact endpoints.
type ContactHandler struct {
	jobs *service.JobService
}

// NewContactHandler creates a new contact handler.
func NewContactHandler(jobs *service.JobService) *ContactHandler {
	return &ContactHandler{jobs: jobs}
}

// AddContact handles POST /api/jobs/:id/contacts.
// Parameters:
//   - c: Gin request context.
// Returns: none (writes JSON response).
func (h *ContactHandler) AddContact(c *gin.Context) {
	jobID, ok := idParam(c, "id")
	if !ok {
		return
	}
	var contact domain.Contact
	if err := c.ShouldBindJSON(&contact); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}
	if contact.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}
	created, err := h.jobs.AddContact(c.Request.Context(), jobID, &contact)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Job not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add contact: " + err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateContact handles PUT /api/contacts/:id. Contact updates are not
// logged to the activity timeline.
// Parameters:
//   - c: Gin request context.
// Returns: none (writes JSON response).
func (h *ContactHandler) UpdateContact(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var contact domain.Contact
	if err := c.ShouldBindJSON(&contact); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}
	updated, err := h.jobs.UpdateContact(c.Request.Context(), id, &contact)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Contact not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update contact: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteContact handles DELETE /api/contacts/:id.
// Parameters:
//   - c: Gin request context.
// Returns: none (writes JSON response).
func (h *ContactHandler) DeleteContact(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := h.jobs.DeleteContact(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete contact: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
