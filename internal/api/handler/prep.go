package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rlin/jobdeck/internal/domain"
	"github.com/rlin/jobdeck/internal/repository"
	"github.com/rlin/jobdeck/internal/service"
)

// PrepHandler handles prep-question bank endpoints.
type PrepHandler struct {
	prep *service.PrepService
}

// NewPrepHandler creates a new prep handler.
func NewPrepHandler(prep *service.PrepService) *PrepHandler {
	return &PrepHandler{prep: prep}
}

// ListQuestions handles GET /api/prep.
// Supports optional category and search query parameters.
func (h *PrepHandler) ListQuestions(c *gin.Context) {
	filter := repository.PrepFilter{
		Category: c.Query("category"),
		Search:   c.Query("search"),
	}
	questions, err := h.prep.List(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list questions: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, questions)
}

// CreateQuestion handles POST /api/prep.
func (h *PrepHandler) CreateQuestion(c *gin.Context) {
	var q domain.PrepQuestion
	if err := c.ShouldBindJSON(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}
	if q.Question == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "question is required"})
		return
	}
	created, err := h.prep.Create(c.Request.Context(), &q)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create question: " + err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateQuestion handles PUT /api/prep/:id.
func (h *PrepHandler) UpdateQuestion(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var q domain.PrepQuestion
	if err := c.ShouldBindJSON(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}
	updated, err := h.prep.Update(c.Request.Context(), id, &q)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Question not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update question: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteQuestion handles DELETE /api/prep/:id.
func (h *PrepHandler) DeleteQuestion(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := h.prep.Delete(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete question: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
