package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rlin/jobdeck/internal/service"
)

// AIHandler exposes the job-posting auto-fill endpoint.
type AIHandler struct {
	parse *service.ParseService
}

// NewAIHandler creates a new AI handler.
func NewAIHandler(parse *service.ParseService) *AIHandler {
	return &AIHandler{parse: parse}
}

type parseJobRequest struct {
	Text string `json:"text"`
}

// ParseJob handles POST /api/ai/parse-job.
// Parameters:
//   - c: Gin request context.
// Returns: none (writes JSON response).
func (h *AIHandler) ParseJob(c *gin.Context) {
	var req parseJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}
	if req.Text == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "text is required"})
		return
	}

	fields, err := h.parse.ParseJob(c.Request.Context(), req.Text)
	if err != nil {
		if errors.Is(err, service.ErrParseNotConfigured) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "AI parsing is not configured"})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to parse job posting: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, fields)
}
