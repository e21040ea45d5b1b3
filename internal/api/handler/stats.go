package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rlin/jobdeck/internal/service"
)

// StatsHandler serves the aggregated dashboard statistics.
type StatsHandler struct {
	stats *service.StatsService
}

// NewStatsHandler creates a new stats handler.
func NewStatsHandler(stats *service.StatsService) *StatsHandler {
	return &StatsHandler{stats: stats}
}

// GetStats handles GET /api/stats.
// Parameters:
//   - c: Gin request context.
// Returns: none (writes JSON response).
func (h *StatsHandler) GetStats(c *gin.Context) {
	dashboard, err := h.stats.Dashboard(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute stats: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, dashboard)
}
