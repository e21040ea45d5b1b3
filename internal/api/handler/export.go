package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rlin/jobdeck/internal/service"
)

// ExportHandler serves CSV export and backup-snapshot endpoints.
type ExportHandler struct {
	export *service.ExportService
}

// NewExportHandler creates a new export handler.
func NewExportHandler(export *service.ExportService) *ExportHandler {
	return &ExportHandler{export: export}
}

// ExportCSV handles GET /api/export/csv.
// Streams all job records as a CSV attachment.
func (h *ExportHandler) ExportCSV(c *gin.Context) {
	filename := fmt.Sprintf("jobs-%s.csv", time.Now().Format("2006-01-02"))
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	if err := h.export.WriteCSV(c.Request.Context(), c.Writer); err != nil {
		// Headers may already be out; log-friendly status is all we can do.
		c.Status(http.StatusInternalServerError)
		return
	}
}

// BackupSnapshot handles POST /api/export/backup.
// Uploads a CSV snapshot to object storage and returns its URL.
func (h *ExportHandler) BackupSnapshot(c *gin.Context) {
	if !h.export.BackupEnabled() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Backup storage is not configured"})
		return
	}
	url, err := h.export.Snapshot(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload backup: " + err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"url": url})
}
