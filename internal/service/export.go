package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/rlin/jobdeck/internal/domain"
	"github.com/rlin/jobdeck/internal/logger"
	"github.com/rlin/jobdeck/internal/repository"
	"github.com/rlin/jobdeck/internal/storage"
)

// csvHeader lists every job column in export order.
var csvHeader = []string{
	"id", "company", "position", "location", "remote", "url", "status",
	"applied_date", "deadline", "salary_min", "salary_max", "priority",
	"source", "notes", "created_at", "updated_at",
}

// ExportService dumps the job table as CSV, either streamed to the caller or
// snapshotted into an S3-compatible bucket.
type ExportService struct {
	jobs   JobStore
	backup storage.ObjectStorage // nil when backup is not configured
	log    *logger.Logger
	now    func() time.Time
}

// NewExportService creates a new export service.
// Parameters:
//   - jobs: job store.
//   - backup: optional snapshot target; nil disables the backup endpoint.
//   - log: logger instance.
// Returns:
//   - *ExportService: initialized service.
func NewExportService(jobs JobStore, backup storage.ObjectStorage, log *logger.Logger) *ExportService {
	return &ExportService{
		jobs:   jobs,
		backup: backup,
		log:    log,
		now:    time.Now,
	}
}

// BackupEnabled reports whether a snapshot target is configured.
func (s *ExportService) BackupEnabled() bool {
	return s.backup != nil
}

// WriteCSV streams every job as CSV with standard quoting.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - w: destination writer.
// Returns:
//   - error: non-nil if the scan or write fails.
func (s *ExportService) WriteCSV(ctx context.Context, w io.Writer) error {
	jobs, err := s.jobs.List(ctx, repository.JobFilter{})
	if err != nil {
		return fmt.Errorf("failed to scan jobs: %w", err)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, j := range jobs {
		if err := cw.Write(csvRecord(j)); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// Snapshot writes the CSV dump into the backup bucket under a timestamped
// key.
// Parameters:
//   - ctx: context for cancellation and deadlines.
// Returns:
//   - string: public URL of the uploaded snapshot.
//   - error: non-nil if the export or upload fails.
func (s *ExportService) Snapshot(ctx context.Context) (string, error) {
	if s.backup == nil {
		return "", fmt.Errorf("no backup storage configured")
	}

	var buf bytes.Buffer
	if err := s.WriteCSV(ctx, &buf); err != nil {
		return "", err
	}

	key := fmt.Sprintf("exports/jobs-%s-%s.csv",
		s.now().Format("20060102-150405"), uuid.New().String()[:8])
	if err := s.backup.Upload(ctx, key, bytes.NewReader(buf.Bytes()), int64(buf.Len()), "text/csv"); err != nil {
		return "", fmt.Errorf("failed to upload snapshot: %w", err)
	}

	s.log.WithFields(logger.Fields{logger.FieldSize: buf.Len()}).
		Infof("export snapshot uploaded: key=%s", key)
	return s.backup.GetURL(key), nil
}

func csvRecord(j domain.Job) []string {
	return []string{
		strconv.FormatUint(uint64(j.ID), 10),
		j.Company,
		j.Position,
		j.Location,
		strconv.FormatBool(j.Remote),
		j.URL,
		string(j.Status),
		strOrEmpty(j.AppliedDate),
		strOrEmpty(j.Deadline),
		intOrEmpty(j.SalaryMin),
		intOrEmpty(j.SalaryMax),
		strconv.Itoa(j.Priority),
		strOrEmpty(j.Source),
		j.Notes,
		j.CreatedAt.Format(time.RFC3339),
		j.UpdatedAt.Format(time.RFC3339),
	}
}

func strOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func intOrEmpty(i *int) string {
	if i == nil {
		return ""
	}
	return strconv.Itoa(*i)
}
