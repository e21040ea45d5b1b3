package service

import (
	"context"
	"fmt"

	"github.com/rlin/jobdeck/internal/domain"
	"github.com/rlin/jobdeck/internal/logger"
)

// The number of entries embedded in a job-detail response. The dedicated
// activity endpoint is unbounded.
const activityEmbedLimit = 50

// ActivityService appends derived events to the per-job activity log and
// serves them newest first.
type ActivityService struct {
	store ActivityStore
	log   *logger.Logger
}

// NewActivityService creates a new activity service.
// Parameters:
//   - store: activity entry store.
//   - log: logger instance.
// Returns:
//   - *ActivityService: initialized service.
func NewActivityService(store ActivityStore, log *logger.Logger) *ActivityService {
	return &ActivityService{store: store, log: log}
}

// Record renders and appends the given events for a job. Appends are
// best-effort: a failure is logged at warn level and never propagated, so the
// primary mutation that produced the events is not rolled back or blocked.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - jobID: owning job ID.
//   - events: derived events to append, in occurrence order.
// Returns: none.
func (s *ActivityService) Record(ctx context.Context, jobID uint, events ...Event) {
	for _, ev := range events {
		entry := ev.Entry(jobID)
		if err := s.store.Append(ctx, &entry); err != nil {
			s.log.WithError(err).WithFields(logger.Fields{
				logger.FieldJobID: jobID,
				"activity_type":   entry.Type,
			}).Warn("activity append failed, mutation unaffected")
		}
	}
}

// AddNote appends a user-authored entry verbatim. Unlike derived events this
// append is the primary mutation of its request, so the error propagates.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - jobID: owning job ID.
//   - entryType: entry type; empty defaults to note.
//   - text: literal description text.
// Returns:
//   - *domain.ActivityEntry: persisted entry.
//   - error: non-nil if the append fails.
func (s *ActivityService) AddNote(ctx context.Context, jobID uint, entryType domain.ActivityType, text string) (*domain.ActivityEntry, error) {
	if entryType == "" {
		entryType = domain.ActivityNote
	}
	entry := domain.ActivityEntry{
		JobID:       jobID,
		Type:        entryType,
		Description: text,
	}
	if err := s.store.Append(ctx, &entry); err != nil {
		return nil, fmt.Errorf("failed to append activity entry: %w", err)
	}
	return &entry, nil
}

// List returns a job's activity entries, newest first.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - jobID: owning job ID.
//   - limit: maximum entries to return; 0 means unbounded.
// Returns:
//   - []domain.ActivityEntry: matching entries.
//   - error: non-nil if the query fails.
func (s *ActivityService) List(ctx context.Context, jobID uint, limit int) ([]domain.ActivityEntry, error) {
	return s.store.ListByJob(ctx, jobID, limit)
}
