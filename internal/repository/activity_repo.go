package repository

import (
	"context"

	"github.com/rlin/jobdeck/internal/domain"
	"gorm.io/gorm"
)

// ActivityRepository handles activity-log data operations. The log is
// append-only: there is no update or per-entry delete, entries go away only
// with the owning job.
type ActivityRepository struct {
	db *gorm.DB
}

// NewActivityRepository creates a new ActivityRepository.
// Parameters:
//   - db: GORM database handle used for queries.
// Returns:
//   - *ActivityRepository: repository instance bound to db.
func NewActivityRepository(db *gorm.DB) *ActivityRepository {
	return &ActivityRepository{db: db}
}

// Append inserts a new activity entry.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - entry: entry to persist.
// Returns:
//   - error: non-nil if the insert fails.
func (r *ActivityRepository) Append(ctx context.Context, entry *domain.ActivityEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

// ListByJob retrieves activity entries for a job, newest first. Entries
// written in the same request share a timestamp, so the ID is the tiebreaker:
// later appends read back earlier.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - jobID: owning job ID.
//   - limit: maximum entries to return; 0 means unbounded.
// Returns:
//   - []domain.ActivityEntry: matching entries.
//   - error: non-nil if the query fails.
func (r *ActivityRepository) ListByJob(ctx context.Context, jobID uint, limit int) ([]domain.ActivityEntry, error) {
	entries := make([]domain.ActivityEntry, 0)
	query := r.db.WithContext(ctx).
		Where("job_id = ?", jobID).
		Order("created_at DESC").
		Order("id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}
