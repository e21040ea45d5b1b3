package repository

import (
	"context"
	"errors"

	"github.com/rlin/jobdeck/internal/domain"
	"gorm.io/gorm"
)

// JobFilter narrows a job listing. Zero values mean no filtering.
type JobFilter struct {
	Status string // exact status match
	Search string // substring match on company or position
}

// JobRepository handles job data operations.
type JobRepository struct {
	db *gorm.DB
}

// NewJobRepository creates a new JobRepository.
// Parameters:
//   - db: GORM database handle used for queries.
// Returns:
//   - *JobRepository: repository instance bound to db.
func NewJobRepository(db *gorm.DB) *JobRepository {
	return &JobRepository{db: db}
}

// Create inserts a new job record.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - job: job record to persist.
// Returns:
//   - error: non-nil if the insert fails.
func (r *JobRepository) Create(ctx context.Context, job *domain.Job) error {
	return r.db.WithContext(ctx).Create(job).Error
}

// Update saves all fields of an existing job record (full-record update,
// last write wins).
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - job: job record with updated fields.
// Returns:
//   - error: non-nil if the update fails.
func (r *JobRepository) Update(ctx context.Context, job *domain.Job) error {
	return r.db.WithContext(ctx).Save(job).Error
}

// GetByID retrieves a job by its ID.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - id: job ID.
// Returns:
//   - *domain.Job: job record if found.
//   - error: domain.ErrNotFound if absent, another error if the lookup fails.
func (r *JobRepository) GetByID(ctx context.Context, id uint) (*domain.Job, error) {
	var job domain.Job
	if err := r.db.WithContext(ctx).First(&job, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &job, nil
}

// List retrieves jobs matching the filter, newest first.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - filter: optional status and search narrowing.
// Returns:
//   - []domain.Job: matching job records.
//   - error: non-nil if the query fails.
func (r *JobRepository) List(ctx context.Context, filter JobFilter) ([]domain.Job, error) {
	query := r.db.WithContext(ctx).Model(&domain.Job{})
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("company LIKE ? OR position LIKE ?", pattern, pattern)
	}
	jobs := make([]domain.Job, 0)
	if err := query.Order("created_at DESC").Find(&jobs).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}

// Delete removes a job and cascades to its contacts, interview rounds, and
// activity entries in one transaction. The application-level cascade keeps
// the behavior identical across backing stores, independent of FK support.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - id: job ID to delete.
// Returns:
//   - error: domain.ErrNotFound if the job is absent, another error on failure.
func (r *JobRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var job domain.Job
		if err := tx.First(&job, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrNotFound
			}
			return err
		}
		if err := tx.Delete(&domain.Contact{}, "job_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&domain.InterviewRound{}, "job_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&domain.ActivityEntry{}, "job_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&domain.Job{}, "id = ?", id).Error
	})
}
