package repository

import (
	"context"
	"errors"

	"github.com/rlin/jobdeck/internal/domain"
	"gorm.io/gorm"
)

// InterviewRepository handles interview-round data operations.
type InterviewRepository struct {
	db *gorm.DB
}

// NewInterviewRepository creates a new InterviewRepository.
// Parameters:
//   - db: GORM database handle used for queries.
// Returns:
//   - *InterviewRepository: repository instance bound to db.
func NewInterviewRepository(db *gorm.DB) *InterviewRepository {
	return &InterviewRepository{db: db}
}

// Create inserts a new interview round.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - round: round record to persist.
// Returns:
//   - error: non-nil if the insert fails.
func (r *InterviewRepository) Create(ctx context.Context, round *domain.InterviewRound) error {
	return r.db.WithContext(ctx).Create(round).Error
}

// Update saves all fields of an existing interview round.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - round: round record with updated fields.
// Returns:
//   - error: non-nil if the update fails.
func (r *InterviewRepository) Update(ctx context.Context, round *domain.InterviewRound) error {
	return r.db.WithContext(ctx).Save(round).Error
}

// GetByID retrieves an interview round by its ID.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - id: round ID.
// Returns:
//   - *domain.InterviewRound: round record if found.
//   - error: domain.ErrNotFound if absent, another error if the lookup fails.
func (r *InterviewRepository) GetByID(ctx context.Context, id uint) (*domain.InterviewRound, error) {
	var round domain.InterviewRound
	if err := r.db.WithContext(ctx).First(&round, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &round, nil
}

// ListByJob retrieves all interview rounds attached to a job, soonest first.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - jobID: owning job ID.
// Returns:
//   - []domain.InterviewRound: matching round records.
//   - error: non-nil if the query fails.
func (r *InterviewRepository) ListByJob(ctx context.Context, jobID uint) ([]domain.InterviewRound, error) {
	rounds := make([]domain.InterviewRound, 0)
	if err := r.db.WithContext(ctx).
		Where("job_id = ?", jobID).
		Order("scheduled_date").
		Find(&rounds).Error; err != nil {
		return nil, err
	}
	return rounds, nil
}

// ListAll retrieves every interview round. The aggregation engine joins them
// with jobs in application code.
// Parameters:
//   - ctx: context for cancellation and deadlines.
// Returns:
//   - []domain.InterviewRound: all round records.
//   - error: non-nil if the query fails.
func (r *InterviewRepository) ListAll(ctx context.Context) ([]domain.InterviewRound, error) {
	rounds := make([]domain.InterviewRound, 0)
	if err := r.db.WithContext(ctx).Order("scheduled_date").Find(&rounds).Error; err != nil {
		return nil, err
	}
	return rounds, nil
}

// Delete removes an interview round by ID.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - id: round ID to delete.
// Returns:
//   - error: non-nil if the delete fails.
func (r *InterviewRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&domain.InterviewRound{}, "id = ?", id).Error
}
