package repository

import (
	"context"
	"errors"

	"github.com/rlin/jobdeck/internal/domain"
	"gorm.io/gorm"
)

// PrepFilter narrows a prep-question listing. Zero values mean no filtering.
type PrepFilter struct {
	Category string // exact category match; "all" and "" both mean every category
	Search   string // substring match on question, answer, or tags
}

// PrepRepository handles prep-question data operations.
type PrepRepository struct {
	db *gorm.DB
}

// NewPrepRepository creates a new PrepRepository.
// Parameters:
//   - db: GORM database handle used for queries.
// Returns:
//   - *PrepRepository: repository instance bound to db.
func NewPrepRepository(db *gorm.DB) *PrepRepository {
	return &PrepRepository{db: db}
}

// Create inserts a new prep question.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - q: question record to persist.
// Returns:
//   - error: non-nil if the insert fails.
func (r *PrepRepository) Create(ctx context.Context, q *domain.PrepQuestion) error {
	return r.db.WithContext(ctx).Create(q).Error
}

// Update saves all fields of an existing prep question.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - q: question record with updated fields.
// Returns:
//   - error: non-nil if the update fails.
func (r *PrepRepository) Update(ctx context.Context, q *domain.PrepQuestion) error {
	return r.db.WithContext(ctx).Save(q).Error
}

// GetByID retrieves a prep question by its ID.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - id: question ID.
// Returns:
//   - *domain.PrepQuestion: question record if found.
//   - error: domain.ErrNotFound if absent, another error if the lookup fails.
func (r *PrepRepository) GetByID(ctx context.Context, id uint) (*domain.PrepQuestion, error) {
	var q domain.PrepQuestion
	if err := r.db.WithContext(ctx).First(&q, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &q, nil
}

// List retrieves prep questions matching the filter, grouped by category with
// the newest first within each.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - filter: optional category and search narrowing.
// Returns:
//   - []domain.PrepQuestion: matching question records.
//   - error: non-nil if the query fails.
func (r *PrepRepository) List(ctx context.Context, filter PrepFilter) ([]domain.PrepQuestion, error) {
	query := r.db.WithContext(ctx).Model(&domain.PrepQuestion{})
	if filter.Category != "" && filter.Category != "all" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("question LIKE ? OR answer LIKE ? OR tags LIKE ?", pattern, pattern, pattern)
	}
	questions := make([]domain.PrepQuestion, 0)
	if err := query.Order("category").Order("created_at DESC").Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

// Count returns the total number of prep questions.
// Parameters:
//   - ctx: context for cancellation and deadlines.
// Returns:
//   - int64: number of records.
//   - error: non-nil if the query fails.
func (r *PrepRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&domain.PrepQuestion{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Delete removes a prep question by ID.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - id: question ID to delete.
// Returns:
//   - error: non-nil if the delete fails.
func (r *PrepRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&domain.PrepQuestion{}, "id = ?", id).Error
}
