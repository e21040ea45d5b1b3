package repository

import (
	"context"
	"errors"

	"github.com/rlin/jobdeck/internal/domain"
	"gorm.io/gorm"
)

// ContactRepository handles contact data operations.
type ContactRepository struct {
	db *gorm.DB
}

// NewContactRepository creates a new ContactRepository.
// Parameters:
//   - db: GORM database handle used for queries.
// Returns:
//   - *ContactRepository: repository instance bound to db.
func NewContactRepository(db *gorm.DB) *ContactRepository {
	return &ContactRepository{db: db}
}

// Create inserts a new contact record.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - contact: contact record to persist.
// Returns:
//   - error: non-nil if the insert fails.
func (r *ContactRepository) Create(ctx context.Context, contact *domain.Contact) error {
	return r.db.WithContext(ctx).Create(contact).Error
}

// Update saves all fields of an existing contact record.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - contact: contact record with updated fields.
// Returns:
//   - error: non-nil if the update fails.
func (r *ContactRepository) Update(ctx context.Context, contact *domain.Contact) error {
	return r.db.WithContext(ctx).Save(contact).Error
}

// GetByID retrieves a contact by its ID.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - id: contact ID.
// Returns:
//   - *domain.Contact: contact record if found.
//   - error: domain.ErrNotFound if absent, another error if the lookup fails.
func (r *ContactRepository) GetByID(ctx context.Context, id uint) (*domain.Contact, error) {
	var contact domain.Contact
	if err := r.db.WithContext(ctx).First(&contact, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &contact, nil
}

// ListByJob retrieves all contacts attached to a job.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - jobID: owning job ID.
// Returns:
//   - []domain.Contact: matching contact records.
//   - error: non-nil if the query fails.
func (r *ContactRepository) ListByJob(ctx context.Context, jobID uint) ([]domain.Contact, error) {
	contacts := make([]domain.Contact, 0)
	if err := r.db.WithContext(ctx).Where("job_id = ?", jobID).Find(&contacts).Error; err != nil {
		return nil, err
	}
	return contacts, nil
}

// Delete removes a contact by ID.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - id: contact ID to delete.
// Returns:
//   - error: non-nil if the delete fails.
func (r *ContactRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&domain.Contact{}, "id = ?", id).Error
}
