package service

import (
	"context"
	"fmt"

	"github.com/rlin/jobdeck/internal/domain"
	"github.com/rlin/jobdeck/internal/repository"
)

// PrepService manages the interview-prep question bank. Questions are
// independent of jobs; the flashcard feature is the only consumer.
type PrepService struct {
	store PrepStore
}

// NewPrepService creates a new prep service.
func NewPrepService(store PrepStore) *PrepService {
	return &PrepService{store: store}
}

// List returns prep questions matching the filter.
func (s *PrepService) List(ctx context.Context, filter repository.PrepFilter) ([]domain.PrepQuestion, error) {
	return s.store.List(ctx, filter)
}

// Create persists a new question. Difficulty defaults to medium.
func (s *PrepService) Create(ctx context.Context, q *domain.PrepQuestion) (*domain.PrepQuestion, error) {
	if q.Difficulty == "" {
		q.Difficulty = "medium"
	}
	if err := s.store.Create(ctx, q); err != nil {
		return nil, fmt.Errorf("failed to create prep question: %w", err)
	}
	return q, nil
}

// Update replaces every field of a stored question.
func (s *PrepService) Update(ctx context.Context, id uint, incoming *domain.PrepQuestion) (*domain.PrepQuestion, error) {
	prev, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	incoming.ID = prev.ID
	incoming.CreatedAt = prev.CreatedAt
	if err := s.store.Update(ctx, incoming); err != nil {
		return nil, fmt.Errorf("failed to update prep question: %w", err)
	}
	return incoming, nil
}

// Delete removes a question by ID.
func (s *PrepService) Delete(ctx context.Context, id uint) error {
	return s.store.Delete(ctx, id)
}
