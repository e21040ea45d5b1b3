package service

import (
	"context"

	"github.com/rlin/jobdeck/internal/domain"
	"github.com/rlin/jobdeck/internal/repository"
)

// Store interfaces are defined here, on the consumer side, so any backing
// store can be substituted without touching the activity or aggregation
// logic. The GORM repositories in internal/repository satisfy them.

// JobStore persists job records.
type JobStore interface {
	Create(ctx context.Context, job *domain.Job) error
	Update(ctx context.Context, job *domain.Job) error
	GetByID(ctx context.Context, id uint) (*domain.Job, error)
	List(ctx context.Context, filter repository.JobFilter) ([]domain.Job, error)
	Delete(ctx context.Context, id uint) error
}

// ContactStore persists contact records.
type ContactStore interface {
	Create(ctx context.Context, contact *domain.Contact) error
	Update(ctx context.Context, contact *domain.Contact) error
	GetByID(ctx context.Context, id uint) (*domain.Contact, error)
	ListByJob(ctx context.Context, jobID uint) ([]domain.Contact, error)
	Delete(ctx context.Context, id uint) error
}

// InterviewStore persists interview rounds.
type InterviewStore interface {
	Create(ctx context.Context, round *domain.InterviewRound) error
	Update(ctx context.Context, round *domain.InterviewRound) error
	GetByID(ctx context.Context, id uint) (*domain.InterviewRound, error)
	ListByJob(ctx context.Context, jobID uint) ([]domain.InterviewRound, error)
	ListAll(ctx context.Context) ([]domain.InterviewRound, error)
	Delete(ctx context.Context, id uint) error
}

// ActivityStore persists append-only activity entries.
type ActivityStore interface {
	Append(ctx context.Context, entry *domain.ActivityEntry) error
	ListByJob(ctx context.Context, jobID uint, limit int) ([]domain.ActivityEntry, error)
}

// PrepStore persists prep questions.
type PrepStore interface {
	Create(ctx context.Context, q *domain.PrepQuestion) error
	Update(ctx context.Context, q *domain.PrepQuestion) error
	GetByID(ctx context.Context, id uint) (*domain.PrepQuestion, error)
	List(ctx context.Context, filter repository.PrepFilter) ([]domain.PrepQuestion, error)
	Count(ctx context.Context) (int64, error)
	Delete(ctx context.Context, id uint) error
}
