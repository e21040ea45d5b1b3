package service

import (
	"context"
	"io"

	"github.com/rlin/jobdeck/internal/domain"
	"github.com/rlin/jobdeck/internal/logger"
	"github.com/rlin/jobdeck/internal/repository"
)

// In-memory store fakes backing the service tests. They mirror the GORM
// repositories' observable behavior: auto-assigned IDs, ErrNotFound on
// misses, and newest-first activity read-back.

func testLogger() *logger.Logger {
	return logger.New(&logger.Config{
		Level:       "error",
		Format:      "text",
		Output:      io.Discard,
		ServiceName: "test",
	})
}

type fakeJobStore struct {
	jobs    []domain.Job
	nextID  uint
	listErr error
}

func newFakeJobStore() *fakeJobStore {
	return &fakeJobStore{nextID: 1}
}

func (f *fakeJobStore) Create(_ context.Context, job *domain.Job) error {
	job.ID = f.nextID
	f.nextID++
	f.jobs = append(f.jobs, *job)
	return nil
}

func (f *fakeJobStore) Update(_ context.Context, job *domain.Job) error {
	for i := range f.jobs {
		if f.jobs[i].ID == job.ID {
			f.jobs[i] = *job
			return nil
		}
	}
	return domain.ErrNotFound
}

func (f *fakeJobStore) GetByID(_ context.Context, id uint) (*domain.Job, error) {
	for i := range f.jobs {
		if f.jobs[i].ID == id {
			job := f.jobs[i]
			return &job, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeJobStore) List(_ context.Context, _ repository.JobFilter) ([]domain.Job, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]domain.Job, len(f.jobs))
	copy(out, f.jobs)
	return out, nil
}

func (f *fakeJobStore) Delete(_ context.Context, id uint) error {
	for i := range f.jobs {
		if f.jobs[i].ID == id {
			f.jobs = append(f.jobs[:i], f.jobs[i+1:]...)
			return nil
		}
	}
	return nil
}

type fakeContactStore struct {
	contacts []domain.Contact
	nextID   uint
}

func newFakeContactStore() *fakeContactStore {
	return &fakeContactStore{nextID: 1}
}

func (f *fakeContactStore) Create(_ context.Context, c *domain.Contact) error {
	c.ID = f.nextID
	f.nextID++
	f.contacts = append(f.contacts, *c)
	return nil
}

func (f *fakeContactStore) Update(_ context.Context, c *domain.Contact) error {
	for i := range f.contacts {
		if f.contacts[i].ID == c.ID {
			f.contacts[i] = *c
			return nil
		}
	}
	return domain.ErrNotFound
}

func (f *fakeContactStore) GetByID(_ context.Context, id uint) (*domain.Contact, error) {
	for i := range f.contacts {
		if f.contacts[i].ID == id {
			c := f.contacts[i]
			return &c, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeContactStore) ListByJob(_ context.Context, jobID uint) ([]domain.Contact, error) {
	out := make([]domain.Contact, 0)
	for _, c := range f.contacts {
		if c.JobID == jobID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeContactStore) Delete(_ context.Context, id uint) error {
	for i := range f.contacts {
		if f.contacts[i].ID == id {
			f.contacts = append(f.contacts[:i], f.contacts[i+1:]...)
			return nil
		}
	}
	return nil
}

type fakeInterviewStore struct {
	rounds  []domain.InterviewRound
	nextID  uint
	listErr error
}

func newFakeInterviewStore() *fakeInterviewStore {
	return &fakeInterviewStore{nextID: 1}
}

func (f *fakeInterviewStore) Create(_ context.Context, r *domain.InterviewRound) error {
	r.ID = f.nextID
	f.nextID++
	f.rounds = append(f.rounds, *r)
	return nil
}

func (f *fakeInterviewStore) Update(_ context.Context, r *domain.InterviewRound) error {
	for i := range f.rounds {
		if f.rounds[i].ID == r.ID {
			f.rounds[i] = *r
			return nil
		}
	}
	return domain.ErrNotFound
}

func (f *fakeInterviewStore) GetByID(_ context.Context, id uint) (*domain.InterviewRound, error) {
	for i := range f.rounds {
		if f.rounds[i].ID == id {
			r := f.rounds[i]
			return &r, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeInterviewStore) ListByJob(_ context.Context, jobID uint) ([]domain.InterviewRound, error) {
	out := make([]domain.InterviewRound, 0)
	for _, r := range f.rounds {
		if r.JobID == jobID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeInterviewStore) ListAll(_ context.Context) ([]domain.InterviewRound, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]domain.InterviewRound, len(f.rounds))
	copy(out, f.rounds)
	return out, nil
}

func (f *fakeInterviewStore) Delete(_ context.Context, id uint) error {
	for i := range f.rounds {
		if f.rounds[i].ID == id {
			f.rounds = append(f.rounds[:i], f.rounds[i+1:]...)
			return nil
		}
	}
	return nil
}

type fakeActivityStore struct {
	entries   []domain.ActivityEntry
	nextID    uint
	appendErr error
}

func newFakeActivityStore() *fakeActivityStore {
	return &fakeActivityStore{nextID: 1}
}

func (f *fakeActivityStore) Append(_ context.Context, e *domain.ActivityEntry) error {
	if f.appendErr != nil {
		return f.appendErr
	}
	e.ID = f.nextID
	f.nextID++
	f.entries = append(f.entries, *e)
	return nil
}

// ListByJob returns entries newest first. Entries appended in one request
// share a timestamp, so the repository's id tiebreak makes read-back exactly
// reverse append order; the fake reproduces that.
func (f *fakeActivityStore) ListByJob(_ context.Context, jobID uint, limit int) ([]domain.ActivityEntry, error) {
	out := make([]domain.ActivityEntry, 0)
	for i := len(f.entries) - 1; i >= 0; i-- {
		if f.entries[i].JobID == jobID {
			out = append(out, f.entries[i])
		}
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
