package service

import (
	"context"
	"fmt"

	"github.com/rlin/jobdeck/internal/domain"
	"github.com/rlin/jobdeck/internal/logger"
	"github.com/rlin/jobdeck/internal/repository"
)

// JobDetail is a job with its child collections embedded, as served by the
// job-detail endpoint. Activity is capped at the embed limit, newest first.
type JobDetail struct {
	domain.Job
	Contacts   []domain.Contact        `json:"contacts"`
	Interviews []domain.InterviewRound `json:"interviews"`
	Activity   []domain.ActivityEntry  `json:"activity"`
}

// JobService orchestrates job, contact, and interview mutations and emits
// the derived activity events each mutation produces.
type JobService struct {
	jobs       JobStore
	contacts   ContactStore
	interviews InterviewStore
	activity   *ActivityService
	log        *logger.Logger
}

// NewJobService creates a new job service.
// Parameters:
//   - jobs: job store.
//   - contacts: contact store.
//   - interviews: interview-round store.
//   - activity: activity service for derived events.
//   - log: logger instance.
// Returns:
//   - *JobService: initialized service.
func NewJobService(jobs JobStore, contacts ContactStore, interviews InterviewStore, activity *ActivityService, log *logger.Logger) *JobService {
	return &JobService{
		jobs:       jobs,
		contacts:   contacts,
		interviews: interviews,
		activity:   activity,
		log:        log,
	}
}

// List returns jobs matching the filter, newest first.
func (s *JobService) List(ctx context.Context, filter repository.JobFilter) ([]domain.Job, error) {
	return s.jobs.List(ctx, filter)
}

// Get returns a job with contacts, interview rounds, and recent activity
// embedded.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - id: job ID.
// Returns:
//   - *JobDetail: job with child collections.
//   - error: domain.ErrNotFound if the job is absent, another error on failure.
func (s *JobService) Get(ctx context.Context, id uint) (*JobDetail, error) {
	job, err := s.jobs.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	contacts, err := s.contacts.ListByJob(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load contacts: %w", err)
	}
	interviews, err := s.interviews.ListByJob(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load interview rounds: %w", err)
	}
	activity, err := s.activity.List(ctx, id, activityEmbedLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to load activity: %w", err)
	}
	return &JobDetail{
		Job:        *job,
		Contacts:   contacts,
		Interviews: interviews,
		Activity:   activity,
	}, nil
}

// Create persists a new job and records its creation, plus an applied entry
// when an applied date was supplied.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - job: job to persist; Status defaults to applied when empty.
// Returns:
//   - *domain.Job: persisted job row.
//   - error: non-nil if the insert fails.
func (s *JobService) Create(ctx context.Context, job *domain.Job) (*domain.Job, error) {
	if job.Status == "" {
		job.Status = domain.StatusApplied
	}
	if err := s.jobs.Create(ctx, job); err != nil {
		return nil, fmt.Errorf("failed to create job: %w", err)
	}

	events := []Event{JobCreated{Company: job.Company, Position: job.Position}}
	if job.AppliedDate != nil && *job.AppliedDate != "" {
		events = append(events, ApplicationSubmitted{AppliedDate: *job.AppliedDate})
	}
	s.activity.Record(ctx, job.ID, events...)

	return job, nil
}

// Update replaces every field of a stored job (full-record update, no partial
// patch semantics) and records status and notes transitions. Resubmitting
// identical status and notes appends nothing.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - id: job ID to update.
//   - incoming: full replacement record.
// Returns:
//   - *domain.Job: persisted job row.
//   - error: domain.ErrNotFound if the job is absent, another error on failure.
func (s *JobService) Update(ctx context.Context, id uint, incoming *domain.Job) (*domain.Job, error) {
	prev, err := s.jobs.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	incoming.ID = prev.ID
	incoming.CreatedAt = prev.CreatedAt
	if err := s.jobs.Update(ctx, incoming); err != nil {
		return nil, fmt.Errorf("failed to update job: %w", err)
	}

	var events []Event
	if incoming.Status != prev.Status {
		events = append(events, StatusChanged{From: prev.Status, To: incoming.Status})
	}
	if incoming.Notes != prev.Notes && incoming.Notes != "" {
		events = append(events, NotesUpdated{})
	}
	if len(events) > 0 {
		s.activity.Record(ctx, id, events...)
	}

	return incoming, nil
}

// Delete removes a job and everything attached to it.
func (s *JobService) Delete(ctx context.Context, id uint) error {
	return s.jobs.Delete(ctx, id)
}

// AddContact attaches a contact to a job and records it.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - jobID: owning job ID.
//   - contact: contact to persist.
// Returns:
//   - *domain.Contact: persisted contact row.
//   - error: domain.ErrNotFound if the job is absent, another error on failure.
func (s *JobService) AddContact(ctx context.Context, jobID uint, contact *domain.Contact) (*domain.Contact, error) {
	if _, err := s.jobs.GetByID(ctx, jobID); err != nil {
		return nil, err
	}
	contact.JobID = jobID
	if err := s.contacts.Create(ctx, contact); err != nil {
		return nil, fmt.Errorf("failed to create contact: %w", err)
	}
	s.activity.Record(ctx, jobID, ContactAdded{Name: contact.Name, Role: contact.Role})
	return contact, nil
}

// UpdateContact replaces every field of a stored contact. Not logged.
func (s *JobService) UpdateContact(ctx context.Context, id uint, incoming *domain.Contact) (*domain.Contact, error) {
	prev, err := s.contacts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	incoming.ID = prev.ID
	incoming.JobID = prev.JobID
	if err := s.contacts.Update(ctx, incoming); err != nil {
		return nil, fmt.Errorf("failed to update contact: %w", err)
	}
	return incoming, nil
}

// DeleteContact removes a contact. Not logged.
func (s *JobService) DeleteContact(ctx context.Context, id uint) error {
	return s.contacts.Delete(ctx, id)
}

// AddInterview attaches an interview round to a job and records it.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - jobID: owning job ID.
//   - round: round to persist.
// Returns:
//   - *domain.InterviewRound: persisted round row.
//   - error: domain.ErrNotFound if the job is absent, another error on failure.
func (s *JobService) AddInterview(ctx context.Context, jobID uint, round *domain.InterviewRound) (*domain.InterviewRound, error) {
	if _, err := s.jobs.GetByID(ctx, jobID); err != nil {
		return nil, err
	}
	round.JobID = jobID
	if err := s.interviews.Create(ctx, round); err != nil {
		return nil, fmt.Errorf("failed to create interview round: %w", err)
	}
	s.activity.Record(ctx, jobID, InterviewScheduled{
		RoundType:     round.RoundType,
		ScheduledDate: round.ScheduledDate,
		Interviewer:   round.Interviewer,
	})
	return round, nil
}

// UpdateInterview replaces every field of a stored round and records an
// outcome transition when the new outcome is non-empty and differs from the
// stored one.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - id: round ID to update.
//   - incoming: full replacement record.
// Returns:
//   - *domain.InterviewRound: persisted round row.
//   - error: domain.ErrNotFound if the round is absent, another error on failure.
func (s *JobService) UpdateInterview(ctx context.Context, id uint, incoming *domain.InterviewRound) (*domain.InterviewRound, error) {
	prev, err := s.interviews.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	incoming.ID = prev.ID
	incoming.JobID = prev.JobID
	if err := s.interviews.Update(ctx, incoming); err != nil {
		return nil, fmt.Errorf("failed to update interview round: %w", err)
	}
	if incoming.Outcome != "" && incoming.Outcome != prev.Outcome {
		s.activity.Record(ctx, prev.JobID, InterviewOutcomeUpdated{Outcome: incoming.Outcome})
	}
	return incoming, nil
}

// DeleteInterview removes an interview round. Not logged.
func (s *JobService) DeleteInterview(ctx context.Context, id uint) error {
	return s.interviews.Delete(ctx, id)
}

// AddNote appends a user-authored activity entry after confirming the job
// exists.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - jobID: owning job ID.
//   - entryType: entry type; empty defaults to note.
//   - text: literal note text.
// Returns:
//   - *domain.ActivityEntry: persisted entry.
//   - error: domain.ErrNotFound if the job is absent, another error on failure.
func (s *JobService) AddNote(ctx context.Context, jobID uint, entryType domain.ActivityType, text string) (*domain.ActivityEntry, error) {
	if _, err := s.jobs.GetByID(ctx, jobID); err != nil {
		return nil, err
	}
	return s.activity.AddNote(ctx, jobID, entryType, text)
}

// Activity returns a job's full activity history, newest first.
func (s *JobService) Activity(ctx context.Context, jobID uint) ([]domain.ActivityEntry, error) {
	return s.activity.List(ctx, jobID, 0)
}
