package service

import (
	"fmt"
	"strings"

	"github.com/rlin/jobdeck/internal/domain"
)

// Event is a typed domain event derived from a job-lifecycle mutation.
// Events separate "what changed" from "how it is phrased": each mutation
// emits zero or more events and the activity service renders and appends
// them. The phrasing below is part of the external contract, since clients
// display the descriptions verbatim.
type Event interface {
	// Entry renders the event as an activity-log entry for the given job.
	Entry(jobID uint) domain.ActivityEntry
}

// JobCreated is emitted once for every new job record.
type JobCreated struct {
	Company  string
	Position string
}

func (e JobCreated) Entry(jobID uint) domain.ActivityEntry {
	return domain.ActivityEntry{
		JobID:       jobID,
		Type:        domain.ActivityCreated,
		Description: fmt.Sprintf("Application created for %s — %s", e.Company, e.Position),
	}
}

// ApplicationSubmitted is emitted when a job is created with an applied date.
type ApplicationSubmitted struct {
	AppliedDate string
}

func (e ApplicationSubmitted) Entry(jobID uint) domain.ActivityEntry {
	return domain.ActivityEntry{
		JobID:       jobID,
		Type:        domain.ActivityApplied,
		Description: fmt.Sprintf("Applied on %s", e.AppliedDate),
	}
}

// StatusChanged is emitted when an update moves a job to a different status.
type StatusChanged struct {
	From domain.JobStatus
	To   domain.JobStatus
}

func (e StatusChanged) Entry(jobID uint) domain.ActivityEntry {
	return domain.ActivityEntry{
		JobID:       jobID,
		Type:        domain.ActivityStatusChange,
		Description: fmt.Sprintf("Status changed from %q to %q", e.From.Label(), e.To.Label()),
	}
}

// NotesUpdated is emitted when an update changes the notes to a non-empty
// value. The note content itself is not recorded.
type NotesUpdated struct{}

func (e NotesUpdated) Entry(jobID uint) domain.ActivityEntry {
	return domain.ActivityEntry{
		JobID:       jobID,
		Type:        domain.ActivityNote,
		Description: "Notes updated",
	}
}

// ContactAdded is emitted when a contact is attached to a job.
type ContactAdded struct {
	Name string
	Role string
}

func (e ContactAdded) Entry(jobID uint) domain.ActivityEntry {
	desc := "Contact added: " + e.Name
	if e.Role != "" {
		desc += " (" + e.Role + ")"
	}
	return domain.ActivityEntry{
		JobID:       jobID,
		Type:        domain.ActivityContact,
		Description: desc,
	}
}

// InterviewScheduled is emitted when an interview round is created.
type InterviewScheduled struct {
	RoundType     domain.RoundType
	ScheduledDate string
	Interviewer   string
}

func (e InterviewScheduled) Entry(jobID uint) domain.ActivityEntry {
	desc := e.RoundType.Label() + " round scheduled"
	if e.ScheduledDate != "" {
		// datetime-local values carry a T separator; spaces read better
		desc += " on " + strings.ReplaceAll(e.ScheduledDate, "T", " ")
	}
	if e.Interviewer != "" {
		desc += " with " + e.Interviewer
	}
	return domain.ActivityEntry{
		JobID:       jobID,
		Type:        domain.ActivityInterview,
		Description: desc,
	}
}

// InterviewOutcomeUpdated is emitted when a round update records a new,
// non-empty outcome.
type InterviewOutcomeUpdated struct {
	Outcome domain.RoundOutcome
}

func (e InterviewOutcomeUpdated) Entry(jobID uint) domain.ActivityEntry {
	return domain.ActivityEntry{
		JobID:       jobID,
		Type:        domain.ActivityInterview,
		Description: fmt.Sprintf("Interview outcome updated: %s", e.Outcome),
	}
}
