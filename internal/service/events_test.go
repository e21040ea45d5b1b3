package service

import (
	"testing"

	"github.com/rlin/jobdeck/internal/domain"
)

func TestEventPhrasing(t *testing.T) {
	tests := []struct {
		name     string
		event    Event
		wantType domain.ActivityType
		wantDesc string
	}{
		{
			name:     "job created",
			event:    JobCreated{Company: "Acme", Position: "Backend Engineer"},
			wantType: domain.ActivityCreated,
			wantDesc: "Application created for Acme — Backend Engineer",
		},
		{
			name:     "application submitted",
			event:    ApplicationSubmitted{AppliedDate: "2025-06-01"},
			wantType: domain.ActivityApplied,
			wantDesc: "Applied on 2025-06-01",
		},
		{
			name:     "status change with labels",
			event:    StatusChanged{From: domain.StatusApplied, To: domain.StatusOffer},
			wantType: domain.ActivityStatusChange,
			wantDesc: `Status changed from "Applied" to "Offer Received 🎉"`,
		},
		{
			name:     "status change unknown status falls back to raw value",
			event:    StatusChanged{From: domain.StatusApplied, To: domain.JobStatus("ghosted")},
			wantType: domain.ActivityStatusChange,
			wantDesc: `Status changed from "Applied" to "ghosted"`,
		},
		{
			name:     "notes updated",
			event:    NotesUpdated{},
			wantType: domain.ActivityNote,
			wantDesc: "Notes updated",
		},
		{
			name:     "contact with role",
			event:    ContactAdded{Name: "Dana", Role: "Recruiter"},
			wantType: domain.ActivityContact,
			wantDesc: "Contact added: Dana (Recruiter)",
		},
		{
			name:     "contact without role",
			event:    ContactAdded{Name: "Dana"},
			wantType: domain.ActivityContact,
			wantDesc: "Contact added: Dana",
		},
		{
			name: "interview with date and interviewer",
			event: InterviewScheduled{
				RoundType:     domain.RoundTechnical,
				ScheduledDate: "2025-06-10T14:00",
				Interviewer:   "Sam",
			},
			wantType: domain.ActivityInterview,
			wantDesc: "Technical Interview round scheduled on 2025-06-10 14:00 with Sam",
		},
		{
			name:     "interview bare round",
			event:    InterviewScheduled{RoundType: domain.RoundHRScreen},
			wantType: domain.ActivityInterview,
			wantDesc: "HR Screen round scheduled",
		},
		{
			name:     "interview date only",
			event:    InterviewScheduled{RoundType: domain.RoundOnsite, ScheduledDate: "2025-06-12"},
			wantType: domain.ActivityInterview,
			wantDesc: "Onsite round scheduled on 2025-06-12",
		},
		{
			name:     "interview outcome",
			event:    InterviewOutcomeUpdated{Outcome: domain.OutcomePassed},
			wantType: domain.ActivityInterview,
			wantDesc: "Interview outcome updated: passed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := tt.event.Entry(7)
			if entry.JobID != 7 {
				t.Errorf("expected job ID 7, got %d", entry.JobID)
			}
			if entry.Type != tt.wantType {
				t.Errorf("expected type %s, got %s", tt.wantType, entry.Type)
			}
			if entry.Description != tt.wantDesc {
				t.Errorf("expected description %q, got %q", tt.wantDesc, entry.Description)
			}
		})
	}
}
