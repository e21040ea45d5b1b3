package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rlin/jobdeck/internal/domain"
)

// End-to-end pass over the service layer: create, transition, aggregate,
// delete, with the activity log checked at each step.
func TestJobLifecycleScenario(t *testing.T) {
	jobs := newFakeJobStore()
	contacts := newFakeContactStore()
	interviews := newFakeInterviewStore()
	activity := newFakeActivityStore()
	log := testLogger()
	jobSvc := NewJobService(jobs, contacts, interviews, NewActivityService(activity, log), log)
	statsSvc := newTestStatsService(jobs, interviews)
	ctx := context.Background()

	job, err := jobSvc.Create(ctx, &domain.Job{
		Company:     "Acme",
		Position:    "Engineer",
		Status:      domain.StatusApplied,
		AppliedDate: strPtr("2025-06-01"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	updated := *job
	updated.Status = domain.StatusOffer
	if _, err := jobSvc.Update(ctx, job.ID, &updated); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	stats, err := statsSvc.Dashboard(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(stats.ByStatus) != 1 || stats.ByStatus[0].Status != domain.StatusOffer || stats.ByStatus[0].Count != 1 {
		t.Errorf("expected byStatus [{offer 1}], got %+v", stats.ByStatus)
	}

	history, err := jobSvc.Activity(ctx, job.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Newest first: status_change, then applied, then created.
	wantTypes := []domain.ActivityType{
		domain.ActivityStatusChange,
		domain.ActivityApplied,
		domain.ActivityCreated,
	}
	if len(history) != len(wantTypes) {
		t.Fatalf("expected %d entries, got %d", len(wantTypes), len(history))
	}
	for i, want := range wantTypes {
		if history[i].Type != want {
			t.Errorf("entry %d: expected %s, got %s", i, want, history[i].Type)
		}
	}
	wantDesc := `Status changed from "Applied" to "Offer Received 🎉"`
	if history[0].Description != wantDesc {
		t.Errorf("expected %q, got %q", wantDesc, history[0].Description)
	}

	if err := jobSvc.Delete(ctx, job.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := jobSvc.Get(ctx, job.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
}
