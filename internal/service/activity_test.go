package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rlin/jobdeck/internal/domain"
)

func TestActivityService_RecordSwallowsAppendFailure(t *testing.T) {
	store := newFakeActivityStore()
	store.appendErr = errors.New("disk full")
	svc := NewActivityService(store, testLogger())

	// Must not panic and must not propagate anything.
	svc.Record(context.Background(), 1, JobCreated{Company: "Acme", Position: "X"})

	if len(store.entries) != 0 {
		t.Errorf("expected no entries, got %d", len(store.entries))
	}
}

func TestActivityService_AddNotePropagatesFailure(t *testing.T) {
	store := newFakeActivityStore()
	store.appendErr = errors.New("disk full")
	svc := NewActivityService(store, testLogger())

	_, err := svc.AddNote(context.Background(), 1, domain.ActivityNote, "hello")
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestActivityService_AddNoteDefaultsType(t *testing.T) {
	store := newFakeActivityStore()
	svc := NewActivityService(store, testLogger())

	entry, err := svc.AddNote(context.Background(), 3, "", "followed up by email")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if entry.Type != domain.ActivityNote {
		t.Errorf("expected type note, got %s", entry.Type)
	}
	if entry.Description != "followed up by email" {
		t.Errorf("expected verbatim description, got %q", entry.Description)
	}
}

func TestActivityService_ListHonorsLimit(t *testing.T) {
	store := newFakeActivityStore()
	svc := NewActivityService(store, testLogger())

	for i := 0; i < 5; i++ {
		if _, err := svc.AddNote(context.Background(), 1, domain.ActivityNote, "n"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	limited, err := svc.List(context.Background(), 1, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(limited) != 3 {
		t.Errorf("expected 3 entries, got %d", len(limited))
	}

	all, err := svc.List(context.Background(), 1, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(all) != 5 {
		t.Errorf("expected 5 entries, got %d", len(all))
	}
}
