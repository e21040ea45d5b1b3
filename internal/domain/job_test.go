package domain

import "testing"

func TestJobStatusLabel(t *testing.T) {
	tests := []struct {
		status JobStatus
		want   string
	}{
		{StatusApplied, "Applied"},
		{StatusOA, "Online Assessment"},
		{StatusOffer, "Offer Received 🎉"},
		{JobStatus("ghosted"), "ghosted"},
	}
	for _, tt := range tests {
		if got := tt.status.Label(); got != tt.want {
			t.Errorf("Label(%q) = %q, want %q", tt.status, got, tt.want)
		}
	}
}

func TestJobStatusTerminal(t *testing.T) {
	terminal := []JobStatus{StatusOffer, StatusRejected, StatusWithdrawn}
	for _, s := range terminal {
		if !s.Terminal() {
			t.Errorf("expected %s to be terminal", s)
		}
	}
	active := []JobStatus{StatusApplied, StatusPhoneScreen, StatusOA, StatusTechnical, StatusOnsite}
	for _, s := range active {
		if s.Terminal() {
			t.Errorf("expected %s to be active", s)
		}
	}
}

func TestRoundTypeLabel(t *testing.T) {
	if got := RoundSystemDesign.Label(); got != "System Design" {
		t.Errorf("expected System Design, got %q", got)
	}
	if got := RoundType("pairing").Label(); got != "pairing" {
		t.Errorf("expected raw fallback, got %q", got)
	}
}
