package service

import (
	"context"
	"errors"
	"testing"
)

func TestParseService_Disabled(t *testing.T) {
	tests := []struct {
		name string
		cfg  *ParseConfig
	}{
		{"nil config", nil},
		{"empty API key", &ParseConfig{Model: "gpt-4o-mini"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewParseService(tt.cfg)
			if svc.IsEnabled() {
				t.Error("expected service to be disabled")
			}
			_, err := svc.ParseJob(context.Background(), "some posting")
			if !errors.Is(err, ErrParseNotConfigured) {
				t.Errorf("expected ErrParseNotConfigured, got %v", err)
			}
		})
	}
}

func TestStripFences(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"plain json", `{"company":"Acme"}`, `{"company":"Acme"}`},
		{"json fence", "```json\n{\"company\":\"Acme\"}\n```", `{"company":"Acme"}`},
		{"bare fence", "```\n{\"company\":\"Acme\"}\n```", `{"company":"Acme"}`},
		{"surrounding whitespace", "  {\"company\":\"Acme\"}\n", `{"company":"Acme"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := stripFences(tt.content); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}
