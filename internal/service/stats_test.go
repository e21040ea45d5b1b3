package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rlin/jobdeck/internal/domain"
)

// fixedNow pins the aggregation clock to 2025-06-15 00:00 local, a Sunday in
// ISO week 24.
func fixedNow() time.Time {
	return time.Date(2025, 6, 15, 0, 0, 0, 0, time.Local)
}

func newTestStatsService(jobs *fakeJobStore, interviews *fakeInterviewStore) *StatsService {
	svc := NewStatsService(jobs, interviews)
	svc.now = fixedNow
	return svc
}

func addJob(t *testing.T, store *fakeJobStore, job domain.Job) domain.Job {
	t.Helper()
	if job.Status == "" {
		job.Status = domain.StatusApplied
	}
	if err := store.Create(context.Background(), &job); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return job
}

func TestStatsService_EmptyStore(t *testing.T) {
	svc := newTestStatsService(newFakeJobStore(), newFakeInterviewStore())

	stats, err := svc.Dashboard(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.Total != 0 {
		t.Errorf("expected total 0, got %d", stats.Total)
	}
	if stats.ResponseStats != 0 {
		t.Errorf("expected responseStats 0, got %d", stats.ResponseStats)
	}
	// Empty aggregates must be empty slices, not nil, so they serialize as [].
	if stats.ByStatus == nil || stats.Upcoming == nil || stats.UpcomingInterviews == nil ||
		stats.WeeklyApps == nil || stats.BySource == nil {
		t.Error("expected empty slices, got nil")
	}
}

func TestStatsService_ByStatusPartitionsTotal(t *testing.T) {
	jobs := newFakeJobStore()
	addJob(t, jobs, domain.Job{Company: "A", Position: "x", Status: domain.StatusApplied})
	addJob(t, jobs, domain.Job{Company: "B", Position: "x", Status: domain.StatusApplied})
	addJob(t, jobs, domain.Job{Company: "C", Position: "x", Status: domain.StatusOffer})
	addJob(t, jobs, domain.Job{Company: "D", Position: "x", Status: domain.StatusRejected})

	svc := newTestStatsService(jobs, newFakeInterviewStore())
	stats, err := svc.Dashboard(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if stats.Total != 4 {
		t.Errorf("expected total 4, got %d", stats.Total)
	}
	sum := 0
	for _, b := range stats.ByStatus {
		sum += b.Count
	}
	if sum != stats.Total {
		t.Errorf("byStatus buckets sum to %d, want %d", sum, stats.Total)
	}
	// Sorted by status value: applied < offer < rejected.
	want := []StatusCount{
		{Status: domain.StatusApplied, Count: 2},
		{Status: domain.StatusOffer, Count: 1},
		{Status: domain.StatusRejected, Count: 1},
	}
	if len(stats.ByStatus) != len(want) {
		t.Fatalf("expected %d buckets, got %d", len(want), len(stats.ByStatus))
	}
	for i, b := range want {
		if stats.ByStatus[i] != b {
			t.Errorf("bucket %d: expected %+v, got %+v", i, b, stats.ByStatus[i])
		}
	}
}

func TestStatsService_WeeklyWindow(t *testing.T) {
	jobs := newFakeJobStore()
	// 56 days before 2025-06-15 is 2025-04-20: the boundary day is inside
	// the window, one day earlier is out.
	addJob(t, jobs, domain.Job{Company: "In", Position: "x", AppliedDate: strPtr("2025-04-20")})
	addJob(t, jobs, domain.Job{Company: "Out", Position: "x", AppliedDate: strPtr("2025-04-19")})
	addJob(t, jobs, domain.Job{Company: "NoDate", Position: "x"})
	addJob(t, jobs, domain.Job{Company: "Wk23", Position: "x", AppliedDate: strPtr("2025-06-03")})
	addJob(t, jobs, domain.Job{Company: "Wk24a", Position: "x", AppliedDate: strPtr("2025-06-10")})
	addJob(t, jobs, domain.Job{Company: "Wk24b", Position: "x", AppliedDate: strPtr("2025-06-11")})

	svc := newTestStatsService(jobs, newFakeInterviewStore())
	stats, err := svc.Dashboard(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []WeekCount{
		{Week: "2025-W16", Count: 1}, // 2025-04-20 is the Sunday of week 16
		{Week: "2025-W23", Count: 1},
		{Week: "2025-W24", Count: 2},
	}
	if len(stats.WeeklyApps) != len(want) {
		t.Fatalf("expected %d weeks, got %d: %+v", len(want), len(stats.WeeklyApps), stats.WeeklyApps)
	}
	for i, w := range want {
		if stats.WeeklyApps[i] != w {
			t.Errorf("week %d: expected %+v, got %+v", i, w, stats.WeeklyApps[i])
		}
	}
}

func TestStatsService_BySourceCoalescesUnknown(t *testing.T) {
	jobs := newFakeJobStore()
	addJob(t, jobs, domain.Job{Company: "A", Position: "x", Source: strPtr("LinkedIn")})
	addJob(t, jobs, domain.Job{Company: "B", Position: "x", Source: strPtr("LinkedIn")})
	addJob(t, jobs, domain.Job{Company: "C", Position: "x", Source: strPtr("")})
	addJob(t, jobs, domain.Job{Company: "D", Position: "x"})
	addJob(t, jobs, domain.Job{Company: "E", Position: "x", Source: strPtr("Referral")})
	addJob(t, jobs, domain.Job{Company: "F", Position: "x", Source: strPtr("Hacker News")})

	svc := newTestStatsService(jobs, newFakeInterviewStore())
	stats, err := svc.Dashboard(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Count desc, then source asc for ties.
	want := []SourceCount{
		{Source: "LinkedIn", Count: 2},
		{Source: "Unknown", Count: 2},
		{Source: "Hacker News", Count: 1},
		{Source: "Referral", Count: 1},
	}
	if len(stats.BySource) != len(want) {
		t.Fatalf("expected %d sources, got %d: %+v", len(want), len(stats.BySource), stats.BySource)
	}
	for i, s := range want {
		if stats.BySource[i] != s {
			t.Errorf("source %d: expected %+v, got %+v", i, s, stats.BySource[i])
		}
	}
}

func TestStatsService_UpcomingDeadlines(t *testing.T) {
	jobs := newFakeJobStore()
	addJob(t, jobs, domain.Job{Company: "Today", Position: "x", Deadline: strPtr("2025-06-15")})
	addJob(t, jobs, domain.Job{Company: "Past", Position: "x", Deadline: strPtr("2025-06-14")})
	addJob(t, jobs, domain.Job{Company: "Closed", Position: "x", Status: domain.StatusRejected, Deadline: strPtr("2025-07-01")})
	addJob(t, jobs, domain.Job{Company: "NoDeadline", Position: "x"})
	addJob(t, jobs, domain.Job{Company: "Later", Position: "x", Deadline: strPtr("2025-06-20")})

	svc := newTestStatsService(jobs, newFakeInterviewStore())
	stats, err := svc.Dashboard(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(stats.Upcoming) != 2 {
		t.Fatalf("expected 2 upcoming jobs, got %d", len(stats.Upcoming))
	}
	if stats.Upcoming[0].Company != "Today" || stats.Upcoming[1].Company != "Later" {
		t.Errorf("expected [Today, Later], got [%s, %s]", stats.Upcoming[0].Company, stats.Upcoming[1].Company)
	}
}

func TestStatsService_UpcomingDeadlinesLimit(t *testing.T) {
	jobs := newFakeJobStore()
	deadlines := []string{"2025-06-16", "2025-06-17", "2025-06-18", "2025-06-19", "2025-06-20", "2025-06-21", "2025-06-22"}
	for _, d := range deadlines {
		addJob(t, jobs, domain.Job{Company: d, Position: "x", Deadline: strPtr(d)})
	}

	svc := newTestStatsService(jobs, newFakeInterviewStore())
	stats, err := svc.Dashboard(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(stats.Upcoming) != 5 {
		t.Fatalf("expected 5 upcoming jobs, got %d", len(stats.Upcoming))
	}
	if stats.Upcoming[4].Company != "2025-06-20" {
		t.Errorf("expected cutoff at 2025-06-20, got %s", stats.Upcoming[4].Company)
	}
}

func TestStatsService_UpcomingInterviews(t *testing.T) {
	jobs := newFakeJobStore()
	acme := addJob(t, jobs, domain.Job{Company: "Acme", Position: "Backend Engineer"})
	globex := addJob(t, jobs, domain.Job{Company: "Globex", Position: "SRE"})

	interviews := newFakeInterviewStore()
	rounds := []domain.InterviewRound{
		{JobID: acme.ID, RoundType: domain.RoundTechnical, ScheduledDate: "2025-06-20T14:00"},
		{JobID: globex.ID, RoundType: domain.RoundOnsite, ScheduledDate: "2025-06-16"},
		{JobID: acme.ID, RoundType: domain.RoundHRScreen, ScheduledDate: "2025-06-01T10:00"}, // past
		{JobID: 999, RoundType: domain.RoundOther, ScheduledDate: "2025-06-18"},              // orphan
		{JobID: acme.ID, RoundType: domain.RoundBehavioral, ScheduledDate: "sometime soon"},  // unparseable
		{JobID: acme.ID, RoundType: domain.RoundSystemDesign},                                // unscheduled
	}
	for i := range rounds {
		if err := interviews.Create(context.Background(), &rounds[i]); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	svc := newTestStatsService(jobs, interviews)
	stats, err := svc.Dashboard(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(stats.UpcomingInterviews) != 2 {
		t.Fatalf("expected 2 upcoming interviews, got %d", len(stats.UpcomingInterviews))
	}
	first := stats.UpcomingInterviews[0]
	if first.Company != "Globex" || first.RoundType != domain.RoundOnsite {
		t.Errorf("expected Globex onsite first, got %s %s", first.Company, first.RoundType)
	}
	second := stats.UpcomingInterviews[1]
	if second.Company != "Acme" || second.Position != "Backend Engineer" {
		t.Errorf("expected Acme round joined with its job, got %s %s", second.Company, second.Position)
	}
}

func TestStatsService_ResponseStats(t *testing.T) {
	jobs := newFakeJobStore()
	addJob(t, jobs, domain.Job{Company: "A", Position: "x", Status: domain.StatusApplied})
	addJob(t, jobs, domain.Job{Company: "B", Position: "x", Status: domain.StatusWithdrawn})
	addJob(t, jobs, domain.Job{Company: "C", Position: "x", Status: domain.StatusPhoneScreen})
	addJob(t, jobs, domain.Job{Company: "D", Position: "x", Status: domain.StatusRejected})
	addJob(t, jobs, domain.Job{Company: "E", Position: "x", Status: domain.StatusOffer})

	svc := newTestStatsService(jobs, newFakeInterviewStore())
	stats, err := svc.Dashboard(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// A rejection still counts as a response; withdrawals do not.
	if stats.ResponseStats != 3 {
		t.Errorf("expected responseStats 3, got %d", stats.ResponseStats)
	}
}

func TestStatsService_ScanFailureIsTerminal(t *testing.T) {
	jobs := newFakeJobStore()
	jobs.listErr = errors.New("store offline")

	svc := newTestStatsService(jobs, newFakeInterviewStore())
	stats, err := svc.Dashboard(context.Background())
	if err == nil {
		t.Fatal("expected error")
	}
	if stats != nil {
		t.Error("expected no partial result")
	}
}

func TestParseWhen(t *testing.T) {
	tests := []struct {
		value string
		ok    bool
	}{
		{"2025-06-10T14:00", true},
		{"2025-06-10T14:00:00", true},
		{"2025-06-10 14:00", true},
		{"2025-06-10", true},
		{"2025-06-10T14:00:00Z", true},
		{"", false},
		{"next tuesday", false},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			if _, ok := parseWhen(tt.value); ok != tt.ok {
				t.Errorf("parseWhen(%q) ok = %v, want %v", tt.value, ok, tt.ok)
			}
		})
	}
}
