package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/rlin/jobdeck/internal/domain"
	"github.com/rlin/jobdeck/internal/repository"
)

// weeklyWindowDays bounds the weekly-applications series.
const weeklyWindowDays = 56

// unknownSource is the bucket for jobs with no recorded source.
const unknownSource = "Unknown"

// upcomingLimit caps the upcoming-deadline and upcoming-interview lists.
const upcomingLimit = 5

// StatusCount is one byStatus bucket.
type StatusCount struct {
	Status domain.JobStatus `json:"status"`
	Count  int              `json:"count"`
}

// SourceCount is one bySource bucket.
type SourceCount struct {
	Source string `json:"source"`
	Count  int    `json:"count"`
}

// WeekCount is one weeklyApps bucket, keyed "{year}-W{week}".
type WeekCount struct {
	Week  string `json:"week"`
	Count int    `json:"count"`
}

// UpcomingInterview is an interview round joined with its owning job's
// company and position.
type UpcomingInterview struct {
	domain.InterviewRound
	Company  string `json:"company"`
	Position string `json:"position"`
}

// DashboardStats is the full aggregation payload served by the stats
// endpoint. Recomputed from current store state on every call; nothing is
// materialized.
type DashboardStats struct {
	Total              int                 `json:"total"`
	ByStatus           []StatusCount       `json:"byStatus"`
	Upcoming           []domain.Job        `json:"upcoming"`
	UpcomingInterviews []UpcomingInterview `json:"upcomingInterviews"`
	WeeklyApps         []WeekCount         `json:"weeklyApps"`
	BySource           []SourceCount       `json:"bySource"`
	ResponseStats      int                 `json:"responseStats"`
}

// StatsService computes dashboard aggregates by scanning jobs and interview
// rounds. All derivation happens in application code, including the ISO-week
// bucketing, so the numbers are identical across backing stores.
type StatsService struct {
	jobs       JobStore
	interviews InterviewStore
	now        func() time.Time
}

// NewStatsService creates a new stats service.
// Parameters:
//   - jobs: job store.
//   - interviews: interview-round store.
// Returns:
//   - *StatsService: initialized service.
func NewStatsService(jobs JobStore, interviews InterviewStore) *StatsService {
	return &StatsService{
		jobs:       jobs,
		interviews: interviews,
		now:        time.Now,
	}
}

// Dashboard computes the full aggregation payload. A failed scan surfaces as
// a single terminal error; no partial result is ever returned.
// Parameters:
//   - ctx: context for cancellation and deadlines.
// Returns:
//   - *DashboardStats: computed aggregates.
//   - error: non-nil if a store scan fails.
func (s *StatsService) Dashboard(ctx context.Context) (*DashboardStats, error) {
	jobs, err := s.jobs.List(ctx, repository.JobFilter{})
	if err != nil {
		return nil, fmt.Errorf("failed to scan jobs: %w", err)
	}
	rounds, err := s.interviews.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to scan interview rounds: %w", err)
	}

	now := s.now()
	stats := &DashboardStats{
		Total:              len(jobs),
		ByStatus:           byStatus(jobs),
		Upcoming:           upcomingDeadlines(jobs, now),
		UpcomingInterviews: upcomingInterviews(jobs, rounds, now),
		WeeklyApps:         weeklyApps(jobs, now),
		BySource:           bySource(jobs),
		ResponseStats:      respondedCount(jobs),
	}
	return stats, nil
}

// byStatus buckets jobs by their current status. The buckets always
// partition the total: every job lands in exactly one.
func byStatus(jobs []domain.Job) []StatusCount {
	counts := make(map[domain.JobStatus]int)
	for _, j := range jobs {
		counts[j.Status]++
	}
	out := make([]StatusCount, 0, len(counts))
	for status, count := range counts {
		out = append(out, StatusCount{Status: status, Count: count})
	}
	sort.Slice(out, func(i, k int) bool { return out[i].Status < out[k].Status })
	return out
}

// upcomingDeadlines returns jobs whose deadline is today or later and whose
// status is still in the active pipeline, soonest deadline first. Jobs
// without a deadline are excluded, not treated as epoch-zero.
func upcomingDeadlines(jobs []domain.Job, now time.Time) []domain.Job {
	today := now.Format("2006-01-02")
	out := make([]domain.Job, 0)
	for _, j := range jobs {
		if j.Deadline == nil || *j.Deadline == "" {
			continue
		}
		if j.Status.Terminal() {
			continue
		}
		// ISO date strings order lexicographically
		if *j.Deadline >= today {
			out = append(out, j)
		}
	}
	sort.SliceStable(out, func(i, k int) bool { return *out[i].Deadline < *out[k].Deadline })
	if len(out) > upcomingLimit {
		out = out[:upcomingLimit]
	}
	return out
}

// upcomingInterviews returns rounds scheduled now or later, joined with each
// owning job's company and position, soonest first. Rounds with an absent or
// unparseable date, or an orphaned job reference, are excluded.
func upcomingInterviews(jobs []domain.Job, rounds []domain.InterviewRound, now time.Time) []UpcomingInterview {
	jobsByID := make(map[uint]domain.Job, len(jobs))
	for _, j := range jobs {
		jobsByID[j.ID] = j
	}

	type scheduled struct {
		at    time.Time
		entry UpcomingInterview
	}
	matches := make([]scheduled, 0)
	for _, r := range rounds {
		at, ok := parseWhen(r.ScheduledDate)
		if !ok || at.Before(now) {
			continue
		}
		job, ok := jobsByID[r.JobID]
		if !ok {
			continue
		}
		matches = append(matches, scheduled{
			at: at,
			entry: UpcomingInterview{
				InterviewRound: r,
				Company:        job.Company,
				Position:       job.Position,
			},
		})
	}
	sort.SliceStable(matches, func(i, k int) bool { return matches[i].at.Before(matches[k].at) })
	if len(matches) > upcomingLimit {
		matches = matches[:upcomingLimit]
	}
	out := make([]UpcomingInterview, 0, len(matches))
	for _, m := range matches {
		out = append(out, m.entry)
	}
	return out
}

// weeklyApps counts jobs per ISO year-week bucket, restricted to jobs applied
// within the last 56 days, oldest week first. Jobs with no applied date are
// excluded.
func weeklyApps(jobs []domain.Job, now time.Time) []WeekCount {
	cutoff := now.AddDate(0, 0, -weeklyWindowDays)

	type bucket struct {
		year, week int
	}
	counts := make(map[bucket]int)
	for _, j := range jobs {
		if j.AppliedDate == nil || *j.AppliedDate == "" {
			continue
		}
		applied, err := time.ParseInLocation("2006-01-02", *j.AppliedDate, now.Location())
		if err != nil {
			continue
		}
		if applied.Before(cutoff) {
			continue
		}
		year, week := applied.ISOWeek()
		counts[bucket{year, week}]++
	}

	buckets := make([]bucket, 0, len(counts))
	for b := range counts {
		buckets = append(buckets, b)
	}
	sort.Slice(buckets, func(i, k int) bool {
		if buckets[i].year != buckets[k].year {
			return buckets[i].year < buckets[k].year
		}
		return buckets[i].week < buckets[k].week
	})

	out := make([]WeekCount, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, WeekCount{
			Week:  fmt.Sprintf("%d-W%02d", b.year, b.week),
			Count: counts[b],
		})
	}
	return out
}

// bySource buckets jobs by source, coalescing missing sources into the
// Unknown bucket, highest count first.
func bySource(jobs []domain.Job) []SourceCount {
	counts := make(map[string]int)
	for _, j := range jobs {
		source := unknownSource
		if j.Source != nil && *j.Source != "" {
			source = *j.Source
		}
		counts[source]++
	}
	out := make([]SourceCount, 0, len(counts))
	for source, count := range counts {
		out = append(out, SourceCount{Source: source, Count: count})
	}
	sort.Slice(out, func(i, k int) bool {
		if out[i].Count != out[k].Count {
			return out[i].Count > out[k].Count
		}
		return out[i].Source < out[k].Source
	})
	return out
}

// respondedCount is a coarse "got any response" measure: everything that has
// moved past applied, minus withdrawals.
func respondedCount(jobs []domain.Job) int {
	count := 0
	for _, j := range jobs {
		if j.Status != domain.StatusApplied && j.Status != domain.StatusWithdrawn {
			count++
		}
	}
	return count
}

// parseWhen parses the loosely formatted datetime strings clients submit for
// interview scheduling. Returns false for empty or unrecognized values.
func parseWhen(value string) (time.Time, bool) {
	if value == "" {
		return time.Time{}, false
	}
	layouts := []string{
		time.RFC3339,
		"2006-01-02T15:04:05",
		"2006-01-02T15:04",
		"2006-01-02 15:04",
		"2006-01-02",
	}
	for _, layout := range layouts {
		if t, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
