package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"io"
	"strings"
	"testing"

	"github.com/rlin/jobdeck/internal/domain"
)

type fakeObjectStorage struct {
	uploads map[string][]byte
}

func newFakeObjectStorage() *fakeObjectStorage {
	return &fakeObjectStorage{uploads: make(map[string][]byte)}
}

func (f *fakeObjectStorage) Upload(_ context.Context, key string, reader io.Reader, _ int64, _ string) error {
	data, err := io.ReadAll(reader)
	if err != nil {
		return err
	}
	f.uploads[key] = data
	return nil
}

func (f *fakeObjectStorage) GetURL(key string) string {
	return "https://backup.example/" + key
}

func (f *fakeObjectStorage) EnsureBucket(_ context.Context) error { return nil }

func TestExportService_WriteCSV(t *testing.T) {
	jobs := newFakeJobStore()
	salary := 120000
	addJob(t, jobs, domain.Job{
		Company:     "Acme, Inc.",
		Position:    `Backend "Go" Engineer`,
		Location:    "Berlin",
		Remote:      true,
		Status:      domain.StatusOffer,
		AppliedDate: strPtr("2025-06-01"),
		SalaryMin:   &salary,
		Source:      strPtr("LinkedIn"),
		Notes:       "multi\nline note",
	})
	addJob(t, jobs, domain.Job{Company: "Globex", Position: "SRE"})

	svc := NewExportService(jobs, nil, testLogger())

	var buf bytes.Buffer
	if err := svc.WriteCSV(context.Background(), &buf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("output is not valid CSV: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected header + 2 rows, got %d records", len(records))
	}
	if strings.Join(records[0], ",") != strings.Join(csvHeader, ",") {
		t.Errorf("unexpected header: %v", records[0])
	}

	row := records[1]
	if row[1] != "Acme, Inc." {
		t.Errorf("comma in company not round-tripped: %q", row[1])
	}
	if row[2] != `Backend "Go" Engineer` {
		t.Errorf("quotes in position not round-tripped: %q", row[2])
	}
	if row[4] != "true" {
		t.Errorf("expected remote true, got %q", row[4])
	}
	if row[9] != "120000" {
		t.Errorf("expected salary_min 120000, got %q", row[9])
	}
	if row[10] != "" {
		t.Errorf("expected empty salary_max, got %q", row[10])
	}
	if row[13] != "multi\nline note" {
		t.Errorf("newline in notes not round-tripped: %q", row[13])
	}

	// Absent optionals stay empty, not "0" or "<nil>".
	if records[2][7] != "" || records[2][12] != "" {
		t.Errorf("expected empty applied_date and source, got %q and %q", records[2][7], records[2][12])
	}
}

func TestExportService_Snapshot(t *testing.T) {
	jobs := newFakeJobStore()
	addJob(t, jobs, domain.Job{Company: "Acme", Position: "Backend Engineer"})

	backup := newFakeObjectStorage()
	svc := NewExportService(jobs, backup, testLogger())
	if !svc.BackupEnabled() {
		t.Fatal("expected backup to be enabled")
	}

	url, err := svc.Snapshot(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(url, "https://backup.example/exports/jobs-") {
		t.Errorf("unexpected snapshot URL: %q", url)
	}
	if len(backup.uploads) != 1 {
		t.Fatalf("expected 1 upload, got %d", len(backup.uploads))
	}
	for key, data := range backup.uploads {
		if !strings.HasPrefix(key, "exports/jobs-") || !strings.HasSuffix(key, ".csv") {
			t.Errorf("unexpected snapshot key: %q", key)
		}
		if !strings.Contains(string(data), "Acme") {
			t.Error("uploaded snapshot does not contain the exported rows")
		}
	}
}

func TestExportService_SnapshotWithoutBackup(t *testing.T) {
	svc := NewExportService(newFakeJobStore(), nil, testLogger())
	if svc.BackupEnabled() {
		t.Fatal("expected backup to be disabled")
	}
	if _, err := svc.Snapshot(context.Background()); err == nil {
		t.Fatal("expected error")
	}
}
