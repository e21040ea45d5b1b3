package domain

import "time"

// ActivityType classifies an activity-log entry. Unknown types are rendered
// by clients with a default icon, so they are stored as-is.
type ActivityType string

const (
	ActivityCreated      ActivityType = "created"
	ActivityStatusChange ActivityType = "status_change"
	ActivityApplied      ActivityType = "applied"
	ActivityInterview    ActivityType = "interview"
	ActivityContact      ActivityType = "contact"
	ActivityNote         ActivityType = "note"
)

// ActivityEntry is one append-only record in a job's history timeline.
// Entries are never edited or removed individually; they are destroyed only
// when the owning job is deleted.
type ActivityEntry struct {
	ID          uint         `gorm:"primaryKey" json:"id"`
	JobID       uint         `gorm:"not null;index:idx_activity_job" json:"job_id"`
	Type        ActivityType `gorm:"type:text;not null" json:"type"`
	Description string       `gorm:"type:text" json:"description"`
	CreatedAt   time.Time    `json:"created_at"`
}

// TableName returns the database table name for ActivityEntry.
// Parameters: none.
// Returns:
//   - string: table name for GORM mapping.
func (ActivityEntry) TableName() string {
	return "activity_log"
}
