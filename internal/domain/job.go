package domain

import "time"

// JobStatus represents the stage a job application is in.
// There is no enforced state machine: any status may transition to any other.
// Values outside the known set are passed through and displayed via the raw
// value rather than rejected.
type JobStatus string

const (
	StatusApplied     JobStatus = "applied"
	StatusPhoneScreen JobStatus = "phone_screen"
	StatusOA          JobStatus = "oa"
	StatusTechnical   JobStatus = "technical"
	StatusOnsite      JobStatus = "onsite"
	StatusOffer       JobStatus = "offer"
	StatusRejected    JobStatus = "rejected"
	StatusWithdrawn   JobStatus = "withdrawn"
)

// statusLabels is the fixed status -> display-name table used when phrasing
// activity entries. Unrecognized statuses fall back to the raw value.
var statusLabels = map[JobStatus]string{
	StatusApplied:     "Applied",
	StatusPhoneScreen: "Phone Screen",
	StatusOA:          "Online Assessment",
	StatusTechnical:   "Technical Interview",
	StatusOnsite:      "Onsite",
	StatusOffer:       "Offer Received 🎉",
	StatusRejected:    "Rejected",
	StatusWithdrawn:   "Withdrawn",
}

// Label returns the display name for a status.
// Parameters: none.
// Returns:
//   - string: mapped display label, or the raw status value if unknown.
func (s JobStatus) Label() string {
	if label, ok := statusLabels[s]; ok {
		return label
	}
	return string(s)
}

// Terminal reports whether the status ends the active pipeline
// (offer, rejected, withdrawn).
func (s JobStatus) Terminal() bool {
	return s == StatusOffer || s == StatusRejected || s == StatusWithdrawn
}

// Job represents a tracked job application, the root entity of the domain.
// Updates are whole-record: callers resend every field on PUT.
type Job struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Company     string    `gorm:"type:text;not null" json:"company"`
	Position    string    `gorm:"type:text;not null" json:"position"`
	Location    string    `gorm:"type:text" json:"location"`
	Remote      bool      `gorm:"default:false" json:"remote"`
	URL         string    `gorm:"type:text" json:"url"`
	Status      JobStatus `gorm:"type:text;index:idx_jobs_status;default:applied" json:"status"`
	AppliedDate *string   `gorm:"type:text" json:"applied_date"`
	Deadline    *string   `gorm:"type:text" json:"deadline"`
	SalaryMin   *int      `json:"salary_min"`
	SalaryMax   *int      `json:"salary_max"`
	Notes       string    `gorm:"type:text" json:"notes"`
	Priority    int       `gorm:"default:0" json:"priority"`
	Source      *string   `gorm:"type:text" json:"source"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName returns the database table name for Job.
// Parameters: none.
// Returns:
//   - string: table name for GORM mapping.
func (Job) TableName() string {
	return "jobs"
}
