package domain

import "time"

// RoundType represents the kind of interview round.
type RoundType string

const (
	RoundHRScreen         RoundType = "hr_screen"
	RoundPhoneScreen      RoundType = "phone_screen"
	RoundOnlineAssessment RoundType = "online_assessment"
	RoundTechnical        RoundType = "technical"
	RoundSystemDesign     RoundType = "system_design"
	RoundBehavioral       RoundType = "behavioral"
	RoundOnsite           RoundType = "onsite"
	RoundOther            RoundType = "other"
)

var roundLabels = map[RoundType]string{
	RoundHRScreen:         "HR Screen",
	RoundPhoneScreen:      "Phone Screen",
	RoundOnlineAssessment: "Online Assessment",
	RoundTechnical:        "Technical Interview",
	RoundSystemDesign:     "System Design",
	RoundBehavioral:       "Behavioral",
	RoundOnsite:           "Onsite",
	RoundOther:            "Other",
}

// Label returns the display name for a round type.
// Parameters: none.
// Returns:
//   - string: mapped display label, or the raw value if unknown.
func (t RoundType) Label() string {
	if label, ok := roundLabels[t]; ok {
		return label
	}
	return string(t)
}

// RoundOutcome represents the result of an interview round.
// The empty string means the round has no recorded outcome yet.
type RoundOutcome string

const (
	OutcomePassed    RoundOutcome = "passed"
	OutcomeFailed    RoundOutcome = "failed"
	OutcomeCancelled RoundOutcome = "cancelled"
)

// InterviewRound represents a single interview event tied to a job.
// ScheduledDate is stored as text, typically "2006-01-02T15:04" from a
// datetime-local input, occasionally date-only.
type InterviewRound struct {
	ID             uint         `gorm:"primaryKey" json:"id"`
	JobID          uint         `gorm:"not null;index:idx_rounds_job" json:"job_id"`
	RoundType      RoundType    `gorm:"type:text;not null" json:"round_type"`
	ScheduledDate  string       `gorm:"type:text" json:"scheduled_date"`
	Interviewer    string       `gorm:"type:text" json:"interviewer"`
	Notes          string       `gorm:"type:text" json:"notes"`
	QuestionsAsked string       `gorm:"type:text" json:"questions_asked"`
	Outcome        RoundOutcome `gorm:"type:text;default:''" json:"outcome"`
	CreatedAt      time.Time    `json:"created_at"`
}

// TableName returns the database table name for InterviewRound.
// Parameters: none.
// Returns:
//   - string: table name for GORM mapping.
func (InterviewRound) TableName() string {
	return "interview_rounds"
}
