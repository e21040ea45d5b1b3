package domain

import "time"

// PrepCategory classifies a prep question for the flashcard feature.
type PrepCategory string

const (
	PrepBehavioral      PrepCategory = "behavioral"
	PrepDSA             PrepCategory = "dsa"
	PrepSystemDesign    PrepCategory = "system_design"
	PrepCoding          PrepCategory = "coding"
	PrepCompanySpecific PrepCategory = "company_specific"
)

// PrepQuestion is one interview-prep flashcard. Independent of any job.
// Tags is a comma-delimited string, kept flat the way clients submit it.
type PrepQuestion struct {
	ID         uint         `gorm:"primaryKey" json:"id"`
	Category   PrepCategory `gorm:"type:text;not null;index:idx_prep_category" json:"category"`
	Question   string       `gorm:"type:text;not null" json:"question"`
	Answer     string       `gorm:"type:text" json:"answer"`
	Tags       string       `gorm:"type:text" json:"tags"`
	Difficulty string       `gorm:"type:text;default:medium" json:"difficulty"`
	Practiced  bool         `gorm:"default:false" json:"practiced"`
	CreatedAt  time.Time    `json:"created_at"`
}

// TableName returns the database table name for PrepQuestion.
// Parameters: none.
// Returns:
//   - string: table name for GORM mapping.
func (PrepQuestion) TableName() string {
	return "prep_questions"
}
