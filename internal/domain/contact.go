package domain

// Contact is a person attached to a job application (recruiter, referral,
// hiring manager). Creation is logged to the activity timeline; updates and
// deletes are not.
type Contact struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	JobID uint   `gorm:"not null;index:idx_contacts_job" json:"job_id"`
	Name  string `gorm:"type:text;not null" json:"name"`
	Email string `gorm:"type:text" json:"email"`
	Phone string `gorm:"type:text" json:"phone"`
	Role  string `gorm:"type:text" json:"role"`
	Notes string `gorm:"type:text" json:"notes"`
}

// TableName returns the database table name for Contact.
// Parameters: none.
// Returns:
//   - string: table name for GORM mapping.
func (Contact) TableName() string {
	return "contacts"
}
