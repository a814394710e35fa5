package models

import "time"

// ContactSubmission is a stored contact-form entry.
type ContactSubmission struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Mobile    string    `gorm:"type:varchar(20);not null" json:"mobile"`
	Email     string    `gorm:"not null" json:"email"`
	Subject   string    `gorm:"not null" json:"subject"`
	Category  string    `gorm:"type:varchar(100);not null" json:"category"`
	Message   string    `gorm:"type:text" json:"message"`
	CreatedAt time.Time `gorm:"index" json:"createdAt"`
}

// TableName sets the table name.
func (ContactSubmission) TableName() string {
	return "contact_submissions"
}
