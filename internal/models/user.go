package models

import (
	"time"

	"gorm.io/gorm"
)

// User is a storefront account. Registration is gated on phone OTP
// verification; PhoneVerified stays false only for accounts created
// before the gate existed.
type User struct {
	ID            uint           `gorm:"primarykey" json:"id"`
	Name          string         `gorm:"not null" json:"name"`
	Email         string         `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash  string         `gorm:"not null" json:"-"`
	Phone         string         `gorm:"type:varchar(20);index;not null" json:"phone"`
	PhoneVerified bool           `gorm:"default:false" json:"phoneVerified"`
	CreatedAt     time.Time      `gorm:"index" json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName sets the table name.
func (User) TableName() string {
	return "users"
}
