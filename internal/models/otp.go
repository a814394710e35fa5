package models

import "time"

// OTP is a phone verification code. At most one live code exists per
// phone: issuing a new one deletes its predecessors. A verified record
// stays until registration consumes it.
type OTP struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Phone     string    `gorm:"type:varchar(20);index;not null" json:"phone"`
	Code      string    `gorm:"type:varchar(10);not null" json:"-"`
	Verified  bool      `gorm:"default:false" json:"verified"`
	ExpiresAt time.Time `gorm:"index;not null" json:"expiresAt"`
	CreatedAt time.Time `json:"createdAt"`
}

// TableName sets the table name.
func (OTP) TableName() string {
	return "otps"
}
