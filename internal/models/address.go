package models

import (
	"time"

	"gorm.io/gorm"
)

// Address is a saved shipping address. At most one address per user
// carries IsDefault, enforced in the repository transaction.
type Address struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	UserID      uint           `gorm:"index;not null" json:"userId"`
	FullName    string         `gorm:"not null" json:"fullName"`
	Phone       string         `gorm:"type:varchar(20);not null" json:"phone"`
	Pincode     string         `gorm:"type:varchar(10);not null" json:"pincode"`
	Address     string         `gorm:"type:text;not null" json:"address"`
	Locality    string         `gorm:"type:varchar(200)" json:"locality"`
	City        string         `gorm:"type:varchar(100);not null" json:"city"`
	State       string         `gorm:"type:varchar(100);not null" json:"state"`
	Landmark    string         `gorm:"type:varchar(200)" json:"landmark"`
	AddressType string         `gorm:"type:varchar(20);not null;default:'home'" json:"addressType"`
	IsDefault   bool           `gorm:"default:false" json:"isDefault"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName sets the table name.
func (Address) TableName() string {
	return "addresses"
}
