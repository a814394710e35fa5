package models

import "time"

// CartItem is one cart line. The (user, product) pair is unique so
// adding an already-carted product merges into the existing line.
type CartItem struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_cart_user_product" json:"userId"`
	ProductID uint      `gorm:"not null;uniqueIndex:idx_cart_user_product" json:"productId"`
	Quantity  int       `gorm:"not null" json:"quantity"`
	CreatedAt time.Time `gorm:"index" json:"createdAt"`
	UpdatedAt time.Time `gorm:"index" json:"updatedAt"`

	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

// TableName sets the table name.
func (CartItem) TableName() string {
	return "cart_items"
}
