package models

import "time"

// WishlistItem marks a product saved by a user. Set semantics: the
// (user, product) pair is unique and re-adding is a no-op.
type WishlistItem struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_wishlist_user_product" json:"userId"`
	ProductID uint      `gorm:"not null;uniqueIndex:idx_wishlist_user_product" json:"productId"`
	CreatedAt time.Time `gorm:"index" json:"createdAt"`

	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

// TableName sets the table name.
func (WishlistItem) TableName() string {
	return "wishlist_items"
}
