package models

import "time"

// OrderItem is one order line. Name, price and image are copied from
// the product at purchase time.
type OrderItem struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	OrderID   uint      `gorm:"index;not null" json:"orderId"`
	ProductID uint      `gorm:"index;not null" json:"productId"`
	Name      string    `gorm:"not null" json:"name"`
	Price     Money     `gorm:"type:decimal(20,2);not null;default:0" json:"price"`
	Quantity  int       `gorm:"not null" json:"quantity"`
	Image     string    `gorm:"type:varchar(500)" json:"image"`
	CreatedAt time.Time `json:"createdAt"`
}

// TableName sets the table name.
func (OrderItem) TableName() string {
	return "order_items"
}
