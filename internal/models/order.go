package models

import (
	"time"

	"gorm.io/gorm"
)

// Order is a placed order. Shipping address and line items are
// snapshots taken at creation time; later catalog or address edits
// never touch an existing order.
type Order struct {
	ID              uint   `gorm:"primarykey" json:"id"`
	OrderNumber     string `gorm:"uniqueIndex;not null" json:"orderNumber"`
	UserID          uint   `gorm:"index;not null" json:"userId"`
	Subtotal        Money  `gorm:"type:decimal(20,2);not null;default:0" json:"subtotal"`
	ShippingCharges Money  `gorm:"type:decimal(20,2);not null;default:0" json:"shippingCharges"`
	Tax             Money  `gorm:"type:decimal(20,2);not null;default:0" json:"tax"`
	Discount        Money  `gorm:"type:decimal(20,2);not null;default:0" json:"discount"`
	Total           Money  `gorm:"type:decimal(20,2);not null;default:0" json:"total"`
	PaymentMethod   string `gorm:"type:varchar(50)" json:"paymentMethod"`
	PaymentStatus   string `gorm:"type:varchar(20);index;not null;default:'pending'" json:"paymentStatus"`
	OrderStatus     string `gorm:"type:varchar(20);index;not null;default:'pending'" json:"orderStatus"`

	// Shipping address snapshot.
	ShipFullName string `gorm:"not null" json:"shipFullName"`
	ShipPhone    string `gorm:"type:varchar(20);not null" json:"shipPhone"`
	ShipPincode  string `gorm:"type:varchar(10);not null" json:"shipPincode"`
	ShipAddress  string `gorm:"type:text;not null" json:"shipAddress"`
	ShipLocality string `gorm:"type:varchar(200)" json:"shipLocality"`
	ShipCity     string `gorm:"type:varchar(100);not null" json:"shipCity"`
	ShipState    string `gorm:"type:varchar(100);not null" json:"shipState"`
	ShipLandmark string `gorm:"type:varchar(200)" json:"shipLandmark"`

	CreatedAt time.Time      `gorm:"index" json:"createdAt"`
	UpdatedAt time.Time      `gorm:"index" json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Items []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"`
	User  *User       `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

// TableName sets the table name.
func (Order) TableName() string {
	return "orders"
}
