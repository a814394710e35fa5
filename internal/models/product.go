package models

import (
	"time"

	"gorm.io/gorm"
)

// Product is a catalog item. Attribute columns (category, fabric,
// color, occasion) back the storefront filters and facets.
type Product struct {
	ID             uint           `gorm:"primarykey" json:"id"`
	Name           string         `gorm:"not null;index" json:"name"`
	Description    string         `gorm:"type:text" json:"description"`
	Price          Money          `gorm:"type:decimal(20,2);not null;default:0" json:"price"`
	OriginalPrice  *Money         `gorm:"type:decimal(20,2)" json:"originalPrice,omitempty"`
	Images         StringArray    `gorm:"type:json" json:"images"`
	Category       string         `gorm:"type:varchar(100);index" json:"category"`
	Subcategory    string         `gorm:"type:varchar(100)" json:"subcategory"`
	Fabric         string         `gorm:"type:varchar(100);index" json:"fabric"`
	Color          string         `gorm:"type:varchar(100);index" json:"color"`
	Occasion       string         `gorm:"type:varchar(100);index" json:"occasion"`
	Pattern        string         `gorm:"type:varchar(100)" json:"pattern"`
	WorkType       string         `gorm:"type:varchar(100)" json:"workType"`
	BlousePiece    bool           `gorm:"default:false" json:"blousePiece"`
	SareeLength    string         `gorm:"type:varchar(50)" json:"sareeLength"`
	InStock        bool           `gorm:"index" json:"inStock"`
	StockQuantity  int            `gorm:"not null;default:0" json:"stockQuantity"`
	IsNew          bool           `gorm:"default:false;index" json:"isNew"`
	IsBestseller   bool           `gorm:"default:false;index" json:"isBestseller"`
	IsTrending     bool           `gorm:"default:false;index" json:"isTrending"`
	Rating         float64        `gorm:"not null;default:0" json:"rating"`
	ReviewCount    int            `gorm:"not null;default:0" json:"reviewCount"`
	Specifications JSON           `gorm:"type:json" json:"specifications"`
	CreatedAt      time.Time      `gorm:"index" json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName sets the table name.
func (Product) TableName() string {
	return "products"
}
