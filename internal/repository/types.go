package repository

import "github.com/shopspring/decimal"

// CatalogFilter holds the public product listing filters. Multi-value
// attribute fields are OR sets; everything else is AND-ed together.
type CatalogFilter struct {
	Page        int
	PageSize    int
	Categories  []string
	Fabrics     []string
	Colors      []string
	Occasions   []string
	MinPrice    *decimal.Decimal
	MaxPrice    *decimal.Decimal
	InStockOnly bool
	NewOnly     bool
	Bestsellers bool
	Trending    bool
	Search      string
	SortBy      string
	SortOrder   string
}

// OrderListFilter holds order listing filters.
type OrderListFilter struct {
	Page          int
	PageSize      int
	UserID        uint
	OrderStatus   string
	PaymentStatus string
}

// CustomerListFilter holds admin customer listing filters.
type CustomerListFilter struct {
	Page     int
	PageSize int
	Keyword  string
}
