package repository

import (
	"errors"
	"strings"

	"github.com/ramani-fashion/api/internal/constants"
	"github.com/ramani-fashion/api/internal/models"

	"gorm.io/gorm"
)

// ProductRepository is the catalog data access interface.
type ProductRepository interface {
	List(filter CatalogFilter) ([]models.Product, int64, error)
	GetByID(id uint) (*models.Product, error)
	Create(product *models.Product) error
	Update(product *models.Product) error
	Delete(id uint) error
	DistinctValues(column string) ([]string, error)
	ListByStockAsc(page, pageSize int) ([]models.Product, int64, error)
	UpdateStock(id uint, stockQuantity int, inStock bool) error
	Count() (int64, error)
	CountOutOfStock() (int64, error)
	CountLowStock(threshold int) (int64, error)
	TopRated(limit int) ([]models.Product, error)
	WithTx(tx *gorm.DB) *GormProductRepository
}

// GormProductRepository is the GORM implementation.
type GormProductRepository struct {
	db *gorm.DB
}

// NewProductRepository creates a product repository.
func NewProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// WithTx binds the repository to a transaction.
func (r *GormProductRepository) WithTx(tx *gorm.DB) *GormProductRepository {
	if tx == nil {
		return r
	}
	return &GormProductRepository{db: tx}
}

// sortColumns maps accepted sort keys to columns. Unknown keys fall
// back to created_at so a bad sortBy never reaches the SQL layer.
var sortColumns = map[string]string{
	constants.SortKeyCreatedAt:   "created_at",
	constants.SortKeyPrice:       "price",
	constants.SortKeyRating:      "rating",
	constants.SortKeyReviewCount: "review_count",
}

func applyAttributeSet(query *gorm.DB, column string, values []string) *gorm.DB {
	switch len(values) {
	case 0:
		return query
	case 1:
		return query.Where(column+" = ?", values[0])
	default:
		return query.Where(column+" IN ?", values)
	}
}

// List returns one catalog page plus the total match count.
func (r *GormProductRepository) List(filter CatalogFilter) ([]models.Product, int64, error) {
	query := r.db.Model(&models.Product{})

	query = applyAttributeSet(query, "category", filter.Categories)
	query = applyAttributeSet(query, "fabric", filter.Fabrics)
	query = applyAttributeSet(query, "color", filter.Colors)
	query = applyAttributeSet(query, "occasion", filter.Occasions)

	if filter.MinPrice != nil {
		query = query.Where("price >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		query = query.Where("price <= ?", *filter.MaxPrice)
	}
	if filter.InStockOnly {
		query = query.Where("in_stock = ?", true)
	}
	if filter.NewOnly {
		query = query.Where("is_new = ?", true)
	}
	if filter.Bestsellers {
		query = query.Where("is_bestseller = ?", true)
	}
	if filter.Trending {
		query = query.Where("is_trending = ?", true)
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		like := "%" + search + "%"
		query = query.Where("name LIKE ? OR description LIKE ?", like, like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	column, ok := sortColumns[filter.SortBy]
	if !ok {
		column = "created_at"
	}
	direction := "DESC"
	if ok && strings.EqualFold(filter.SortOrder, "asc") {
		direction = "ASC"
	}

	query = applyPagination(query, filter.Page, filter.PageSize)

	var products []models.Product
	if err := query.Order(column + " " + direction).Find(&products).Error; err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

// GetByID returns a product, or nil when absent.
func (r *GormProductRepository) GetByID(id uint) (*models.Product, error) {
	var product models.Product
	if err := r.db.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

// Create inserts a product.
func (r *GormProductRepository) Create(product *models.Product) error {
	return r.db.Create(product).Error
}

// Update saves all product columns.
func (r *GormProductRepository) Update(product *models.Product) error {
	return r.db.Save(product).Error
}

// Delete removes a product.
func (r *GormProductRepository) Delete(id uint) error {
	result := r.db.Delete(&models.Product{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DistinctValues returns the live distinct non-empty values of one
// facet column. Only filterable attribute columns are accepted.
func (r *GormProductRepository) DistinctValues(column string) ([]string, error) {
	switch column {
	case "category", "fabric", "color", "occasion":
	default:
		return nil, errors.New("unsupported facet column: " + column)
	}
	var values []string
	if err := r.db.Model(&models.Product{}).
		Distinct(column).
		Where(column + " <> ''").
		Order(column + " ASC").
		Pluck(column, &values).Error; err != nil {
		return nil, err
	}
	return values, nil
}

// ListByStockAsc returns products ordered by remaining stock.
func (r *GormProductRepository) ListByStockAsc(page, pageSize int) ([]models.Product, int64, error) {
	query := r.db.Model(&models.Product{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, page, pageSize)

	var products []models.Product
	if err := query.Order("stock_quantity ASC").Find(&products).Error; err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

// UpdateStock sets the stock quantity and availability flag.
func (r *GormProductRepository) UpdateStock(id uint, stockQuantity int, inStock bool) error {
	result := r.db.Model(&models.Product{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"stock_quantity": stockQuantity,
			"in_stock":       inStock,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Count returns the total product count.
func (r *GormProductRepository) Count() (int64, error) {
	var total int64
	err := r.db.Model(&models.Product{}).Count(&total).Error
	return total, err
}

// CountOutOfStock counts products flagged unavailable.
func (r *GormProductRepository) CountOutOfStock() (int64, error) {
	var total int64
	err := r.db.Model(&models.Product{}).Where("in_stock = ?", false).Count(&total).Error
	return total, err
}

// CountLowStock counts available products below the threshold.
func (r *GormProductRepository) CountLowStock(threshold int) (int64, error) {
	var total int64
	err := r.db.Model(&models.Product{}).
		Where("in_stock = ? AND stock_quantity < ?", true, threshold).
		Count(&total).Error
	return total, err
}

// TopRated returns the highest rated products.
func (r *GormProductRepository) TopRated(limit int) ([]models.Product, error) {
	var products []models.Product
	if err := r.db.Order("rating DESC, review_count DESC").Limit(limit).Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}
