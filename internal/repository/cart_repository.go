package repository

import (
	"time"

	"github.com/ramani-fashion/api/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CartRepository is the cart data access interface.
type CartRepository interface {
	ListByUser(userID uint) ([]models.CartItem, error)
	AddQuantity(item *models.CartItem) error
	SetQuantity(userID, productID uint, quantity int) (int64, error)
	DeleteByUserAndProduct(userID, productID uint) error
	ClearByUser(userID uint) error
	WithTx(tx *gorm.DB) *GormCartRepository
}

// GormCartRepository is the GORM implementation.
type GormCartRepository struct {
	db *gorm.DB
}

// NewCartRepository creates a cart repository.
func NewCartRepository(db *gorm.DB) *GormCartRepository {
	return &GormCartRepository{db: db}
}

// WithTx binds the repository to a transaction.
func (r *GormCartRepository) WithTx(tx *gorm.DB) *GormCartRepository {
	if tx == nil {
		return r
	}
	return &GormCartRepository{db: tx}
}

// ListByUser returns the user's cart lines with products preloaded.
func (r *GormCartRepository) ListByUser(userID uint) ([]models.CartItem, error) {
	var items []models.CartItem
	if err := r.db.Preload("Product").Where("user_id = ?", userID).Order("updated_at desc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// AddQuantity inserts a cart line, or atomically increments the
// existing line's quantity on the (user_id, product_id) conflict.
// Concurrent adds for the same product therefore never lose updates.
func (r *GormCartRepository) AddQuantity(item *models.CartItem) error {
	if item == nil {
		return nil
	}
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "product_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"quantity":   gorm.Expr("quantity + ?", item.Quantity),
			"updated_at": time.Now(),
		}),
	}).Create(item).Error
}

// SetQuantity replaces a line's quantity, returning rows affected.
func (r *GormCartRepository) SetQuantity(userID, productID uint, quantity int) (int64, error) {
	result := r.db.Model(&models.CartItem{}).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Updates(map[string]interface{}{
			"quantity":   quantity,
			"updated_at": time.Now(),
		})
	return result.RowsAffected, result.Error
}

// DeleteByUserAndProduct removes one cart line.
func (r *GormCartRepository) DeleteByUserAndProduct(userID, productID uint) error {
	return r.db.Where("user_id = ? AND product_id = ?", userID, productID).Delete(&models.CartItem{}).Error
}

// ClearByUser empties the user's cart.
func (r *GormCartRepository) ClearByUser(userID uint) error {
	return r.db.Where("user_id = ?", userID).Delete(&models.CartItem{}).Error
}
