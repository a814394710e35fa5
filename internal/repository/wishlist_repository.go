package repository

import (
	"github.com/ramani-fashion/api/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// WishlistRepository is the wishlist data access interface.
type WishlistRepository interface {
	ListByUser(userID uint) ([]models.WishlistItem, error)
	Add(item *models.WishlistItem) error
	DeleteByUserAndProduct(userID, productID uint) error
	CountByUser(userID uint) (int64, error)
}

// GormWishlistRepository is the GORM implementation.
type GormWishlistRepository struct {
	db *gorm.DB
}

// NewWishlistRepository creates a wishlist repository.
func NewWishlistRepository(db *gorm.DB) *GormWishlistRepository {
	return &GormWishlistRepository{db: db}
}

// ListByUser returns the user's wishlist with products preloaded.
func (r *GormWishlistRepository) ListByUser(userID uint) ([]models.WishlistItem, error) {
	var items []models.WishlistItem
	if err := r.db.Preload("Product").Where("user_id = ?", userID).Order("created_at desc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// Add inserts a wishlist entry. Re-adding an already saved product is
// a no-op, keeping set semantics.
func (r *GormWishlistRepository) Add(item *models.WishlistItem) error {
	if item == nil {
		return nil
	}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "product_id"}},
		DoNothing: true,
	}).Create(item).Error
}

// DeleteByUserAndProduct removes a wishlist entry if present.
func (r *GormWishlistRepository) DeleteByUserAndProduct(userID, productID uint) error {
	return r.db.Where("user_id = ? AND product_id = ?", userID, productID).Delete(&models.WishlistItem{}).Error
}

// CountByUser returns the size of the user's wishlist.
func (r *GormWishlistRepository) CountByUser(userID uint) (int64, error) {
	var total int64
	err := r.db.Model(&models.WishlistItem{}).Where("user_id = ?", userID).Count(&total).Error
	return total, err
}
