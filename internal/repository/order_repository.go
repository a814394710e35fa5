package repository

import (
	"errors"

	"github.com/ramani-fashion/api/internal/models"

	"gorm.io/gorm"
)

// OrderRepository is the order data access interface.
type OrderRepository interface {
	Create(order *models.Order, items []models.OrderItem) error
	GetByIDAndUser(id, userID uint) (*models.Order, error)
	GetByID(id uint) (*models.Order, error)
	ListByUser(filter OrderListFilter) ([]models.Order, int64, error)
	ListAdmin(filter OrderListFilter) ([]models.Order, int64, error)
	ListRecent(limit int) ([]models.Order, error)
	UpdateStatus(id uint, updates map[string]interface{}) (int64, error)
	Count() (int64, error)
	SumTotal() (float64, error)
	CountByUser(userID uint) (int64, error)
	SumTotalByUser(userID uint) (float64, error)
	Transaction(fn func(tx *gorm.DB) error) error
	WithTx(tx *gorm.DB) *GormOrderRepository
}

// GormOrderRepository is the GORM implementation.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewOrderRepository creates an order repository.
func NewOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// WithTx binds the repository to a transaction.
func (r *GormOrderRepository) WithTx(tx *gorm.DB) *GormOrderRepository {
	if tx == nil {
		return r
	}
	return &GormOrderRepository{db: tx}
}

// Transaction runs fn in one database transaction.
func (r *GormOrderRepository) Transaction(fn func(tx *gorm.DB) error) error {
	return r.db.Transaction(fn)
}

// Create inserts an order with its line items.
func (r *GormOrderRepository) Create(order *models.Order, items []models.OrderItem) error {
	if err := r.db.Create(order).Error; err != nil {
		return err
	}
	for i := range items {
		items[i].OrderID = order.ID
	}
	if len(items) > 0 {
		if err := r.db.Create(&items).Error; err != nil {
			return err
		}
	}
	return nil
}

// GetByIDAndUser returns one order owned by the user, or nil.
func (r *GormOrderRepository) GetByIDAndUser(id, userID uint) (*models.Order, error) {
	var order models.Order
	if err := r.db.Preload("Items").Where("id = ? AND user_id = ?", id, userID).First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

// GetByID returns one order regardless of owner, or nil.
func (r *GormOrderRepository) GetByID(id uint) (*models.Order, error) {
	var order models.Order
	if err := r.db.Preload("Items").First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

func applyOrderFilter(query *gorm.DB, filter OrderListFilter) *gorm.DB {
	if filter.OrderStatus != "" {
		query = query.Where("order_status = ?", filter.OrderStatus)
	}
	if filter.PaymentStatus != "" {
		query = query.Where("payment_status = ?", filter.PaymentStatus)
	}
	return query
}

// ListByUser returns the user's orders, newest first.
func (r *GormOrderRepository) ListByUser(filter OrderListFilter) ([]models.Order, int64, error) {
	query := r.db.Model(&models.Order{}).Where("user_id = ?", filter.UserID)
	query = applyOrderFilter(query, filter)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)

	var orders []models.Order
	if err := query.Preload("Items").Order("created_at desc").Find(&orders).Error; err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

// ListAdmin returns all orders with customers, newest first.
func (r *GormOrderRepository) ListAdmin(filter OrderListFilter) ([]models.Order, int64, error) {
	query := r.db.Model(&models.Order{})
	query = applyOrderFilter(query, filter)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)

	var orders []models.Order
	if err := query.Preload("Items").Preload("User").Order("created_at desc").Find(&orders).Error; err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

// ListRecent returns the newest orders with customers preloaded.
func (r *GormOrderRepository) ListRecent(limit int) ([]models.Order, error) {
	var orders []models.Order
	if err := r.db.Preload("User").Order("created_at desc").Limit(limit).Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// UpdateStatus applies status column updates, returning rows affected.
func (r *GormOrderRepository) UpdateStatus(id uint, updates map[string]interface{}) (int64, error) {
	result := r.db.Model(&models.Order{}).Where("id = ?", id).Updates(updates)
	return result.RowsAffected, result.Error
}

// Count returns the total order count.
func (r *GormOrderRepository) Count() (int64, error) {
	var total int64
	err := r.db.Model(&models.Order{}).Count(&total).Error
	return total, err
}

// SumTotal returns revenue across all orders.
func (r *GormOrderRepository) SumTotal() (float64, error) {
	var sum float64
	err := r.db.Model(&models.Order{}).
		Select("COALESCE(SUM(total), 0)").
		Scan(&sum).Error
	return sum, err
}

// CountByUser returns how many orders a user has placed.
func (r *GormOrderRepository) CountByUser(userID uint) (int64, error) {
	var total int64
	err := r.db.Model(&models.Order{}).Where("user_id = ?", userID).Count(&total).Error
	return total, err
}

// SumTotalByUser returns a user's lifetime spend.
func (r *GormOrderRepository) SumTotalByUser(userID uint) (float64, error) {
	var sum float64
	err := r.db.Model(&models.Order{}).
		Where("user_id = ?", userID).
		Select("COALESCE(SUM(total), 0)").
		Scan(&sum).Error
	return sum, err
}
