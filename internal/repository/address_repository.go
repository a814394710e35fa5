package repository

import (
	"errors"

	"github.com/ramani-fashion/api/internal/models"

	"gorm.io/gorm"
)

// AddressRepository is the shipping address data access interface.
type AddressRepository interface {
	ListByUser(userID uint) ([]models.Address, error)
	GetByIDAndUser(id, userID uint) (*models.Address, error)
	Create(address *models.Address) error
	Update(address *models.Address) error
	Delete(id, userID uint) (int64, error)
	UnsetDefaults(userID uint, exceptID uint) error
	Transaction(fn func(tx *gorm.DB) error) error
	WithTx(tx *gorm.DB) *GormAddressRepository
}

// GormAddressRepository is the GORM implementation.
type GormAddressRepository struct {
	db *gorm.DB
}

// NewAddressRepository creates an address repository.
func NewAddressRepository(db *gorm.DB) *GormAddressRepository {
	return &GormAddressRepository{db: db}
}

// WithTx binds the repository to a transaction.
func (r *GormAddressRepository) WithTx(tx *gorm.DB) *GormAddressRepository {
	if tx == nil {
		return r
	}
	return &GormAddressRepository{db: tx}
}

// Transaction runs fn in one database transaction.
func (r *GormAddressRepository) Transaction(fn func(tx *gorm.DB) error) error {
	return r.db.Transaction(fn)
}

// ListByUser returns the user's addresses, default first.
func (r *GormAddressRepository) ListByUser(userID uint) ([]models.Address, error) {
	var addresses []models.Address
	if err := r.db.Where("user_id = ?", userID).
		Order("is_default desc, updated_at desc").
		Find(&addresses).Error; err != nil {
		return nil, err
	}
	return addresses, nil
}

// GetByIDAndUser returns one address owned by the user, or nil.
func (r *GormAddressRepository) GetByIDAndUser(id, userID uint) (*models.Address, error) {
	var address models.Address
	if err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&address).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &address, nil
}

// Create inserts an address.
func (r *GormAddressRepository) Create(address *models.Address) error {
	return r.db.Create(address).Error
}

// Update saves all address columns.
func (r *GormAddressRepository) Update(address *models.Address) error {
	return r.db.Save(address).Error
}

// Delete removes an address owned by the user, returning rows affected.
func (r *GormAddressRepository) Delete(id, userID uint) (int64, error) {
	result := r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Address{})
	return result.RowsAffected, result.Error
}

// UnsetDefaults clears the default flag on every address of the user
// except the given one, keeping at most one default per user.
func (r *GormAddressRepository) UnsetDefaults(userID uint, exceptID uint) error {
	query := r.db.Model(&models.Address{}).Where("user_id = ?", userID)
	if exceptID > 0 {
		query = query.Where("id <> ?", exceptID)
	}
	return query.Update("is_default", false).Error
}
