package repository

import (
	"errors"

	"github.com/ramani-fashion/api/internal/models"

	"gorm.io/gorm"
)

// OTPRepository is the phone verification code data access interface.
type OTPRepository interface {
	Create(otp *models.OTP) error
	GetLatestByPhone(phone string) (*models.OTP, error)
	MarkVerified(id uint) error
	DeleteByPhone(phone string) error
	DeleteByID(id uint) error
}

// GormOTPRepository is the GORM implementation.
type GormOTPRepository struct {
	db *gorm.DB
}

// NewOTPRepository creates an OTP repository.
func NewOTPRepository(db *gorm.DB) *GormOTPRepository {
	return &GormOTPRepository{db: db}
}

// Create inserts a code record.
func (r *GormOTPRepository) Create(otp *models.OTP) error {
	return r.db.Create(otp).Error
}

// GetLatestByPhone returns the newest code for a phone, or nil.
func (r *GormOTPRepository) GetLatestByPhone(phone string) (*models.OTP, error) {
	var record models.OTP
	if err := r.db.Where("phone = ?", phone).
		Order("created_at desc, id desc").
		First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}

// MarkVerified flags a code record as verified.
func (r *GormOTPRepository) MarkVerified(id uint) error {
	return r.db.Model(&models.OTP{}).
		Where("id = ?", id).
		Update("verified", true).Error
}

// DeleteByPhone removes every code issued for a phone.
func (r *GormOTPRepository) DeleteByPhone(phone string) error {
	return r.db.Where("phone = ?", phone).Delete(&models.OTP{}).Error
}

// DeleteByID removes one code record.
func (r *GormOTPRepository) DeleteByID(id uint) error {
	return r.db.Delete(&models.OTP{}, id).Error
}
