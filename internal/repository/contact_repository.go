package repository

import (
	"github.com/ramani-fashion/api/internal/models"

	"gorm.io/gorm"
)

// ContactRepository is the contact form data access interface.
type ContactRepository interface {
	Create(submission *models.ContactSubmission) error
	ListRecent(limit int) ([]models.ContactSubmission, error)
}

// GormContactRepository is the GORM implementation.
type GormContactRepository struct {
	db *gorm.DB
}

// NewContactRepository creates a contact repository.
func NewContactRepository(db *gorm.DB) *GormContactRepository {
	return &GormContactRepository{db: db}
}

// Create inserts a submission.
func (r *GormContactRepository) Create(submission *models.ContactSubmission) error {
	return r.db.Create(submission).Error
}

// ListRecent returns the newest submissions.
func (r *GormContactRepository) ListRecent(limit int) ([]models.ContactSubmission, error) {
	query := r.db.Order("created_at desc")
	if limit > 0 {
		query = query.Limit(limit)
	}
	var submissions []models.ContactSubmission
	if err := query.Find(&submissions).Error; err != nil {
		return nil, err
	}
	return submissions, nil
}
