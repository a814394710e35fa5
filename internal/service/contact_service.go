package service

import (
	"strings"

	"github.com/ramani-fashion/api/internal/models"
	"github.com/ramani-fashion/api/internal/repository"
)

// ContactInput is the contact form payload.
type ContactInput struct {
	Name     string `json:"name"`
	Mobile   string `json:"mobile"`
	Email    string `json:"email"`
	Subject  string `json:"subject"`
	Category string `json:"category"`
	Message  string `json:"message"`
}

// ContactService stores contact form submissions.
type ContactService struct {
	contactRepo repository.ContactRepository
}

// NewContactService creates the contact service.
func NewContactService(contactRepo repository.ContactRepository) *ContactService {
	return &ContactService{contactRepo: contactRepo}
}

// Submit validates and stores one submission.
func (s *ContactService) Submit(input ContactInput) (*models.ContactSubmission, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Mobile = strings.TrimSpace(input.Mobile)
	input.Email = strings.TrimSpace(input.Email)
	input.Subject = strings.TrimSpace(input.Subject)
	input.Category = strings.TrimSpace(input.Category)
	if input.Name == "" || input.Mobile == "" || input.Email == "" ||
		input.Subject == "" || input.Category == "" {
		return nil, ErrInvalidInput
	}

	submission := &models.ContactSubmission{
		Name:     input.Name,
		Mobile:   input.Mobile,
		Email:    input.Email,
		Subject:  input.Subject,
		Category: input.Category,
		Message:  input.Message,
	}
	if err := s.contactRepo.Create(submission); err != nil {
		return nil, err
	}
	return submission, nil
}

// List returns the newest submissions.
func (s *ContactService) List(limit int) ([]models.ContactSubmission, error) {
	return s.contactRepo.ListRecent(limit)
}
