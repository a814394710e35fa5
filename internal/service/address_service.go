package service

import (
	"strings"

	"github.com/ramani-fashion/api/internal/constants"
	"github.com/ramani-fashion/api/internal/models"
	"github.com/ramani-fashion/api/internal/repository"

	"gorm.io/gorm"
)

// AddressInput is the create/update payload for a saved address.
type AddressInput struct {
	FullName    string `json:"fullName"`
	Phone       string `json:"phone"`
	Pincode     string `json:"pincode"`
	Address     string `json:"address"`
	Locality    string `json:"locality"`
	City        string `json:"city"`
	State       string `json:"state"`
	Landmark    string `json:"landmark"`
	AddressType string `json:"addressType"`
	IsDefault   bool   `json:"isDefault"`
}

// AddressService manages a user's saved shipping addresses, keeping
// at most one default per user.
type AddressService struct {
	addressRepo repository.AddressRepository
}

// NewAddressService creates the address service.
func NewAddressService(addressRepo repository.AddressRepository) *AddressService {
	return &AddressService{addressRepo: addressRepo}
}

func (s *AddressService) validate(input *AddressInput) error {
	input.FullName = strings.TrimSpace(input.FullName)
	input.Phone = strings.TrimSpace(input.Phone)
	input.Pincode = strings.TrimSpace(input.Pincode)
	input.Address = strings.TrimSpace(input.Address)
	input.City = strings.TrimSpace(input.City)
	input.State = strings.TrimSpace(input.State)
	if input.FullName == "" || input.Phone == "" || input.Pincode == "" ||
		input.Address == "" || input.City == "" || input.State == "" {
		return ErrInvalidInput
	}
	switch input.AddressType {
	case "":
		input.AddressType = constants.AddressTypeHome
	case constants.AddressTypeHome, constants.AddressTypeOffice:
	default:
		return ErrInvalidInput
	}
	return nil
}

// ListByUser returns the user's addresses, default first.
func (s *AddressService) ListByUser(userID uint) ([]models.Address, error) {
	if userID == 0 {
		return nil, ErrInvalidInput
	}
	return s.addressRepo.ListByUser(userID)
}

// Create adds an address. Marking it default clears the previous
// default in the same transaction.
func (s *AddressService) Create(userID uint, input AddressInput) (*models.Address, error) {
	if userID == 0 {
		return nil, ErrInvalidInput
	}
	if err := s.validate(&input); err != nil {
		return nil, err
	}

	address := &models.Address{
		UserID:      userID,
		FullName:    input.FullName,
		Phone:       input.Phone,
		Pincode:     input.Pincode,
		Address:     input.Address,
		Locality:    strings.TrimSpace(input.Locality),
		City:        input.City,
		State:       input.State,
		Landmark:    strings.TrimSpace(input.Landmark),
		AddressType: input.AddressType,
		IsDefault:   input.IsDefault,
	}

	err := s.addressRepo.Transaction(func(tx *gorm.DB) error {
		repo := s.addressRepo.WithTx(tx)
		if address.IsDefault {
			if err := repo.UnsetDefaults(userID, 0); err != nil {
				return err
			}
		}
		return repo.Create(address)
	})
	if err != nil {
		return nil, err
	}
	return address, nil
}

// Update overwrites an address owned by the user.
func (s *AddressService) Update(id, userID uint, input AddressInput) (*models.Address, error) {
	if id == 0 || userID == 0 {
		return nil, ErrInvalidInput
	}
	if err := s.validate(&input); err != nil {
		return nil, err
	}

	address, err := s.addressRepo.GetByIDAndUser(id, userID)
	if err != nil {
		return nil, err
	}
	if address == nil {
		return nil, ErrNotFound
	}

	address.FullName = input.FullName
	address.Phone = input.Phone
	address.Pincode = input.Pincode
	address.Address = input.Address
	address.Locality = strings.TrimSpace(input.Locality)
	address.City = input.City
	address.State = input.State
	address.Landmark = strings.TrimSpace(input.Landmark)
	address.AddressType = input.AddressType
	address.IsDefault = input.IsDefault

	err = s.addressRepo.Transaction(func(tx *gorm.DB) error {
		repo := s.addressRepo.WithTx(tx)
		if address.IsDefault {
			if err := repo.UnsetDefaults(userID, address.ID); err != nil {
				return err
			}
		}
		return repo.Update(address)
	})
	if err != nil {
		return nil, err
	}
	return address, nil
}

// Delete removes an address owned by the user.
func (s *AddressService) Delete(id, userID uint) error {
	if id == 0 || userID == 0 {
		return ErrInvalidInput
	}
	affected, err := s.addressRepo.Delete(id, userID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
