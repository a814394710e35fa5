package service

import (
	"github.com/ramani-fashion/api/internal/models"
	"github.com/ramani-fashion/api/internal/repository"
)

// WishlistService manages per-user saved products with set semantics.
type WishlistService struct {
	wishlistRepo repository.WishlistRepository
	productRepo  repository.ProductRepository
}

// NewWishlistService creates the wishlist service.
func NewWishlistService(wishlistRepo repository.WishlistRepository, productRepo repository.ProductRepository) *WishlistService {
	return &WishlistService{
		wishlistRepo: wishlistRepo,
		productRepo:  productRepo,
	}
}

// ListByUser returns the user's saved products.
func (s *WishlistService) ListByUser(userID uint) ([]models.WishlistItem, error) {
	if userID == 0 {
		return nil, ErrInvalidInput
	}
	items, err := s.wishlistRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	kept := make([]models.WishlistItem, 0, len(items))
	for _, item := range items {
		if item.Product == nil || item.Product.ID == 0 {
			_ = s.wishlistRepo.DeleteByUserAndProduct(userID, item.ProductID)
			continue
		}
		kept = append(kept, item)
	}
	return kept, nil
}

// Add saves a product; re-adding is a no-op.
func (s *WishlistService) Add(userID, productID uint) error {
	if userID == 0 || productID == 0 {
		return ErrInvalidInput
	}
	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return err
	}
	if product == nil {
		return ErrProductUnavailable
	}
	return s.wishlistRepo.Add(&models.WishlistItem{
		UserID:    userID,
		ProductID: productID,
	})
}

// Remove deletes a saved product; removing an absent one is a no-op.
func (s *WishlistService) Remove(userID, productID uint) error {
	if userID == 0 || productID == 0 {
		return ErrInvalidInput
	}
	return s.wishlistRepo.DeleteByUserAndProduct(userID, productID)
}
