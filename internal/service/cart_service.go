package service

import (
	"github.com/ramani-fashion/api/internal/models"
	"github.com/ramani-fashion/api/internal/repository"

	"github.com/shopspring/decimal"
)

// CartItemDetail is one cart line with its live product attached.
// Cart pricing always reflects the current catalog; prices are only
// frozen when an order is placed.
type CartItemDetail struct {
	ProductID uint            `json:"productId"`
	Quantity  int             `json:"quantity"`
	Price     models.Money    `json:"price"`
	Product   *models.Product `json:"product"`
}

// CartDetail is the full cart view.
type CartDetail struct {
	Items    []CartItemDetail `json:"items"`
	Subtotal models.Money     `json:"subtotal"`
}

// AddCartItemInput is the add-to-cart payload.
type AddCartItemInput struct {
	UserID    uint
	ProductID uint
	Quantity  int
}

// CartService manages per-user cart lines.
type CartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
}

// NewCartService creates the cart service.
func NewCartService(cartRepo repository.CartRepository, productRepo repository.ProductRepository) *CartService {
	return &CartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

// ListByUser returns the user's cart. Lines whose product has been
// removed from the catalog are dropped on read.
func (s *CartService) ListByUser(userID uint) (*CartDetail, error) {
	if userID == 0 {
		return nil, ErrInvalidInput
	}
	items, err := s.cartRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}

	details := make([]CartItemDetail, 0, len(items))
	subtotal := decimal.Zero
	for _, item := range items {
		product := item.Product
		if product == nil || product.ID == 0 {
			_ = s.cartRepo.DeleteByUserAndProduct(userID, item.ProductID)
			continue
		}
		details = append(details, CartItemDetail{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     product.Price,
			Product:   product,
		})
		subtotal = subtotal.Add(product.Price.Decimal.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}

	return &CartDetail{
		Items:    details,
		Subtotal: models.NewMoneyFromDecimal(subtotal),
	}, nil
}

// AddItem adds quantity to the user's cart line for the product,
// creating the line when absent. The merge is a single atomic upsert.
func (s *CartService) AddItem(input AddCartItemInput) error {
	if input.UserID == 0 || input.ProductID == 0 || input.Quantity < 1 {
		return ErrInvalidInput
	}
	product, err := s.productRepo.GetByID(input.ProductID)
	if err != nil {
		return err
	}
	if product == nil {
		return ErrProductUnavailable
	}

	return s.cartRepo.AddQuantity(&models.CartItem{
		UserID:    input.UserID,
		ProductID: input.ProductID,
		Quantity:  input.Quantity,
	})
}

// SetQuantity replaces the quantity of an existing cart line.
func (s *CartService) SetQuantity(userID, productID uint, quantity int) error {
	if userID == 0 || productID == 0 || quantity < 1 {
		return ErrInvalidInput
	}
	affected, err := s.cartRepo.SetQuantity(userID, productID, quantity)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// RemoveItem deletes a cart line. Removing an absent line is a no-op.
func (s *CartService) RemoveItem(userID, productID uint) error {
	if userID == 0 || productID == 0 {
		return ErrInvalidInput
	}
	return s.cartRepo.DeleteByUserAndProduct(userID, productID)
}

// Clear empties the user's cart.
func (s *CartService) Clear(userID uint) error {
	if userID == 0 {
		return ErrInvalidInput
	}
	return s.cartRepo.ClearByUser(userID)
}
