package service

import (
	"crypto/rand"
	"math/big"
	"strings"
	"time"

	"github.com/ramani-fashion/api/internal/config"
	"github.com/ramani-fashion/api/internal/constants"
	"github.com/ramani-fashion/api/internal/logger"
	"github.com/ramani-fashion/api/internal/models"
	"github.com/ramani-fashion/api/internal/queue"
	"github.com/ramani-fashion/api/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ShippingAddressInput is the address snapshot captured at checkout.
type ShippingAddressInput struct {
	FullName string `json:"fullName"`
	Phone    string `json:"phone"`
	Pincode  string `json:"pincode"`
	Address  string `json:"address"`
	Locality string `json:"locality"`
	City     string `json:"city"`
	State    string `json:"state"`
	Landmark string `json:"landmark"`
}

// CreateOrderInput is the checkout payload. Line items and the
// subtotal come from the server-side cart, never from the client.
type CreateOrderInput struct {
	UserID          uint
	ShippingAddress ShippingAddressInput
	PaymentMethod   string
	ShippingCharges float64
	Tax             float64
	Discount        float64
}

// UpdateOrderStatusInput is the admin status mutation payload. Both
// statuses are optional and independently mutable.
type UpdateOrderStatusInput struct {
	OrderStatus   *string
	PaymentStatus *string
}

// OrderService places and tracks orders. Placed orders are immutable
// snapshots: later catalog edits never change an existing order.
type OrderService struct {
	cfg         *config.Config
	orderRepo   repository.OrderRepository
	cartRepo    repository.CartRepository
	queueClient *queue.Client
}

// NewOrderService creates the order service.
func NewOrderService(cfg *config.Config, orderRepo repository.OrderRepository, cartRepo repository.CartRepository, queueClient *queue.Client) *OrderService {
	return &OrderService{
		cfg:         cfg,
		orderRepo:   orderRepo,
		cartRepo:    cartRepo,
		queueClient: queueClient,
	}
}

// generateOrderNumber builds a collision-resistant order number from
// the configured prefix, a timestamp and a random numeric suffix.
func (s *OrderService) generateOrderNumber() string {
	prefix := strings.TrimSpace(s.cfg.Order.NumberPrefix)
	if prefix == "" {
		prefix = "RM"
	}
	suffix := "0000"
	if n, err := rand.Int(rand.Reader, big.NewInt(10000)); err == nil {
		suffix = padLeft(n.String(), 4)
	}
	return prefix + time.Now().Format("20060102150405") + suffix
}

func padLeft(s string, width int) string {
	for len(s) < width {
		s = "0" + s
	}
	return s
}

func validateShippingAddress(addr ShippingAddressInput) error {
	if strings.TrimSpace(addr.FullName) == "" ||
		strings.TrimSpace(addr.Phone) == "" ||
		strings.TrimSpace(addr.Pincode) == "" ||
		strings.TrimSpace(addr.Address) == "" ||
		strings.TrimSpace(addr.City) == "" ||
		strings.TrimSpace(addr.State) == "" {
		return ErrInvalidInput
	}
	return nil
}

// Create places an order from the user's cart. The order insert and
// the cart clear run in one transaction, so a failed order leaves the
// cart untouched.
func (s *OrderService) Create(input CreateOrderInput) (*models.Order, error) {
	if input.UserID == 0 {
		return nil, ErrInvalidInput
	}
	if err := validateShippingAddress(input.ShippingAddress); err != nil {
		return nil, err
	}
	if input.ShippingCharges < 0 || input.Tax < 0 || input.Discount < 0 {
		return nil, ErrInvalidInput
	}

	cartItems, err := s.cartRepo.ListByUser(input.UserID)
	if err != nil {
		return nil, err
	}
	if len(cartItems) == 0 {
		return nil, ErrCartEmpty
	}

	items := make([]models.OrderItem, 0, len(cartItems))
	subtotal := decimal.Zero
	for _, line := range cartItems {
		product := line.Product
		if product == nil || product.ID == 0 {
			return nil, ErrProductUnavailable
		}
		image := ""
		if len(product.Images) > 0 {
			image = product.Images[0]
		}
		items = append(items, models.OrderItem{
			ProductID: product.ID,
			Name:      product.Name,
			Price:     product.Price,
			Quantity:  line.Quantity,
			Image:     image,
		})
		subtotal = subtotal.Add(product.Price.Decimal.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}

	shipping := decimal.NewFromFloat(input.ShippingCharges)
	tax := decimal.NewFromFloat(input.Tax)
	discount := decimal.NewFromFloat(input.Discount)
	total := subtotal.Add(shipping).Add(tax).Sub(discount)
	if total.IsNegative() {
		return nil, ErrInvalidInput
	}

	order := &models.Order{
		OrderNumber:     s.generateOrderNumber(),
		UserID:          input.UserID,
		Subtotal:        models.NewMoneyFromDecimal(subtotal),
		ShippingCharges: models.NewMoneyFromDecimal(shipping),
		Tax:             models.NewMoneyFromDecimal(tax),
		Discount:        models.NewMoneyFromDecimal(discount),
		Total:           models.NewMoneyFromDecimal(total),
		PaymentMethod:   strings.TrimSpace(input.PaymentMethod),
		PaymentStatus:   constants.PaymentStatusPending,
		OrderStatus:     constants.OrderStatusPending,
		ShipFullName:    strings.TrimSpace(input.ShippingAddress.FullName),
		ShipPhone:       strings.TrimSpace(input.ShippingAddress.Phone),
		ShipPincode:     strings.TrimSpace(input.ShippingAddress.Pincode),
		ShipAddress:     strings.TrimSpace(input.ShippingAddress.Address),
		ShipLocality:    strings.TrimSpace(input.ShippingAddress.Locality),
		ShipCity:        strings.TrimSpace(input.ShippingAddress.City),
		ShipState:       strings.TrimSpace(input.ShippingAddress.State),
		ShipLandmark:    strings.TrimSpace(input.ShippingAddress.Landmark),
	}

	err = s.orderRepo.Transaction(func(tx *gorm.DB) error {
		if err := s.orderRepo.WithTx(tx).Create(order, items); err != nil {
			return err
		}
		return s.cartRepo.WithTx(tx).ClearByUser(input.UserID)
	})
	if err != nil {
		return nil, err
	}
	order.Items = items

	logger.Infow("order_placed",
		"order_number", order.OrderNumber,
		"user_id", order.UserID,
		"total", order.Total.String(),
		"items", len(items),
	)

	if err := s.queueClient.EnqueueOrderNotify(queue.OrderNotifyPayload{OrderID: order.ID}); err != nil {
		logger.Warnw("order_notify_enqueue_failed", "order_id", order.ID, "error", err)
	}

	return order, nil
}

// ListByUser returns the user's orders, newest first.
func (s *OrderService) ListByUser(userID uint, page, limit int) ([]models.Order, int64, error) {
	if userID == 0 {
		return nil, 0, ErrInvalidInput
	}
	return s.orderRepo.ListByUser(repository.OrderListFilter{
		Page:     page,
		PageSize: limit,
		UserID:   userID,
	})
}

// GetForUser returns one order owned by the user.
func (s *OrderService) GetForUser(id, userID uint) (*models.Order, error) {
	order, err := s.orderRepo.GetByIDAndUser(id, userID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrNotFound
	}
	return order, nil
}

// ListAdmin returns all orders with customer info.
func (s *OrderService) ListAdmin(filter repository.OrderListFilter) ([]models.Order, int64, error) {
	return s.orderRepo.ListAdmin(filter)
}

// UpdateStatus mutates order and/or payment status.
func (s *OrderService) UpdateStatus(id uint, input UpdateOrderStatusInput) (*models.Order, error) {
	updates := map[string]interface{}{}
	if input.OrderStatus != nil {
		if !constants.IsValidOrderStatus(*input.OrderStatus) {
			return nil, ErrInvalidInput
		}
		updates["order_status"] = *input.OrderStatus
	}
	if input.PaymentStatus != nil {
		if !constants.IsValidPaymentStatus(*input.PaymentStatus) {
			return nil, ErrInvalidInput
		}
		updates["payment_status"] = *input.PaymentStatus
	}
	if len(updates) == 0 {
		return nil, ErrInvalidInput
	}

	affected, err := s.orderRepo.UpdateStatus(id, updates)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, ErrNotFound
	}
	return s.orderRepo.GetByID(id)
}
