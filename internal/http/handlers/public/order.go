package public

import (
	"errors"
	"net/http"
	"strconv"

	handlershared "github.com/ramani-fashion/api/internal/http/handlers/shared"
	"github.com/ramani-fashion/api/internal/http/response"
	"github.com/ramani-fashion/api/internal/service"

	"github.com/gin-gonic/gin"
)

// CreateOrderRequest is the checkout payload. Line items come from the
// server-side cart; the client only supplies charges and the address.
type CreateOrderRequest struct {
	ShippingAddress service.ShippingAddressInput `json:"shippingAddress" binding:"required"`
	PaymentMethod   string                       `json:"paymentMethod" binding:"required"`
	ShippingCharges float64                      `json:"shippingCharges"`
	Tax             float64                      `json:"tax"`
	Discount        float64                      `json:"discount"`
}

// CreateOrder places an order from the user's cart.
func (h *Handler) CreateOrder(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Shipping address and payment method are required", err)
		return
	}

	order, err := h.OrderService.Create(service.CreateOrderInput{
		UserID:          uid,
		ShippingAddress: req.ShippingAddress,
		PaymentMethod:   req.PaymentMethod,
		ShippingCharges: req.ShippingCharges,
		Tax:             req.Tax,
		Discount:        req.Discount,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidInput):
			respondError(c, http.StatusBadRequest, "Invalid order details", nil)
		case errors.Is(err, service.ErrCartEmpty):
			respondError(c, http.StatusBadRequest, "Cart is empty", nil)
		case errors.Is(err, service.ErrProductUnavailable):
			respondError(c, http.StatusBadRequest, "A cart item is no longer available", nil)
		default:
			respondError(c, http.StatusInternalServerError, "Failed to create order", err)
		}
		return
	}
	response.Created(c, order)
}

// ListOrders returns the user's orders, newest first.
func (h *Handler) ListOrders(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "12"))
	page, limit = handlershared.NormalizePagination(page, limit)

	orders, total, err := h.OrderService.ListByUser(uid, page, limit)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to fetch orders", err)
		return
	}
	response.OK(c, gin.H{
		"orders":     orders,
		"pagination": response.NewPagination(page, limit, total),
	})
}

// GetOrder returns one order owned by the user.
func (h *Handler) GetOrder(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	id, ok := parseUintParam(c, "id")
	if !ok {
		respondError(c, http.StatusBadRequest, "Invalid order id", nil)
		return
	}

	order, err := h.OrderService.GetForUser(id, uid)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, http.StatusNotFound, "Order not found", nil)
			return
		}
		respondError(c, http.StatusInternalServerError, "Failed to fetch order", err)
		return
	}
	response.OK(c, order)
}
