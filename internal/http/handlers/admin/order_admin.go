package admin

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/ramani-fashion/api/internal/http/response"
	"github.com/ramani-fashion/api/internal/repository"
	"github.com/ramani-fashion/api/internal/service"

	"github.com/gin-gonic/gin"
)

// UpdateOrderStatusRequest mutates order and/or payment status.
type UpdateOrderStatusRequest struct {
	OrderStatus   *string `json:"orderStatus"`
	PaymentStatus *string `json:"paymentStatus"`
}

// ListOrders returns all orders with customer info.
func (h *Handler) ListOrders(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	page, limit = normalizePagination(page, limit)

	orders, total, err := h.OrderService.ListAdmin(repository.OrderListFilter{
		Page:          page,
		PageSize:      limit,
		OrderStatus:   c.Query("orderStatus"),
		PaymentStatus: c.Query("paymentStatus"),
	})
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to fetch orders", err)
		return
	}
	response.OK(c, gin.H{
		"orders":     orders,
		"pagination": response.NewPagination(page, limit, total),
	})
}

// UpdateOrderStatus mutates an order's statuses.
func (h *Handler) UpdateOrderStatus(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		respondError(c, http.StatusBadRequest, "Invalid order id", nil)
		return
	}
	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid status payload", err)
		return
	}

	order, err := h.OrderService.UpdateStatus(id, service.UpdateOrderStatusInput{
		OrderStatus:   req.OrderStatus,
		PaymentStatus: req.PaymentStatus,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidInput):
			respondError(c, http.StatusBadRequest, "Invalid order or payment status", nil)
		case errors.Is(err, service.ErrNotFound):
			respondError(c, http.StatusNotFound, "Order not found", nil)
		default:
			respondError(c, http.StatusInternalServerError, "Failed to update order status", err)
		}
		return
	}
	response.OK(c, order)
}
