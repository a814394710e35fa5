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

// UpdateInventoryRequest sets a product's stock level.
type UpdateInventoryRequest struct {
	StockQuantity int   `json:"stockQuantity"`
	InStock       *bool `json:"inStock"`
}

// GetAnalytics returns the dashboard overview.
func (h *Handler) GetAnalytics(c *gin.Context) {
	overview, err := h.AnalyticsService.Overview()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to compute analytics", err)
		return
	}
	response.OK(c, overview)
}

// GetCustomers lists users with order and wishlist aggregates.
func (h *Handler) GetCustomers(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	page, limit = normalizePagination(page, limit)

	customers, total, err := h.AnalyticsService.Customers(repository.CustomerListFilter{
		Page:     page,
		PageSize: limit,
		Keyword:  c.Query("search"),
	})
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to fetch customers", err)
		return
	}
	response.OK(c, gin.H{
		"customers":  customers,
		"pagination": response.NewPagination(page, limit, total),
	})
}

// GetInventory lists products ordered by remaining stock.
func (h *Handler) GetInventory(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	page, limit = normalizePagination(page, limit)

	products, total, err := h.ProductService.ListInventory(page, limit)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to fetch inventory", err)
		return
	}
	response.OK(c, gin.H{
		"products":   products,
		"pagination": response.NewPagination(page, limit, total),
	})
}

// UpdateInventory sets a product's stock and availability.
func (h *Handler) UpdateInventory(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		respondError(c, http.StatusBadRequest, "Invalid product id", nil)
		return
	}
	var req UpdateInventoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid inventory payload", err)
		return
	}

	if err := h.ProductService.UpdateStock(id, req.StockQuantity, req.InStock); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidInput):
			respondError(c, http.StatusBadRequest, "Stock quantity must be non-negative", nil)
		case errors.Is(err, service.ErrNotFound):
			respondError(c, http.StatusNotFound, "Product not found", nil)
		default:
			respondError(c, http.StatusInternalServerError, "Failed to update inventory", err)
		}
		return
	}
	response.OK(c, gin.H{"updated": true})
}
