package admin

import (
	"errors"
	"net/http"

	"github.com/ramani-fashion/api/internal/http/response"
	"github.com/ramani-fashion/api/internal/service"

	"github.com/gin-gonic/gin"
)

// CreateProduct inserts a catalog item.
func (h *Handler) CreateProduct(c *gin.Context) {
	var input service.ProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid product payload", err)
		return
	}

	product, err := h.ProductService.Create(input)
	if err != nil {
		if errors.Is(err, service.ErrInvalidInput) {
			respondError(c, http.StatusBadRequest, "Name is required and price/stock must be non-negative", nil)
			return
		}
		respondError(c, http.StatusInternalServerError, "Failed to create product", err)
		return
	}
	response.Created(c, product)
}

// UpdateProduct overwrites a catalog item.
func (h *Handler) UpdateProduct(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		respondError(c, http.StatusBadRequest, "Invalid product id", nil)
		return
	}
	var input service.ProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid product payload", err)
		return
	}

	product, err := h.ProductService.Update(id, input)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidInput):
			respondError(c, http.StatusBadRequest, "Name is required and price/stock must be non-negative", nil)
		case errors.Is(err, service.ErrNotFound):
			respondError(c, http.StatusNotFound, "Product not found", nil)
		default:
			respondError(c, http.StatusInternalServerError, "Failed to update product", err)
		}
		return
	}
	response.OK(c, product)
}

// DeleteProduct removes a catalog item.
func (h *Handler) DeleteProduct(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		respondError(c, http.StatusBadRequest, "Invalid product id", nil)
		return
	}

	if err := h.ProductService.Delete(id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, http.StatusNotFound, "Product not found", nil)
			return
		}
		respondError(c, http.StatusInternalServerError, "Failed to delete product", err)
		return
	}
	response.OK(c, gin.H{"deleted": true})
}
