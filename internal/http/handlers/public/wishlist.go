package public

import (
	"errors"
	"net/http"

	"github.com/ramani-fashion/api/internal/http/response"
	"github.com/ramani-fashion/api/internal/service"

	"github.com/gin-gonic/gin"
)

// AddWishlistItemRequest is the save-product payload.
type AddWishlistItemRequest struct {
	ProductID uint `json:"productId" binding:"required"`
}

// GetWishlist returns the user's saved products.
func (h *Handler) GetWishlist(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}

	items, err := h.WishlistService.ListByUser(uid)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to fetch wishlist", err)
		return
	}
	response.OK(c, gin.H{"items": items})
}

// AddToWishlist saves a product; re-adding is a no-op. The product
// can arrive as a path parameter or, on the bare route, a JSON body.
func (h *Handler) AddToWishlist(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}

	var productID uint
	if c.Param("productId") != "" {
		productID, ok = parseUintParam(c, "productId")
		if !ok {
			respondError(c, http.StatusBadRequest, "Invalid product id", nil)
			return
		}
	} else {
		var req AddWishlistItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, "Product id is required", err)
			return
		}
		productID = req.ProductID
	}

	if err := h.WishlistService.Add(uid, productID); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidInput):
			respondError(c, http.StatusBadRequest, "Product id is required", nil)
		case errors.Is(err, service.ErrProductUnavailable):
			respondError(c, http.StatusNotFound, "Product not found", nil)
		default:
			respondError(c, http.StatusInternalServerError, "Failed to add to wishlist", err)
		}
		return
	}
	response.OK(c, gin.H{"added": true})
}

// RemoveFromWishlist deletes a saved product.
func (h *Handler) RemoveFromWishlist(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	productID, ok := parseUintParam(c, "productId")
	if !ok {
		respondError(c, http.StatusBadRequest, "Invalid product id", nil)
		return
	}

	if err := h.WishlistService.Remove(uid, productID); err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to remove from wishlist", err)
		return
	}
	response.OK(c, gin.H{"removed": true})
}
