package public

import (
	"errors"
	"net/http"

	"github.com/ramani-fashion/api/internal/http/response"
	"github.com/ramani-fashion/api/internal/service"

	"github.com/gin-gonic/gin"
)

// AddCartItemRequest is the add-to-cart payload.
type AddCartItemRequest struct {
	ProductID uint `json:"productId" binding:"required"`
	Quantity  int  `json:"quantity"`
}

// UpdateCartItemRequest is the set-quantity payload.
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" binding:"required"`
}

// GetCart returns the user's cart with live product data.
func (h *Handler) GetCart(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}

	cart, err := h.CartService.ListByUser(uid)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to fetch cart", err)
		return
	}
	response.OK(c, cart)
}

// AddToCart merges quantity into the user's line for the product.
func (h *Handler) AddToCart(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	var req AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Product id is required", err)
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	err := h.CartService.AddItem(service.AddCartItemInput{
		UserID:    uid,
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidInput):
			respondError(c, http.StatusBadRequest, "Quantity must be at least 1", nil)
		case errors.Is(err, service.ErrProductUnavailable):
			respondError(c, http.StatusNotFound, "Product not found", nil)
		default:
			respondError(c, http.StatusInternalServerError, "Failed to add to cart", err)
		}
		return
	}
	response.OK(c, gin.H{"added": true})
}

// UpdateCartItem replaces the quantity of an existing line.
func (h *Handler) UpdateCartItem(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	productID, ok := parseUintParam(c, "productId")
	if !ok {
		respondError(c, http.StatusBadRequest, "Invalid product id", nil)
		return
	}
	var req UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Quantity is required", err)
		return
	}

	if err := h.CartService.SetQuantity(uid, productID, req.Quantity); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidInput):
			respondError(c, http.StatusBadRequest, "Quantity must be at least 1", nil)
		case errors.Is(err, service.ErrNotFound):
			respondError(c, http.StatusNotFound, "Cart item not found", nil)
		default:
			respondError(c, http.StatusInternalServerError, "Failed to update cart", err)
		}
		return
	}
	response.OK(c, gin.H{"updated": true})
}

// RemoveFromCart deletes a line; removing an absent line succeeds.
func (h *Handler) RemoveFromCart(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	productID, ok := parseUintParam(c, "productId")
	if !ok {
		respondError(c, http.StatusBadRequest, "Invalid product id", nil)
		return
	}

	if err := h.CartService.RemoveItem(uid, productID); err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to remove from cart", err)
		return
	}
	response.OK(c, gin.H{"removed": true})
}

// ClearCart empties the user's cart.
func (h *Handler) ClearCart(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	if err := h.CartService.Clear(uid); err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to clear cart", err)
		return
	}
	response.OK(c, gin.H{"cleared": true})
}
