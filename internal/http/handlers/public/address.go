package public

import (
	"errors"
	"net/http"

	"github.com/ramani-fashion/api/internal/http/response"
	"github.com/ramani-fashion/api/internal/service"

	"github.com/gin-gonic/gin"
)

// GetAddresses returns the user's saved addresses, default first.
func (h *Handler) GetAddresses(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}

	addresses, err := h.AddressService.ListByUser(uid)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to fetch addresses", err)
		return
	}
	response.OK(c, gin.H{"addresses": addresses})
}

// CreateAddress saves a new address for the user.
func (h *Handler) CreateAddress(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	var input service.AddressInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid address payload", err)
		return
	}

	address, err := h.AddressService.Create(uid, input)
	if err != nil {
		if errors.Is(err, service.ErrInvalidInput) {
			respondError(c, http.StatusBadRequest, "Name, phone, pincode, address, city and state are required", nil)
			return
		}
		respondError(c, http.StatusInternalServerError, "Failed to save address", err)
		return
	}
	response.Created(c, address)
}

// UpdateAddress overwrites an address owned by the user.
func (h *Handler) UpdateAddress(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	id, ok := parseUintParam(c, "id")
	if !ok {
		respondError(c, http.StatusBadRequest, "Invalid address id", nil)
		return
	}
	var input service.AddressInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid address payload", err)
		return
	}

	address, err := h.AddressService.Update(id, uid, input)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidInput):
			respondError(c, http.StatusBadRequest, "Name, phone, pincode, address, city and state are required", nil)
		case errors.Is(err, service.ErrNotFound):
			respondError(c, http.StatusNotFound, "Address not found", nil)
		default:
			respondError(c, http.StatusInternalServerError, "Failed to update address", err)
		}
		return
	}
	response.OK(c, address)
}

// DeleteAddress removes an address owned by the user.
func (h *Handler) DeleteAddress(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	id, ok := parseUintParam(c, "id")
	if !ok {
		respondError(c, http.StatusBadRequest, "Invalid address id", nil)
		return
	}

	if err := h.AddressService.Delete(id, uid); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, http.StatusNotFound, "Address not found", nil)
			return
		}
		respondError(c, http.StatusInternalServerError, "Failed to delete address", err)
		return
	}
	response.OK(c, gin.H{"deleted": true})
}
