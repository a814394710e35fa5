package public

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/ramani-fashion/api/internal/http/response"
	"github.com/ramani-fashion/api/internal/service"

	"github.com/gin-gonic/gin"
)

// SubmitContact stores one contact form submission.
func (h *Handler) SubmitContact(c *gin.Context) {
	var input service.ContactInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid contact payload", err)
		return
	}

	submission, err := h.ContactService.Submit(input)
	if err != nil {
		if errors.Is(err, service.ErrInvalidInput) {
			respondError(c, http.StatusBadRequest, "Name, mobile, email, subject and category are required", nil)
			return
		}
		respondError(c, http.StatusInternalServerError, "Failed to submit contact form", err)
		return
	}
	response.Created(c, gin.H{
		"message":    "Thank you for contacting us",
		"submission": submission,
	})
}

// ListContactSubmissions lists the newest submissions.
func (h *Handler) ListContactSubmissions(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	submissions, err := h.ContactService.List(limit)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to fetch submissions", err)
		return
	}
	response.OK(c, gin.H{"submissions": submissions})
}
