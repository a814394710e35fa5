package admin

import (
	"strconv"

	handlershared "github.com/ramani-fashion/api/internal/http/handlers/shared"
	"github.com/ramani-fashion/api/internal/provider"

	"github.com/gin-gonic/gin"
)

// Handler serves the back-office API.
type Handler struct {
	*provider.Container
}

// New creates the back-office handler.
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}

func respondError(c *gin.Context, status int, msg string, err error) {
	handlershared.RespondError(c, status, msg, err)
}

func normalizePagination(page, limit int) (int, int) {
	return handlershared.NormalizePagination(page, limit)
}

func parseUintParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	value, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || value == 0 {
		return 0, false
	}
	return uint(value), true
}
