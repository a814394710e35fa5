package shared

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetContextUint reads a uint value set by an auth middleware. A
// missing or malformed value answers 401 and aborts the handler.
func GetContextUint(c *gin.Context, key string) (uint, bool) {
	value, exists := c.Get(key)
	if !exists {
		RespondError(c, http.StatusUnauthorized, "Authentication required", nil)
		return 0, false
	}

	switch v := value.(type) {
	case uint:
		return v, true
	case int:
		if v < 0 {
			RespondError(c, http.StatusUnauthorized, "Authentication required", nil)
			return 0, false
		}
		return uint(v), true
	case float64:
		if v < 0 {
			RespondError(c, http.StatusUnauthorized, "Authentication required", nil)
			return 0, false
		}
		return uint(v), true
	default:
		RespondError(c, http.StatusInternalServerError, "Invalid authentication context", nil)
		return 0, false
	}
}
