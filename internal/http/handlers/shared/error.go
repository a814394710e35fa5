package shared

import (
	"github.com/ramani-fashion/api/internal/http/response"
	"github.com/ramani-fashion/api/internal/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RequestLog returns a logger carrying the request id.
func RequestLog(c *gin.Context) *zap.SugaredLogger {
	if c == nil {
		return logger.S()
	}
	if requestID, ok := c.Get("request_id"); ok {
		if id, ok := requestID.(string); ok && id != "" {
			return logger.SW("request_id", id)
		}
	}
	return logger.S()
}

// RespondError writes the error envelope and logs the underlying error
// when one exists.
func RespondError(c *gin.Context, status int, msg string, err error) {
	if err != nil {
		RequestLog(c).Errorw("handler_error",
			"status", status,
			"message", msg,
			"error", err,
		)
	}
	response.Error(c, status, msg)
}
