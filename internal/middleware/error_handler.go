package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/talhanuhuymaz/Renart-Case/internal/domain/dto"
	"github.com/talhanuhuymaz/Renart-Case/internal/logger"
)

// ErrorHandler returns a middleware that handles gin context errors.
// It provides centralized error logging and a standard error body when no
// handler has written a response yet.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) > 0 {
			err := c.Errors.Last()
			requestID := GetRequestID(c)

			log := logger.Logger()
			log.Error().
				Str("request_id", requestID).
				Str("error", err.Error()).
				Str("path", c.Request.URL.Path).
				Str("method", c.Request.Method).
				Msg("Request error")

			if !c.Writer.Written() {
				c.JSON(http.StatusInternalServerError,
					dto.NewError(dto.ErrCodeInternal, "An unexpected error occurred").
						WithRequestID(requestID))
			}
		}
	}
}
