package middleware

import (
	"house-info-api/internal/errors"
	"house-info-api/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ErrorHandler catches errors and returns standardized responses.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		appErr := errors.MapError(err)

		logger.GlobalLogger.Errorf("Request failed: path=%s, method=%s, client_ip=%s, request_id=%s, error=%s",
			c.Request.URL.Path,
			c.Request.Method,
			c.ClientIP(),
			c.GetString(RequestIDKey),
			appErr.TechnicalMessage)

		c.JSON(appErr.HTTPStatus, gin.H{
			"success": false,
			"message": appErr.UserMessage,
			"error": gin.H{
				"code": appErr.Code,
			},
		})
	}
}
