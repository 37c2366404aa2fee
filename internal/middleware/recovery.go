package middleware

import (
	"net/http"

	"house-info-api/internal/errors"
	"house-info-api/pkg/logger"

	"github.com/gin-gonic/gin"
)

// Recovery turns a panic into a 500 with the standard error body.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.GlobalLogger.Errorf("Panic recovered: path=%s, request_id=%s, panic=%v",
			c.Request.URL.Path, c.GetString(RequestIDKey), recovered)

		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": errors.MsgInternalError,
			"error": gin.H{
				"code": errors.ErrCodeInternal,
			},
		})
	})
}
