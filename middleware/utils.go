package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/artloom/mediagate/common/logger"
)

func abortWithMessage(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{
		"error": gin.H{
			"message": message,
			"type":    "mediagate_error",
		},
	})
	c.Abort()
	logger.Error(c, message)
}
