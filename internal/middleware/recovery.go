package middleware

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Recovery turns a panic into the JSON 500 body used by every error response.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Printf("panic recovered (request %s): %v", c.GetString(RequestIDKey), recovered)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   http.StatusInternalServerError,
			"message": "internal server error",
		})
	})
}
