package middleware

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

var (
	corsMethods = []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"}
	corsHeaders = []string{"Origin", "Content-Type", "Authorization"}
)

// CORS allows every origin. gin-contrib/cors only answers requests carrying
// an Origin header, so the allow headers are set here for the rest.
func CORS() gin.HandlerFunc {
	handler := cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    corsMethods,
		AllowHeaders:    corsHeaders,
	})

	return func(c *gin.Context) {
		if c.GetHeader("Origin") == "" {
			c.Header("Access-Control-Allow-Origin", "*")
			c.Header("Access-Control-Allow-Methods", strings.Join(corsMethods, ","))
			c.Header("Access-Control-Allow-Headers", strings.Join(corsHeaders, ","))
		}
		handler(c)
	}
}
