package middleware

import (
	"github.com/gin-gonic/gin"
)

// NoStore keeps browsers and proxies from caching session-dependent responses.
func NoStore() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Cache-Control", "no-store")
		c.Next()
	}
}
