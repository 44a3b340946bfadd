package middleware

import "github.com/gin-gonic/gin"

// CacheControlMiddleware sets the Cache-Control header on every response,
// e.g. "no-store" for the API whose state changes on each write.
func CacheControlMiddleware(value string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Cache-Control", value)
		c.Next()
	}
}
