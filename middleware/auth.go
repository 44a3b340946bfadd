package middleware

import (
	"strings"

	"tostreak/services"
	"tostreak/utils"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware requires a bearer token signed with secret. It is only
// installed when a secret is configured.
func AuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			TrackAuthAttempt("failure")
			utils.Unauthorized(c, "Missing or invalid token")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		claims, err := services.ParseAccessToken(secret, tokenString)
		if err != nil {
			TrackAuthAttempt("failure")
			utils.Unauthorized(c, "Invalid token")
			c.Abort()
			return
		}

		TrackAuthAttempt("success")
		c.Set("subject", claims.Subject)
		if claims.IssuedAt != nil {
			c.Set("token_issued_at", claims.IssuedAt.Time)
		}

		c.Next()
	}
}
