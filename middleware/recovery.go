package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"tostreak/utils"

	"github.com/gin-gonic/gin"
)

func EnhancedRecoveryMiddleware(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.Error("panic recovered",
					"error", err,
					"request_id", c.GetString("request_id"),
					"method", c.Request.Method,
					"path", c.Request.URL.Path,
					"stack", string(debug.Stack()),
				)
				utils.TrackError("panic", "handler")
				c.AbortWithStatusJSON(http.StatusInternalServerError, &utils.Response{
					Error: "Internal server error",
				})
			}
		}()
		c.Next()
	}
}
