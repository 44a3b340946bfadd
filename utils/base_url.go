package utils

import "github.com/gin-gonic/gin"

// GetBaseURL returns the scheme and host of the current request joined with
// the API prefix.
func GetBaseURL(c *gin.Context) string {
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	if forwarded := c.GetHeader("X-Forwarded-Proto"); forwarded != "" {
		scheme = forwarded
	}
	return scheme + "://" + c.Request.Host + "/api"
}
