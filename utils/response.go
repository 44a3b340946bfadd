package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status  int         `json:"-"`                 // HTTP status code
	Message string      `json:"message,omitempty"` // Optional message
	Error   string      `json:"error,omitempty"`   // Error message
	Data    interface{} `json:"data,omitempty"`    // Response data
}

func respond(c *gin.Context, status int, message, errMsg string, data interface{}) {
	c.JSON(status, &Response{
		Status:  status,
		Message: message,
		Error:   errMsg,
		Data:    data,
	})
}

// Success responses
func Success(c *gin.Context, data interface{}) {
	respond(c, http.StatusOK, "", "", data)
}

func SuccessMessage(c *gin.Context, message string, data interface{}) {
	respond(c, http.StatusOK, message, "", data)
}

func Created(c *gin.Context, data interface{}) {
	respond(c, http.StatusCreated, "Resource created successfully", "", data)
}

// Error responses
func Unauthorized(c *gin.Context, message string) {
	respond(c, http.StatusUnauthorized, "", message, nil)
}

func BadRequest(c *gin.Context, message string) {
	respond(c, http.StatusBadRequest, "", message, nil)
}

func NotFound(c *gin.Context, message string) {
	respond(c, http.StatusNotFound, "", message, nil)
}

func InternalError(c *gin.Context, message string) {
	respond(c, http.StatusInternalServerError, "", message, nil)
}

// Conflict carries optional data so callers can return the unchanged state
// alongside the notice.
func Conflict(c *gin.Context, message string, data ...interface{}) {
	var payload interface{}
	if len(data) > 0 {
		payload = data[0]
	}
	respond(c, http.StatusConflict, "", message, payload)
}
