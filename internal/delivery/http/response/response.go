package response

import (
	"github.com/gin-gonic/gin"
)

// Response is the JSON envelope every endpoint returns.
type Response struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
	Error     any    `json:"error,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

func requestID(c *gin.Context) string {
	id, _ := c.Get("RequestID")
	s, _ := id.(string)
	return s
}

// Success sends a success response.
func Success(c *gin.Context, code int, message string, data any) {
	c.JSON(code, Response{
		Success:   true,
		Message:   message,
		Data:      data,
		RequestID: requestID(c),
	})
}

// Error sends an error response.
func Error(c *gin.Context, code int, message string, err any) {
	c.JSON(code, Response{
		Success:   false,
		Message:   message,
		Error:     err,
		RequestID: requestID(c),
	})
}
