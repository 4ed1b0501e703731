package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestID tags every request with a UUID, reusing the client's
// X-Request-ID when present so traces can be correlated across hops.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("RequestID", id)
		c.Header("X-Request-ID", id)
		c.Next()
	}
}
