package middleware

import (
	"os"

	"github.com/gin-gonic/gin"
)

// CORSMiddleware allows the configured frontend origin plus localhost
// in development. Unknown origins get no CORS headers at all.
func CORSMiddleware(frontendURL string) gin.HandlerFunc {
	isProduction := os.Getenv("GIN_MODE") == "release"

	devOrigins := map[string]bool{
		"http://localhost:3000": true,
		"http://127.0.0.1:3000": true,
		"http://localhost:5173": true,
	}

	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")

		allowed := origin == "" || origin == frontendURL
		if !allowed && !isProduction && devOrigins[origin] {
			allowed = true
		}

		if allowed {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Credentials", "true")
			c.Header("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, Accept, Origin, Cache-Control, X-Requested-With")
			c.Header("Access-Control-Allow-Methods", "POST, GET, OPTIONS, PUT, DELETE, PATCH")
			c.Header("Access-Control-Max-Age", "86400")
		}
		c.Header("Vary", "Origin")

		if c.Request.Method == "OPTIONS" {
			if allowed {
				c.AbortWithStatus(204)
			} else {
				c.AbortWithStatus(403)
			}
			return
		}

		c.Next()
	}
}
