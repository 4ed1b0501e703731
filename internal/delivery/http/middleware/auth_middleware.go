package middleware

import (
	"net/http"
	"strings"

	"hirehand-backend/internal/delivery/http/response"
	"hirehand-backend/internal/domain"
	"hirehand-backend/pkg/auth"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware verifies the bearer token and loads the claims into
// the context. Tokens may arrive in the Authorization header or the
// auth_token cookie.
func AuthMiddleware(tokens *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var tokenString string

		if header := c.GetHeader("Authorization"); header != "" {
			tokenString = strings.TrimPrefix(header, "Bearer ")
		} else if cookie, err := c.Cookie("auth_token"); err == nil {
			tokenString = cookie
		}

		if tokenString == "" {
			response.Error(c, http.StatusUnauthorized, "Authorization required", nil)
			c.Abort()
			return
		}

		claims, err := tokens.Parse(tokenString)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "Invalid token", nil)
			c.Abort()
			return
		}

		c.Set(string(domain.KeyUserID), claims.UserID)
		c.Set(string(domain.KeyUsername), claims.Username)
		c.Set(string(domain.KeyUserRole), claims.Role)

		c.Next()
	}
}

// RequireRole gates a route group behind a role loaded by AuthMiddleware.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		got, _ := c.Get(string(domain.KeyUserRole))
		if got != role {
			response.Error(c, http.StatusForbidden, "Insufficient permissions", nil)
			c.Abort()
			return
		}
		c.Next()
	}
}
