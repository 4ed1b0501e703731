package middleware

import (
	"errors"
	"net/http"

	"hirehand-backend/internal/delivery/http/response"
	"hirehand-backend/pkg/apperror"
	"hirehand-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ErrorHandler converts errors attached to the context into the JSON
// envelope. Internal errors are logged server-side and replaced with a
// generic message so storage details never reach the client.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors.Last().Err

		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			if appErr.Code >= http.StatusInternalServerError {
				logger.Log.Error("request failed",
					"path", c.FullPath(),
					"status", appErr.Code,
					"error", err,
				)
			}
			response.Error(c, appErr.Code, appErr.Message, nil)
			return
		}

		logger.Log.Error("unhandled error", "path", c.FullPath(), "error", err)
		response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", nil)
	}
}
