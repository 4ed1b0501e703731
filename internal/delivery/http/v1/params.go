package v1

import (
	"strconv"

	"hirehand-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

func pathID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperror.BadRequest("Invalid id")
	}
	return id, nil
}

// pageParams reads limit and offset without range checks; negative
// values are rejected deeper down so every caller behaves the same.
func pageParams(c *gin.Context) (int, int, error) {
	limit, err := intQuery(c, "limit", 0)
	if err != nil {
		return 0, 0, err
	}
	offset, err := intQuery(c, "offset", 0)
	if err != nil {
		return 0, 0, err
	}
	return limit, offset, nil
}

func intQuery(c *gin.Context, name string, def int) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apperror.BadRequest("Invalid " + name)
	}
	return v, nil
}

func boolQuery(c *gin.Context, name string) bool {
	v, _ := strconv.ParseBool(c.DefaultQuery(name, "false"))
	return v
}
