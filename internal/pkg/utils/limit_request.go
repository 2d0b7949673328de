package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// QueryLimit reads an optional "limit" query parameter, falling back to def
// and clamping to max. Unparseable values fall back to def as well; display
// reads never fail on a bad limit.
func QueryLimit(c *gin.Context, def int, max int) int {
	raw := c.Query("limit")
	if raw == "" {
		return def
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit <= 0 {
		return def
	}
	if limit > max {
		return max
	}
	return limit
}
