package httpx

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Gunvolt24/pos_printer/internal/domain"
)

// ClampInt — v, прижатое к [lo, hi].
func ClampInt(v, lo, hi int) int {
	return max(lo, min(v, hi))
}

// ParseLimit - читает limit из query с дефолтом и границами [1, maxLimit].
func ParseLimit(c *gin.Context, defaultLimit, maxLimit int) int {
	limit := ClampInt(defaultLimit, 1, maxLimit)
	if v, err := strconv.Atoi(strings.TrimSpace(c.Query("limit"))); err == nil {
		limit = ClampInt(v, 1, maxLimit)
	}
	return limit
}

// RoleParam - роль принтера из параметра пути (без учёта регистра).
func RoleParam(c *gin.Context, name string) (domain.Role, bool) {
	role, err := domain.ParseRole(c.Param(name))
	if err != nil {
		return "", false
	}
	return role, true
}
