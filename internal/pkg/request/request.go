// Package request holds the small parsing steps shared by handlers.
package request

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"rentalhub/internal/domain"
	"rentalhub/internal/pkg/response"
	"rentalhub/internal/pkg/validator"
)

// BindJSON binds the body into dst and answers 400 on failure.
func BindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		response.Error(c, http.StatusBadRequest, validator.Describe(err))
		return false
	}
	return true
}

// ID parses the :id path parameter and answers 400 when it is not a
// positive integer.
func ID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return id, true
}

// QueryID parses an optional id filter. Missing means zero.
func QueryID(c *gin.Context, key string) (int64, bool) {
	raw := c.Query(key)
	if raw == "" {
		return 0, true
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "invalid "+key)
		return 0, false
	}
	return id, true
}

// QueryDate parses an optional date or RFC 3339 timestamp.
func QueryDate(c *gin.Context, key string) (*domain.Date, bool) {
	raw := c.Query(key)
	if raw == "" {
		return nil, true
	}
	t, err := domain.ParseDate(raw)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid "+key+": use YYYY-MM-DD or RFC 3339")
		return nil, false
	}
	return &domain.Date{Time: t, DateOnly: domain.IsDateOnly(raw)}, true
}
