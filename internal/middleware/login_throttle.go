package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rentalhub/internal/logger"
	"rentalhub/internal/pkg/ratelimit"
	"rentalhub/internal/pkg/response"
)

// LoginThrottle blocks a client IP after too many failed logins. A 401 from
// the handler counts as a failure; a 200 clears the counter. The limiter
// store being down never blocks a login.
func LoginThrottle(l ratelimit.Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		key := c.ClientIP()

		ok, err := l.Allow(ctx, key)
		if err != nil {
			logger.FromContext(ctx).Warn("login limiter unavailable", "error", err)
			c.Next()
			return
		}
		if !ok {
			response.Abort(c, http.StatusTooManyRequests, "too many failed login attempts, try again later")
			return
		}

		c.Next()

		switch c.Writer.Status() {
		case http.StatusUnauthorized:
			err = l.Fail(ctx, key)
		case http.StatusOK:
			err = l.Reset(ctx, key)
		}
		if err != nil {
			logger.FromContext(ctx).Warn("login limiter update failed", "error", err)
		}
	}
}
