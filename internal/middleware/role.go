package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rentalhub/internal/access"
	"rentalhub/internal/domain"
	"rentalhub/internal/pkg/response"
)

// RequireRole ensures that the authenticated user has one of the given roles
func RequireRole(roles ...domain.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := CurrentRole(c)
		if role == "" {
			response.Abort(c, http.StatusUnauthorized, "authentication required")
			return
		}
		for _, r := range roles {
			if r == role {
				c.Next()
				return
			}
		}
		response.Abort(c, http.StatusForbidden, "access denied: insufficient permissions")
	}
}

// AdminOnly middleware requires admin role
func AdminOnly() gin.HandlerFunc {
	return RequireRole(domain.RoleAdmin)
}

func RequirePermission(p access.Permission) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := CurrentRole(c)
		if role == "" {
			response.Abort(c, http.StatusUnauthorized, "authentication required")
			return
		}
		if !access.Allows(role, p) {
			response.Abort(c, http.StatusForbidden, "access denied: insufficient permissions")
			return
		}
		c.Next()
	}
}
