package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wayfarer/config"
	"wayfarer/utils"
)

// RequirePermission gates a route on a right from the role permission table.
// Must run after JWTAuthMiddleware, which puts the role in the context.
func RequirePermission(right string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(CtxUserRole)
		if role == "" || !config.RoleHasRight(role, right) {
			c.AbortWithStatusJSON(http.StatusForbidden, utils.ErrorResponse{
				Message: "you do not have permission to perform this action",
			})
			return
		}
		c.Next()
	}
}

// Elevated reports whether the authenticated caller holds the given right.
// Handlers use it to widen owner-only operations for privileged roles.
func Elevated(c *gin.Context, right string) bool {
	return config.RoleHasRight(c.GetString(CtxUserRole), right)
}
