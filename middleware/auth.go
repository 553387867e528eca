package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	userService "wayfarer/services/user"
	"wayfarer/utils"
)

// Context keys set for downstream handlers.
const (
	CtxUserID   = "userID"
	CtxUserRole = "userRole"
)

func abortUnauthorized(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, utils.ErrorResponse{Message: msg})
}

// JWTAuthMiddleware validates the bearer token, checks it has not been
// revoked, and loads the account's id and role into the request context.
func JWTAuthMiddleware(users userService.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			abortUnauthorized(c, "you are not logged in")
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		userID, err := utils.ExtractIDFromToken(tokenString)
		if err != nil || userID == "" {
			abortUnauthorized(c, "invalid or expired token")
			return
		}

		// A valid signature is not enough: the token must still be
		// registered in the session store, so logout revokes access
		// before the token expires.
		sessionUser, err := utils.GetAuthTokenUser(utils.GetAuthCacheClient(), utils.HashToken(tokenString))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, utils.ErrorResponse{Message: "authentication unavailable"})
			return
		}
		if sessionUser != userID {
			abortUnauthorized(c, "session expired, please log in again")
			return
		}

		acct, err := users.GetByID(userID)
		if err != nil {
			abortUnauthorized(c, "the account belonging to this token no longer exists")
			return
		}

		c.Set(CtxUserID, acct.ID)
		c.Set(CtxUserRole, acct.Role)
		c.Next()
	}
}
