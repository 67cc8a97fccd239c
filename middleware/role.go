package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequireRole gates a route group on the authenticated actor's role.
// Must run after JWTAuthMiddleware.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		actorRole := c.GetString(CtxActorRole)
		if actorRole != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"status":  "fail",
				"message": "This action requires the " + role + " role",
			})
			return
		}
		c.Next()
	}
}
