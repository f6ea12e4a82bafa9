package middleware

import (
	"github.com/gin-gonic/gin"

	"aurexis-backend/internal/shared/response"
	"aurexis-backend/pkg/jwt"
)

// AdminMiddleware requires the role set by AuthMiddleware to be admin
func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := c.Get(ContextKeyRole)
		if !ok || role != jwt.RoleAdmin {
			response.Forbidden(c, "Access denied: admin role required")
			c.Abort()
			return
		}

		c.Next()
	}
}
