package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"aurexis-backend/internal/shared/response"
	"aurexis-backend/pkg/jwt"
)

const (
	ContextKeyAdminEmail = "admin_email"
	ContextKeyRole       = "role"
)

// AuthMiddleware verifies the Bearer access token and stores the admin
// email and role in the gin context.
func AuthMiddleware(manager *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1. Authorization header
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "missing authorization header")
			c.Abort()
			return
		}

		// 2. "Bearer <token>"
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
			response.Unauthorized(c, "invalid authorization header format")
			c.Abort()
			return
		}

		// 3. Verify
		claims, err := manager.ValidateAccessToken(strings.TrimSpace(parts[1]))
		if err != nil {
			response.Unauthorized(c, "invalid token")
			c.Abort()
			return
		}

		c.Set(ContextKeyAdminEmail, claims.Email)
		c.Set(ContextKeyRole, claims.Role)
		c.Next()
	}
}
