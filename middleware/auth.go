package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"abi-fashion-backend/internal/auth"
	"abi-fashion-backend/utils"
)

// RequireAdmin guards privileged catalog and settings mutations with the
// capability token issued by the access gate.
func RequireAdmin(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			utils.RespondWithUnauthorized(c, "Admin token required")
			c.Abort()
			return
		}

		claims, err := auth.ParseAdminToken(secret, strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			utils.RespondWithUnauthorized(c, "Invalid or expired admin token")
			c.Abort()
			return
		}

		c.Set("admin_claims", claims)
		c.Next()
	}
}
