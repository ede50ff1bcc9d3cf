package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"abi-fashion-backend/internal/auth"
	"abi-fashion-backend/internal/config"
	"abi-fashion-backend/services"
	"abi-fashion-backend/utils"
)

// SetupAuthRoutes wires the access gate: shared-password validation that
// hands out the admin capability token, and the gated password change.
func SetupAuthRoutes(public, admin *gin.RouterGroup, cfg *config.Config, access *services.AccessService) {
	public.POST("/auth/validate", func(c *gin.Context) {
		var req struct {
			Password string `json:"password"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.RespondWithBadRequest(c, "Invalid request", err.Error())
			return
		}

		valid, err := access.ValidatePassword(c.Request.Context(), req.Password)
		if err != nil {
			utils.RespondWithInternalError(c, "Validation failed", err.Error())
			return
		}

		if !valid {
			// Wrong password is a boolean result, not an error.
			c.JSON(http.StatusOK, gin.H{"valid": false})
			return
		}

		token, exp, err := auth.IssueAdminToken(cfg.AdminTokenSecret, time.Duration(cfg.AdminTokenTTL)*time.Minute)
		if err != nil {
			utils.RespondWithInternalError(c, "Failed to issue admin token", err.Error())
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"valid":      true,
			"token":      token,
			"expires_at": exp,
		})
	})

	admin.POST("/password", func(c *gin.Context) {
		var req struct {
			PasswordHash string `json:"password_hash" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.RespondWithBadRequest(c, "Invalid request", err.Error())
			return
		}

		if err := access.SetAdminPassword(c.Request.Context(), req.PasswordHash); err != nil {
			utils.RespondWithInternalError(c, "Failed to update password", err.Error())
			return
		}
		c.JSON(http.StatusOK, gin.H{"updated": true})
	})
}
