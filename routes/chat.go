package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"abi-fashion-backend/models"
	"abi-fashion-backend/services"
	"abi-fashion-backend/utils"
)

// SetupChatRoutes wires the visitor chat widget endpoints and the admin
// assistant/maintenance endpoints.
func SetupChatRoutes(public, admin *gin.RouterGroup, assistant *services.AssistantService, transcripts *services.TranscriptService) {
	public.GET("/chat/:sessionId/messages", func(c *gin.Context) {
		messages, err := transcripts.GetSessionMessages(c.Request.Context(), c.Param("sessionId"))
		if err != nil {
			utils.RespondWithInternalError(c, "Failed to load messages", err.Error())
			return
		}
		c.JSON(http.StatusOK, messages)
	})

	public.POST("/chat/assistant", func(c *gin.Context) {
		var req models.AssistantChatRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.RespondWithBadRequest(c, "Invalid chat request", err.Error())
			return
		}

		reply, err := assistant.ChatWithAssistant(c.Request.Context(), req.SessionID, req.Message, req.Language)
		if err != nil {
			// The UI substitutes its own localized fallback; the user
			// turn is already in the transcript.
			utils.RespondWithBadGateway(c, "Assistant is unavailable", err.Error())
			return
		}

		c.JSON(http.StatusOK, models.AssistantChatResponse{
			Reply:     reply,
			SessionID: req.SessionID,
			Timestamp: time.Now(),
		})
	})

	admin.POST("/assistant", func(c *gin.Context) {
		var req models.OwnerAssistantRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.RespondWithBadRequest(c, "Invalid assistant request", err.Error())
			return
		}

		reply, err := assistant.OwnerAssistant(c.Request.Context(), req.Task, req.Input, req.Language)
		if err != nil {
			utils.RespondWithBadGateway(c, "Assistant is unavailable", err.Error())
			return
		}
		c.JSON(http.StatusOK, gin.H{"reply": reply})
	})

	admin.POST("/chat/prune", func(c *gin.Context) {
		var req struct {
			DaysOld int `json:"days_old" binding:"required,min=1"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.RespondWithBadRequest(c, "Invalid prune request", err.Error())
			return
		}

		deleted, err := transcripts.PruneOlderThan(c.Request.Context(), req.DaysOld)
		if err != nil {
			utils.RespondWithInternalError(c, "Failed to prune messages", err.Error())
			return
		}
		c.JSON(http.StatusOK, gin.H{"deleted": deleted})
	})
}
