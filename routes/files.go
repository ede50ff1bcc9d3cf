package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"abi-fashion-backend/internal/storage"
	"abi-fashion-backend/utils"
)

// SetupFileRoutes wires image blob storage: presigned upload URLs for
// the admin dashboard and single-blob URL resolution.
func SetupFileRoutes(admin *gin.RouterGroup, store storage.ObjectStore, presignExpiry time.Duration) {
	admin.POST("/uploads", func(c *gin.Context) {
		key, url, err := store.PresignPut(c.Request.Context(), presignExpiry)
		if err != nil {
			utils.RespondWithInternalError(c, "Failed to create upload URL", err.Error())
			return
		}
		// The key is persisted on the work as the blob reference.
		c.JSON(http.StatusOK, gin.H{"key": key, "upload_url": url})
	})

	admin.GET("/images/:blobId/url", func(c *gin.Context) {
		url, err := store.PresignGet(c.Request.Context(), c.Param("blobId"), presignExpiry)
		if err != nil {
			utils.RespondWithNotFound(c, "Image not resolvable")
			return
		}
		c.JSON(http.StatusOK, gin.H{"url": url})
	})
}
