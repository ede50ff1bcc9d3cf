package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"abi-fashion-backend/services"
	"abi-fashion-backend/utils"
)

// SetupSeedRoutes wires the first-run seeding endpoint. Seeding only
// touches MongoDB, so it is registered regardless of whether object
// storage is configured.
func SetupSeedRoutes(admin *gin.RouterGroup, seeder *services.SeedService) {
	admin.POST("/seed", func(c *gin.Context) {
		seededCategories, err := seeder.SeedCategories(c.Request.Context())
		if err != nil {
			utils.RespondWithInternalError(c, "Failed to seed categories", err.Error())
			return
		}
		seededWorks, err := seeder.SeedWorks(c.Request.Context())
		if err != nil {
			utils.RespondWithInternalError(c, "Failed to seed works", err.Error())
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"categories_seeded": seededCategories,
			"works_seeded":      seededWorks,
		})
	})
}
