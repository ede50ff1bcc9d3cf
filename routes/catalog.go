package routes

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"abi-fashion-backend/models"
	"abi-fashion-backend/services"
	"abi-fashion-backend/utils"
)

// SetupCatalogRoutes wires the public gallery reads and the token-gated
// admin mutations over works and categories.
func SetupCatalogRoutes(public, admin *gin.RouterGroup, catalog *services.CatalogService) {
	public.GET("/works", func(c *gin.Context) {
		works, err := catalog.ListActiveWorks(c.Request.Context())
		if err != nil {
			utils.RespondWithInternalError(c, "Failed to list works", err.Error())
			return
		}
		c.JSON(http.StatusOK, works)
	})

	public.GET("/works/category/:category", func(c *gin.Context) {
		works, err := catalog.ListWorksByCategory(c.Request.Context(), c.Param("category"))
		if err != nil {
			utils.RespondWithInternalError(c, "Failed to list works", err.Error())
			return
		}
		c.JSON(http.StatusOK, works)
	})

	public.GET("/works/:id", func(c *gin.Context) {
		work, err := catalog.GetWork(c.Request.Context(), c.Param("id"))
		if errors.Is(err, services.ErrNotFound) {
			utils.RespondWithNotFound(c, "Work not found")
			return
		}
		if err != nil {
			utils.RespondWithInternalError(c, "Failed to load work", err.Error())
			return
		}
		c.JSON(http.StatusOK, work)
	})

	public.GET("/categories", func(c *gin.Context) {
		categories, err := catalog.ListCategories(c.Request.Context(), true)
		if err != nil {
			utils.RespondWithInternalError(c, "Failed to list categories", err.Error())
			return
		}
		c.JSON(http.StatusOK, categories)
	})

	admin.GET("/categories", func(c *gin.Context) {
		categories, err := catalog.ListCategories(c.Request.Context(), false)
		if err != nil {
			utils.RespondWithInternalError(c, "Failed to list categories", err.Error())
			return
		}
		c.JSON(http.StatusOK, categories)
	})

	admin.POST("/works", func(c *gin.Context) {
		var req models.CreateWorkRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.RespondWithBadRequest(c, "Invalid work data", err.Error())
			return
		}

		id, err := catalog.CreateWork(c.Request.Context(), &req)
		if err != nil {
			utils.RespondWithInternalError(c, "Failed to create work", err.Error())
			return
		}
		c.JSON(http.StatusCreated, gin.H{"id": id})
	})

	admin.PATCH("/works/:id", func(c *gin.Context) {
		var req models.UpdateWorkRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.RespondWithBadRequest(c, "Invalid work data", err.Error())
			return
		}

		err := catalog.UpdateWork(c.Request.Context(), c.Param("id"), &req)
		if errors.Is(err, services.ErrNotFound) {
			utils.RespondWithNotFound(c, "Work not found")
			return
		}
		if err != nil {
			utils.RespondWithInternalError(c, "Failed to update work", err.Error())
			return
		}
		c.JSON(http.StatusOK, gin.H{"id": c.Param("id")})
	})

	// Soft delete: flips is_active off, reversible from the dashboard.
	admin.DELETE("/works/:id", func(c *gin.Context) {
		err := catalog.SoftDeleteWork(c.Request.Context(), c.Param("id"))
		if errors.Is(err, services.ErrNotFound) {
			utils.RespondWithNotFound(c, "Work not found")
			return
		}
		if err != nil {
			utils.RespondWithInternalError(c, "Failed to delete work", err.Error())
			return
		}
		c.JSON(http.StatusOK, gin.H{"id": c.Param("id")})
	})

	admin.DELETE("/works/:id/hard", func(c *gin.Context) {
		err := catalog.HardDeleteWork(c.Request.Context(), c.Param("id"))
		if errors.Is(err, services.ErrNotFound) {
			utils.RespondWithNotFound(c, "Work not found")
			return
		}
		if err != nil {
			utils.RespondWithInternalError(c, "Failed to delete work", err.Error())
			return
		}
		c.JSON(http.StatusOK, gin.H{"id": c.Param("id")})
	})

	admin.POST("/categories", func(c *gin.Context) {
		var req models.CreateCategoryRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.RespondWithBadRequest(c, "Invalid category data", err.Error())
			return
		}

		id, err := catalog.CreateCategory(c.Request.Context(), &req)
		if err != nil {
			utils.RespondWithInternalError(c, "Failed to create category", err.Error())
			return
		}
		c.JSON(http.StatusCreated, gin.H{"id": id})
	})

	admin.PATCH("/categories/:id", func(c *gin.Context) {
		var req models.UpdateCategoryRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.RespondWithBadRequest(c, "Invalid category data", err.Error())
			return
		}

		err := catalog.UpdateCategory(c.Request.Context(), c.Param("id"), &req)
		if errors.Is(err, services.ErrNotFound) {
			utils.RespondWithNotFound(c, "Category not found")
			return
		}
		if err != nil {
			utils.RespondWithInternalError(c, "Failed to update category", err.Error())
			return
		}
		c.JSON(http.StatusOK, gin.H{"id": c.Param("id")})
	})

	admin.DELETE("/categories/:id", func(c *gin.Context) {
		err := catalog.DeleteCategory(c.Request.Context(), c.Param("id"))
		if errors.Is(err, services.ErrNotFound) {
			utils.RespondWithNotFound(c, "Category not found")
			return
		}
		if err != nil {
			utils.RespondWithInternalError(c, "Failed to delete category", err.Error())
			return
		}
		c.JSON(http.StatusOK, gin.H{"id": c.Param("id")})
	})
}
