package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Kushalvgowda/Food-Chain-API/config"
	menuControllers "github.com/Kushalvgowda/Food-Chain-API/controllers/menu"
	"github.com/Kushalvgowda/Food-Chain-API/middleware"
	"github.com/Kushalvgowda/Food-Chain-API/models"
)

// SetupMenuRoutes registers the catalog endpoints. Reads are public; writes
// are restricted to admins and managers.
func SetupMenuRoutes(r *gin.Engine, db *gorm.DB, cfg config.Config) {
	authed := middleware.ValidateToken(db, cfg.JWTSecret)
	adminOrManager := middleware.RequireAdminOrRole(models.GroupManager)

	r.GET("/menu-items", menuControllers.ListMenuItemsHandler(db))
	r.GET("/menu-items/export", authed, middleware.RequireRole(models.GroupManager), menuControllers.ExportMenuToExcel(db))
	r.GET("/menu-items/:id", menuControllers.GetMenuItemHandler(db))
	r.POST("/menu-items", authed, adminOrManager, menuControllers.CreateMenuItemHandler(db))
	r.PUT("/menu-items/:id", authed, adminOrManager, menuControllers.UpdateMenuItemHandler(db))
	r.DELETE("/menu-items/:id", authed, adminOrManager, menuControllers.DeleteMenuItemHandler(db))

	r.GET("/category", menuControllers.ListCategoriesHandler(db))
	r.POST("/category", authed, middleware.RequireAdmin, menuControllers.CreateCategoryHandler(db))

	r.GET("/itemofday", menuControllers.GetFeaturedItemHandler(db))
	r.POST("/itemofday", authed, adminOrManager, menuControllers.SetFeaturedItemHandler(db))
}
