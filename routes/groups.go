package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Kushalvgowda/Food-Chain-API/config"
	accountControllers "github.com/Kushalvgowda/Food-Chain-API/controllers/account"
	"github.com/Kushalvgowda/Food-Chain-API/middleware"
	"github.com/Kushalvgowda/Food-Chain-API/models"
)

// SetupGroupRoutes registers role membership management. Admins run the
// manager group; admins and managers run the delivery crew.
func SetupGroupRoutes(r *gin.Engine, db *gorm.DB, cfg config.Config) {
	authed := middleware.ValidateToken(db, cfg.JWTSecret)

	manager := r.Group("/groups/manager/users")
	manager.Use(authed, middleware.RequireAdmin)
	{
		manager.GET("", accountControllers.ListGroupHandler(db, models.GroupManager))
		manager.POST("", accountControllers.AddToGroupHandler(db, models.GroupManager))
		manager.DELETE("/:id", accountControllers.RemoveFromGroupHandler(db, models.GroupManager))
	}

	crew := r.Group("/groups/delivery-crew/users")
	crew.Use(authed, middleware.RequireAdminOrRole(models.GroupManager))
	{
		crew.GET("", accountControllers.ListGroupHandler(db, models.GroupDeliveryCrew))
		crew.POST("", accountControllers.AddToGroupHandler(db, models.GroupDeliveryCrew))
		crew.DELETE("/:id", accountControllers.RemoveFromGroupHandler(db, models.GroupDeliveryCrew))
	}
}
