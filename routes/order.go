package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Kushalvgowda/Food-Chain-API/config"
	orderControllers "github.com/Kushalvgowda/Food-Chain-API/controllers/order"
	"github.com/Kushalvgowda/Food-Chain-API/middleware"
	"github.com/Kushalvgowda/Food-Chain-API/models"
)

// SetupOrderRoutes registers the order endpoints. Listing and retrieval are
// visible to every authenticated user (the controller scopes rows by role);
// placement is customer-only, delivery is crew-only, assignment is
// manager-only.
func SetupOrderRoutes(r *gin.Engine, db *gorm.DB, cfg config.Config) {
	authed := middleware.ValidateToken(db, cfg.JWTSecret)

	orders := r.Group("/orders")
	orders.Use(authed)
	{
		orders.GET("", orderControllers.ListOrdersHandler(db))
		orders.POST("", middleware.RequireCustomer, orderControllers.PlaceOrderHandler(db))
		orders.GET("/:id", orderControllers.GetOrderHandler(db))
		orders.PATCH("/:id", middleware.RequireRole(models.GroupDeliveryCrew), orderControllers.MarkDeliveredHandler(db))
		orders.POST("/:id", middleware.RequireRole(models.GroupManager), orderControllers.AssignCrewHandler(db))
	}
}
