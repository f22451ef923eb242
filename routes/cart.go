package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Kushalvgowda/Food-Chain-API/config"
	cartControllers "github.com/Kushalvgowda/Food-Chain-API/controllers/cart"
	"github.com/Kushalvgowda/Food-Chain-API/middleware"
)

// SetupCartRoutes registers the cart endpoints. Only customers shop, so the
// whole group is gated on the customer predicate.
func SetupCartRoutes(r *gin.Engine, db *gorm.DB, cfg config.Config) {
	cartGroup := r.Group("/cart/menu-items")
	cartGroup.Use(middleware.ValidateToken(db, cfg.JWTSecret), middleware.RequireCustomer)
	{
		cartGroup.GET("", cartControllers.GetCartHandler(db))
		cartGroup.POST("", cartControllers.UpsertCartLineHandler(db))
		cartGroup.DELETE("/:id", cartControllers.RemoveCartLineHandler(db))
		cartGroup.DELETE("", cartControllers.ClearCartHandler(db))
	}
}
