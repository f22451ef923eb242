package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Kushalvgowda/Food-Chain-API/config"
	accountControllers "github.com/Kushalvgowda/Food-Chain-API/controllers/account"
)

// SetupAuthRoutes registers the public account endpoints.
func SetupAuthRoutes(r *gin.Engine, db *gorm.DB, cfg config.Config) {
	ttl := time.Duration(cfg.TokenTTLHours) * time.Hour

	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", accountControllers.RegisterHandler(db))
		authGroup.POST("/token", accountControllers.LoginHandler(db, cfg.JWTSecret, ttl))
	}
}
