package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Kushalvgowda/Food-Chain-API/config"
)

// SetupRoutes is the single entry-point that wires up every route group. The
// role required by each endpoint is declared here, next to the route, and
// nowhere else.
func SetupRoutes(r *gin.Engine, db *gorm.DB, cfg config.Config) {
	SetupAuthRoutes(r, db, cfg)
	SetupMenuRoutes(r, db, cfg)
	SetupCartRoutes(r, db, cfg)
	SetupOrderRoutes(r, db, cfg)
	SetupGroupRoutes(r, db, cfg)
}
