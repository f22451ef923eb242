package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Kushalvgowda/Food-Chain-API/auth"
	"github.com/Kushalvgowda/Food-Chain-API/models"
)

const userKey = "current_user"

// ValidateToken checks the Authorization header, resolves the calling user
// together with its group memberships, and stores it in the request context.
func ValidateToken(db *gorm.DB, secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := c.GetHeader("Authorization")
		if tokenString == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is missing"})
			c.Abort()
			return
		}
		tokenString = strings.TrimPrefix(tokenString, "Bearer ")

		userID, err := auth.ParseToken(secret, tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}

		var user models.User
		if err := db.Preload("Groups").First(&user, userID).Error; err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}

		c.Set(userKey, &user)
		c.Next()
	}
}

// CurrentUser returns the authenticated user set by ValidateToken.
func CurrentUser(c *gin.Context) (*models.User, bool) {
	val, exists := c.Get(userKey)
	if !exists {
		return nil, false
	}
	user, ok := val.(*models.User)
	return user, ok
}

// SetCurrentUser injects a user into the context. Used by tests and by
// handlers that run outside the token middleware.
func SetCurrentUser(c *gin.Context, user *models.User) {
	c.Set(userKey, user)
}
