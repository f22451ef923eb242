package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Role gating lives here so the required role for every endpoint is declared
// once, at route registration, instead of inside each handler.

// RequireRole passes when the caller belongs to any of the named groups.
func RequireRole(names ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			c.Abort()
			return
		}
		for _, name := range names {
			if user.InGroup(name) {
				c.Next()
				return
			}
		}
		c.JSON(http.StatusForbidden, gin.H{"error": "You do not have permission to perform this action"})
		c.Abort()
	}
}

// RequireAdmin passes only for staff users.
func RequireAdmin(c *gin.Context) {
	user, ok := CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		c.Abort()
		return
	}
	if !user.IsStaff {
		c.JSON(http.StatusForbidden, gin.H{"error": "You do not have permission to perform this action"})
		c.Abort()
		return
	}
	c.Next()
}

// RequireAdminOrRole passes for staff users and for members of any of the
// named groups.
func RequireAdminOrRole(names ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			c.Abort()
			return
		}
		if user.IsStaff {
			c.Next()
			return
		}
		for _, name := range names {
			if user.InGroup(name) {
				c.Next()
				return
			}
		}
		c.JSON(http.StatusForbidden, gin.H{"error": "You do not have permission to perform this action"})
		c.Abort()
	}
}

// RequireCustomer passes only for authenticated users that hold no elevated
// role. Managers and delivery crew do not shop.
func RequireCustomer(c *gin.Context) {
	user, ok := CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		c.Abort()
		return
	}
	if !user.IsCustomer() {
		c.JSON(http.StatusForbidden, gin.H{"error": "You do not have permission to perform this action"})
		c.Abort()
		return
	}
	c.Next()
}
