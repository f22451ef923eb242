package cartControllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Kushalvgowda/Food-Chain-API/middleware"
	"github.com/Kushalvgowda/Food-Chain-API/models"
)

var (
	ErrMenuItemNotFound = errors.New("menu item does not exist")
	ErrNegativeQuantity = errors.New("quantity less than 0")
	ErrLineNotFound     = errors.New("cart item not found")
)

type CartLineInput struct {
	MenuItemID uint `json:"menuitem" binding:"required"`
	Quantity   int  `json:"quantity"`
}

// -------- Core Logic --------

// UpsertLine creates or updates the caller's cart line for one menu item.
// The unit price is captured from the menu item at this moment; the line
// total is recomputed from it.
func UpsertLine(db *gorm.DB, userID, menuItemID uint, quantity int) (*models.CartLine, error) {
	if quantity < 0 {
		return nil, ErrNegativeQuantity
	}

	var item models.MenuItem
	if err := db.First(&item, menuItemID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMenuItemNotFound
		}
		return nil, err
	}

	var line models.CartLine
	err := db.Where("user_id = ? AND menu_item_id = ?", userID, menuItemID).First(&line).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		line = models.CartLine{
			UserID:     userID,
			MenuItemID: menuItemID,
			Quantity:   quantity,
			UnitPrice:  item.Price,
			Price:      item.Price * float64(quantity),
			AddedAt:    time.Now(),
		}
		if err := db.Create(&line).Error; err != nil {
			return nil, err
		}
	case err != nil:
		return nil, err
	default:
		line.Quantity = quantity
		line.UnitPrice = item.Price
		line.Price = item.Price * float64(quantity)
		line.AddedAt = time.Now()
		if err := db.Save(&line).Error; err != nil {
			return nil, err
		}
	}
	return &line, nil
}

// ListLines returns all cart lines owned by the user.
func ListLines(db *gorm.DB, userID uint) ([]models.CartLine, error) {
	var lines []models.CartLine
	if err := db.Where("user_id = ?", userID).Find(&lines).Error; err != nil {
		return nil, err
	}
	return lines, nil
}

// RemoveLine deletes one cart line scoped to the owning user. A line that
// does not exist, or belongs to another user, reports not-found either way.
func RemoveLine(db *gorm.DB, userID, lineID uint) error {
	result := db.Where("id = ? AND user_id = ?", lineID, userID).Delete(&models.CartLine{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrLineNotFound
	}
	return nil
}

// Clear removes every cart line for the user. Clearing an empty cart is a
// no-op.
func Clear(db *gorm.DB, userID uint) error {
	return db.Where("user_id = ?", userID).Delete(&models.CartLine{}).Error
}

// -------- Handlers --------

// POST /cart/menu-items
func UpsertCartLineHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := middleware.CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var input CartLineInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		line, err := UpsertLine(db, user.ID, input.MenuItemID, input.Quantity)
		switch {
		case errors.Is(err, ErrNegativeQuantity):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, ErrMenuItemNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case err != nil:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart"})
		default:
			c.JSON(http.StatusCreated, line)
		}
	}
}

// GET /cart/menu-items
func GetCartHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := middleware.CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		lines, err := ListLines(db, user.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}
		c.JSON(http.StatusOK, lines)
	}
}

// DELETE /cart/menu-items/:id
func RemoveCartLineHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := middleware.CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		lineID, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid cart item id"})
			return
		}

		switch err := RemoveLine(db, user.ID, uint(lineID)); {
		case errors.Is(err, ErrLineNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case err != nil:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete cart item"})
		default:
			c.Status(http.StatusNoContent)
		}
	}
}

// DELETE /cart/menu-items
func ClearCartHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := middleware.CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		if err := Clear(db, user.ID); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cart"})
			return
		}
		c.Status(http.StatusNoContent)
	}
}
