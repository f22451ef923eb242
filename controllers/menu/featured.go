package menuControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Kushalvgowda/Food-Chain-API/models"
)

var (
	ErrNoFeaturedItem = errors.New("no item of the day set")
)

type FeaturedItemInput struct {
	ItemID uint `json:"item_id" binding:"required"`
}

// -------- Core Logic --------

// SetFeaturedItem makes one menu item the item of the day. Clearing the old
// flag and setting the new one commit together, so readers never see two
// featured items.
func SetFeaturedItem(db *gorm.DB, itemID uint) (*models.MenuItem, error) {
	var item models.MenuItem
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&item, itemID).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.MenuItem{}).Where("featured = ?", true).
			Update("featured", false).Error; err != nil {
			return err
		}
		item.Featured = true
		return tx.Save(&item).Error
	})
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// GetFeaturedItem returns the single featured menu item.
func GetFeaturedItem(db *gorm.DB) (*models.MenuItem, error) {
	var item models.MenuItem
	if err := db.Where("featured = ?", true).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoFeaturedItem
		}
		return nil, err
	}
	return &item, nil
}

// -------- Handlers --------

// POST /itemofday
func SetFeaturedItemHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input FeaturedItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Menu item ID is required"})
			return
		}

		item, err := SetFeaturedItem(db, input.ItemID)
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		case err != nil:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to set item of the day"})
		default:
			c.JSON(http.StatusOK, gin.H{"message": item.Title + " is set as item of the day"})
		}
	}
}

// GET /itemofday
func GetFeaturedItemHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		item, err := GetFeaturedItem(db)
		switch {
		case errors.Is(err, ErrNoFeaturedItem):
			c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
		case err != nil:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch item of the day"})
		default:
			c.JSON(http.StatusOK, item)
		}
	}
}
