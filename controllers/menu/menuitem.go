package menuControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Kushalvgowda/Food-Chain-API/models"
)

var ErrPriceTooLow = errors.New("price less than 2.00")

const (
	defaultPageSize = 5
	maxPageSize     = 100
)

type MenuItemInput struct {
	Title      string  `json:"title" binding:"required"`
	Price      float64 `json:"price" binding:"required"`
	Featured   bool    `json:"featured"`
	CategoryID uint    `json:"category"`
}

func validatePrice(price float64) error {
	if price < models.MinMenuItemPrice {
		return ErrPriceTooLow
	}
	return nil
}

// GET /menu-items
// Supports page/perpage pagination, category, category_slug and price
// filters, and ordering=price or ordering=-price.
func ListMenuItemsHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Model(&models.MenuItem{})

		if category := c.Query("category"); category != "" {
			query = query.Where("category_id = ?", category)
		}
		if slug := c.Query("category_slug"); slug != "" {
			query = query.Joins("JOIN categories ON categories.id = menu_items.category_id").
				Where("categories.slug = ?", slug)
		}
		if price := c.Query("price"); price != "" {
			query = query.Where("price = ?", price)
		}

		switch c.Query("ordering") {
		case "price":
			query = query.Order("price ASC")
		case "-price":
			query = query.Order("price DESC")
		}

		page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
		if page < 1 {
			page = 1
		}
		perPage, _ := strconv.Atoi(c.DefaultQuery("perpage", strconv.Itoa(defaultPageSize)))
		if perPage < 1 {
			perPage = defaultPageSize
		}
		if perPage > maxPageSize {
			perPage = maxPageSize
		}

		var count int64
		if err := query.Count(&count).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch menu items"})
			return
		}

		var items []models.MenuItem
		if err := query.Offset((page - 1) * perPage).Limit(perPage).Find(&items).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch menu items"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"count": count, "results": items})
	}
}

// POST /menu-items
func CreateMenuItemHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input MenuItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if err := validatePrice(input.Price); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		item := models.MenuItem{
			Title:      input.Title,
			Price:      input.Price,
			Featured:   input.Featured,
			CategoryID: input.CategoryID,
		}
		if err := db.Create(&item).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create menu item"})
			return
		}
		c.JSON(http.StatusCreated, item)
	}
}

// GET /menu-items/:id
func GetMenuItemHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var item models.MenuItem
		if err := db.First(&item, c.Param("id")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve menu item"})
			return
		}
		c.JSON(http.StatusOK, item)
	}
}

// PUT /menu-items/:id
func UpdateMenuItemHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var item models.MenuItem
		if err := db.First(&item, c.Param("id")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve menu item"})
			return
		}

		var input MenuItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if err := validatePrice(input.Price); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		item.Title = input.Title
		item.Price = input.Price
		item.CategoryID = input.CategoryID
		if err := db.Save(&item).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update menu item"})
			return
		}
		c.JSON(http.StatusOK, item)
	}
}

// DELETE /menu-items/:id
func DeleteMenuItemHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		result := db.Delete(&models.MenuItem{}, c.Param("id"))
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete menu item"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
			return
		}
		c.Status(http.StatusNoContent)
	}
}
