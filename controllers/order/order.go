package orderControllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	cartControllers "github.com/Kushalvgowda/Food-Chain-API/controllers/cart"
	"github.com/Kushalvgowda/Food-Chain-API/middleware"
	"github.com/Kushalvgowda/Food-Chain-API/models"
)

var (
	ErrCartEmpty     = errors.New("cart is empty")
	ErrOrderNotFound = errors.New("order not found")
	ErrNotAssigned   = errors.New("you can only update orders assigned to you")
	ErrUserNotFound  = errors.New("user not found")
)

type AssignCrewRequest struct {
	Username string `json:"username" binding:"required"`
}

// -------- Core Logic --------

// PlaceOrder converts the user's cart into an immutable order. The order row,
// its item snapshots and the cart deletion commit as one transaction; a
// failure at any point leaves no partial order behind.
//
// The cart deletion doubles as the double-spend guard: if a concurrent
// placement already consumed some of the lines read here, the row count will
// not match and the whole transaction rolls back.
func PlaceOrder(db *gorm.DB, userID uint) (*models.Order, error) {
	var order models.Order

	err := db.Transaction(func(tx *gorm.DB) error {
		lines, err := cartControllers.ListLines(tx, userID)
		if err != nil {
			return err
		}
		if len(lines) == 0 {
			return ErrCartEmpty
		}

		var total float64
		items := make([]models.OrderItem, 0, len(lines))
		for _, line := range lines {
			// Totals use the price captured on the line, never a fresh
			// catalog read.
			total += line.Price
			items = append(items, models.OrderItem{
				MenuItemID: line.MenuItemID,
				Quantity:   line.Quantity,
				UnitPrice:  line.UnitPrice,
				TotalPrice: line.Price,
			})
		}

		order = models.Order{
			UserID: userID,
			Total:  total,
			Status: false,
			Date:   time.Now(),
			Items:  items,
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		result := tx.Where("user_id = ?", userID).Delete(&models.CartLine{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected != int64(len(lines)) {
			return ErrCartEmpty
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// ListOrders returns the orders visible to the caller: managers see all,
// delivery crew their assignments, customers their own.
func ListOrders(db *gorm.DB, user *models.User) ([]models.Order, error) {
	query := db.Preload("Items").Order("date DESC")
	switch {
	case user.InGroup(models.GroupManager):
		// all orders
	case user.InGroup(models.GroupDeliveryCrew):
		query = query.Where("delivery_crew_id = ?", user.ID)
	default:
		query = query.Where("user_id = ?", user.ID)
	}

	var orders []models.Order
	if err := query.Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// GetOrder fetches a single order. Customers can only see their own; a miss
// on ownership reports not-found so other users' orders stay invisible.
func GetOrder(db *gorm.DB, user *models.User, orderID uint) (*models.Order, error) {
	query := db.Preload("Items")
	if !user.InGroup(models.GroupManager) && !user.InGroup(models.GroupDeliveryCrew) {
		query = query.Where("user_id = ?", user.ID)
	}

	var order models.Order
	if err := query.First(&order, orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return &order, nil
}

// MarkDelivered flips the order status to delivered. Only the crew member the
// order is assigned to may do it, and the transition is one-way.
func MarkDelivered(db *gorm.DB, crew *models.User, orderID uint) error {
	var order models.Order
	if err := db.First(&order, orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrOrderNotFound
		}
		return err
	}

	if order.DeliveryCrewID == nil || *order.DeliveryCrewID != crew.ID {
		return ErrNotAssigned
	}

	return db.Model(&order).Update("status", true).Error
}

// AssignCrew sets the delivery crew for an order by username. The target's
// group membership is not checked; managers are trusted to pick crew members.
func AssignCrew(db *gorm.DB, orderID uint, username string) error {
	var crew models.User
	if err := db.Where("username = ?", username).First(&crew).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	var order models.Order
	if err := db.First(&order, orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrOrderNotFound
		}
		return err
	}

	return db.Model(&order).Update("delivery_crew_id", crew.ID).Error
}

// -------- Handlers --------

// POST /orders
func PlaceOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := middleware.CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		_, err := PlaceOrder(db, user.ID)
		switch {
		case errors.Is(err, ErrCartEmpty):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty"})
		case err != nil:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order"})
		default:
			c.JSON(http.StatusCreated, gin.H{"message": "Order placed successfully"})
		}
	}
}

// GET /orders
func ListOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := middleware.CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		orders, err := ListOrders(db, user)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// GET /orders/:id
func GetOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := middleware.CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		orderID, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order id"})
			return
		}

		order, err := GetOrder(db, user, uint(orderID))
		switch {
		case errors.Is(err, ErrOrderNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case err != nil:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order"})
		default:
			c.JSON(http.StatusOK, order)
		}
	}
}

// PATCH /orders/:id
func MarkDeliveredHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := middleware.CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		orderID, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order id"})
			return
		}

		switch err := MarkDelivered(db, user, uint(orderID)); {
		case errors.Is(err, ErrOrderNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, ErrNotAssigned):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		case err != nil:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order"})
		default:
			c.JSON(http.StatusOK, gin.H{"message": "Order marked as delivered"})
		}
	}
}

// POST /orders/:id
func AssignCrewHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order id"})
			return
		}

		var req AssignCrewRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Username is required"})
			return
		}

		switch err := AssignCrew(db, uint(orderID), req.Username); {
		case errors.Is(err, ErrUserNotFound), errors.Is(err, ErrOrderNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case err != nil:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to assign order"})
		default:
			c.JSON(http.StatusOK, gin.H{"message": "Order assigned successfully"})
		}
	}
}
