package models

import "time"

// Order is the committed, billable record created atomically from a cart.
// After creation only Status and DeliveryCrewID may change: Status is a
// two-state flag (false = open, true = delivered) and the delivered state is
// terminal.
type Order struct {
	ID             uint        `gorm:"primaryKey" json:"id"`
	UserID         uint        `gorm:"not null;index" json:"-"`
	User           User        `gorm:"foreignKey:UserID" json:"-"`
	DeliveryCrewID *uint       `gorm:"index" json:"delivery_crew"`
	DeliveryCrew   *User       `gorm:"foreignKey:DeliveryCrewID" json:"-"`
	Status         bool        `gorm:"not null;default:false" json:"status"`
	Total          float64     `gorm:"not null" json:"total"`
	Date           time.Time   `gorm:"not null" json:"date"`
	Items          []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"orderitems"`
}

// OrderItem is an immutable per-line snapshot of the cart at placement time.
// Later menu price changes must not touch it.
type OrderItem struct {
	ID         uint    `gorm:"primaryKey" json:"-"`
	OrderID    uint    `gorm:"not null;index" json:"-"`
	MenuItemID uint    `gorm:"not null" json:"menuitem"`
	Quantity   int     `gorm:"not null" json:"quantity"`
	UnitPrice  float64 `gorm:"not null" json:"unit_price"`
	TotalPrice float64 `gorm:"not null" json:"total_price"`
}
