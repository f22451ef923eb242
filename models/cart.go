package models

import "time"

// CartLine is one user's pending quantity of one menu item. UnitPrice is
// copied from the menu item at write time, never joined live, so catalog
// price changes do not reprice a cart in progress.
type CartLine struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     uint      `gorm:"not null;uniqueIndex:idx_cart_user_item" json:"-"`
	MenuItemID uint      `gorm:"not null;uniqueIndex:idx_cart_user_item" json:"menuitem"`
	MenuItem   MenuItem  `gorm:"foreignKey:MenuItemID" json:"-"`
	Quantity   int       `gorm:"not null" json:"quantity"`
	UnitPrice  float64   `gorm:"not null" json:"unit_price"`
	Price      float64   `gorm:"not null" json:"price"` // UnitPrice * Quantity
	AddedAt    time.Time `json:"added_at"`
}
