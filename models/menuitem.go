package models

// MinMenuItemPrice is the lowest price a menu item may carry; writes below it
// are rejected.
const MinMenuItemPrice = 2.00

type MenuItem struct {
	ID         uint     `gorm:"primaryKey;autoIncrement" json:"id"`
	Title      string   `gorm:"not null" json:"title"`
	Price      float64  `gorm:"not null" json:"price"`
	Featured   bool     `gorm:"index" json:"featured"` // at most one item is featured system-wide
	CategoryID uint     `json:"category"`
	Category   Category `gorm:"foreignKey:CategoryID" json:"-"`
}
