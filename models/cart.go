package models

import "time"

// Cart is the single active shopping cart of a user, lazily created on
// first access.
type Cart struct {
	ID          uint       `json:"id" gorm:"primaryKey"`
	UserID      uint       `json:"user_id" gorm:"uniqueIndex;not null"`
	Items       []CartItem `json:"items" gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE"`
	TotalAmount float64    `json:"total_amount" gorm:"default:0"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// RecalculateTotal folds the current line items into TotalAmount. Must run
// after every mutation so total and items never disagree once an operation
// returns.
func (c *Cart) RecalculateTotal() {
	total := 0.0
	for _, item := range c.Items {
		total += item.Price * float64(item.Quantity)
	}
	c.TotalAmount = total
}

type CartItem struct {
	ID         uint     `json:"id" gorm:"primaryKey"`
	CartID     uint     `json:"cart_id" gorm:"not null;index"`
	MenuItemID uint     `json:"menu_item_id" gorm:"not null"`
	MenuItem   MenuItem `json:"menu_item,omitempty" gorm:"foreignKey:MenuItemID"`
	Quantity   int      `json:"quantity" gorm:"not null"`
	Price      float64  `json:"price" gorm:"not null"` // snapshot at add time, never refreshed
}
