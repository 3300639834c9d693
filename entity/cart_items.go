package entity

import (
	"gorm.io/gorm"
)

// CartItem holds a reservation: Quantity units already deducted from the
// food item's stock, pending release or consumption by an order.
type CartItem struct {
	gorm.Model
	CartID uint `json:"cartId" gorm:"uniqueIndex:idx_cart_food"`
	Cart   Cart `json:"-"`

	FoodItemID uint     `json:"foodItemId" gorm:"uniqueIndex:idx_cart_food"`
	FoodItem   FoodItem `json:"foodItem"`

	Quantity int `json:"quantity" gorm:"not null"`
}
