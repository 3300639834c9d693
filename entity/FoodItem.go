package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type FoodCategory string

const (
	CategoryMorning FoodCategory = "morning"
	CategoryLunch   FoodCategory = "lunch"
	CategoryDinner  FoodCategory = "dinner"
	CategorySnacks  FoodCategory = "snacks"
	CategoryAllDay  FoodCategory = "24-7"
)

func (c FoodCategory) Valid() bool {
	switch c {
	case CategoryMorning, CategoryLunch, CategoryDinner, CategorySnacks, CategoryAllDay:
		return true
	}
	return false
}

type FoodItem struct {
	gorm.Model
	Name        string          `gorm:"not null" json:"name"`
	Description string          `json:"description"`
	Image       string          `json:"image"`
	Category    FoodCategory    `gorm:"type:varchar(16);index" json:"category"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2)" json:"price"`

	// Stock is the ledger of purchasable units. Never written directly by
	// business code; goes through FoodRepository.Reserve/Release so the
	// stock >= 0 invariant holds under concurrent carts.
	Stock int `gorm:"not null;default:0" json:"stock"`

	RestaurantID uint       `json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`

	OrderItems []OrderItem `json:"-"`
}
