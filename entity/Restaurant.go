package entity

import (
	"gorm.io/gorm"
)

type Restaurant struct {
	gorm.Model
	Name         string `gorm:"not null" json:"name"`
	Description  string `json:"description"`
	ProviderType string `gorm:"not null;default:university" json:"providerType"` // university | student | external

	UserID uint `json:"userId"` // owner (users.id)
	User   User `json:"-"`

	FoodItems []FoodItem `json:"-"`
}
