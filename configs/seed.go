package configs

import (
	"log"

	"backend/entity"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

func SeedAdmin() error {
	email := getEnv("ADMIN_USERNAME", "")
	pass := getEnv("ADMIN_PASSWORD", "")
	if email == "" || pass == "" {
		log.Println("skip seeding admin: missing ADMIN_USERNAME/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.User{}).Where("username = ?", email).Count(&count)
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := entity.User{Username: email, Password: string(hash), Role: entity.RoleAdmin}
	return db.Create(&admin).Error
}

// SeedCatalog creates a demo restaurant and a few food items so a fresh
// install has something to browse.
func SeedCatalog() error {
	var count int64
	db.Model(&entity.Restaurant{}).Count(&count)
	if count > 0 {
		return nil
	}

	canteen := entity.Restaurant{Name: "Main Canteen", Description: "University canteen", ProviderType: "university"}
	if err := db.Create(&canteen).Error; err != nil {
		return err
	}

	foods := []entity.FoodItem{
		{Name: "Fried Rice", Category: entity.CategoryLunch, Price: decimal.NewFromInt(50), Stock: 30, RestaurantID: canteen.ID},
		{Name: "Omelette Rice", Category: entity.CategoryMorning, Price: decimal.NewFromInt(40), Stock: 20, RestaurantID: canteen.ID},
		{Name: "Instant Noodles", Category: entity.CategoryAllDay, Price: decimal.NewFromInt(25), Stock: 100, RestaurantID: canteen.ID},
	}
	return db.Create(&foods).Error
}
