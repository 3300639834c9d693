package repository

import (
	"errors"

	"backend/entity"

	"gorm.io/gorm"
)

type CartRepository struct{ DB *gorm.DB }

func NewCartRepository(db *gorm.DB) *CartRepository { return &CartRepository{DB: db} }

// GetOrCreate returns the user's cart, creating an empty one on first
// access.
func (r *CartRepository) GetOrCreate(tx *gorm.DB, userID uint) (*entity.Cart, error) {
	var c entity.Cart
	err := tx.Where("user_id = ?", userID).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c = entity.Cart{UserID: userID}
		if err := tx.Create(&c).Error; err != nil {
			return nil, err
		}
		return &c, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// GetWithItems loads the cart and resolves each line's food item. Returns
// gorm.ErrRecordNotFound when the user has no cart yet.
func (r *CartRepository) GetWithItems(tx *gorm.DB, userID uint) (*entity.Cart, error) {
	var c entity.Cart
	err := tx.Where("user_id = ?", userID).
		Preload("Items").
		Preload("Items.FoodItem").
		First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// UpsertItem merges quantity into an existing line for the food item or
// creates a new one.
func (r *CartRepository) UpsertItem(tx *gorm.DB, cartID, foodItemID uint, qty int) error {
	var exist entity.CartItem
	err := tx.Where("cart_id = ? AND food_item_id = ?", cartID, foodItemID).First(&exist).Error
	if err == nil {
		exist.Quantity += qty
		return tx.Save(&exist).Error
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	row := entity.CartItem{CartID: cartID, FoodItemID: foodItemID, Quantity: qty}
	return tx.Create(&row).Error
}

// FindItem returns the cart line for the food item, or nil when absent.
func (r *CartRepository) FindItem(tx *gorm.DB, cartID, foodItemID uint) (*entity.CartItem, error) {
	var it entity.CartItem
	err := tx.Where("cart_id = ? AND food_item_id = ?", cartID, foodItemID).First(&it).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &it, nil
}

func (r *CartRepository) DeleteItem(tx *gorm.DB, itemID uint) error {
	return tx.Unscoped().Delete(&entity.CartItem{}, itemID).Error
}

// DeleteAllItems empties the cart and returns how many lines were removed,
// so checkout can detect a cart mutated underneath it.
func (r *CartRepository) DeleteAllItems(tx *gorm.DB, cartID uint) (int64, error) {
	res := tx.Unscoped().Where("cart_id = ?", cartID).Delete(&entity.CartItem{})
	return res.RowsAffected, res.Error
}
