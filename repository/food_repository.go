package repository

import (
	"errors"

	"backend/entity"
	"backend/pkg/apperr"

	"gorm.io/gorm"
)

type FoodRepository struct{ DB *gorm.DB }

func NewFoodRepository(db *gorm.DB) *FoodRepository { return &FoodRepository{DB: db} }

// Reserve atomically checks stock >= qty and decrements. The guard lives in
// the WHERE clause so two racing reservations for the last unit cannot both
// succeed; RowsAffected == 0 means the item is gone or short on stock.
func (r *FoodRepository) Reserve(tx *gorm.DB, foodItemID uint, qty int) error {
	res := tx.Model(&entity.FoodItem{}).
		Where("id = ? AND stock >= ?", foodItemID, qty).
		UpdateColumn("stock", gorm.Expr("stock - ?", qty))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		var n int64
		if err := tx.Model(&entity.FoodItem{}).Where("id = ?", foodItemID).Count(&n).Error; err != nil {
			return err
		}
		if n == 0 {
			return apperr.Newf(apperr.CodeNotFound, "food item %d not found", foodItemID)
		}
		return apperr.ErrInsufficientStock
	}
	return nil
}

// Release credits qty units back to the ledger.
func (r *FoodRepository) Release(tx *gorm.DB, foodItemID uint, qty int) error {
	res := tx.Model(&entity.FoodItem{}).
		Where("id = ?", foodItemID).
		UpdateColumn("stock", gorm.Expr("stock + ?", qty))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperr.Newf(apperr.CodeNotFound, "food item %d not found", foodItemID)
	}
	return nil
}

func (r *FoodRepository) GetByID(id uint) (*entity.FoodItem, error) {
	var f entity.FoodItem
	if err := r.DB.First(&f, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.Newf(apperr.CodeNotFound, "food item %d not found", id)
		}
		return nil, err
	}
	return &f, nil
}

func (r *FoodRepository) List(category entity.FoodCategory, search string) ([]entity.FoodItem, error) {
	q := r.DB.Preload("Restaurant")
	if category != "" {
		q = q.Where("category = ?", category)
	}
	if search != "" {
		q = q.Where("name LIKE ?", "%"+search+"%")
	}
	var foods []entity.FoodItem
	if err := q.Find(&foods).Error; err != nil {
		return nil, err
	}
	return foods, nil
}

func (r *FoodRepository) ListByRestaurant(restaurantID uint) ([]entity.FoodItem, error) {
	var foods []entity.FoodItem
	err := r.DB.Where("restaurant_id = ?", restaurantID).Find(&foods).Error
	return foods, err
}

func (r *FoodRepository) Create(f *entity.FoodItem) error {
	return r.DB.Create(f).Error
}

// Updates applies a column whitelist; callers build the map from a typed
// update struct, never from a raw request body.
func (r *FoodRepository) Updates(id uint, cols map[string]any) error {
	res := r.DB.Model(&entity.FoodItem{}).Where("id = ?", id).Updates(cols)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperr.Newf(apperr.CodeNotFound, "food item %d not found", id)
	}
	return nil
}

// CountOrderReferences reports how many order lines snapshot this item.
// Items referenced by order history must never be deleted.
func (r *FoodRepository) CountOrderReferences(id uint) (int64, error) {
	var n int64
	err := r.DB.Model(&entity.OrderItem{}).Where("food_item_id = ?", id).Count(&n).Error
	return n, err
}

// CountCartReferences reports how many live cart lines hold reservations
// against this item.
func (r *FoodRepository) CountCartReferences(id uint) (int64, error) {
	var n int64
	err := r.DB.Model(&entity.CartItem{}).Where("food_item_id = ?", id).Count(&n).Error
	return n, err
}

func (r *FoodRepository) Delete(id uint) error {
	res := r.DB.Delete(&entity.FoodItem{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperr.Newf(apperr.CodeNotFound, "food item %d not found", id)
	}
	return nil
}
