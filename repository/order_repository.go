package repository

import (
	"errors"

	"backend/entity"
	"backend/pkg/apperr"

	"gorm.io/gorm"
)

type OrderRepository struct{ DB *gorm.DB }

func NewOrderRepository(db *gorm.DB) *OrderRepository { return &OrderRepository{DB: db} }

func (r *OrderRepository) Create(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) GetByID(id uint) (*entity.Order, error) {
	var o entity.Order
	err := r.DB.Preload("Items").First(&o, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.Newf(apperr.CodeNotFound, "order %d not found", id)
	}
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) GetForUser(userID, id uint) (*entity.Order, error) {
	var o entity.Order
	err := r.DB.Where("id = ? AND user_id = ?", id, userID).Preload("Items").First(&o).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.Newf(apperr.CodeNotFound, "order %d not found", id)
	}
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// ListForUser returns the user's orders, newest first.
func (r *OrderRepository) ListForUser(userID uint) ([]entity.Order, error) {
	var orders []entity.Order
	err := r.DB.Where("user_id = ?", userID).
		Preload("Items").
		Order("created_at DESC").
		Find(&orders).Error
	return orders, err
}

func (r *OrderRepository) ListAll() ([]entity.Order, error) {
	var orders []entity.Order
	err := r.DB.Preload("Items").Order("created_at DESC").Find(&orders).Error
	return orders, err
}

// ListForRestaurant returns orders containing at least one item from the
// restaurant, newest first.
func (r *OrderRepository) ListForRestaurant(restaurantID uint) ([]entity.Order, error) {
	var orders []entity.Order
	err := r.DB.
		Where("id IN (?)", r.DB.Model(&entity.OrderItem{}).
			Select("order_items.order_id").
			Joins("JOIN food_items ON food_items.id = order_items.food_item_id").
			Where("food_items.restaurant_id = ?", restaurantID)).
		Preload("Items").
		Order("created_at DESC").
		Find(&orders).Error
	return orders, err
}

func (r *OrderRepository) UpdateStatus(tx *gorm.DB, id uint, status entity.OrderStatus) error {
	res := tx.Model(&entity.Order{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperr.Newf(apperr.CodeNotFound, "order %d not found", id)
	}
	return nil
}

// OrderTouchesRestaurantOf reports whether any item in the order belongs to
// a restaurant owned by the given user.
func (r *OrderRepository) OrderTouchesRestaurantOf(orderID, ownerID uint) (bool, error) {
	var n int64
	err := r.DB.Model(&entity.OrderItem{}).
		Joins("JOIN food_items ON food_items.id = order_items.food_item_id").
		Joins("JOIN restaurants ON restaurants.id = food_items.restaurant_id").
		Where("order_items.order_id = ? AND restaurants.user_id = ?", orderID, ownerID).
		Count(&n).Error
	return n > 0, err
}
