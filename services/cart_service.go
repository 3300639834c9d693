package services

import (
	"errors"

	"backend/entity"
	"backend/pkg/apperr"
	"backend/repository"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// CartService keeps each user's cart consistent with the stock ledger:
// every line entry quantity has already been reserved, and leaves the
// ledger again only via release or checkout.
type CartService struct {
	DB       *gorm.DB
	CartRepo *repository.CartRepository
	FoodRepo *repository.FoodRepository

	locks *UserLocks
	log   *zap.Logger
}

func NewCartService(db *gorm.DB, cr *repository.CartRepository, fr *repository.FoodRepository, locks *UserLocks, log *zap.Logger) *CartService {
	if locks == nil {
		locks = NewUserLocks()
	}
	return &CartService{DB: db, CartRepo: cr, FoodRepo: fr, locks: locks, log: log}
}

// Get returns the user's cart, creating an empty one on first access.
func (s *CartService) Get(userID uint) (*entity.Cart, error) {
	c, err := s.CartRepo.GetWithItems(s.DB, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return s.CartRepo.GetOrCreate(s.DB, userID)
	}
	return c, err
}

// AddItem reserves qty units first; the cart changes only if the
// reservation holds. Reservation and line upsert share one transaction so
// an aborted request cannot leave stock deducted without a matching line.
func (s *CartService) AddItem(userID, foodItemID uint, qty int) (*entity.Cart, error) {
	if qty < 1 {
		return nil, apperr.New(apperr.CodeInvalidArgument, "quantity must be at least 1")
	}

	unlock := s.locks.Lock(userID)
	defer unlock()

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		cart, err := s.CartRepo.GetOrCreate(tx, userID)
		if err != nil {
			return err
		}
		if err := s.FoodRepo.Reserve(tx, foodItemID, qty); err != nil {
			return err
		}
		return s.CartRepo.UpsertItem(tx, cart.ID, foodItemID, qty)
	})
	if err != nil {
		if apperr.HasCode(err, apperr.CodeInsufficientStock) {
			s.log.Info("reservation rejected",
				zap.Uint("userId", userID),
				zap.Uint("foodItemId", foodItemID),
				zap.Int("quantity", qty))
		}
		return nil, err
	}
	return s.Get(userID)
}

// RemoveItem releases the line's reservation and deletes the line. A
// missing line is a no-op; a missing cart is NotFound.
func (s *CartService) RemoveItem(userID, foodItemID uint) (*entity.Cart, error) {
	unlock := s.locks.Lock(userID)
	defer unlock()

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		cart, err := s.CartRepo.GetWithItems(tx, userID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.New(apperr.CodeNotFound, "cart not found")
		}
		if err != nil {
			return err
		}
		item, err := s.CartRepo.FindItem(tx, cart.ID, foodItemID)
		if err != nil {
			return err
		}
		if item == nil {
			return nil
		}
		if err := s.FoodRepo.Release(tx, foodItemID, item.Quantity); err != nil {
			return err
		}
		return s.CartRepo.DeleteItem(tx, item.ID)
	})
	if err != nil {
		return nil, err
	}
	return s.Get(userID)
}

// Clear releases every reservation and empties the cart.
func (s *CartService) Clear(userID uint) (*entity.Cart, error) {
	unlock := s.locks.Lock(userID)
	defer unlock()

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		cart, err := s.CartRepo.GetWithItems(tx, userID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		for _, it := range cart.Items {
			if err := s.FoodRepo.Release(tx, it.FoodItemID, it.Quantity); err != nil {
				return err
			}
		}
		_, err = s.CartRepo.DeleteAllItems(tx, cart.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return s.Get(userID)
}
