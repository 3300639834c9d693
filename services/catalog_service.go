package services

import (
	"strings"

	"backend/entity"
	"backend/pkg/apperr"
	"backend/repository"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type CatalogService struct {
	DB       *gorm.DB
	FoodRepo *repository.FoodRepository
	RestRepo *repository.RestaurantRepository

	log *zap.Logger
}

func NewCatalogService(db *gorm.DB, fr *repository.FoodRepository, rr *repository.RestaurantRepository, log *zap.Logger) *CatalogService {
	return &CatalogService{DB: db, FoodRepo: fr, RestRepo: rr, log: log}
}

type CreateFoodReq struct {
	Name         string          `json:"name" binding:"required"`
	Description  string          `json:"description"`
	Image        string          `json:"image"`
	Category     string          `json:"category" binding:"required"`
	Price        decimal.Decimal `json:"price"`
	Stock        int             `json:"stock"`
	RestaurantID uint            `json:"restaurantId" binding:"required"`
}

// FoodItemUpdate is the whitelist of mutable catalog fields. Requests are
// bound into this struct, never merged into the record as a raw map.
// Stock is an absolute override: the new count replaces whatever the
// ledger holds, including reservations made since the caller last read
// it. Restock after checking the current value, not by blind arithmetic.
type FoodItemUpdate struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Image       *string          `json:"image"`
	Category    *string          `json:"category"`
	Price       *decimal.Decimal `json:"price"`
	Stock       *int             `json:"stock"`
}

func (s *CatalogService) List(category, search string) ([]entity.FoodItem, error) {
	cat := entity.FoodCategory(category)
	if category != "" && !cat.Valid() {
		// Unknown category filters match nothing rather than erroring.
		return []entity.FoodItem{}, nil
	}
	return s.FoodRepo.List(cat, search)
}

func (s *CatalogService) Get(id uint) (*entity.FoodItem, error) {
	return s.FoodRepo.GetByID(id)
}

func (s *CatalogService) Create(in *CreateFoodReq, actorID uint, actorRole string) (*entity.FoodItem, error) {
	cat := entity.FoodCategory(in.Category)
	if !cat.Valid() {
		return nil, apperr.Newf(apperr.CodeInvalidArgument, "invalid category %q", in.Category)
	}
	if in.Price.IsNegative() {
		return nil, apperr.New(apperr.CodeInvalidArgument, "price must not be negative")
	}
	if in.Stock < 0 {
		return nil, apperr.New(apperr.CodeInvalidArgument, "stock must not be negative")
	}
	if err := s.authorizeRestaurant(in.RestaurantID, actorID, actorRole); err != nil {
		return nil, err
	}

	f := entity.FoodItem{
		Name:         strings.TrimSpace(in.Name),
		Description:  in.Description,
		Image:        in.Image,
		Category:     cat,
		Price:        in.Price,
		Stock:        in.Stock,
		RestaurantID: in.RestaurantID,
	}
	if err := s.FoodRepo.Create(&f); err != nil {
		return nil, err
	}
	return &f, nil
}

func (s *CatalogService) Update(id uint, in *FoodItemUpdate, actorID uint, actorRole string) (*entity.FoodItem, error) {
	f, err := s.FoodRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := s.authorizeRestaurant(f.RestaurantID, actorID, actorRole); err != nil {
		return nil, err
	}

	cols := map[string]any{}
	if in.Name != nil {
		cols["name"] = strings.TrimSpace(*in.Name)
	}
	if in.Description != nil {
		cols["description"] = *in.Description
	}
	if in.Image != nil {
		cols["image"] = *in.Image
	}
	if in.Category != nil {
		cat := entity.FoodCategory(*in.Category)
		if !cat.Valid() {
			return nil, apperr.Newf(apperr.CodeInvalidArgument, "invalid category %q", *in.Category)
		}
		cols["category"] = cat
	}
	if in.Price != nil {
		if in.Price.IsNegative() {
			return nil, apperr.New(apperr.CodeInvalidArgument, "price must not be negative")
		}
		cols["price"] = *in.Price
	}
	if in.Stock != nil {
		if *in.Stock < 0 {
			return nil, apperr.New(apperr.CodeInvalidArgument, "stock must not be negative")
		}
		cols["stock"] = *in.Stock
	}
	if len(cols) == 0 {
		return f, nil
	}

	if err := s.FoodRepo.Updates(id, cols); err != nil {
		return nil, err
	}
	return s.FoodRepo.GetByID(id)
}

// Delete removes a food item unless order history or live carts still
// reference it.
func (s *CatalogService) Delete(id uint, actorID uint, actorRole string) error {
	f, err := s.FoodRepo.GetByID(id)
	if err != nil {
		return err
	}
	if err := s.authorizeRestaurant(f.RestaurantID, actorID, actorRole); err != nil {
		return err
	}

	if n, err := s.FoodRepo.CountOrderReferences(id); err != nil {
		return err
	} else if n > 0 {
		return apperr.New(apperr.CodeConflict, "food item is referenced by existing orders")
	}
	if n, err := s.FoodRepo.CountCartReferences(id); err != nil {
		return err
	} else if n > 0 {
		return apperr.New(apperr.CodeConflict, "food item has active cart reservations")
	}

	return s.FoodRepo.Delete(id)
}

func (s *CatalogService) authorizeRestaurant(restaurantID, actorID uint, actorRole string) error {
	if actorRole == entity.RoleAdmin {
		return nil
	}
	owns, err := s.RestRepo.IsOwnedBy(restaurantID, actorID)
	if err != nil {
		return err
	}
	if !owns {
		return apperr.ErrUnauthorized
	}
	return nil
}
