package services

import (
	"strings"

	"backend/entity"
	"backend/pkg/apperr"
	"backend/repository"
)

type RestaurantService struct {
	Repo     *repository.RestaurantRepository
	FoodRepo *repository.FoodRepository
}

func NewRestaurantService(repo *repository.RestaurantRepository, foodRepo *repository.FoodRepository) *RestaurantService {
	return &RestaurantService{Repo: repo, FoodRepo: foodRepo}
}

type CreateRestaurantReq struct {
	Name         string `json:"name" binding:"required"`
	Description  string `json:"description"`
	ProviderType string `json:"providerType"`
	OwnerID      uint   `json:"ownerId" binding:"required"`
}

func (s *RestaurantService) List() ([]entity.Restaurant, error) {
	return s.Repo.List()
}

// Detail returns the restaurant and its menu.
func (s *RestaurantService) Detail(id uint) (*entity.Restaurant, []entity.FoodItem, error) {
	rest, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, nil, err
	}
	foods, err := s.FoodRepo.ListByRestaurant(id)
	if err != nil {
		return nil, nil, err
	}
	return rest, foods, nil
}

func (s *RestaurantService) Create(in *CreateRestaurantReq) (*entity.Restaurant, error) {
	pt := in.ProviderType
	if pt == "" {
		pt = "university"
	}
	if pt != "university" && pt != "student" && pt != "external" {
		return nil, apperr.Newf(apperr.CodeInvalidArgument, "invalid provider type %q", pt)
	}

	rest := entity.Restaurant{
		Name:         strings.TrimSpace(in.Name),
		Description:  in.Description,
		ProviderType: pt,
		UserID:       in.OwnerID,
	}
	if err := s.Repo.Create(&rest); err != nil {
		return nil, err
	}
	return &rest, nil
}
