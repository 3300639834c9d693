package services

import (
	"errors"
	"strings"

	"backend/entity"
	"backend/pkg/apperr"
	"backend/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type OrderService struct {
	DB       *gorm.DB
	Repo     *repository.OrderRepository
	CartRepo *repository.CartRepository
	RestRepo *repository.RestaurantRepository

	locks *UserLocks
	log   *zap.Logger
}

func NewOrderService(
	db *gorm.DB,
	repo *repository.OrderRepository,
	cartRepo *repository.CartRepository,
	restRepo *repository.RestaurantRepository,
	locks *UserLocks,
	log *zap.Logger,
) *OrderService {
	if locks == nil {
		locks = NewUserLocks()
	}
	return &OrderService{DB: db, Repo: repo, CartRepo: cartRepo, RestRepo: restRepo, locks: locks, log: log}
}

type PlaceOrderReq struct {
	Name          string `json:"name" binding:"required"`
	Location      string `json:"location" binding:"required"`
	PaymentMethod string `json:"paymentMethod" binding:"required"`
	TransactionID string `json:"transactionId" binding:"required"`
}

type PlaceOrderRes struct {
	ID          uint               `json:"id"`
	Number      string             `json:"number"`
	TotalAmount decimal.Decimal    `json:"totalAmount"`
	Status      entity.OrderStatus `json:"status"`
}

// PlaceOrder converts the user's cart into an order. Reading the cart,
// creating the order and emptying the cart are one unit of work: if
// anything fails the cart keeps its lines and stock stays reserved.
func (s *OrderService) PlaceOrder(userID uint, in *PlaceOrderReq) (*PlaceOrderRes, error) {
	if strings.TrimSpace(in.Name) == "" ||
		strings.TrimSpace(in.Location) == "" ||
		strings.TrimSpace(in.PaymentMethod) == "" ||
		strings.TrimSpace(in.TransactionID) == "" {
		return nil, apperr.New(apperr.CodeInvalidArgument, "all payment details are required")
	}

	unlock := s.locks.Lock(userID)
	defer unlock()

	var out PlaceOrderRes
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		cart, err := s.CartRepo.GetWithItems(tx, userID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.ErrEmptyCart
		}
		if err != nil {
			return err
		}
		if len(cart.Items) == 0 {
			return apperr.ErrEmptyCart
		}

		total := decimal.Zero
		items := make([]entity.OrderItem, 0, len(cart.Items))
		for _, it := range cart.Items {
			line := it.FoodItem.Price.Mul(decimal.NewFromInt(int64(it.Quantity)))
			total = total.Add(line)
			items = append(items, entity.OrderItem{
				FoodItemID: it.FoodItemID,
				FoodName:   it.FoodItem.Name,
				UnitPrice:  it.FoodItem.Price,
				Quantity:   it.Quantity,
			})
		}

		order := entity.Order{
			Number:        uuid.NewString(),
			UserID:        userID,
			Name:          strings.TrimSpace(in.Name),
			Location:      strings.TrimSpace(in.Location),
			PaymentMethod: strings.TrimSpace(in.PaymentMethod),
			TransactionID: strings.TrimSpace(in.TransactionID),
			Status:        entity.StatusPending,
			TotalAmount:   total,
			Items:         items,
		}
		if err := s.Repo.Create(tx, &order); err != nil {
			return err
		}

		// The cart is emptied without releasing stock: the reservations
		// now belong to the order. A removed-lines count that differs from
		// what we read means another checkout raced us.
		removed, err := s.CartRepo.DeleteAllItems(tx, cart.ID)
		if err != nil {
			return err
		}
		if removed != int64(len(cart.Items)) {
			return apperr.New(apperr.CodeConflict, "cart changed during checkout")
		}

		out = PlaceOrderRes{ID: order.ID, Number: order.Number, TotalAmount: order.TotalAmount, Status: order.Status}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("order placed",
		zap.Uint("userId", userID),
		zap.Uint("orderId", out.ID),
		zap.String("total", out.TotalAmount.String()))
	return &out, nil
}

// History returns the user's orders, newest first.
func (s *OrderService) History(userID uint) ([]entity.Order, error) {
	return s.Repo.ListForUser(userID)
}

// StatusForUser returns the status of an order owned by the user.
func (s *OrderService) StatusForUser(userID, orderID uint) (entity.OrderStatus, error) {
	o, err := s.Repo.GetForUser(userID, orderID)
	if err != nil {
		return "", err
	}
	return o.Status, nil
}

// UpdateStatus moves an order to newStatus. The actor must be the owning
// user, the owner of a restaurant with items in the order, or an admin.
// Transitions are permissive among the six recognized statuses.
func (s *OrderService) UpdateStatus(orderID uint, newStatus entity.OrderStatus, actorID uint, actorRole string) (*entity.Order, error) {
	if !newStatus.Valid() {
		return nil, apperr.Newf(apperr.CodeInvalidArgument, "unrecognized status %q", newStatus)
	}

	o, err := s.Repo.GetByID(orderID)
	if err != nil {
		return nil, err
	}

	allowed := actorRole == entity.RoleAdmin || o.UserID == actorID
	if !allowed {
		owns, err := s.Repo.OrderTouchesRestaurantOf(orderID, actorID)
		if err != nil {
			return nil, err
		}
		allowed = owns
	}
	if !allowed {
		return nil, apperr.ErrUnauthorized
	}

	if err := s.Repo.UpdateStatus(s.DB, orderID, newStatus); err != nil {
		return nil, err
	}

	s.log.Info("order status changed",
		zap.Uint("orderId", orderID),
		zap.String("from", string(o.Status)),
		zap.String("to", string(newStatus)),
		zap.Uint("actorId", actorID))

	return s.Repo.GetByID(orderID)
}

// ListAll returns every order, newest first. Admin use.
func (s *OrderService) ListAll() ([]entity.Order, error) {
	return s.Repo.ListAll()
}

// ListForRestaurant returns orders touching the restaurant. The actor must
// own the restaurant or be an admin.
func (s *OrderService) ListForRestaurant(restaurantID, actorID uint, actorRole string) ([]entity.Order, error) {
	if actorRole != entity.RoleAdmin {
		owns, err := s.RestRepo.IsOwnedBy(restaurantID, actorID)
		if err != nil {
			return nil, err
		}
		if !owns {
			return nil, apperr.ErrUnauthorized
		}
	}
	return s.Repo.ListForRestaurant(restaurantID)
}
