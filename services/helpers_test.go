package services

import (
	"path/filepath"
	"testing"

	"backend/entity"
	"backend/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type testEnv struct {
	db      *gorm.DB
	cart    *CartService
	order   *OrderService
	catalog *CatalogService
}

func setupEnv(t *testing.T) *testEnv {
	return setupEnvAt(t, ":memory:")
}

// setupEnvFile backs the environment with a file so concurrent goroutines
// share one database and really contend on it.
func setupEnvFile(t *testing.T) *testEnv {
	return setupEnvAt(t, filepath.Join(t.TempDir(), "app.db")+"?_busy_timeout=5000")
}

func setupEnvAt(t *testing.T, dsn string) *testEnv {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entity.User{}, &entity.Restaurant{}, &entity.FoodItem{},
		&entity.Cart{}, &entity.CartItem{},
		&entity.Order{}, &entity.OrderItem{},
	))

	foodRepo := repository.NewFoodRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	restRepo := repository.NewRestaurantRepository(db)

	locks := NewUserLocks()
	log := zap.NewNop()

	return &testEnv{
		db:      db,
		cart:    NewCartService(db, cartRepo, foodRepo, locks, log),
		order:   NewOrderService(db, orderRepo, cartRepo, restRepo, locks, log),
		catalog: NewCatalogService(db, foodRepo, restRepo, log),
	}
}

func (e *testEnv) user(t *testing.T, username, role string) *entity.User {
	u := entity.User{Username: username, Password: "x", Role: role}
	require.NoError(t, e.db.Create(&u).Error)
	return &u
}

func (e *testEnv) restaurant(t *testing.T, name string, ownerID uint) *entity.Restaurant {
	r := entity.Restaurant{Name: name, ProviderType: "university", UserID: ownerID}
	require.NoError(t, e.db.Create(&r).Error)
	return &r
}

func (e *testEnv) food(t *testing.T, name string, price int64, stock int, restaurantID uint) *entity.FoodItem {
	f := entity.FoodItem{
		Name:         name,
		Category:     entity.CategoryLunch,
		Price:        decimal.NewFromInt(price),
		Stock:        stock,
		RestaurantID: restaurantID,
	}
	require.NoError(t, e.db.Create(&f).Error)
	return &f
}

func (e *testEnv) stockOf(t *testing.T, id uint) int {
	var f entity.FoodItem
	require.NoError(t, e.db.First(&f, id).Error)
	return f.Stock
}

func placeReq() *PlaceOrderReq {
	return &PlaceOrderReq{
		Name:          "Somchai",
		Location:      "Dorm A, Room 101",
		PaymentMethod: "promptpay",
		TransactionID: "txn-123",
	}
}
