package repository

import (
	"path/filepath"
	"sync"
	"testing"

	"backend/entity"
	"backend/pkg/apperr"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&entity.User{}, &entity.Restaurant{}, &entity.FoodItem{},
		&entity.Cart{}, &entity.CartItem{},
		&entity.Order{}, &entity.OrderItem{},
	))
	return db
}

func seedFood(t *testing.T, db *gorm.DB, stock int) *entity.FoodItem {
	f := entity.FoodItem{
		Name:     "Fried Rice",
		Category: entity.CategoryLunch,
		Price:    decimal.NewFromInt(50),
		Stock:    stock,
	}
	require.NoError(t, db.Create(&f).Error)
	return &f
}

func stockOf(t *testing.T, db *gorm.DB, id uint) int {
	var f entity.FoodItem
	require.NoError(t, db.First(&f, id).Error)
	return f.Stock
}

func TestReserve_DecrementsStock(t *testing.T) {
	db := setupTestDB(t)
	repo := NewFoodRepository(db)
	f := seedFood(t, db, 10)

	require.NoError(t, repo.Reserve(db, f.ID, 3))
	assert.Equal(t, 7, stockOf(t, db, f.ID))
}

func TestReserve_InsufficientStock(t *testing.T) {
	db := setupTestDB(t)
	repo := NewFoodRepository(db)
	f := seedFood(t, db, 2)

	err := repo.Reserve(db, f.ID, 3)
	require.Error(t, err)
	assert.Equal(t, apperr.CodeInsufficientStock, apperr.CodeOf(err))
	assert.Equal(t, 2, stockOf(t, db, f.ID), "failed reservation must not change stock")
}

func TestReserve_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewFoodRepository(db)

	err := repo.Reserve(db, 999, 1)
	require.Error(t, err)
	assert.Equal(t, apperr.CodeNotFound, apperr.CodeOf(err))
}

func TestReserve_ExhaustsExactly(t *testing.T) {
	db := setupTestDB(t)
	repo := NewFoodRepository(db)
	f := seedFood(t, db, 5)

	for i := 0; i < 5; i++ {
		require.NoError(t, repo.Reserve(db, f.ID, 1))
	}
	err := repo.Reserve(db, f.ID, 1)
	assert.Equal(t, apperr.CodeInsufficientStock, apperr.CodeOf(err))
	assert.Equal(t, 0, stockOf(t, db, f.ID))
}

func TestRelease_CreditsStock(t *testing.T) {
	db := setupTestDB(t)
	repo := NewFoodRepository(db)
	f := seedFood(t, db, 1)

	require.NoError(t, repo.Release(db, f.ID, 4))
	assert.Equal(t, 5, stockOf(t, db, f.ID))
}

func TestRelease_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewFoodRepository(db)

	err := repo.Release(db, 999, 1)
	assert.Equal(t, apperr.CodeNotFound, apperr.CodeOf(err))
}

// Concurrent reservations for more units than exist: only the ones that fit
// succeed and stock never goes negative. Uses a file-backed database so the
// goroutines really contend.
func TestReserve_ConcurrentNeverOversells(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "stock.db") + "?_busy_timeout=5000"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entity.User{}, &entity.Restaurant{}, &entity.FoodItem{},
		&entity.Cart{}, &entity.CartItem{},
		&entity.Order{}, &entity.OrderItem{},
	))

	repo := NewFoodRepository(db)
	f := seedFood(t, db, 5)

	const workers = 8
	var wg sync.WaitGroup
	results := make([]error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = repo.Reserve(db, f.ID, 1)
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range results {
		if err == nil {
			succeeded++
		} else {
			assert.Equal(t, apperr.CodeInsufficientStock, apperr.CodeOf(err))
		}
	}
	assert.Equal(t, 5, succeeded)
	assert.Equal(t, 0, stockOf(t, db, f.ID))
}
