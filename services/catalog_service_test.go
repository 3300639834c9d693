package services

import (
	"testing"

	"backend/entity"
	"backend/pkg/apperr"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogCreate_InvalidCategory(t *testing.T) {
	env := setupEnv(t)
	admin := env.user(t, "admin", "admin")

	_, err := env.catalog.Create(&CreateFoodReq{
		Name:         "Mystery Meal",
		Category:     "midnight",
		Price:        decimal.NewFromInt(10),
		RestaurantID: 1,
	}, admin.ID, admin.Role)
	assert.Equal(t, apperr.CodeInvalidArgument, apperr.CodeOf(err))
}

func TestCatalogCreate_OwnerOnly(t *testing.T) {
	env := setupEnv(t)
	owner := env.user(t, "owner", "owner")
	stranger := env.user(t, "stranger", "owner")
	rest := env.restaurant(t, "Canteen", owner.ID)

	req := &CreateFoodReq{
		Name:         "Fried Rice",
		Category:     "lunch",
		Price:        decimal.NewFromInt(50),
		Stock:        5,
		RestaurantID: rest.ID,
	}

	_, err := env.catalog.Create(req, stranger.ID, stranger.Role)
	assert.Equal(t, apperr.CodeUnauthorized, apperr.CodeOf(err))

	f, err := env.catalog.Create(req, owner.ID, owner.Role)
	require.NoError(t, err)
	assert.Equal(t, entity.CategoryLunch, f.Category)
	assert.Equal(t, 5, f.Stock)
}

func TestCatalogList_Filters(t *testing.T) {
	env := setupEnv(t)
	env.food(t, "Fried Rice", 50, 10, 0)
	b := env.food(t, "Pancakes", 35, 10, 0)
	require.NoError(t, env.db.Model(b).Update("category", entity.CategoryMorning).Error)

	morning, err := env.catalog.List("morning", "")
	require.NoError(t, err)
	require.Len(t, morning, 1)
	assert.Equal(t, "Pancakes", morning[0].Name)

	byName, err := env.catalog.List("", "rice")
	require.NoError(t, err)
	require.Len(t, byName, 1)
	assert.Equal(t, "Fried Rice", byName[0].Name)

	unknown, err := env.catalog.List("midnight", "")
	require.NoError(t, err)
	assert.Empty(t, unknown)
}

func TestCatalogUpdate_Whitelist(t *testing.T) {
	env := setupEnv(t)
	admin := env.user(t, "admin", "admin")
	f := env.food(t, "Fried Rice", 50, 10, 0)

	newPrice := decimal.NewFromInt(60)
	name := "Special Fried Rice"
	updated, err := env.catalog.Update(f.ID, &FoodItemUpdate{Name: &name, Price: &newPrice}, admin.ID, admin.Role)
	require.NoError(t, err)
	assert.Equal(t, "Special Fried Rice", updated.Name)
	assert.True(t, updated.Price.Equal(newPrice))
	assert.Equal(t, 10, updated.Stock, "unlisted fields stay put")
}

func TestCatalogUpdate_StockIsAbsoluteOverride(t *testing.T) {
	env := setupEnv(t)
	admin := env.user(t, "admin", "admin")
	alice := env.user(t, "alice", "student")
	f := env.food(t, "Fried Rice", 50, 10, 0)

	_, err := env.cart.AddItem(alice.ID, f.ID, 3)
	require.NoError(t, err)
	require.Equal(t, 7, env.stockOf(t, f.ID))

	// A restock sets the count outright; it does not add to the ledger.
	restock := 50
	updated, err := env.catalog.Update(f.ID, &FoodItemUpdate{Stock: &restock}, admin.ID, admin.Role)
	require.NoError(t, err)
	assert.Equal(t, 50, updated.Stock)
	assert.Equal(t, 50, env.stockOf(t, f.ID))
}

func TestCatalogUpdate_NegativePrice(t *testing.T) {
	env := setupEnv(t)
	admin := env.user(t, "admin", "admin")
	f := env.food(t, "Fried Rice", 50, 10, 0)

	bad := decimal.NewFromInt(-1)
	_, err := env.catalog.Update(f.ID, &FoodItemUpdate{Price: &bad}, admin.ID, admin.Role)
	assert.Equal(t, apperr.CodeInvalidArgument, apperr.CodeOf(err))
}

func TestCatalogDelete_RejectedWhenOrdered(t *testing.T) {
	env := setupEnv(t)
	admin := env.user(t, "admin", "admin")
	alice := env.user(t, "alice", "student")
	f := env.food(t, "Fried Rice", 50, 10, 0)

	_, err := env.cart.AddItem(alice.ID, f.ID, 1)
	require.NoError(t, err)
	_, err = env.order.PlaceOrder(alice.ID, placeReq())
	require.NoError(t, err)

	err = env.catalog.Delete(f.ID, admin.ID, admin.Role)
	assert.Equal(t, apperr.CodeConflict, apperr.CodeOf(err))

	var count int64
	env.db.Model(&entity.FoodItem{}).Where("id = ?", f.ID).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestCatalogDelete_RejectedWhenReserved(t *testing.T) {
	env := setupEnv(t)
	admin := env.user(t, "admin", "admin")
	alice := env.user(t, "alice", "student")
	f := env.food(t, "Fried Rice", 50, 10, 0)

	_, err := env.cart.AddItem(alice.ID, f.ID, 1)
	require.NoError(t, err)

	err = env.catalog.Delete(f.ID, admin.ID, admin.Role)
	assert.Equal(t, apperr.CodeConflict, apperr.CodeOf(err))
}

func TestCatalogDelete_Unreferenced(t *testing.T) {
	env := setupEnv(t)
	admin := env.user(t, "admin", "admin")
	f := env.food(t, "Fried Rice", 50, 10, 0)

	require.NoError(t, env.catalog.Delete(f.ID, admin.ID, admin.Role))

	_, err := env.catalog.Get(f.ID)
	assert.Equal(t, apperr.CodeNotFound, apperr.CodeOf(err))
}
