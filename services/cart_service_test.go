package services

import (
	"testing"

	"backend/pkg/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartGet_CreatesLazily(t *testing.T) {
	env := setupEnv(t)
	u := env.user(t, "alice", "student")

	cart, err := env.cart.Get(u.ID)
	require.NoError(t, err)
	assert.Equal(t, u.ID, cart.UserID)
	assert.Empty(t, cart.Items)

	again, err := env.cart.Get(u.ID)
	require.NoError(t, err)
	assert.Equal(t, cart.ID, again.ID, "one cart per user")
}

func TestAddItem_ReservesStock(t *testing.T) {
	env := setupEnv(t)
	u := env.user(t, "alice", "student")
	f := env.food(t, "Fried Rice", 50, 10, 0)

	cart, err := env.cart.AddItem(u.ID, f.ID, 3)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 3, cart.Items[0].Quantity)
	assert.Equal(t, 7, env.stockOf(t, f.ID))
}

func TestAddItem_MergesExistingLine(t *testing.T) {
	env := setupEnv(t)
	u := env.user(t, "alice", "student")
	f := env.food(t, "Fried Rice", 50, 10, 0)

	_, err := env.cart.AddItem(u.ID, f.ID, 2)
	require.NoError(t, err)
	cart, err := env.cart.AddItem(u.ID, f.ID, 3)
	require.NoError(t, err)

	require.Len(t, cart.Items, 1, "same food item stays one line")
	assert.Equal(t, 5, cart.Items[0].Quantity)
	assert.Equal(t, 5, env.stockOf(t, f.ID))
}

func TestAddItem_QuantityBelowOne(t *testing.T) {
	env := setupEnv(t)
	u := env.user(t, "alice", "student")
	f := env.food(t, "Fried Rice", 50, 10, 0)

	_, err := env.cart.AddItem(u.ID, f.ID, 0)
	assert.Equal(t, apperr.CodeInvalidArgument, apperr.CodeOf(err))
	assert.Equal(t, 10, env.stockOf(t, f.ID))
}

func TestAddItem_InsufficientStockLeavesCartUnchanged(t *testing.T) {
	env := setupEnv(t)
	u := env.user(t, "alice", "student")
	f := env.food(t, "Fried Rice", 50, 2, 0)

	_, err := env.cart.AddItem(u.ID, f.ID, 5)
	assert.Equal(t, apperr.CodeInsufficientStock, apperr.CodeOf(err))

	cart, err := env.cart.Get(u.ID)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
	assert.Equal(t, 2, env.stockOf(t, f.ID))
}

func TestAddItem_UnknownFood(t *testing.T) {
	env := setupEnv(t)
	u := env.user(t, "alice", "student")

	_, err := env.cart.AddItem(u.ID, 999, 1)
	assert.Equal(t, apperr.CodeNotFound, apperr.CodeOf(err))
}

// Add then remove for the same item restores stock and cart to their prior
// state.
func TestAddRemove_RoundTrip(t *testing.T) {
	env := setupEnv(t)
	u := env.user(t, "alice", "student")
	f := env.food(t, "Fried Rice", 50, 10, 0)

	_, err := env.cart.AddItem(u.ID, f.ID, 4)
	require.NoError(t, err)
	cart, err := env.cart.RemoveItem(u.ID, f.ID)
	require.NoError(t, err)

	assert.Empty(t, cart.Items)
	assert.Equal(t, 10, env.stockOf(t, f.ID))
}

func TestRemoveItem_MissingLineIsNoop(t *testing.T) {
	env := setupEnv(t)
	u := env.user(t, "alice", "student")
	f := env.food(t, "Fried Rice", 50, 10, 0)

	_, err := env.cart.AddItem(u.ID, f.ID, 1)
	require.NoError(t, err)

	cart, err := env.cart.RemoveItem(u.ID, 999)
	require.NoError(t, err)
	assert.Len(t, cart.Items, 1)
}

func TestRemoveItem_NoCart(t *testing.T) {
	env := setupEnv(t)
	u := env.user(t, "alice", "student")

	_, err := env.cart.RemoveItem(u.ID, 1)
	assert.Equal(t, apperr.CodeNotFound, apperr.CodeOf(err))
}

func TestClear_ReleasesEveryReservation(t *testing.T) {
	env := setupEnv(t)
	u := env.user(t, "alice", "student")
	a := env.food(t, "Fried Rice", 50, 10, 0)
	b := env.food(t, "Noodles", 30, 8, 0)

	_, err := env.cart.AddItem(u.ID, a.ID, 2)
	require.NoError(t, err)
	_, err = env.cart.AddItem(u.ID, b.ID, 5)
	require.NoError(t, err)

	cart, err := env.cart.Clear(u.ID)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
	assert.Equal(t, 10, env.stockOf(t, a.ID))
	assert.Equal(t, 8, env.stockOf(t, b.ID))
}

func TestCarts_AreIndependentAcrossUsers(t *testing.T) {
	env := setupEnv(t)
	alice := env.user(t, "alice", "student")
	bob := env.user(t, "bob", "student")
	f := env.food(t, "Fried Rice", 50, 10, 0)

	_, err := env.cart.AddItem(alice.ID, f.ID, 2)
	require.NoError(t, err)
	_, err = env.cart.AddItem(bob.ID, f.ID, 3)
	require.NoError(t, err)

	aCart, err := env.cart.Get(alice.ID)
	require.NoError(t, err)
	bCart, err := env.cart.Get(bob.ID)
	require.NoError(t, err)

	assert.Equal(t, 2, aCart.Items[0].Quantity)
	assert.Equal(t, 3, bCart.Items[0].Quantity)
	assert.Equal(t, 5, env.stockOf(t, f.ID))
}
