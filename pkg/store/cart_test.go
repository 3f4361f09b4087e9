package store_test

import (
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mlefevre/boutique-api/pkg/models"
	"github.com/mlefevre/boutique-api/pkg/store"
)

func intPtr(v int) *int { return &v }

func TestCartsUpsertSemantics(t *testing.T) {
	carts := store.NewCarts()
	userID := gofakeit.Username()

	// First add without a quantity starts at 1.
	item := carts.UpsertItem(userID, "plante", nil)
	assert.Equal(t, models.CartItem{ProductID: "plante", Quantity: 1}, item)

	// A second add without a quantity increments.
	item = carts.UpsertItem(userID, "plante", nil)
	assert.Equal(t, 2, item.Quantity)

	// An explicit quantity replaces, it does not add.
	item = carts.UpsertItem(userID, "plante", intPtr(5))
	assert.Equal(t, 5, item.Quantity)

	items := carts.Items(userID)
	require.Len(t, items, 1)
	assert.Equal(t, 5, items[0].Quantity)
}

func TestCartsUpsertNewItemWithQuantity(t *testing.T) {
	carts := store.NewCarts()

	item := carts.UpsertItem("alice", "panier", intPtr(3))
	assert.Equal(t, models.CartItem{ProductID: "panier", Quantity: 3}, item)
}

func TestCartsLazyCreationAndOrdering(t *testing.T) {
	carts := store.NewCarts()

	// No cart yet: reads answer an empty sequence, never an error.
	assert.Empty(t, carts.Items("alice"))

	carts.UpsertItem("alice", "plante", nil)
	carts.UpsertItem("alice", "panier", nil)
	carts.UpsertItem("alice", "pomme", nil)

	items := carts.Items("alice")
	require.Len(t, items, 3)
	assert.Equal(t, "plante", items[0].ProductID)
	assert.Equal(t, "panier", items[1].ProductID)
	assert.Equal(t, "pomme", items[2].ProductID)
}

func TestCartsRemoveItemIsIdempotent(t *testing.T) {
	carts := store.NewCarts()
	carts.UpsertItem("alice", "plante", nil)
	carts.UpsertItem("alice", "panier", nil)

	carts.RemoveItem("alice", "plante")
	items := carts.Items("alice")
	require.Len(t, items, 1)
	assert.Equal(t, "panier", items[0].ProductID)

	// Absent item and absent cart are both no-ops.
	carts.RemoveItem("alice", "plante")
	carts.RemoveItem("nobody", "plante")
	assert.Len(t, carts.Items("alice"), 1)
}

func TestCartsClear(t *testing.T) {
	carts := store.NewCarts()
	carts.UpsertItem("alice", "plante", intPtr(2))

	carts.Clear("alice")
	assert.Empty(t, carts.Items("alice"))

	// Clearing a missing cart is a no-op.
	carts.Clear("alice")
}

func TestCartsItemsReturnsACopy(t *testing.T) {
	carts := store.NewCarts()
	carts.UpsertItem("alice", "plante", nil)

	items := carts.Items("alice")
	items[0].Quantity = 99

	fresh := carts.Items("alice")
	assert.Equal(t, 1, fresh[0].Quantity)
}
