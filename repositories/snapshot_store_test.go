package repositories

import (
	"context"
	"crypto-cart/models"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testSnapshotStore runs the behaviour every SnapshotStore must share.
func testSnapshotStore(t *testing.T, store SnapshotStore) {
	t.Helper()
	ctx := context.Background()

	var missing models.CartSnapshot
	found, err := store.Load(ctx, NamespaceCart, "nobody", &missing)
	require.NoError(t, err)
	assert.False(t, found)

	cart := models.CartSnapshot{Items: []models.CartSnapshotLine{{ProductID: "1", Quantity: 2}}}
	require.NoError(t, store.Save(ctx, NamespaceCart, "s1", cart))

	var loaded models.CartSnapshot
	found, err = store.Load(ctx, NamespaceCart, "s1", &loaded)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, cart, loaded)

	// same key, different namespace
	found, err = store.Load(ctx, NamespaceAuth, "s1", &models.AuthSnapshot{})
	require.NoError(t, err)
	assert.False(t, found)

	cart.Items = append(cart.Items, models.CartSnapshotLine{ProductID: "7", Quantity: 1})
	require.NoError(t, store.Save(ctx, NamespaceCart, "s1", cart))
	loaded = models.CartSnapshot{}
	_, err = store.Load(ctx, NamespaceCart, "s1", &loaded)
	require.NoError(t, err)
	assert.Len(t, loaded.Items, 2)

	require.NoError(t, store.Delete(ctx, NamespaceCart, "s1"))
	found, err = store.Load(ctx, NamespaceCart, "s1", &loaded)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, store.Delete(ctx, NamespaceCart, "never-saved"))
}

func TestMemorySnapshotStore(t *testing.T) {
	testSnapshotStore(t, NewMemorySnapshotStore())
}

func TestMemorySnapshotStore_CanceledContext(t *testing.T) {
	store := NewMemorySnapshotStore()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, store.Save(ctx, NamespaceCart, "s", models.CartSnapshot{}), context.Canceled)
	_, err := store.Load(ctx, NamespaceCart, "s", &models.CartSnapshot{})
	assert.ErrorIs(t, err, context.Canceled)
}
