package repositories

import (
	"context"
	"crypto-cart/models"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderRepository_AppendKeepsOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewOrderRepository(NewMemorySnapshotStore())

	empty, err := repo.FindByUser(ctx, "u1")
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	first := models.Order{ID: "ORD-A", Total: decimal.RequireFromString("12.34")}
	require.NoError(t, repo.Append(ctx, "u1", first))
	require.NoError(t, repo.Append(ctx, "u1", models.Order{ID: "ORD-B"}))

	orders, err := repo.FindByUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, "ORD-A", orders[0].ID)
	assert.True(t, first.Total.Equal(orders[0].Total))
	assert.Equal(t, "ORD-B", orders[1].ID)
}

func TestAuthStateRepository_UpdateFailureIsNotSaved(t *testing.T) {
	ctx := context.Background()
	repo := NewAuthStateRepository(NewMemorySnapshotStore())

	_, err := repo.Update(ctx, "s", func(state *models.AuthSnapshot) error {
		state.Addresses = append(state.Addresses, models.Address{City: "Paris"})
		return nil
	})
	require.NoError(t, err)

	_, err = repo.Update(ctx, "s", func(state *models.AuthSnapshot) error {
		state.Addresses = nil
		return assert.AnError
	})
	assert.ErrorIs(t, err, assert.AnError)

	state, err := repo.Find(ctx, "s")
	require.NoError(t, err)
	require.Len(t, state.Addresses, 1)
	assert.Equal(t, "Paris", state.Addresses[0].City)
}
