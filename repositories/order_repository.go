package repositories

import (
	"context"
	"crypto-cart/models"
	"crypto-cart/utils"
	"fmt"
)

type orderHistory struct {
	Orders []models.Order `json:"orders"`
}

// OrderRepository keeps each user's order history as one snapshot in the
// orders namespace, oldest first.
type OrderRepository struct {
	store SnapshotStore
	locks *utils.KeyedMutex
}

func NewOrderRepository(store SnapshotStore) *OrderRepository {
	return &OrderRepository{store: store, locks: utils.NewKeyedMutex()}
}

func (r *OrderRepository) FindByUser(ctx context.Context, userID string) ([]models.Order, error) {
	var history orderHistory
	if _, err := r.store.Load(ctx, NamespaceOrders, userID, &history); err != nil {
		return nil, fmt.Errorf("failed to load order history: %w", err)
	}
	if history.Orders == nil {
		history.Orders = []models.Order{}
	}
	return history.Orders, nil
}

func (r *OrderRepository) Append(ctx context.Context, userID string, order models.Order) error {
	unlock := r.locks.Lock(userID)
	defer unlock()

	orders, err := r.FindByUser(ctx, userID)
	if err != nil {
		return err
	}

	orders = append(orders, order)
	if err := r.store.Save(ctx, NamespaceOrders, userID, orderHistory{Orders: orders}); err != nil {
		return fmt.Errorf("failed to save order history: %w", err)
	}
	return nil
}
