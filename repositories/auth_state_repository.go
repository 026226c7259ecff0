package repositories

import (
	"context"
	"crypto-cart/models"
	"crypto-cart/utils"
	"fmt"
)

// AuthStateRepository reads and writes the auth snapshot of a session.
type AuthStateRepository struct {
	store SnapshotStore
	locks *utils.KeyedMutex
}

func NewAuthStateRepository(store SnapshotStore) *AuthStateRepository {
	return &AuthStateRepository{store: store, locks: utils.NewKeyedMutex()}
}

func (r *AuthStateRepository) Find(ctx context.Context, sessionID string) (*models.AuthSnapshot, error) {
	state := &models.AuthSnapshot{}
	if _, err := r.store.Load(ctx, NamespaceAuth, sessionID, state); err != nil {
		return nil, fmt.Errorf("failed to load auth state: %w", err)
	}
	if state.Addresses == nil {
		state.Addresses = []models.Address{}
	}
	return state, nil
}

// Update applies fn to the session's auth state and saves the result. The
// state is not saved when fn fails.
func (r *AuthStateRepository) Update(ctx context.Context, sessionID string, fn func(state *models.AuthSnapshot) error) (*models.AuthSnapshot, error) {
	unlock := r.locks.Lock(sessionID)
	defer unlock()

	state, err := r.Find(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := fn(state); err != nil {
		return nil, err
	}
	if err := r.store.Save(ctx, NamespaceAuth, sessionID, state); err != nil {
		return nil, fmt.Errorf("failed to save auth state: %w", err)
	}
	return state, nil
}
