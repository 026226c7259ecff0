package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
)

const (
	NamespaceCart   = "cart-storage"
	NamespaceAuth   = "auth-storage"
	NamespaceOrders = "orders-storage"
)

// SnapshotStore persists JSON snapshots under a namespace and key. Load
// reports false when nothing has been saved yet.
type SnapshotStore interface {
	Load(ctx context.Context, namespace, key string, dest interface{}) (bool, error)
	Save(ctx context.Context, namespace, key string, value interface{}) error
	Delete(ctx context.Context, namespace, key string) error
	Close() error
}

func snapshotKey(namespace, key string) string {
	return namespace + ":" + key
}

type MemorySnapshotStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewMemorySnapshotStore() *MemorySnapshotStore {
	return &MemorySnapshotStore{data: map[string][]byte{}}
}

func (s *MemorySnapshotStore) Load(ctx context.Context, namespace, key string, dest interface{}) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	s.mu.RLock()
	raw, ok := s.data[snapshotKey(namespace, key)]
	s.mu.RUnlock()
	if !ok {
		return false, nil
	}

	if err := json.Unmarshal(raw, dest); err != nil {
		return false, fmt.Errorf("failed to decode snapshot %s: %w", snapshotKey(namespace, key), err)
	}
	return true, nil
}

func (s *MemorySnapshotStore) Save(ctx context.Context, namespace, key string, value interface{}) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot %s: %w", snapshotKey(namespace, key), err)
	}

	s.mu.Lock()
	s.data[snapshotKey(namespace, key)] = raw
	s.mu.Unlock()
	return nil
}

func (s *MemorySnapshotStore) Delete(ctx context.Context, namespace, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	delete(s.data, snapshotKey(namespace, key))
	s.mu.Unlock()
	return nil
}

func (s *MemorySnapshotStore) Close() error {
	return nil
}
