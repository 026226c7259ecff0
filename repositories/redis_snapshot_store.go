package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisSnapshotStore keeps snapshots as JSON strings under
// "<namespace>:<key>". A zero ttl keeps them forever.
type RedisSnapshotStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisSnapshotStore(client *redis.Client, ttl time.Duration) *RedisSnapshotStore {
	return &RedisSnapshotStore{client: client, ttl: ttl}
}

func (s *RedisSnapshotStore) Load(ctx context.Context, namespace, key string, dest interface{}) (bool, error) {
	raw, err := s.client.Get(ctx, snapshotKey(namespace, key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read snapshot from redis: %w", err)
	}

	if err := json.Unmarshal(raw, dest); err != nil {
		return false, fmt.Errorf("failed to decode snapshot %s: %w", snapshotKey(namespace, key), err)
	}
	return true, nil
}

func (s *RedisSnapshotStore) Save(ctx context.Context, namespace, key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot %s: %w", snapshotKey(namespace, key), err)
	}

	if err := s.client.Set(ctx, snapshotKey(namespace, key), raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write snapshot to redis: %w", err)
	}
	return nil
}

func (s *RedisSnapshotStore) Delete(ctx context.Context, namespace, key string) error {
	if err := s.client.Del(ctx, snapshotKey(namespace, key)).Err(); err != nil {
		return fmt.Errorf("failed to delete snapshot from redis: %w", err)
	}
	return nil
}

func (s *RedisSnapshotStore) Close() error {
	return s.client.Close()
}
