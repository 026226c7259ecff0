package config

import (
	"context"
	"crypto-cart/repositories"
	"fmt"
	"log"
	"os"
	"path/filepath"
)

// OpenSnapshotStore builds the snapshot store selected by STORAGE_DRIVER.
// An unreachable Redis degrades to the in-memory store; the SQL drivers
// fail hard.
func OpenSnapshotStore(ctx context.Context, cfg *Config) (repositories.SnapshotStore, error) {
	switch cfg.StorageDriver {
	case StorageRedis:
		client, err := ConnectRedis(ctx, cfg)
		if err != nil {
			log.Println(err)
			log.Println("Running without redis, snapshots kept in memory")
			return repositories.NewMemorySnapshotStore(), nil
		}
		return repositories.NewRedisSnapshotStore(client, cfg.SnapshotTTL), nil

	case StoragePostgres:
		pool, err := ConnectDB(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return repositories.NewPostgresSnapshotStore(pool), nil

	case StorageSQLite:
		if err := os.MkdirAll(filepath.Dir(cfg.SQLitePath), os.ModePerm); err != nil {
			return nil, fmt.Errorf("failed to create sqlite directory: %w", err)
		}
		store, err := repositories.OpenSQLiteSnapshotStore(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		log.Printf("SQLite snapshot store at %s", cfg.SQLitePath)
		return store, nil

	default:
		return repositories.NewMemorySnapshotStore(), nil
	}
}
