package config

import (
	"context"
	"crypto-cart/repositories"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenSnapshotStore_Memory(t *testing.T) {
	store, err := OpenSnapshotStore(context.Background(), &Config{StorageDriver: StorageMemory})
	require.NoError(t, err)
	defer store.Close()

	assert.IsType(t, &repositories.MemorySnapshotStore{}, store)
}

func TestOpenSnapshotStore_SQLiteCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "cart.db")

	store, err := OpenSnapshotStore(context.Background(), &Config{StorageDriver: StorageSQLite, SQLitePath: path})
	require.NoError(t, err)
	defer store.Close()

	assert.IsType(t, &repositories.SQLiteSnapshotStore{}, store)
	assert.FileExists(t, path)
}

func TestOpenSnapshotStore_Redis(t *testing.T) {
	mr := miniredis.RunT(t)

	store, err := OpenSnapshotStore(context.Background(), &Config{StorageDriver: StorageRedis, RedisAddr: mr.Addr()})
	require.NoError(t, err)
	defer store.Close()

	assert.IsType(t, &repositories.RedisSnapshotStore{}, store)
}

func TestOpenSnapshotStore_RedisDownFallsBackToMemory(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	store, err := OpenSnapshotStore(context.Background(), &Config{StorageDriver: StorageRedis, RedisAddr: addr})
	require.NoError(t, err)
	defer store.Close()

	assert.IsType(t, &repositories.MemorySnapshotStore{}, store)
}

func TestConnectRedis_BadURL(t *testing.T) {
	_, err := ConnectRedis(context.Background(), &Config{RedisURL: "::not a url"})
	assert.Error(t, err)
}
