package repositories

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

//go:embed migrations/*.sql
var MigrationsFS embed.FS

type PostgresSnapshotStore struct {
	db *pgxpool.Pool
}

func NewPostgresSnapshotStore(db *pgxpool.Pool) *PostgresSnapshotStore {
	return &PostgresSnapshotStore{db: db}
}

func (s *PostgresSnapshotStore) Load(ctx context.Context, namespace, key string, dest interface{}) (bool, error) {
	var raw []byte
	err := s.db.QueryRow(ctx,
		"SELECT payload FROM snapshots WHERE namespace=$1 AND snapshot_key=$2",
		namespace, key).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read snapshot: %w", err)
	}

	if err := json.Unmarshal(raw, dest); err != nil {
		return false, fmt.Errorf("failed to decode snapshot %s: %w", snapshotKey(namespace, key), err)
	}
	return true, nil
}

func (s *PostgresSnapshotStore) Save(ctx context.Context, namespace, key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot %s: %w", snapshotKey(namespace, key), err)
	}

	query := `
		INSERT INTO snapshots (namespace, snapshot_key, payload, updated_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (namespace, snapshot_key) DO UPDATE SET payload = EXCLUDED.payload, updated_at = NOW()
	`
	if _, err := s.db.Exec(ctx, query, namespace, key, raw); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	return nil
}

func (s *PostgresSnapshotStore) Delete(ctx context.Context, namespace, key string) error {
	if _, err := s.db.Exec(ctx, "DELETE FROM snapshots WHERE namespace=$1 AND snapshot_key=$2", namespace, key); err != nil {
		return fmt.Errorf("failed to delete snapshot: %w", err)
	}
	return nil
}

func (s *PostgresSnapshotStore) Close() error {
	s.db.Close()
	return nil
}
