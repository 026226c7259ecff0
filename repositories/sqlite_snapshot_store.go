package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS snapshots (
    namespace    TEXT    NOT NULL,
    snapshot_key TEXT    NOT NULL,
    payload      TEXT    NOT NULL,
    updated_at   INTEGER NOT NULL,
    PRIMARY KEY (namespace, snapshot_key)
)`

type SQLiteSnapshotStore struct {
	db *sql.DB
}

// OpenSQLiteSnapshotStore opens (creating if needed) the database at path
// and ensures the snapshots table exists.
func OpenSQLiteSnapshotStore(path string) (*SQLiteSnapshotStore, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("sqlite path is required")
	}

	dsn := filepath.Clean(path) + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite db: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping sqlite db: %w", err)
	}
	if _, err := db.Exec(sqliteSchema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create snapshots table: %w", err)
	}

	return &SQLiteSnapshotStore{db: db}, nil
}

func (s *SQLiteSnapshotStore) Load(ctx context.Context, namespace, key string, dest interface{}) (bool, error) {
	var raw string
	err := s.db.QueryRowContext(ctx,
		"SELECT payload FROM snapshots WHERE namespace = ? AND snapshot_key = ?",
		namespace, key).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read snapshot: %w", err)
	}

	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		return false, fmt.Errorf("failed to decode snapshot %s: %w", snapshotKey(namespace, key), err)
	}
	return true, nil
}

func (s *SQLiteSnapshotStore) Save(ctx context.Context, namespace, key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot %s: %w", snapshotKey(namespace, key), err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO snapshots (namespace, snapshot_key, payload, updated_at) VALUES (?, ?, ?, ?)
		ON CONFLICT (namespace, snapshot_key) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at`,
		namespace, key, string(raw), time.Now().UTC().UnixMilli())
	if err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	return nil
}

func (s *SQLiteSnapshotStore) Delete(ctx context.Context, namespace, key string) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM snapshots WHERE namespace = ? AND snapshot_key = ?", namespace, key); err != nil {
		return fmt.Errorf("failed to delete snapshot: %w", err)
	}
	return nil
}

func (s *SQLiteSnapshotStore) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
