package sqlitekv

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/lilad25/intranet-portal/internal/apperrors"
	"github.com/lilad25/intranet-portal/internal/core/domain"
)

// SnapshotKey is the fixed key the whole root container is persisted under.
const SnapshotKey = "portal_state_v1"

// Repository persists the portal state as rows of a single key-value table in
// an embedded sqlite database. The snapshot is one JSON document under a fixed
// key; markers are plain string rows. Every save is a single-row upsert, so
// writes are atomic and the last one wins.
type Repository struct {
	db *sql.DB
}

// New opens (or creates) the sqlite database at path and ensures the kv table
// exists.
func New(path string) (*Repository, error) {
	dsn := path + "?_journal=WAL&_busy_timeout=5000"
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	db.SetMaxOpenConns(5)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Minute * 5)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping sqlite database: %w", err)
	}

	createKVTable := `
	CREATE TABLE IF NOT EXISTS kv (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);
	`
	if _, err := db.Exec(createKVTable); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create kv table: %w", err)
	}

	return &Repository{db: db}, nil
}

// Close releases the underlying database handle.
func (r *Repository) Close() error {
	return r.db.Close()
}

// LoadSnapshot reads and decodes the snapshot blob. It returns
// apperrors.ErrNotFound when nothing has been persisted yet and a decode error
// when the stored blob is corrupt; callers reseed in both cases.
func (r *Repository) LoadSnapshot(ctx context.Context) (*domain.Snapshot, error) {
	raw, err := r.get(ctx, SnapshotKey)
	if err != nil {
		return nil, err
	}

	var snap domain.Snapshot
	if err := json.Unmarshal([]byte(raw), &snap); err != nil {
		return nil, fmt.Errorf("failed to decode persisted snapshot: %w", err)
	}
	return &snap, nil
}

// SaveSnapshot serializes the whole snapshot and upserts it under the fixed
// key in one statement.
func (r *Repository) SaveSnapshot(ctx context.Context, snap *domain.Snapshot) error {
	raw, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return r.set(ctx, SnapshotKey, string(raw))
}

// GetMarker returns the stored scalar, or apperrors.ErrNotFound.
func (r *Repository) GetMarker(ctx context.Context, key string) (string, error) {
	return r.get(ctx, key)
}

// SetMarker stores the scalar, replacing any previous value.
func (r *Repository) SetMarker(ctx context.Context, key, value string) error {
	return r.set(ctx, key, value)
}

// ClearMarker removes the scalar. Clearing an absent marker is not an error.
func (r *Repository) ClearMarker(ctx context.Context, key string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM kv WHERE key = ?`, key)
	if err != nil {
		return fmt.Errorf("failed to clear marker %q: %w", key, err)
	}
	return nil
}

func (r *Repository) get(ctx context.Context, key string) (string, error) {
	var value string
	err := r.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", apperrors.ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to read key %q: %w", key, err)
	}
	return value, nil
}

func (r *Repository) set(ctx context.Context, key, value string) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO kv (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("failed to write key %q: %w", key, err)
	}
	return nil
}
