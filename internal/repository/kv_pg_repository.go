package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jengzang/velomap-backend-go/internal/favourites"
)

// PgKVRepository is the Postgres flavour of KVRepository
type PgKVRepository struct {
	pool *pgxpool.Pool
}

// NewPgKVRepository creates a key-value repository backed by a pgx pool
func NewPgKVRepository(pool *pgxpool.Pool) *PgKVRepository {
	return &PgKVRepository{pool: pool}
}

// Get returns the value stored under key, or favourites.ErrNotFound
func (r *PgKVRepository) Get(ctx context.Context, key string) ([]byte, error) {
	var value string
	err := r.pool.QueryRow(ctx, "SELECT value FROM kv_store WHERE key = $1", key).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, favourites.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get key %q: %w", key, err)
	}
	return []byte(value), nil
}

// Put overwrites the value stored under key
func (r *PgKVRepository) Put(ctx context.Context, key string, value []byte) error {
	query := `
		INSERT INTO kv_store (key, value, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE SET
			value = EXCLUDED.value,
			updated_at = NOW()
	`
	if _, err := r.pool.Exec(ctx, query, key, string(value)); err != nil {
		return fmt.Errorf("failed to put key %q: %w", key, err)
	}
	return nil
}
