package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStore keeps slots in a single key-value table.
type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(pool *pgxpool.Pool) (*PostgresStore, error) {
	_, err := pool.Exec(context.Background(),
		"CREATE TABLE IF NOT EXISTS cart_slots (key TEXT PRIMARY KEY, value TEXT NOT NULL)")
	if err != nil {
		return nil, fmt.Errorf("create cart_slots table failed: %w", err)
	}
	return &PostgresStore{pool: pool}, nil
}

func (p *PostgresStore) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := p.pool.QueryRow(ctx, "SELECT value FROM cart_slots WHERE key=$1", key).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", ErrSlotNotFound
	}
	if err != nil {
		return "", fmt.Errorf("select slot failed: %w", err)
	}
	return value, nil
}

func (p *PostgresStore) Set(ctx context.Context, key, value string) error {
	_, err := p.pool.Exec(ctx,
		"INSERT INTO cart_slots (key, value) VALUES ($1, $2) ON CONFLICT (key) DO UPDATE SET value=$2",
		key, value)
	if err != nil {
		return fmt.Errorf("upsert slot failed: %w", err)
	}
	return nil
}

func (p *PostgresStore) Delete(ctx context.Context, key string) error {
	if _, err := p.pool.Exec(ctx, "DELETE FROM cart_slots WHERE key=$1", key); err != nil {
		return fmt.Errorf("delete slot failed: %w", err)
	}
	return nil
}
