package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"zaykaa/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresMirror stores mirror blobs in the kv_store table. The upsert makes
// each Put atomic from the reader's perspective.
type PostgresMirror struct {
	pool *pgxpool.Pool
}

func NewPostgresMirror(pool *pgxpool.Pool) *PostgresMirror {
	return &PostgresMirror{pool: pool}
}

func (m *PostgresMirror) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := m.pool.QueryRow(ctx, `
		SELECT value FROM kv_store WHERE key = $1`,
		key,
	).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return value, nil
}

func (m *PostgresMirror) Put(ctx context.Context, key string, value []byte) error {
	_, err := m.pool.Exec(ctx, `
		INSERT INTO kv_store (key, value, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET
			value = $2,
			updated_at = now()`,
		key, value,
	)
	return err
}

func (m *PostgresMirror) Delete(ctx context.Context, key string) error {
	_, err := m.pool.Exec(ctx, `DELETE FROM kv_store WHERE key = $1`, key)
	return err
}

// PostgresCarts stores one row per user with the cart lines as JSONB.
type PostgresCarts struct {
	pool *pgxpool.Pool
}

func NewPostgresCarts(pool *pgxpool.Pool) *PostgresCarts {
	return &PostgresCarts{pool: pool}
}

func (c *PostgresCarts) Load(ctx context.Context, userID string) ([]models.CartLine, error) {
	var linesJSON []byte
	err := c.pool.QueryRow(ctx, `
		SELECT items FROM carts WHERE user_id = $1`,
		userID,
	).Scan(&linesJSON)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	var lines []models.CartLine
	if len(linesJSON) > 0 {
		if err := json.Unmarshal(linesJSON, &lines); err != nil {
			return nil, fmt.Errorf("unmarshal cart items: %w", err)
		}
	}
	return lines, nil
}

func (c *PostgresCarts) Save(ctx context.Context, userID string, lines []models.CartLine) error {
	linesJSON, err := json.Marshal(lines)
	if err != nil {
		return fmt.Errorf("marshal cart items: %w", err)
	}

	_, err = c.pool.Exec(ctx, `
		INSERT INTO carts (user_id, items, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (user_id) DO UPDATE SET
			items = $2,
			updated_at = now()`,
		userID, linesJSON,
	)
	return err
}

func (c *PostgresCarts) Delete(ctx context.Context, userID string) error {
	_, err := c.pool.Exec(ctx, `DELETE FROM carts WHERE user_id = $1`, userID)
	return err
}
