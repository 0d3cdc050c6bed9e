package repository

import (
	"context"
	"fmt"
	"github.com/jackc/pgx/v5/pgxpool"
)

// EnsureSchema creates the tables if they are missing. It mirrors the SQL
// files under internal/migrations, which the integration tests apply via
// container init scripts.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS products (
			id             UUID PRIMARY KEY,
			name           TEXT        NOT NULL,
			description    TEXT        NOT NULL DEFAULT '',
			price_amount   NUMERIC     NOT NULL CHECK (price_amount >= 0),
			price_currency TEXT        NOT NULL,
			units          TEXT[]      NOT NULL,
			default_unit   TEXT        NOT NULL,
			image          TEXT        NOT NULL DEFAULT '',
			category       TEXT        NOT NULL DEFAULT '',
			seller_id      UUID,
			created_at     TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_products_category ON products (category)`,
		`CREATE TABLE IF NOT EXISTS orders (
			id             UUID PRIMARY KEY,
			created_at     TIMESTAMPTZ NOT NULL,
			status         TEXT        NOT NULL,
			total_amount   NUMERIC     NOT NULL CHECK (total_amount >= 0),
			total_currency TEXT        NOT NULL,
			shipping       JSONB       NOT NULL,
			payment_method TEXT        NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS order_items (
			order_id       UUID    NOT NULL REFERENCES orders (id) ON DELETE CASCADE,
			position       INT     NOT NULL,
			product_id     UUID    NOT NULL,
			name           TEXT    NOT NULL,
			image          TEXT    NOT NULL DEFAULT '',
			quantity       BIGINT  NOT NULL CHECK (quantity > 0),
			unit           TEXT    NOT NULL,
			price_amount   NUMERIC NOT NULL,
			price_currency TEXT    NOT NULL,
			PRIMARY KEY (order_id, position)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_orders_created_at ON orders (created_at DESC)`,
		`CREATE TABLE IF NOT EXISTS sellers (
			id         UUID PRIMARY KEY,
			full_name  TEXT        NOT NULL,
			email      TEXT        NOT NULL UNIQUE,
			phone      TEXT        NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
	}

	for _, statement := range statements {
		if _, err := pool.Exec(ctx, statement); err != nil {
			return fmt.Errorf("pool.Exec: %w", err)
		}
	}

	return nil
}
