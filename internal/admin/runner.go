// Package admin implements the operations behind the admin console: running
// DDL/seed scripts, the fixed report catalog, and the drop-everything
// cleanup. All operations run against PostgreSQL with a named schema
// selected per operation, so schema names with spaces or slashes work.
package admin

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type Runner struct {
	pool   *pgxpool.Pool
	schema string
	logger *zap.Logger
}

func NewRunner(pool *pgxpool.Pool, schema string, logger *zap.Logger) *Runner {
	return &Runner{pool: pool, schema: schema, logger: logger}
}

// Connect builds the admin pool and verifies the server is reachable.
func Connect(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}
	return pool, nil
}

// useSchema creates the target schema if absent and selects it for the rest
// of the transaction. SET LOCAL scopes the search_path to the transaction.
func (r *Runner) useSchema(ctx context.Context, tx pgx.Tx) error {
	quoted := pgx.Identifier{r.schema}.Sanitize()
	if _, err := tx.Exec(ctx, "CREATE SCHEMA IF NOT EXISTS "+quoted); err != nil {
		return fmt.Errorf("ensuring schema %s: %w", r.schema, err)
	}
	if _, err := tx.Exec(ctx, "SET LOCAL search_path TO "+quoted); err != nil {
		return fmt.Errorf("selecting schema %s: %w", r.schema, err)
	}
	return nil
}
