package admin

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// DropAll removes every view and base table in the active schema, views
// first, with referential-integrity enforcement suspended for the
// transaction. IF EXISTS makes a second run a clean no-op. Returns the
// counts of views and tables dropped.
func (r *Runner) DropAll(ctx context.Context) (views, tables int, err error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := r.useSchema(ctx, tx); err != nil {
		return 0, 0, err
	}

	viewNames, err := objectNames(ctx, tx,
		`SELECT table_name FROM information_schema.views WHERE table_schema = $1`, r.schema)
	if err != nil {
		return 0, 0, fmt.Errorf("listing views: %w", err)
	}
	tableNames, err := objectNames(ctx, tx,
		`SELECT table_name FROM information_schema.tables
		 WHERE table_schema = $1 AND table_type = 'BASE TABLE'`, r.schema)
	if err != nil {
		return 0, 0, fmt.Errorf("listing tables: %w", err)
	}

	if _, err := tx.Exec(ctx, "SET LOCAL session_replication_role = replica"); err != nil {
		return 0, 0, fmt.Errorf("disabling integrity enforcement: %w", err)
	}
	for _, v := range viewNames {
		name := pgx.Identifier{r.schema, v}.Sanitize()
		if _, err := tx.Exec(ctx, "DROP VIEW IF EXISTS "+name+" CASCADE"); err != nil {
			return 0, 0, fmt.Errorf("dropping view %s: %w", v, err)
		}
	}
	for _, t := range tableNames {
		name := pgx.Identifier{r.schema, t}.Sanitize()
		if _, err := tx.Exec(ctx, "DROP TABLE IF EXISTS "+name+" CASCADE"); err != nil {
			return 0, 0, fmt.Errorf("dropping table %s: %w", t, err)
		}
	}
	if _, err := tx.Exec(ctx, "SET LOCAL session_replication_role = origin"); err != nil {
		return 0, 0, fmt.Errorf("restoring integrity enforcement: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, 0, fmt.Errorf("committing drop: %w", err)
	}

	r.logger.Info("schema emptied",
		zap.String("schema", r.schema),
		zap.Int("views", len(viewNames)),
		zap.Int("tables", len(tableNames)),
	)
	return len(viewNames), len(tableNames), nil
}

func objectNames(ctx context.Context, tx pgx.Tx, query, schema string) ([]string, error) {
	rows, err := tx.Query(ctx, query, schema)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var n string
		if err := rows.Scan(&n); err != nil {
			return nil, err
		}
		names = append(names, n)
	}
	return names, rows.Err()
}
