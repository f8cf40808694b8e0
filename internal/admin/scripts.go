package admin

import (
	"context"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
)

// SplitStatements breaks a script into statements on semicolons, trimming
// whitespace and dropping empties. Semicolons inside string literals or
// procedure bodies are not understood; this is fine for plain DDL and
// INSERT scripts, which is all the console runs.
func SplitStatements(script string) []string {
	parts := strings.Split(script, ";")
	stmts := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			stmts = append(stmts, s)
		}
	}
	return stmts
}

// RunScript executes every statement of the file inside one transaction, so
// a failing statement rolls the whole script back. A missing file surfaces
// as an os.ErrNotExist the caller reports without aborting the session.
func (r *Runner) RunScript(ctx context.Context, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	stmts := SplitStatements(string(raw))

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := r.useSchema(ctx, tx); err != nil {
		return err
	}
	for i, stmt := range stmts {
		if _, err := tx.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("statement %d of %s: %w", i+1, path, err)
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("committing %s: %w", path, err)
	}

	r.logger.Info("script executed", zap.String("path", path), zap.Int("statements", len(stmts)))
	return nil
}
