//go:build integration
// +build integration

package admin

import (
	"context"
	"os"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"
)

// setupRunner starts a throwaway PostgreSQL container and returns a Runner
// bound to a test schema.
func setupRunner(t *testing.T) (*Runner, func()) {
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:alpine",
		postgres.WithDatabase("rentaltest"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err)

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	pool, err := Connect(ctx, connStr)
	require.NoError(t, err)

	runner := NewRunner(pool, "camera_rental", zap.NewNop())
	cleanup := func() {
		pool.Close()
		_ = pgContainer.Terminate(ctx)
	}
	return runner, cleanup
}

func TestAdminLifecycle(t *testing.T) {
	runner, cleanup := setupRunner(t)
	defer cleanup()
	ctx := context.Background()

	require.NoError(t, runner.RunScript(ctx, "../../ddl.sql"))
	require.NoError(t, runner.RunScript(ctx, "../../seed.sql"))

	t.Run("customers ordered by name", func(t *testing.T) {
		res, err := runner.RunReport(ctx, "1")
		require.NoError(t, err)
		require.Equal(t, []string{"customer_id", "full_name", "email", "phone", "status"}, res.Headers)
		require.NotEmpty(t, res.Rows)
		for i := 1; i < len(res.Rows); i++ {
			require.LessOrEqual(t, res.Rows[i-1][1], res.Rows[i][1])
		}
	})

	t.Run("rentals per branch counts sum to rental rows", func(t *testing.T) {
		res, err := runner.RunReport(ctx, "2")
		require.NoError(t, err)
		sum := 0
		prev := -1
		for _, row := range res.Rows {
			n, err := strconv.Atoi(row[2])
			require.NoError(t, err)
			sum += n
			if prev >= 0 {
				require.GreaterOrEqual(t, prev, n)
			}
			prev = n
		}
		require.Equal(t, 4, sum) // seed.sql inserts four rentals
	})

	t.Run("maintenance filter", func(t *testing.T) {
		res, err := runner.RunReport(ctx, "3")
		require.NoError(t, err)
		for _, row := range res.Rows {
			require.Equal(t, "Maintenance", row[5])
		}
		require.Len(t, res.Rows, 1)
		require.Equal(t, "30.00", res.Rows[0][4], "numeric rates must render with two decimals")
	})

	t.Run("copies per equipment ordered by count desc", func(t *testing.T) {
		res, err := runner.RunReport(ctx, "4")
		require.NoError(t, err)
		require.NotEmpty(t, res.Rows)
		require.Equal(t, "2", res.Rows[0][2]) // the DSLR kit has two copies
	})

	t.Run("drop all twice is idempotent", func(t *testing.T) {
		views, tables, err := runner.DropAll(ctx)
		require.NoError(t, err)
		require.Equal(t, 1, views)
		require.Equal(t, 8, tables)

		views, tables, err = runner.DropAll(ctx)
		require.NoError(t, err)
		require.Zero(t, views)
		require.Zero(t, tables)
	})
}

func TestRunScriptMissingFile(t *testing.T) {
	runner, cleanup := setupRunner(t)
	defer cleanup()

	err := runner.RunScript(context.Background(), "no_such_file.sql")
	require.True(t, os.IsNotExist(err))
}

func TestRunScriptRollsBackOnFailure(t *testing.T) {
	runner, cleanup := setupRunner(t)
	defer cleanup()
	ctx := context.Background()

	bad := t.TempDir() + "/bad.sql"
	require.NoError(t, os.WriteFile(bad, []byte(
		"CREATE TABLE half_done (id INT);\nINSERT INTO nowhere VALUES (1);"), 0o644))

	require.Error(t, runner.RunScript(ctx, bad))

	// the failing insert must take the CREATE down with it
	views, tables, err := runner.DropAll(ctx)
	require.NoError(t, err)
	require.Zero(t, views)
	require.Zero(t, tables)
}
