package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"camrental/internal/admin"
	"camrental/pkg/config"
	"camrental/pkg/logger"
)

var schemaFlag string

// rootCmd runs the interactive menu when invoked without a subcommand.
var rootCmd = &cobra.Command{
	Use:   "rentaladmin",
	Short: "Admin console for the camera/video equipment rental database",
	Long: `rentaladmin manages the rental company's PostgreSQL schema: it runs the
DDL and seed scripts, empties the schema, and executes the saved report
queries. Run it without arguments for the interactive menu, or use the
subcommands for scripting.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := setup()
		if err != nil {
			return err
		}
		defer env.close()

		banner := fmt.Sprintf(
			"==================== Camera/Video Rental DB ====================\n"+
				"PostgreSQL: %s:%d  User: %s\nSchema: %q\n"+
				"================================================================",
			env.cfg.AdminDB.Host, env.cfg.AdminDB.Port, env.cfg.AdminDB.User, env.cfg.AdminDB.Schema,
		)
		menu := admin.NewMenu(env.runner, env.cfg.AdminDB.DDLFile, env.cfg.AdminDB.SeedFile, banner)
		menu.Run(cmd.Context())
		return nil
	},
}

// Execute runs the root command. Menu-level errors never reach here; only a
// failed startup (bad config, unreachable server) exits non-zero.
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&schemaFlag, "schema", "", "Target schema (overrides PG_SCHEMA)")
	rootCmd.SilenceUsage = true
}

// env bundles what every command needs: config, pool and runner.
type env struct {
	cfg    *config.Config
	runner *admin.Runner
	close  func()
}

func setup() (*env, error) {
	cfg := config.New()
	if schemaFlag != "" {
		cfg.AdminDB.Schema = schemaFlag
	}
	if err := cfg.PromptAdminPassword(); err != nil {
		return nil, err
	}

	log := logger.NewLogger()

	pool, err := admin.Connect(context.Background(), cfg.AdminDB.DSN())
	if err != nil {
		return nil, err
	}

	return &env{
		cfg:    cfg,
		runner: admin.NewRunner(pool, cfg.AdminDB.Schema, log),
		close: func() {
			pool.Close()
			log.Sync()
		},
	}, nil
}
