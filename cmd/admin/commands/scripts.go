package commands

import (
	"os"

	"github.com/spf13/cobra"

	"camrental/pkg/console"
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Run the DDL script against the target schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runScriptCommand(cmd, func(e *env) string { return e.cfg.AdminDB.DDLFile })
	},
}

var populateCmd = &cobra.Command{
	Use:   "populate",
	Short: "Run the seed script against the target schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runScriptCommand(cmd, func(e *env) string { return e.cfg.AdminDB.SeedFile })
	},
}

func runScriptCommand(cmd *cobra.Command, pick func(*env) string) error {
	env, err := setup()
	if err != nil {
		return err
	}
	defer env.close()

	path := pick(env)
	err = env.runner.RunScript(cmd.Context(), path)
	if os.IsNotExist(err) {
		console.Error("File not found: %s", path)
		return nil
	}
	if err != nil {
		return err
	}
	console.Success("Executed %s", path)
	return nil
}

func init() {
	rootCmd.AddCommand(createCmd, populateCmd)
}
