package commands

import (
	"github.com/spf13/cobra"

	"camrental/pkg/console"
)

var dropCmd = &cobra.Command{
	Use:   "drop",
	Short: "Drop every view and table in the target schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := setup()
		if err != nil {
			return err
		}
		defer env.close()

		views, tables, err := env.runner.DropAll(cmd.Context())
		if err != nil {
			return err
		}
		console.Success("Dropped %d tables and %d views.", tables, views)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(dropCmd)
}
