package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"camrental/internal/admin"
	"camrental/pkg/console"
)

var exportPath string

var queryCmd = &cobra.Command{
	Use:   "query [key]",
	Short: "Run one of the saved report queries",
	Long: `Runs a query from the report catalog and prints it as a table. Without a
key, the catalog is listed. With --export, the result is also written to an
.xlsx workbook.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			for _, rep := range admin.Catalog() {
				fmt.Printf("  [%s] %s\n", rep.Key, rep.Title)
			}
			return nil
		}

		env, err := setup()
		if err != nil {
			return err
		}
		defer env.close()

		res, err := env.runner.RunReport(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		console.Primary("=== %s ===", res.Title)
		console.Table(res.Headers, res.Rows)

		if exportPath != "" {
			if err := admin.ExportXLSX(res, exportPath); err != nil {
				return err
			}
			console.Success("Exported %s", exportPath)
		}
		return nil
	},
}

func init() {
	queryCmd.Flags().StringVar(&exportPath, "export", "", "Write the result to this .xlsx file")
	rootCmd.AddCommand(queryCmd)
}
