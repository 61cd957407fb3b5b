package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/molscreen/molscreen/internal/application/export"
	"github.com/molscreen/molscreen/pkg/errors"
)

// NewExportCmd creates the export command: re-parse an existing property
// report into a normalized CSV table.
func NewExportCmd() *cobra.Command {
	var csvPath string

	cmd := &cobra.Command{
		Use:   "export [report]",
		Short: "Export a property report to CSV",
		Long: "Splits the report into blank-line-delimited records, unifies the column\n" +
			"schema across all records, and writes a CSV with one row per record.\n" +
			"Defaults to the configured report and CSV paths when omitted.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx, err := GetCLIContext(cmd)
			if err != nil {
				return err
			}

			reportPath := cliCtx.Config.Screen.ReportPath
			if len(args) == 1 {
				reportPath = args[0]
			}
			outPath := csvPath
			if outPath == "" {
				outPath = cliCtx.Config.Screen.CSVPath
			}

			if _, err := os.Stat(reportPath); err != nil {
				return errors.Newf(errors.CodeNotFound, "file not found: %s", reportPath)
			}

			rows, err := export.NewService(cliCtx.Logger).ExportFile(reportPath, outPath)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d records to %s\n", rows, outPath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&csvPath, "output", "o", "", "CSV output path (default from config: cleaned_data.csv)")
	return cmd
}
