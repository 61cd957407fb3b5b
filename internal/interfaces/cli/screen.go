package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/molscreen/molscreen/internal/application/export"
	"github.com/molscreen/molscreen/internal/application/screening"
	"github.com/molscreen/molscreen/internal/infrastructure/chem"
	"github.com/molscreen/molscreen/internal/infrastructure/monitoring/logging"
	"github.com/molscreen/molscreen/pkg/errors"
)

// NewScreenCmd creates the screen command: the batch pipeline from a SMILES
// input file to the property report, the console rule summary, and
// optionally the CSV export in the same invocation.
func NewScreenCmd() *cobra.Command {
	var (
		outputPath string
		csvPath    string
	)

	cmd := &cobra.Command{
		Use:   "screen <input.smi>",
		Short: "Screen a SMILES file against the drug-likeness rule sets",
		Long: "Reads one structure per line (`<SMILES> [name]`), computes the descriptor\n" +
			"record for each structure, appends it to the property report, and prints\n" +
			"the per-structure rule evaluation.  Unparsable structures are skipped\n" +
			"with a warning; the batch always runs to completion.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx, err := GetCLIContext(cmd)
			if err != nil {
				return err
			}
			return runScreen(cmd.Context(), cliCtx, args[0], outputPath, csvPath, cmd)
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "property report path (default from config: new_properties.txt)")
	cmd.Flags().StringVar(&csvPath, "csv", "", "also export the report to this CSV file")
	return cmd
}

func runScreen(ctx context.Context, cliCtx *CLIContext, inputPath, outputPath, csvPath string, cmd *cobra.Command) error {
	if outputPath == "" {
		outputPath = cliCtx.Config.Screen.ReportPath
	}

	if _, err := os.Stat(inputPath); err != nil {
		return errors.Newf(errors.CodeNotFound, "file not found: %s", inputPath)
	}
	in, err := os.Open(inputPath)
	if err != nil {
		return errors.Wrap(err, errors.CodeIO, "opening input file").WithDetail(inputPath)
	}
	defer in.Close()

	// The report is truncated once, then held open for the whole batch.
	report, err := os.Create(outputPath)
	if err != nil {
		return errors.Wrap(err, errors.CodeIO, "creating report file").WithDetail(outputPath)
	}

	svc := screening.NewService(chem.NewAnalyzer(cliCtx.Logger), cliCtx.Logger)
	res, runErr := svc.Run(ctx, in, report, cmd.OutOrStdout())
	if closeErr := report.Close(); runErr == nil && closeErr != nil {
		runErr = errors.Wrap(closeErr, errors.CodeIO, "closing report file")
	}
	if runErr != nil {
		return runErr
	}

	cliCtx.Logger.Info("screen complete",
		logging.String("input", inputPath),
		logging.String("report", outputPath),
		logging.Int("processed", res.Processed),
		logging.Int("skipped", res.Skipped),
		logging.Int("failed", res.Failed),
	)

	if csvPath == "" {
		return nil
	}

	// The export stage receives the report path explicitly; there is no
	// hidden shared filename between the two stages.
	rows, err := export.NewService(cliCtx.Logger).ExportFile(outputPath, csvPath)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "\nExported %d records to %s\n", rows, csvPath)
	return nil
}
