package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/multicalc/loancalc/internal/domain"
	"github.com/multicalc/loancalc/internal/output"
)

func newReportCmd(a *app) *cobra.Command {
	tf := &termsFlags{}
	var outDir string
	cmd := &cobra.Command{
		Use:   "report [request.yaml]",
		Short: "Full loan report: summary, analysis, schedule and payoff scenarios",
		Long: "Build the complete report for a loan. Without --out the report is written to\n" +
			"stdout in the selected format; with --out it is saved as a file, and --format all\n" +
			"writes every file format at once.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			req, err := a.resolveRequest(ctx, cmd, args, tf)
			if err != nil {
				return err
			}
			report, err := a.engine().BuildReport(ctx, *req)
			if err != nil {
				return err
			}
			format := a.outputFormat(ctx, cmd)

			if outDir != "" {
				paths, err := output.GenerateReport(report, format, outDir)
				if err != nil {
					return err
				}
				for _, p := range paths {
					printf(cmd, "Wrote %s\n", p)
				}
			} else {
				if output.NormalizeFormatName(format) == "all" {
					return fmt.Errorf("--format all needs --out")
				}
				f := output.GetFormatterByName(format)
				if f == nil {
					_, err := output.GenerateReport(report, format, "")
					return err
				}
				data, err := f.Format(report)
				if err != nil {
					return err
				}
				if _, err := cmd.OutOrStdout().Write(data); err != nil {
					return err
				}
			}

			a.recordHistory(ctx, domain.KindAmortizing, req.Loan, report.Summary)
			a.rememberTerms(ctx, req.Loan)
			return nil
		},
	}
	tf.register(cmd)
	cmd.Flags().StringVarP(&outDir, "out", "o", "", "Write the report into this directory instead of stdout")
	return cmd
}
