package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/multicalc/loancalc/internal/domain"
	"github.com/multicalc/loancalc/internal/output"
	"github.com/multicalc/loancalc/pkg/dateutil"
)

func newScheduleCmd(a *app) *cobra.Command {
	tf := &termsFlags{}
	cmd := &cobra.Command{
		Use:   "schedule [request.yaml]",
		Short: "Print the period-by-period amortization schedule",
		Args:  cobra.MaximumNArgs(1),
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

			switch format := output.NormalizeFormatName(a.outputFormat(ctx, cmd)); format {
			case "console", "console-lite":
			case "csv", "detailed-csv":
				data, err := output.CSVDetailedExporter{}.Format(report)
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(data)
				return err
			case "json":
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(report.Schedule)
			default:
				return fmt.Errorf("%w: %q for schedule. Try one of: console, detailed-csv, json", output.ErrUnsupportedFormat, format)
			}

			printf(cmd, "%6s  %-8s %12s %12s %12s %14s\n", "Period", "Date", "Payment", "Principal", "Interest", "Balance")
			for _, rec := range report.Schedule {
				date := ""
				if report.StartDate != nil {
					date = domain.NewMonth(dateutil.PaymentDate(report.StartDate.Time, rec.Period)).String()
				}
				printf(cmd, "%6d  %-8s %12s %12s %12s %14s\n",
					rec.Period,
					date,
					output.FormatCurrency(rec.Payment),
					output.FormatCurrency(rec.Principal),
					output.FormatCurrency(rec.Interest),
					output.FormatCurrency(rec.RemainingBalance))
			}
			if last, ok := report.Schedule.Last(); ok {
				printf(cmd, "\nTotal interest: %s over %d payments\n", output.FormatCurrency(last.CumulativeInterest), len(report.Schedule))
			}

			a.recordHistory(ctx, domain.KindAmortizing, req.Loan, report.Summary)
			a.rememberTerms(ctx, req.Loan)
			return nil
		},
	}
	tf.register(cmd)
	return cmd
}
