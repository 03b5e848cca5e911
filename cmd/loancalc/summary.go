package main

import (
	"github.com/spf13/cobra"

	"github.com/multicalc/loancalc/internal/domain"
	"github.com/multicalc/loancalc/internal/output"
)

func newSummaryCmd(a *app) *cobra.Command {
	tf := &termsFlags{}
	cmd := &cobra.Command{
		Use:   "summary [request.yaml]",
		Short: "Monthly payment, total interest and total amount",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			req, err := a.resolveRequest(ctx, cmd, args, tf)
			if err != nil {
				return err
			}

			out, err := a.engine().Evaluate(req.Calculation())
			if err != nil {
				return err
			}
			s := out.Loan

			printf(cmd, "Monthly payment:  %s\n", output.FormatCurrency(s.MonthlyPayment))
			printf(cmd, "Total interest:   %s\n", output.FormatCurrency(s.TotalInterest))
			printf(cmd, "Total amount:     %s\n", output.FormatCurrency(s.TotalAmount))
			printf(cmd, "Payments:         %d (%s)\n", s.NumberOfPayments, output.FormatDuration(s.NumberOfPayments))

			a.recordHistory(ctx, domain.KindAmortizing, req.Loan, s)
			a.rememberTerms(ctx, req.Loan)
			return nil
		},
	}
	tf.register(cmd)
	return cmd
}
