package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/multicalc/loancalc/internal/calculation"
	"github.com/multicalc/loancalc/internal/output"
)

func newPayoffCmd(a *app) *cobra.Command {
	tf := &termsFlags{}
	var payment float64
	cmd := &cobra.Command{
		Use:   "payoff [request.yaml]",
		Short: "How long a fixed monthly payment takes to retire the loan",
		Long: "Simulate paying a fixed monthly amount against the loan. Without --payment the\n" +
			"extra amounts of the request (or $50, $100, $200 and 10%) are compared.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			req, err := a.resolveRequest(ctx, cmd, args, tf)
			if err != nil {
				return err
			}
			summary, err := calculation.ComputeLoanSummary(req.Loan)
			if err != nil {
				return err
			}

			if !cmd.Flags().Changed("payment") {
				extras := calculation.ExtraPaymentsFromAmounts(summary.MonthlyPayment, req.ExtraPayments)
				for _, sc := range calculation.SweepPayoffScenarios(req.Loan, summary, extras) {
					if !sc.Achievable {
						printf(cmd, "%-20s %12s  not achievable\n", sc.Label, output.FormatCurrency(sc.MonthlyPayment))
						continue
					}
					printf(cmd, "%-20s %12s  %-20s saves %d months and %s\n",
						sc.Label,
						output.FormatCurrency(sc.MonthlyPayment),
						output.FormatDuration(sc.MonthsToPayoff),
						sc.MonthsSaved,
						output.FormatCurrency(sc.InterestSaved))
				}
				a.rememberTerms(ctx, req.Loan)
				return nil
			}

			res, err := calculation.ComputePayoffTime(req.Loan.Principal, req.Loan.AnnualRatePercent, payment)
			if errors.Is(err, calculation.ErrPayoffUnreachable) {
				return fmt.Errorf("a payment of %s never pays off this loan: %w", output.FormatCurrency(payment), err)
			}
			if err != nil {
				return err
			}

			printf(cmd, "Payoff time:      %d months (%s)\n", res.Months, output.FormatDuration(res.Months))
			printf(cmd, "Total interest:   %s\n", output.FormatCurrency(res.TotalInterest))
			printf(cmd, "Total paid:       %s\n", output.FormatCurrency(res.TotalAmount))
			if saved := summary.TotalInterest - res.TotalInterest; saved > 0 {
				printf(cmd, "Interest saved:   %s versus the %s payment\n", output.FormatCurrency(saved), output.FormatCurrency(summary.MonthlyPayment))
			}
			a.rememberTerms(ctx, req.Loan)
			return nil
		},
	}
	tf.register(cmd)
	cmd.Flags().Float64Var(&payment, "payment", 0, "Monthly payment to simulate")
	return cmd
}
