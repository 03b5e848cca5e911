package main

import (
	"github.com/spf13/cobra"

	"github.com/multicalc/loancalc/internal/calculation"
	"github.com/multicalc/loancalc/internal/domain"
	"github.com/multicalc/loancalc/internal/output"
)

type interestFlags struct {
	principal float64
	rate      float64
	years     float64
}

func (f *interestFlags) register(cmd *cobra.Command) {
	cmd.Flags().Float64VarP(&f.principal, "principal", "p", 0, "Starting amount")
	cmd.Flags().Float64VarP(&f.rate, "rate", "r", 0, "Annual interest rate in percent")
	cmd.Flags().Float64VarP(&f.years, "years", "y", 0, "Duration in years")
	_ = cmd.MarkFlagRequired("principal")
	_ = cmd.MarkFlagRequired("rate")
	_ = cmd.MarkFlagRequired("years")
}

func newInterestCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "interest",
		Short: "Simple and compound interest",
	}
	cmd.AddCommand(newSimpleInterestCmd(a), newCompoundInterestCmd(a))
	return cmd
}

func newSimpleInterestCmd(a *app) *cobra.Command {
	f := &interestFlags{}
	cmd := &cobra.Command{
		Use:   "simple",
		Short: "Interest on the principal only (I = P * r * t)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			calc := domain.SimpleInterest{Principal: f.principal, RatePercent: f.rate, Years: f.years}
			return a.runInterest(cmd, calc)
		},
	}
	f.register(cmd)
	return cmd
}

func newCompoundInterestCmd(a *app) *cobra.Command {
	f := &interestFlags{}
	var periods int
	cmd := &cobra.Command{
		Use:   "compound",
		Short: "Interest compounded a number of times per year",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			calc := domain.CompoundInterest{Principal: f.principal, RatePercent: f.rate, Years: f.years, PeriodsPerYear: periods}
			return a.runInterest(cmd, calc)
		},
	}
	f.register(cmd)
	cmd.Flags().IntVarP(&periods, "periods", "n", calculation.DefaultCompoundingPeriods, "Compounding periods per year")
	return cmd
}

func (a *app) runInterest(cmd *cobra.Command, calc domain.Calculation) error {
	out, err := a.engine().Evaluate(calc)
	if err != nil {
		return err
	}
	printf(cmd, "Interest:         %s\n", output.FormatCurrency(out.Interest.Interest))
	printf(cmd, "Total amount:     %s\n", output.FormatCurrency(out.Interest.TotalAmount))
	a.recordHistory(cmd.Context(), out.Kind, calc, out.Interest)
	return nil
}
