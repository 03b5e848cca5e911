package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/multicalc/loancalc/internal/config"
	"github.com/multicalc/loancalc/internal/domain"
)

// nowFunc returns the current time (override in tests for determinism).
var nowFunc = time.Now

// termsFlags are the loan inputs accepted on the command line.
type termsFlags struct {
	principal float64
	rate      float64
	years     float64
	start     string
	extras    []float64
}

func (tf *termsFlags) register(cmd *cobra.Command) {
	cmd.Flags().Float64VarP(&tf.principal, "principal", "p", 0, "Loan amount")
	cmd.Flags().Float64VarP(&tf.rate, "rate", "r", 0, "Annual interest rate in percent")
	cmd.Flags().Float64VarP(&tf.years, "years", "y", 0, "Loan term in years")
	cmd.Flags().StringVar(&tf.start, "start", "", "Month of the first payment (YYYY-MM)")
	cmd.Flags().Float64SliceVar(&tf.extras, "extra", nil, "Extra monthly amounts to compare (repeatable)")
}

// resolveRequest reads a request file when one is given. Otherwise it starts from
// the remembered loan and applies the flags that were set.
func (a *app) resolveRequest(ctx context.Context, cmd *cobra.Command, args []string, tf *termsFlags) (*domain.LoanRequest, error) {
	parser := config.NewInputParser()
	if len(args) > 0 {
		return parser.LoadFromFile(args[0])
	}

	prefs := a.loadPreferences(ctx)
	req := &domain.LoanRequest{
		Loan:          prefs.LastTerms,
		ExtraPayments: prefs.ExtraPayments,
	}

	flags := cmd.Flags()
	if flags.Changed("principal") {
		req.Loan.Principal = tf.principal
	}
	if flags.Changed("rate") {
		req.Loan.AnnualRatePercent = tf.rate
	}
	if flags.Changed("years") {
		req.Loan.TermYears = tf.years
	}
	if flags.Changed("extra") {
		req.ExtraPayments = tf.extras
	}
	if tf.start != "" {
		t, err := time.Parse("2006-01", tf.start)
		if err != nil {
			return nil, fmt.Errorf("invalid --start %q: expected YYYY-MM", tf.start)
		}
		m := domain.NewMonth(t)
		req.StartDate = &m
	}

	if err := parser.ValidateRequest(req); err != nil {
		return nil, err
	}
	return req, nil
}
