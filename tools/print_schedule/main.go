package main

import (
	"fmt"

	"github.com/multicalc/loancalc/internal/calculation"
	"github.com/multicalc/loancalc/internal/domain"
	"github.com/multicalc/loancalc/pkg/decimal"
)

// Prints the final periods of a few schedules whose last payment is prone to
// cent drift, along with the rounded totals people would see.
func main() {
	loans := []struct {
		name  string
		terms domain.LoanTerms
	}{
		{"30y mortgage", domain.LoanTerms{Principal: 200000, AnnualRatePercent: 6, TermYears: 30}},
		{"interest free", domain.LoanTerms{Principal: 10000, AnnualRatePercent: 0, TermYears: 2}},
		{"one year", domain.LoanTerms{Principal: 1000, AnnualRatePercent: 12, TermYears: 1}},
		{"tiny rate", domain.LoanTerms{Principal: 50000, AnnualRatePercent: 0.01, TermYears: 5}},
	}

	for _, l := range loans {
		summary, err := calculation.ComputeLoanSummary(l.terms)
		if err != nil {
			fmt.Printf("%s: %v\n", l.name, err)
			continue
		}
		schedule, err := calculation.GenerateSchedule(l.terms, summary.MonthlyPayment)
		if err != nil {
			fmt.Printf("%s: %v\n", l.name, err)
			continue
		}

		fmt.Printf("%s: payment %s, %d records, paid off %v\n",
			l.name, decimal.NewMoney(summary.MonthlyPayment).Round(), len(schedule), schedule.IsPaidOff())
		from := len(schedule) - 2
		if from < 0 {
			from = 0
		}
		for _, r := range schedule[from:] {
			fmt.Printf("  %3d principal=%s interest=%s balance=%.6f\n",
				r.Period, decimal.NewMoney(r.Principal).Round(), decimal.NewMoney(r.Interest).Round(), r.RemainingBalance)
		}
		principals := make([]float64, len(schedule))
		for i, r := range schedule {
			principals[i] = decimal.NewMoney(r.Principal).Float64()
		}
		rounded := decimal.Sum(principals...)
		drift := rounded.Sub(decimal.NewMoney(l.terms.Principal)).Cents()
		fmt.Printf("  rounded principal total %s, drift %d cents\n", rounded, drift)
	}
}
