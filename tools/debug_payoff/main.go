package main

import (
	"fmt"
	"os"

	"github.com/multicalc/loancalc/internal/calculation"
	"github.com/multicalc/loancalc/internal/config"
	"github.com/multicalc/loancalc/internal/domain"
	"github.com/multicalc/loancalc/pkg/decimal"
)

// Prints the remaining balance of the nominal schedule and of every extra
// payment scenario, one row per month, as CSV.
func main() {
	if len(os.Args) < 2 {
		fmt.Println("usage: debug_payoff <request-file>")
		return
	}
	p := config.NewInputParser()
	req, err := p.LoadFromFile(os.Args[1])
	if err != nil {
		panic(err)
	}
	summary, err := calculation.ComputeLoanSummary(req.Loan)
	if err != nil {
		panic(err)
	}

	extras := calculation.ExtraPaymentsFromAmounts(summary.MonthlyPayment, req.ExtraPayments)
	header := "Month,Nominal"
	balances := make([][]float64, 0, len(extras)+1)

	nominal, err := calculation.GenerateSchedule(req.Loan, summary.MonthlyPayment)
	if err != nil {
		panic(err)
	}
	balances = append(balances, remaining(nominal))

	for _, e := range extras {
		s, err := calculation.GenerateSchedule(req.Loan, summary.MonthlyPayment+e.Amount)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", e.Label, err)
			continue
		}
		header += "," + e.Label
		balances = append(balances, remaining(s))
	}
	fmt.Println(header)

	for m := 0; m < len(balances[0]); m++ {
		row := fmt.Sprintf("%d", m+1)
		for _, b := range balances {
			v := 0.0
			if m < len(b) {
				v = b[m]
			}
			row += "," + decimal.NewMoney(v).Round().String()
		}
		fmt.Println(row)
	}
}

func remaining(s domain.Schedule) []float64 {
	out := make([]float64, len(s))
	for i, r := range s {
		out[i] = r.RemainingBalance
	}
	return out
}
