package output

import (
	"bytes"
	"fmt"

	"github.com/multicalc/loancalc/internal/domain"
)

// ConsoleLiteFormatter provides a concise plain-text summary via the formatter interface.
type ConsoleLiteFormatter struct{}

func (c ConsoleLiteFormatter) Name() string { return "console-lite" }

func (c ConsoleLiteFormatter) Format(report *domain.LoanReport) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "LOAN SUMMARY")
	fmt.Fprintln(&buf, "================================")
	if report.Name != "" {
		fmt.Fprintf(&buf, "Loan: %s\n", report.Name)
	}
	fmt.Fprintf(&buf, "Principal: %s at %s for %s\n",
		FormatCurrency(report.Terms.Principal),
		FormatPercentage(report.Terms.AnnualRatePercent),
		FormatDuration(report.Summary.NumberOfPayments))
	fmt.Fprintf(&buf, "Monthly Payment: %s\n", FormatCurrency(report.Summary.MonthlyPayment))
	fmt.Fprintf(&buf, "Total Interest: %s\n", FormatCurrency(report.Summary.TotalInterest))
	fmt.Fprintf(&buf, "Total Amount: %s\n", FormatCurrency(report.Summary.TotalAmount))
	if report.PayoffMonth != nil {
		fmt.Fprintf(&buf, "Payoff: %s\n", report.PayoffMonth.String())
	}
	fmt.Fprintln(&buf)
	for _, sc := range report.Scenarios {
		if !sc.Achievable {
			fmt.Fprintf(&buf, "%s: not achievable\n", sc.Label)
			continue
		}
		fmt.Fprintf(&buf, "%s: Months=%d Saved=%d InterestSaved=%s\n",
			sc.Label, sc.MonthsToPayoff, sc.MonthsSaved, FormatCurrency(sc.InterestSaved))
	}
	rec := AnalyzeScenarios(report)
	if rec.ScenarioName != "" {
		fmt.Fprintln(&buf)
		fmt.Fprintf(&buf, "Recommended: %s (%s saved per extra dollar)\n", rec.ScenarioName, FormatCurrency(rec.SavingsPerDollar))
	}
	return buf.Bytes(), nil
}
