package output

import (
	"fmt"

	"github.com/multicalc/loancalc/internal/domain"
)

// DefaultAssumptions lists key modeling assumptions rendered in detailed outputs.
var DefaultAssumptions = []string{
	"Fixed rate for the whole term, compounded monthly",
	"Payments are made at the end of each month",
	"The schedule ends once the balance falls to $0.01 or less",
	"Extra payments are made every month from the first payment",
}

// GenerateAssumptions creates the assumptions list from the report's own figures
func GenerateAssumptions(report *domain.LoanReport) []string {
	rate := fmt.Sprintf("Fixed %s annual rate (%s per month) for the whole term",
		FormatPercentage(report.Terms.AnnualRatePercent), decimalPercent(report.Analysis.MonthlyRatePercent))
	if report.Terms.IsInterestFree() {
		rate = "Interest free: principal is split evenly across the payments"
	}
	out := []string{
		rate,
		fmt.Sprintf("%d monthly payments, made at the end of each month", report.Summary.NumberOfPayments),
		DefaultAssumptions[2],
		DefaultAssumptions[3],
	}
	if report.StartDate != nil {
		out = append(out, fmt.Sprintf("First payment due %s", report.StartDate.Format("January 2006")))
	}
	return out
}
