package calculation

import (
	"fmt"

	"github.com/multicalc/loancalc/internal/domain"
	"github.com/multicalc/loancalc/pkg/decimal"
)

// ExtraPayment is one candidate amount added on top of the baseline monthly payment.
type ExtraPayment struct {
	Label  string
	Amount float64
}

// FixedExtra builds a candidate labelled "Extra $N/month".
func FixedExtra(amount float64) ExtraPayment {
	return ExtraPayment{
		Label:  fmt.Sprintf("Extra $%s/month", decimal.NewMoney(amount).Round().Decimal.String()),
		Amount: amount,
	}
}

// PercentExtra builds a candidate worth pct percent of the baseline payment.
func PercentExtra(baseline, pct float64) ExtraPayment {
	return ExtraPayment{
		Label:  fmt.Sprintf("Extra %s%% payment", decimal.NewMoney(pct).Decimal.String()),
		Amount: baseline * pct / 100,
	}
}

// DefaultExtraPayments returns the standard what-if candidates: $50, $100 and $200
// a month, and an extra 10% of the baseline payment.
func DefaultExtraPayments(baseline float64) []ExtraPayment {
	return []ExtraPayment{
		FixedExtra(50),
		FixedExtra(100),
		FixedExtra(200),
		PercentExtra(baseline, 10),
	}
}

// ExtraPaymentsFromAmounts turns configured fixed amounts into candidates; an empty
// list yields the defaults.
func ExtraPaymentsFromAmounts(baseline float64, amounts []float64) []ExtraPayment {
	if len(amounts) == 0 {
		return DefaultExtraPayments(baseline)
	}
	extras := make([]ExtraPayment, 0, len(amounts))
	for _, a := range amounts {
		extras = append(extras, FixedExtra(a))
	}
	return extras
}

// SweepPayoffScenarios evaluates each extra payment against the nominal loan.
// A candidate whose simulation fails is reported with Achievable=false and the
// failure reason; it never aborts the sweep.
func SweepPayoffScenarios(t domain.LoanTerms, summary domain.LoanSummary, extras []ExtraPayment) []domain.PayoffScenario {
	scenarios := make([]domain.PayoffScenario, 0, len(extras))
	for _, extra := range extras {
		payment := summary.MonthlyPayment + extra.Amount
		sc := domain.PayoffScenario{
			Label:              extra.Label,
			ExtraMonthlyAmount: extra.Amount,
			MonthlyPayment:     payment,
		}

		result, err := ComputePayoffTime(t.Principal, t.AnnualRatePercent, payment)
		if err != nil {
			sc.Reason = err.Error()
			scenarios = append(scenarios, sc)
			continue
		}

		sc.Achievable = true
		sc.MonthsToPayoff = result.Months
		sc.TotalInterestPaid = result.TotalInterest
		sc.MonthsSaved = summary.NumberOfPayments - result.Months
		sc.InterestSaved = summary.TotalInterest - result.TotalInterest
		scenarios = append(scenarios, sc)
	}
	return scenarios
}
