package calculation

import (
	"fmt"
	"math"

	"github.com/multicalc/loancalc/internal/domain"
)

// GenerateSchedule produces the period-by-period amortization of a loan.
//
// monthlyPayment is normally the payment from ComputeLoanSummary; pass 0 to have it
// recomputed. Emission stops as soon as the remaining balance falls to one cent or
// less, so the schedule can be shorter than the nominal number of payments but is
// never longer, and it carries no trailing zero-balance rows.
func GenerateSchedule(t domain.LoanTerms, monthlyPayment float64) (domain.Schedule, error) {
	if err := ValidateTerms(t); err != nil {
		return nil, err
	}

	switch {
	case monthlyPayment == 0:
		summary, err := ComputeLoanSummary(t)
		if err != nil {
			return nil, err
		}
		monthlyPayment = summary.MonthlyPayment
	case !isFinite(monthlyPayment) || monthlyPayment < 0:
		return nil, fmt.Errorf("%w: monthly payment must be a positive amount, got %v", ErrInvalidInput, monthlyPayment)
	}

	r := t.MonthlyRate()
	if !t.IsInterestFree() && monthlyPayment <= t.Principal*r {
		return nil, fmt.Errorf("%w: payment %.2f does not exceed first period interest %.2f", ErrPayoffUnreachable, monthlyPayment, t.Principal*r)
	}

	n := t.NumberOfPayments()
	schedule := make(domain.Schedule, 0, n)
	balance := t.Principal
	cumulative := 0.0

	for period := 1; period <= n; period++ {
		interest := 0.0
		if !t.IsInterestFree() {
			interest = balance * r
		}
		principal := monthlyPayment - interest
		balance = math.Max(0, balance-principal)
		cumulative += interest

		schedule = append(schedule, domain.PaymentRecord{
			Period:             period,
			Payment:            monthlyPayment,
			Principal:          principal,
			Interest:           interest,
			RemainingBalance:   balance,
			CumulativeInterest: cumulative,
		})

		if balance <= domain.PayoffTolerance {
			break
		}
	}

	return schedule, nil
}
