package calculation

import (
	"fmt"
	"math"

	"github.com/multicalc/loancalc/internal/domain"
)

// MaxPayoffMonths caps an accelerated payoff simulation at 50 years of payments.
const MaxPayoffMonths = 600

// zeroRateEpsilon absorbs float noise in principal/payment before taking the ceiling,
// so 10000 / (10000/24) counts as 24 payments rather than 25.
const zeroRateEpsilon = 1e-9

// ComputePayoffTime simulates repaying principal at a fixed (usually accelerated)
// monthly payment and reports how many months it takes and the interest paid.
//
// The call fails with ErrPayoffUnreachable when the payment does not exceed the
// interest accrued in a period or when the loan is not retired within
// MaxPayoffMonths; callers treat either case as a scenario that cannot be achieved.
func ComputePayoffTime(principal, annualRatePercent, monthlyPayment float64) (domain.PayoffResult, error) {
	if !isFinite(principal) || principal <= 0 {
		return domain.PayoffResult{}, fmt.Errorf("%w: principal must be a positive amount, got %v", ErrInvalidInput, principal)
	}
	if !isFinite(annualRatePercent) || annualRatePercent < 0 || annualRatePercent > MaxAnnualRatePercent {
		return domain.PayoffResult{}, fmt.Errorf("%w: annual rate must be between 0 and %.0f%%, got %v", ErrInvalidInput, MaxAnnualRatePercent, annualRatePercent)
	}
	if !isFinite(monthlyPayment) {
		return domain.PayoffResult{}, fmt.Errorf("%w: monthly payment must be finite, got %v", ErrInvalidInput, monthlyPayment)
	}
	if monthlyPayment <= 0 {
		return domain.PayoffResult{}, fmt.Errorf("%w: payment %.2f is not positive", ErrPayoffUnreachable, monthlyPayment)
	}

	if annualRatePercent == 0 {
		months := int(math.Ceil(principal/monthlyPayment - zeroRateEpsilon))
		if months < 1 {
			months = 1
		}
		if months > MaxPayoffMonths {
			return domain.PayoffResult{}, fmt.Errorf("%w: payoff needs %d months, limit is %d", ErrPayoffUnreachable, months, MaxPayoffMonths)
		}
		return domain.PayoffResult{Months: months, TotalInterest: 0, TotalAmount: principal}, nil
	}

	r := annualRatePercent / 100 / 12
	balance := principal
	months := 0
	totalInterest := 0.0

	for balance > domain.PayoffTolerance && months < MaxPayoffMonths {
		interest := balance * r
		principalPart := monthlyPayment - interest
		if principalPart <= 0 {
			return domain.PayoffResult{}, fmt.Errorf("%w: payment %.2f does not exceed period interest %.2f", ErrPayoffUnreachable, monthlyPayment, interest)
		}
		balance = math.Max(0, balance-principalPart)
		totalInterest += interest
		months++
	}

	if balance > domain.PayoffTolerance {
		return domain.PayoffResult{}, fmt.Errorf("%w: balance %.2f remains after %d months", ErrPayoffUnreachable, balance, MaxPayoffMonths)
	}

	return domain.PayoffResult{
		Months:        months,
		TotalInterest: totalInterest,
		TotalAmount:   principal + totalInterest,
	}, nil
}
