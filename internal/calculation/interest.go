package calculation

import (
	"fmt"
	"math"

	"github.com/multicalc/loancalc/internal/domain"
)

// DefaultCompoundingPeriods is used when a compound request leaves the frequency unset.
const DefaultCompoundingPeriods = 12

func validateInterestInputs(principal, ratePercent, years float64) error {
	if !isFinite(principal) || principal <= 0 {
		return fmt.Errorf("%w: principal must be a positive amount, got %v", ErrInvalidInput, principal)
	}
	if !isFinite(ratePercent) || ratePercent < 0 || ratePercent > MaxAnnualRatePercent {
		return fmt.Errorf("%w: rate must be between 0 and %.0f%%, got %v", ErrInvalidInput, MaxAnnualRatePercent, ratePercent)
	}
	if !isFinite(years) || years <= 0 || years > MaxTermYears {
		return fmt.Errorf("%w: years must be within (0, %.0f], got %v", ErrInvalidInput, MaxTermYears, years)
	}
	return nil
}

// ComputeSimpleInterest returns I = P * r * t and P + I.
func ComputeSimpleInterest(c domain.SimpleInterest) (domain.InterestResult, error) {
	if err := validateInterestInputs(c.Principal, c.RatePercent, c.Years); err != nil {
		return domain.InterestResult{}, err
	}
	interest := c.Principal * c.RatePercent / 100 * c.Years
	return domain.InterestResult{Interest: interest, TotalAmount: c.Principal + interest}, nil
}

// ComputeCompoundInterest returns A = P * (1 + r/n)^(n*t) and the interest A - P.
func ComputeCompoundInterest(c domain.CompoundInterest) (domain.InterestResult, error) {
	if err := validateInterestInputs(c.Principal, c.RatePercent, c.Years); err != nil {
		return domain.InterestResult{}, err
	}
	n := c.PeriodsPerYear
	if n == 0 {
		n = DefaultCompoundingPeriods
	}
	if n < 0 || n > 365 {
		return domain.InterestResult{}, fmt.Errorf("%w: compounding periods per year must be within [1, 365], got %d", ErrInvalidInput, n)
	}

	nf := float64(n)
	amount := c.Principal * math.Pow(1+c.RatePercent/100/nf, nf*c.Years)
	if !isFinite(amount) {
		return domain.InterestResult{}, fmt.Errorf("%w: compound amount for %v at %v%% over %v years", ErrNonFiniteResult, c.Principal, c.RatePercent, c.Years)
	}
	return domain.InterestResult{Interest: amount - c.Principal, TotalAmount: amount}, nil
}
