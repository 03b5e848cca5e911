package calculation

import (
	"fmt"
	"math"

	"github.com/multicalc/loancalc/internal/domain"
)

const (
	// MaxAnnualRatePercent is the highest accepted annual interest rate.
	MaxAnnualRatePercent = 100.0

	// MaxTermYears bounds the nominal term; longer terms are rejected as input errors.
	MaxTermYears = 100.0

	// MaxPrincipalGrowth bounds principal*(1+r)^n. Float rounding on the balance
	// grows with the same factor, and past this bound it can exceed the one cent
	// payoff tolerance, leaving a schedule that never retires the loan.
	MaxPrincipalGrowth = 1e11
)

// ValidateTerms checks the domain constraints of a loan. The input layer is expected
// to have validated already; this guards the formulas against NaN and Inf.
func ValidateTerms(t domain.LoanTerms) error {
	if !isFinite(t.Principal) || t.Principal <= 0 {
		return fmt.Errorf("%w: principal must be a positive amount, got %v", ErrInvalidInput, t.Principal)
	}
	if !isFinite(t.AnnualRatePercent) || t.AnnualRatePercent < 0 || t.AnnualRatePercent > MaxAnnualRatePercent {
		return fmt.Errorf("%w: annual rate must be between 0 and %.0f%%, got %v", ErrInvalidInput, MaxAnnualRatePercent, t.AnnualRatePercent)
	}
	if !isFinite(t.TermYears) || t.TermYears <= 0 {
		return fmt.Errorf("%w: term must be a positive number of years, got %v", ErrInvalidInput, t.TermYears)
	}
	if t.TermYears > MaxTermYears {
		return fmt.Errorf("%w: term cannot exceed %.0f years, got %v", ErrInvalidInput, MaxTermYears, t.TermYears)
	}
	if t.NumberOfPayments() < 1 {
		return fmt.Errorf("%w: term of %v years is shorter than one monthly payment", ErrInvalidInput, t.TermYears)
	}
	return nil
}

// ComputeLoanSummary derives the monthly payment, total interest and total amount of
// a fixed-payment monthly amortizing loan.
//
// The payment uses the standard annuity formula
//
//	M = P * r * (1+r)^n / ((1+r)^n - 1)
//
// with r the monthly rate and n = round(termYears*12). A zero rate splits the
// principal evenly across the payments.
func ComputeLoanSummary(t domain.LoanTerms) (domain.LoanSummary, error) {
	if err := ValidateTerms(t); err != nil {
		return domain.LoanSummary{}, err
	}

	n := t.NumberOfPayments()
	nf := float64(n)

	if t.IsInterestFree() {
		return domain.LoanSummary{
			MonthlyPayment:   t.Principal / nf,
			TotalInterest:    0,
			TotalAmount:      t.Principal,
			NumberOfPayments: n,
		}, nil
	}

	r := t.MonthlyRate()
	// (1+r)^n - 1 via Expm1 so rates near zero do not cancel to 0
	growth := math.Expm1(nf * math.Log1p(r))
	factor := growth + 1
	if !isFinite(factor) || t.Principal*factor > MaxPrincipalGrowth {
		return domain.LoanSummary{}, fmt.Errorf("%w: %v at %v%% over %v years compounds beyond %.0e", ErrNonFiniteResult, t.Principal, t.AnnualRatePercent, t.TermYears, MaxPrincipalGrowth)
	}
	payment := t.Principal * r * factor / growth
	if !isFinite(payment) || payment <= 0 {
		return domain.LoanSummary{}, fmt.Errorf("%w: monthly payment for %v at %v%% over %v years", ErrNonFiniteResult, t.Principal, t.AnnualRatePercent, t.TermYears)
	}

	total := payment * nf
	return domain.LoanSummary{
		MonthlyPayment:   payment,
		TotalInterest:    total - t.Principal,
		TotalAmount:      total,
		NumberOfPayments: n,
	}, nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
