package calculation

import "github.com/multicalc/loancalc/internal/domain"

// Analyze derives the ratios shown next to a loan breakdown. Percentages are
// relative to the principal.
func Analyze(t domain.LoanTerms, s domain.LoanSummary) domain.LoanAnalysis {
	a := domain.LoanAnalysis{
		MonthlyRatePercent: t.AnnualRatePercent / 12,
		TotalPayments:      s.NumberOfPayments,
	}
	if t.Principal > 0 {
		a.InterestToPrincipalPercent = s.TotalInterest / t.Principal * 100
		a.PaymentToPrincipalPercent = s.MonthlyPayment / t.Principal * 100
	}
	return a
}

// Distribution samples the first, middle and final records of a schedule.
// The middle record is s[len(s)/2]. An empty schedule yields nil.
func Distribution(s domain.Schedule) *domain.PaymentDistribution {
	if len(s) == 0 {
		return nil
	}
	return &domain.PaymentDistribution{
		First: s[0],
		Mid:   s[len(s)/2],
		Final: s[len(s)-1],
	}
}
