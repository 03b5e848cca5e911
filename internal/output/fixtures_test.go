package output

import (
	"context"
	"testing"
	"time"

	"github.com/multicalc/loancalc/internal/calculation"
	"github.com/multicalc/loancalc/internal/domain"
)

var fixtureTime = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

func buildReport(t *testing.T, req domain.LoanRequest) *domain.LoanReport {
	t.Helper()
	calculation.SetNowFunc(func() time.Time { return fixtureTime })
	defer calculation.ResetNowFunc()

	report, err := calculation.NewEngine().BuildReport(context.Background(), req)
	if err != nil {
		t.Fatalf("build report: %v", err)
	}
	return report
}

func buildMortgageReport(t *testing.T) *domain.LoanReport {
	start := domain.NewMonth(fixtureTime)
	return buildReport(t, domain.LoanRequest{
		Name:      "Mortgage",
		Loan:      domain.LoanTerms{Principal: 200000, AnnualRatePercent: 6, TermYears: 30},
		StartDate: &start,
	})
}

func buildInterestFreeReport(t *testing.T) *domain.LoanReport {
	start := domain.NewMonth(fixtureTime)
	return buildReport(t, domain.LoanRequest{
		Name:          "Interest free",
		Loan:          domain.LoanTerms{Principal: 10000, AnnualRatePercent: 0, TermYears: 2},
		ExtraPayments: []float64{100},
		StartDate:     &start,
	})
}
