package output

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/multicalc/loancalc/internal/domain"
)

func TestAnalyzeScenarios(t *testing.T) {
	rec := AnalyzeScenarios(buildMortgageReport(t))
	assert.Equal(t, "Extra $50/month", rec.ScenarioName)
	assert.Equal(t, 36, rec.MonthsSaved)
	assert.InDelta(t, 27879.31, rec.InterestSaved, 0.01)
	assert.InDelta(t, 1.7209, rec.SavingsPerDollar, 0.0001)
}

func TestAnalyzeScenariosSkipsUnhelpfulScenarios(t *testing.T) {
	report := &domain.LoanReport{
		Scenarios: []domain.PayoffScenario{
			{Label: "unreachable", ExtraMonthlyAmount: 10, Achievable: false},
			{Label: "no savings", ExtraMonthlyAmount: 10, Achievable: true, MonthsToPayoff: 10},
			{Label: "no extra", ExtraMonthlyAmount: 0, Achievable: true, MonthsToPayoff: 10, InterestSaved: 5},
		},
	}
	assert.Equal(t, Recommendation{}, AnalyzeScenarios(report))
	assert.Equal(t, Recommendation{}, AnalyzeScenarios(&domain.LoanReport{}))
}

func TestAnalyzeScenariosTieBreaksOnTotalSaved(t *testing.T) {
	report := &domain.LoanReport{
		Scenarios: []domain.PayoffScenario{
			{Label: "small", ExtraMonthlyAmount: 10, Achievable: true, MonthsToPayoff: 10, InterestSaved: 100},
			{Label: "large", ExtraMonthlyAmount: 20, Achievable: true, MonthsToPayoff: 10, InterestSaved: 200},
		},
	}
	assert.Equal(t, "large", AnalyzeScenarios(report).ScenarioName)
}

func TestGenerateAssumptions(t *testing.T) {
	a := GenerateAssumptions(buildMortgageReport(t))
	assert.Len(t, a, 5)
	assert.Equal(t, "Fixed 6.00% annual rate (0.5000% per month) for the whole term", a[0])
	assert.Equal(t, "360 monthly payments, made at the end of each month", a[1])
	assert.Equal(t, "First payment due January 2025", a[4])

	free := GenerateAssumptions(&domain.LoanReport{Terms: domain.LoanTerms{Principal: 1, TermYears: 1}})
	assert.Len(t, free, 4)
	assert.Contains(t, free[0], "Interest free")
}
