package output

import (
	"sort"

	"github.com/multicalc/loancalc/internal/domain"
)

// Recommendation encapsulates the payoff scenario that saves the most interest
// per dollar of extra payment.
type Recommendation struct {
	ScenarioName     string
	MonthsSaved      int
	InterestSaved    float64
	SavingsPerDollar float64
}

// AnalyzeScenarios ranks the achievable scenarios by interest saved per extra
// dollar paid, breaking ties by absolute interest saved.
func AnalyzeScenarios(report *domain.LoanReport) Recommendation {
	type ranked struct {
		sc    domain.PayoffScenario
		ratio float64
	}
	var ranks []ranked
	for _, sc := range report.Scenarios {
		if !sc.Achievable || sc.ExtraMonthlyAmount <= 0 || sc.MonthsToPayoff == 0 || sc.InterestSaved <= 0 {
			continue
		}
		paidExtra := sc.ExtraMonthlyAmount * float64(sc.MonthsToPayoff)
		ranks = append(ranks, ranked{sc, sc.InterestSaved / paidExtra})
	}
	if len(ranks) == 0 {
		return Recommendation{}
	}
	sort.SliceStable(ranks, func(i, j int) bool {
		if ranks[i].ratio != ranks[j].ratio {
			return ranks[i].ratio > ranks[j].ratio
		}
		return ranks[i].sc.InterestSaved > ranks[j].sc.InterestSaved
	})
	best := ranks[0]
	return Recommendation{
		ScenarioName:     best.sc.Label,
		MonthsSaved:      best.sc.MonthsSaved,
		InterestSaved:    best.sc.InterestSaved,
		SavingsPerDollar: best.ratio,
	}
}
