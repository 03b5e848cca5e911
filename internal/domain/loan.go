package domain

import (
	"math"
	"time"
)

// PayoffTolerance is the balance (one cent) at or below which a loan is considered retired.
const PayoffTolerance = 0.01

// LoanTerms is the immutable input of a loan calculation
type LoanTerms struct {
	Principal         float64 `yaml:"principal" json:"principal"`
	AnnualRatePercent float64 `yaml:"annual_rate_percent" json:"annual_rate_percent"`
	TermYears         float64 `yaml:"term_years" json:"term_years"`
}

// NumberOfPayments returns the nominal number of monthly payments, round(TermYears*12).
func (t LoanTerms) NumberOfPayments() int {
	return int(math.Round(t.TermYears * 12))
}

// MonthlyRate returns the periodic (monthly) interest rate as a fraction.
func (t LoanTerms) MonthlyRate() float64 {
	return t.AnnualRatePercent / 100 / 12
}

// IsInterestFree reports whether the loan carries no interest.
func (t LoanTerms) IsInterestFree() bool {
	return t.AnnualRatePercent == 0
}

// LoanSummary holds the headline figures derived from LoanTerms
type LoanSummary struct {
	MonthlyPayment   float64 `json:"monthly_payment"`
	TotalInterest    float64 `json:"total_interest"`
	TotalAmount      float64 `json:"total_amount"`
	NumberOfPayments int     `json:"number_of_payments"`
}

// PaymentRecord is one period of an amortization schedule
type PaymentRecord struct {
	Period             int     `json:"period"`
	Payment            float64 `json:"payment"`
	Principal          float64 `json:"principal"`
	Interest           float64 `json:"interest"`
	RemainingBalance   float64 `json:"remaining_balance"`
	CumulativeInterest float64 `json:"cumulative_interest"`
}

// Schedule is an ordered sequence of payment records, periods strictly increasing from 1.
type Schedule []PaymentRecord

// Last returns the final record of the schedule and false when the schedule is empty.
func (s Schedule) Last() (PaymentRecord, bool) {
	if len(s) == 0 {
		return PaymentRecord{}, false
	}
	return s[len(s)-1], true
}

// TotalPrincipal sums the principal portion of every record.
func (s Schedule) TotalPrincipal() float64 {
	var total float64
	for _, r := range s {
		total += r.Principal
	}
	return total
}

// IsPaidOff reports whether the final record retires the loan.
func (s Schedule) IsPaidOff() bool {
	last, ok := s.Last()
	return ok && last.RemainingBalance <= PayoffTolerance
}

// PayoffResult is the outcome of an accelerated payoff simulation
type PayoffResult struct {
	Months        int     `json:"months"`
	TotalInterest float64 `json:"total_interest"`
	TotalAmount   float64 `json:"total_amount"`
}

// PayoffScenario compares an accelerated payment plan with the nominal schedule
type PayoffScenario struct {
	Label              string  `json:"label"`
	ExtraMonthlyAmount float64 `json:"extra_monthly_amount"`
	MonthlyPayment     float64 `json:"monthly_payment"`
	MonthsToPayoff     int     `json:"months_to_payoff"`
	TotalInterestPaid  float64 `json:"total_interest_paid"`
	MonthsSaved        int     `json:"months_saved"`
	InterestSaved      float64 `json:"interest_saved"`
	Achievable         bool    `json:"achievable"`
	Reason             string  `json:"reason,omitempty"`
	PayoffMonth        *Month  `json:"payoff_month,omitempty"`
}

// LoanAnalysis holds the ratios shown alongside a loan breakdown
type LoanAnalysis struct {
	InterestToPrincipalPercent float64 `json:"interest_to_principal_percent"`
	MonthlyRatePercent         float64 `json:"monthly_rate_percent"`
	TotalPayments              int     `json:"total_payments"`
	PaymentToPrincipalPercent  float64 `json:"payment_to_principal_percent"`
}

// PaymentDistribution samples a schedule at its first, middle and final records
type PaymentDistribution struct {
	First PaymentRecord `json:"first"`
	Mid   PaymentRecord `json:"mid"`
	Final PaymentRecord `json:"final"`
}

// LoanReport bundles every derived view of a single loan request
type LoanReport struct {
	Name         string               `json:"name,omitempty"`
	Terms        LoanTerms            `json:"terms"`
	Summary      LoanSummary          `json:"summary"`
	Schedule     Schedule             `json:"schedule"`
	Analysis     LoanAnalysis         `json:"analysis"`
	Distribution *PaymentDistribution `json:"distribution,omitempty"`
	Scenarios    []PayoffScenario     `json:"scenarios"`
	StartDate    *Month               `json:"start_date,omitempty"`
	PayoffMonth  *Month               `json:"payoff_month,omitempty"`
	GeneratedAt  time.Time            `json:"generated_at"`
}
