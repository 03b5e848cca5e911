package domain

import (
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Kind identifies a calculation variant in persisted history and exports.
type Kind string

const (
	KindAmortizing Kind = "amortizing"
	KindSimple     Kind = "simple_interest"
	KindCompound   Kind = "compound_interest"
)

// Calculation is a closed set of request variants; each carries its own typed input.
type Calculation interface {
	Kind() Kind
	isCalculation()
}

// AmortizingLoan is a fixed-payment monthly amortizing loan.
type AmortizingLoan struct {
	Terms LoanTerms
}

// SimpleInterest accrues interest on the principal only: I = P * r * t.
type SimpleInterest struct {
	Principal   float64 `yaml:"principal" json:"principal"`
	RatePercent float64 `yaml:"rate_percent" json:"rate_percent"`
	Years       float64 `yaml:"years" json:"years"`
}

// CompoundInterest compounds n times per year: A = P * (1 + r/n)^(n*t).
type CompoundInterest struct {
	Principal      float64 `yaml:"principal" json:"principal"`
	RatePercent    float64 `yaml:"rate_percent" json:"rate_percent"`
	Years          float64 `yaml:"years" json:"years"`
	PeriodsPerYear int     `yaml:"periods_per_year" json:"periods_per_year"`
}

func (AmortizingLoan) Kind() Kind   { return KindAmortizing }
func (SimpleInterest) Kind() Kind   { return KindSimple }
func (CompoundInterest) Kind() Kind { return KindCompound }

func (AmortizingLoan) isCalculation()   {}
func (SimpleInterest) isCalculation()   {}
func (CompoundInterest) isCalculation() {}

// InterestResult is the outcome of a simple or compound interest calculation
type InterestResult struct {
	Interest    float64 `json:"interest"`
	TotalAmount float64 `json:"total_amount"`
}

// Outcome is the result of evaluating any Calculation variant; exactly one of
// Loan or Interest is set, matching Kind.
type Outcome struct {
	Kind     Kind            `json:"kind"`
	Loan     *LoanSummary    `json:"loan,omitempty"`
	Interest *InterestResult `json:"interest,omitempty"`
}

// Month is a calendar month used to anchor a schedule to real dates.
type Month struct {
	time.Time
}

// NewMonth truncates t to the first day of its month (UTC).
func NewMonth(t time.Time) Month {
	return Month{time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)}
}

// String renders the month as YYYY-MM.
func (m Month) String() string {
	return m.Format("2006-01")
}

// UnmarshalYAML accepts YYYY-MM or a full YYYY-MM-DD date.
func (m *Month) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	for _, layout := range []string{"2006-01", "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			*m = NewMonth(t)
			return nil
		}
	}
	return fmt.Errorf("invalid month %q: expected YYYY-MM", raw)
}

// MarshalYAML writes the month as YYYY-MM.
func (m Month) MarshalYAML() (interface{}, error) {
	return m.String(), nil
}

// MarshalJSON writes the month as a quoted YYYY-MM string.
func (m Month) MarshalJSON() ([]byte, error) {
	return []byte(`"` + m.String() + `"`), nil
}

// UnmarshalJSON accepts a quoted YYYY-MM string.
func (m *Month) UnmarshalJSON(data []byte) error {
	raw := strings.Trim(string(data), `"`)
	t, err := time.Parse("2006-01", raw)
	if err != nil {
		return fmt.Errorf("invalid month %q: expected YYYY-MM", raw)
	}
	*m = NewMonth(t)
	return nil
}

// LoanRequest is the on-disk description of one loan calculation
type LoanRequest struct {
	Name          string    `yaml:"name,omitempty" json:"name,omitempty"`
	Loan          LoanTerms `yaml:"loan" json:"loan"`
	ExtraPayments []float64 `yaml:"extra_payments,omitempty" json:"extra_payments,omitempty"`
	StartDate     *Month    `yaml:"start_date,omitempty" json:"start_date,omitempty"`
}

// Calculation returns the amortizing variant described by the request.
func (r LoanRequest) Calculation() AmortizingLoan {
	return AmortizingLoan{Terms: r.Loan}
}
