package output

import (
	"encoding/json"
	"time"

	"github.com/multicalc/loancalc/internal/domain"
)

// CalculatorName identifies this calculator in exported documents.
const CalculatorName = "loan"

// ExportDocument is the shape of a JSON export.
type ExportDocument struct {
	Calculator string           `json:"calculator"`
	Inputs     domain.LoanTerms `json:"inputs"`
	Results    ExportResults    `json:"results"`
	Timestamp  time.Time        `json:"timestamp"`
}

// ExportResults holds the derived figures of an export.
type ExportResults struct {
	Name         string                      `json:"name,omitempty"`
	Summary      domain.LoanSummary          `json:"summary"`
	Analysis     domain.LoanAnalysis         `json:"analysis"`
	Distribution *domain.PaymentDistribution `json:"distribution,omitempty"`
	Scenarios    []domain.PayoffScenario     `json:"scenarios"`
	Schedule     domain.Schedule             `json:"schedule"`
	StartDate    *domain.Month               `json:"start_date,omitempty"`
	PayoffMonth  *domain.Month               `json:"payoff_month,omitempty"`
}

// JSONFormatter serializes the report as a pretty-printed export document.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(report *domain.LoanReport) ([]byte, error) {
	doc := ExportDocument{
		Calculator: CalculatorName,
		Inputs:     report.Terms,
		Results: ExportResults{
			Name:         report.Name,
			Summary:      report.Summary,
			Analysis:     report.Analysis,
			Distribution: report.Distribution,
			Scenarios:    report.Scenarios,
			Schedule:     report.Schedule,
			StartDate:    report.StartDate,
			PayoffMonth:  report.PayoffMonth,
		},
		Timestamp: report.GeneratedAt.UTC(),
	}
	return json.MarshalIndent(doc, "", "  ")
}
