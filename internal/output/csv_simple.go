package output

import (
	"bytes"
	"encoding/csv"

	"github.com/multicalc/loancalc/internal/domain"
)

// CSVSummarizer implements the scenario comparison CSV output (one row per scenario,
// preceded by the nominal loan).
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string { return "csv" }

func (c CSVSummarizer) Format(report *domain.LoanReport) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Scenario", "ExtraMonthly", "MonthlyPayment", "MonthsToPayoff", "TotalInterest", "MonthsSaved", "InterestSaved", "Achievable", "PayoffMonth"}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	nominal := []string{
		"Nominal",
		FormatAmount(0),
		FormatAmount(report.Summary.MonthlyPayment),
		intToString(len(report.Schedule)),
		FormatAmount(report.Summary.TotalInterest),
		"0",
		FormatAmount(0),
		boolToString(report.Schedule.IsPaidOff()),
		monthCell(report.PayoffMonth),
	}
	if err := w.Write(nominal); err != nil {
		return nil, err
	}

	for _, sc := range report.Scenarios {
		row := []string{
			sc.Label,
			FormatAmount(sc.ExtraMonthlyAmount),
			FormatAmount(sc.MonthlyPayment),
			intToString(sc.MonthsToPayoff),
			FormatAmount(sc.TotalInterestPaid),
			intToString(sc.MonthsSaved),
			FormatAmount(sc.InterestSaved),
			boolToString(sc.Achievable),
			monthCell(sc.PayoffMonth),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

func monthCell(m *domain.Month) string {
	if m == nil {
		return ""
	}
	return m.String()
}
