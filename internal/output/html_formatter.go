package output

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"html/template"

	"github.com/multicalc/loancalc/internal/domain"
)

// HTMLFormatter produces a self-contained HTML report.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"curr":     FormatCurrency,
	"pct":      FormatPercentage,
	"pct4":     decimalPercent,
	"duration": FormatDuration,
	"json": func(v interface{}) template.JS {
		b, _ := json.Marshal(v)
		return template.JS(b)
	},
}).Parse(htmlTemplateSource))

func (h HTMLFormatter) Format(report *domain.LoanReport) ([]byte, error) {
	var buf bytes.Buffer

	// balance series for the chart, one point per year plus the final payment
	balances := []float64{}
	for i, rec := range report.Schedule {
		if i%12 == 11 || i == len(report.Schedule)-1 {
			balances = append(balances, FloatCents(rec.RemainingBalance))
		}
	}

	data := struct {
		*domain.LoanReport
		Recommendation Recommendation
		Assumptions    []string
		Balances       []float64
	}{report, AnalyzeScenarios(report), GenerateAssumptions(report), balances}
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
