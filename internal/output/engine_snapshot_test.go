package output

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/multicalc/loancalc/internal/calculation"
	"github.com/multicalc/loancalc/internal/config"
)

// TestEngineSnapshot produces a deterministic snapshot of core loan metrics.
func TestEngineSnapshot(t *testing.T) {
	calculation.SetNowFunc(func() time.Time { return time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC) })
	defer calculation.ResetNowFunc()

	parser := config.NewInputParser()
	req, err := parser.LoadFromFile("../../example_request.yaml")
	if err != nil {
		t.Fatalf("load request: %v", err)
	}

	eng := calculation.NewEngine()
	res, err := eng.BuildReport(context.Background(), *req)
	if err != nil {
		t.Fatalf("build report: %v", err)
	}

	// Trim to stable summary fields only
	type scenario struct {
		Label         string `json:"label"`
		Months        int    `json:"months"`
		InterestSaved string `json:"interest_saved"`
		Payoff        string `json:"payoff"`
	}
	var out struct {
		Name      string     `json:"name"`
		Payment   string     `json:"monthly_payment"`
		Interest  string     `json:"total_interest"`
		Total     string     `json:"total_amount"`
		Records   int        `json:"records"`
		Payoff    string     `json:"payoff"`
		Scenarios []scenario `json:"scenarios"`
	}
	out.Name = res.Name
	out.Payment = FormatAmount(res.Summary.MonthlyPayment)
	out.Interest = FormatAmount(res.Summary.TotalInterest)
	out.Total = FormatAmount(res.Summary.TotalAmount)
	out.Records = len(res.Schedule)
	out.Payoff = res.PayoffMonth.String()
	for _, sc := range res.Scenarios {
		out.Scenarios = append(out.Scenarios, scenario{
			Label:         sc.Label,
			Months:        sc.MonthsToPayoff,
			InterestSaved: FormatAmount(sc.InterestSaved),
			Payoff:        monthCell(sc.PayoffMonth),
		})
	}
	data, _ := json.MarshalIndent(out, "", "  ")

	goldenPath := filepath.Join("testdata", "engine_snapshot.golden.json")
	update := os.Getenv("UPDATE_GOLDEN") == "1"
	if update {
		if err := os.WriteFile(goldenPath, data, 0644); err != nil {
			t.Fatalf("write golden: %v", err)
		}
	}
	golden, err := os.ReadFile(goldenPath)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	if string(golden) == "" {
		t.Fatalf("empty golden snapshot")
	}
	if string(golden) != string(data) {
		t.Fatalf("engine snapshot drift; run UPDATE_GOLDEN=1 to accept\n--- have ---\n%s\n--- want ---\n%s", string(data), string(golden))
	}
}
