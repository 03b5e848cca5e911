package integration

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/multicalc/loancalc/internal/calculation"
	"github.com/multicalc/loancalc/internal/config"
	"github.com/multicalc/loancalc/internal/domain"
	"github.com/multicalc/loancalc/internal/store"
	"github.com/multicalc/loancalc/pkg/decimal"
)

func cents(v float64) string { return decimal.NewMoney(v).Round().String() }

func loadReport(t *testing.T, path string) *domain.LoanReport {
	t.Helper()
	req, err := config.NewInputParser().LoadFromFile(path)
	require.NoError(t, err)

	calculation.SetNowFunc(func() time.Time { return time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC) })
	t.Cleanup(calculation.ResetNowFunc)

	report, err := calculation.NewEngine().BuildReport(context.Background(), *req)
	require.NoError(t, err)
	return report
}

func TestEndToEndMortgage(t *testing.T) {
	report := loadReport(t, "../../example_request.yaml")

	assert.Equal(t, "30-year fixed mortgage", report.Name)
	assert.Equal(t, "1199.10", cents(report.Summary.MonthlyPayment))
	assert.Equal(t, "231676.38", cents(report.Summary.TotalInterest))
	assert.Equal(t, "431676.38", cents(report.Summary.TotalAmount))
	assert.Equal(t, 360, report.Summary.NumberOfPayments)

	require.Len(t, report.Schedule, 360)
	assert.True(t, report.Schedule.IsPaidOff())
	last, _ := report.Schedule.Last()
	assert.Equal(t, cents(report.Summary.TotalInterest), cents(last.CumulativeInterest))
	assert.Equal(t, "2054-12", report.PayoffMonth.String())

	require.Len(t, report.Scenarios, 3)
	months := []int{324, 295, 252}
	for i, sc := range report.Scenarios {
		assert.True(t, sc.Achievable, sc.Label)
		assert.Equal(t, months[i], sc.MonthsToPayoff, sc.Label)
		assert.Equal(t, 360-months[i], sc.MonthsSaved, sc.Label)
		assert.Greater(t, sc.InterestSaved, 0.0, sc.Label)
	}
}

func TestEndToEndInterestFree(t *testing.T) {
	report := loadReport(t, "../testdata/interest_free.yaml")

	assert.Equal(t, "416.67", cents(report.Summary.MonthlyPayment))
	assert.Equal(t, 0.0, report.Summary.TotalInterest)
	require.Len(t, report.Schedule, 24)
	for _, rec := range report.Schedule {
		assert.Equal(t, 0.0, rec.Interest)
	}
	assert.Equal(t, "2026-12", report.PayoffMonth.String())

	require.Len(t, report.Scenarios, 1)
	// 10000 / 516.67 rounds up to 20 payments
	assert.Equal(t, 20, report.Scenarios[0].MonthsToPayoff)
	assert.Equal(t, 0.0, report.Scenarios[0].InterestSaved)
}

func TestUnreachablePayoff(t *testing.T) {
	_, err := calculation.ComputePayoffTime(5000, 12, 50)
	assert.ErrorIs(t, err, calculation.ErrPayoffUnreachable)

	report := loadReport(t, "../testdata/high_rate.yaml")
	require.Len(t, report.Scenarios, 1)
	assert.True(t, report.Scenarios[0].Achievable)
	assert.Equal(t, 11, report.Scenarios[0].MonthsToPayoff)
}

func TestHistoryAndPreferencesShareStore(t *testing.T) {
	ctx := context.Background()
	s, err := store.Open(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	defer s.Close()

	report := loadReport(t, "../../example_request.yaml")
	entry, err := store.NewHistoryEntry(domain.KindAmortizing, report.Terms, report.Summary)
	require.NoError(t, err)
	_, err = s.AppendHistory(ctx, entry)
	require.NoError(t, err)

	prefs := config.Preferences{LastTerms: report.Terms, DefaultFormat: "json"}
	require.NoError(t, config.SavePreferences(ctx, s, prefs))

	loaded, err := config.LoadPreferences(ctx, s)
	require.NoError(t, err)
	assert.Equal(t, report.Terms, loaded.LastTerms)
	assert.Equal(t, "json", loaded.DefaultFormat)

	entries, err := s.ListHistory(ctx, 0)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, domain.KindAmortizing, entries[0].Kind)
	assert.JSONEq(t, `{"principal":200000,"annual_rate_percent":6,"term_years":30}`, string(entries[0].Inputs))
}
