package output

import (
	"bytes"
	"encoding/csv"

	"github.com/multicalc/loancalc/internal/domain"
	"github.com/multicalc/loancalc/pkg/dateutil"
)

// CSVDetailedExporter writes the full amortization schedule, one row per payment.
type CSVDetailedExporter struct{}

func (c CSVDetailedExporter) Name() string { return "detailed-csv" }

func (c CSVDetailedExporter) Format(report *domain.LoanReport) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Period", "Date", "Payment", "Principal", "Interest", "RemainingBalance", "CumulativeInterest"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, rec := range report.Schedule {
		date := ""
		if report.StartDate != nil {
			date = domain.NewMonth(dateutil.PaymentDate(report.StartDate.Time, rec.Period)).String()
		}
		row := []string{
			intToString(rec.Period),
			date,
			FormatAmount(rec.Payment),
			FormatAmount(rec.Principal),
			FormatAmount(rec.Interest),
			FormatAmount(rec.RemainingBalance),
			FormatAmount(rec.CumulativeInterest),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
