package output

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/multicalc/loancalc/internal/domain"
	"github.com/multicalc/loancalc/pkg/decimal"
)

var (
	colorBorder = lipgloss.Color("#575653")
	colorAccent = lipgloss.Color("#3AA99F")
	colorText   = lipgloss.Color("#FFFCF0")
	colorGreen  = lipgloss.Color("#879A39")
	colorOrange = lipgloss.Color("#DA702C")
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorText).
			Align(lipgloss.Center)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorAccent)

	valueStyle = lipgloss.NewStyle().
			Foreground(colorText)

	savedStyle = lipgloss.NewStyle().
			Foreground(colorGreen)

	warnStyle = lipgloss.NewStyle().
			Foreground(colorOrange)

	dimStyle = lipgloss.NewStyle().
			Foreground(colorBorder)
)

// ConsoleFormatter renders the full loan breakdown for a terminal.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(report *domain.LoanReport) ([]byte, error) {
	var b strings.Builder

	title := "LOAN AMORTIZATION REPORT"
	if report.Name != "" {
		title += ": " + report.Name
	}
	b.WriteString(renderTitle(title))
	b.WriteString("\n\n")

	b.WriteString(renderTable(table{
		Title:   "Loan",
		Headers: []string{"Item", "Value"},
		Rows: [][]string{
			{"Principal", FormatCurrency(report.Terms.Principal)},
			{"Annual rate", FormatPercentage(report.Terms.AnnualRatePercent)},
			{"Term", FormatDuration(report.Summary.NumberOfPayments)},
			{"---"},
			{"Monthly payment", FormatCurrency(report.Summary.MonthlyPayment)},
			{"Total interest", FormatCurrency(report.Summary.TotalInterest)},
			{"Total amount", FormatCurrency(report.Summary.TotalAmount)},
			{"Payments", intToString(report.Summary.NumberOfPayments)},
		},
	}))
	b.WriteString("\n")

	b.WriteString(renderTable(table{
		Title:   "Analysis",
		Headers: []string{"Ratio", "Value"},
		Rows: [][]string{
			{"Interest / principal", FormatPercentage(report.Analysis.InterestToPrincipalPercent)},
			{"Monthly rate", decimalPercent(report.Analysis.MonthlyRatePercent)},
			{"Payment / principal", decimalPercent(report.Analysis.PaymentToPrincipalPercent)},
		},
	}))
	b.WriteString("\n")

	if d := report.Distribution; d != nil {
		rows := make([][]string, 0, 3)
		for _, s := range []struct {
			label string
			rec   domain.PaymentRecord
		}{{"First", d.First}, {"Middle", d.Mid}, {"Final", d.Final}} {
			rows = append(rows, []string{
				s.label,
				intToString(s.rec.Period),
				FormatCurrency(s.rec.Principal),
				FormatCurrency(s.rec.Interest),
				FormatCurrency(s.rec.RemainingBalance),
			})
		}
		b.WriteString(renderTable(table{
			Title:   "Payment distribution",
			Headers: []string{"Payment", "Period", "Principal", "Interest", "Balance"},
			Rows:    rows,
		}))
		b.WriteString("\n")
	}

	if len(report.Scenarios) > 0 {
		rows := make([][]string, 0, len(report.Scenarios))
		for _, sc := range report.Scenarios {
			if !sc.Achievable {
				rows = append(rows, []string{sc.Label, FormatCurrency(sc.MonthlyPayment), "not achievable", "", ""})
				continue
			}
			rows = append(rows, []string{
				sc.Label,
				FormatCurrency(sc.MonthlyPayment),
				FormatDuration(sc.MonthsToPayoff),
				intToString(sc.MonthsSaved),
				FormatCurrency(sc.InterestSaved),
			})
		}
		b.WriteString(renderTable(table{
			Title:   "Early payoff scenarios",
			Headers: []string{"Scenario", "Payment", "Payoff", "Months saved", "Interest saved"},
			Rows:    rows,
		}))
		b.WriteString("\n")
	}

	if rec := AnalyzeScenarios(report); rec.ScenarioName != "" {
		fmt.Fprintf(&b, "  %s %s saves %s per extra dollar (%s total)\n\n",
			headerStyle.Render("Best value:"),
			rec.ScenarioName,
			savedStyle.Render(FormatCurrency(rec.SavingsPerDollar)),
			savedStyle.Render(FormatCurrency(rec.InterestSaved)))
	}

	if report.PayoffMonth != nil {
		fmt.Fprintf(&b, "  Paid off: %s\n", valueStyle.Render(report.PayoffMonth.Format("January 2006")))
	}
	if !report.Schedule.IsPaidOff() {
		fmt.Fprintf(&b, "  %s\n", warnStyle.Render("Schedule does not retire the loan"))
	}

	b.WriteString("\n")
	b.WriteString(headerStyle.Render("  Assumptions"))
	b.WriteString("\n")
	for _, a := range GenerateAssumptions(report) {
		fmt.Fprintf(&b, "  • %s\n", a)
	}

	return []byte(b.String()), nil
}

func decimalPercent(v float64) string { return decimal.FormatPercent(v, 4) }

// table represents a bordered text table. A row holding the single cell "---"
// renders as a separator.
type table struct {
	Title   string
	Headers []string
	Rows    [][]string
}

func renderTitle(title string) string {
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorBorder).
		Width(60).
		Align(lipgloss.Center).
		Padding(0, 1)

	return border.Render(titleStyle.Render(title))
}

func renderTable(t table) string {
	numCols := len(t.Headers)
	widths := make([]int, numCols)
	for i, h := range t.Headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if i < numCols && lipgloss.Width(cell) > widths[i] {
				widths[i] = lipgloss.Width(cell)
			}
		}
	}

	var b strings.Builder
	rule := func(left, mid, right string) {
		b.WriteString(dimStyle.Render(left))
		for i, w := range widths {
			b.WriteString(dimStyle.Render(strings.Repeat("─", w+2)))
			if i < numCols-1 {
				b.WriteString(dimStyle.Render(mid))
			}
		}
		b.WriteString(dimStyle.Render(right))
		b.WriteString("\n")
	}

	if t.Title != "" {
		b.WriteString("  ")
		b.WriteString(headerStyle.Render(t.Title))
		b.WriteString("\n")
	}

	rule("╭", "┬", "╮")
	b.WriteString(dimStyle.Render("│"))
	for i, h := range t.Headers {
		b.WriteString(headerStyle.Render(fmt.Sprintf(" %-*s ", widths[i], h)))
		b.WriteString(dimStyle.Render("│"))
	}
	b.WriteString("\n")
	rule("├", "┼", "┤")

	for _, row := range t.Rows {
		if len(row) == 1 && row[0] == "---" {
			rule("├", "┼", "┤")
			continue
		}
		b.WriteString(dimStyle.Render("│"))
		for i := 0; i < numCols; i++ {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			// first column is a label, the rest are figures
			var padded string
			if i == 0 {
				padded = fmt.Sprintf(" %-*s ", widths[i], cell)
			} else {
				padded = fmt.Sprintf(" %*s ", widths[i], cell)
			}
			b.WriteString(valueStyle.Render(padded))
			b.WriteString(dimStyle.Render("│"))
		}
		b.WriteString("\n")
	}
	rule("╰", "┴", "╯")
	return b.String()
}
