package calculation

import (
	"context"
	"fmt"

	"github.com/multicalc/loancalc/internal/domain"
	"github.com/multicalc/loancalc/pkg/dateutil"
	"github.com/multicalc/loancalc/pkg/decimal"
)

// Engine orchestrates the loan calculations behind a report or a single evaluation
type Engine struct {
	Debug  bool // Log per-step figures at debug level
	Logger Logger
}

// NewEngine creates a new engine with a no-op logger
func NewEngine() *Engine {
	return &Engine{Logger: NopLogger{}}
}

// SetLogger sets the logger for the engine. If nil is provided, a no-op logger is used.
func (e *Engine) SetLogger(l Logger) {
	if l == nil {
		e.Logger = NopLogger{}
		return
	}
	e.Logger = l
}

// Evaluate dispatches on the calculation variant and returns its outcome.
func (e *Engine) Evaluate(c domain.Calculation) (domain.Outcome, error) {
	switch calc := c.(type) {
	case domain.AmortizingLoan:
		summary, err := ComputeLoanSummary(calc.Terms)
		if err != nil {
			return domain.Outcome{}, err
		}
		e.debugf("amortizing: payment=%.2f interest=%.2f payments=%d", summary.MonthlyPayment, summary.TotalInterest, summary.NumberOfPayments)
		return domain.Outcome{Kind: domain.KindAmortizing, Loan: &summary}, nil
	case domain.SimpleInterest:
		result, err := ComputeSimpleInterest(calc)
		if err != nil {
			return domain.Outcome{}, err
		}
		e.debugf("simple interest: interest=%.2f total=%.2f", result.Interest, result.TotalAmount)
		return domain.Outcome{Kind: domain.KindSimple, Interest: &result}, nil
	case domain.CompoundInterest:
		result, err := ComputeCompoundInterest(calc)
		if err != nil {
			return domain.Outcome{}, err
		}
		e.debugf("compound interest: interest=%.2f total=%.2f", result.Interest, result.TotalAmount)
		return domain.Outcome{Kind: domain.KindCompound, Interest: &result}, nil
	case nil:
		return domain.Outcome{}, fmt.Errorf("%w: no calculation given", ErrInvalidInput)
	default:
		return domain.Outcome{}, fmt.Errorf("%w: unsupported calculation %T", ErrInvalidInput, c)
	}
}

// BuildReport runs the full loan pipeline for a request: summary, schedule,
// analysis, distribution and payoff scenarios. A failed scenario is recorded on
// the scenario itself; only summary and schedule failures fail the report.
func (e *Engine) BuildReport(ctx context.Context, req domain.LoanRequest) (*domain.LoanReport, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	summary, err := ComputeLoanSummary(req.Loan)
	if err != nil {
		return nil, fmt.Errorf("loan summary: %w", err)
	}

	schedule, err := GenerateSchedule(req.Loan, summary.MonthlyPayment)
	if err != nil {
		return nil, fmt.Errorf("amortization schedule: %w", err)
	}
	if !schedule.IsPaidOff() {
		last, _ := schedule.Last()
		e.Logger.Warnf("schedule ends with balance %.2f after %d payments", last.RemainingBalance, last.Period)
		return nil, fmt.Errorf("%w: schedule ends with balance %.2f after %d payments", ErrNonFiniteResult, last.RemainingBalance, last.Period)
	}
	if last, _ := schedule.Last(); len(schedule) == summary.NumberOfPayments &&
		!decimal.NewMoney(last.CumulativeInterest).WithinCents(decimal.NewMoney(summary.TotalInterest), 1) {
		e.Logger.Warnf("schedule interest %.2f differs from summary %.2f", last.CumulativeInterest, summary.TotalInterest)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	extras := ExtraPaymentsFromAmounts(summary.MonthlyPayment, req.ExtraPayments)
	scenarios := SweepPayoffScenarios(req.Loan, summary, extras)
	for _, sc := range scenarios {
		if !sc.Achievable {
			e.Logger.Infof("scenario %q not achievable: %s", sc.Label, sc.Reason)
		}
	}

	report := &domain.LoanReport{
		Name:         req.Name,
		Terms:        req.Loan,
		Summary:      summary,
		Schedule:     schedule,
		Analysis:     Analyze(req.Loan, summary),
		Distribution: Distribution(schedule),
		Scenarios:    scenarios,
		GeneratedAt:  nowFunc(),
	}

	if req.StartDate != nil {
		start := domain.NewMonth(req.StartDate.Time)
		report.StartDate = &start
		payoff := domain.NewMonth(dateutil.PayoffDate(start.Time, len(schedule)))
		report.PayoffMonth = &payoff
		for i := range report.Scenarios {
			if !report.Scenarios[i].Achievable {
				continue
			}
			m := domain.NewMonth(dateutil.PayoffDate(start.Time, report.Scenarios[i].MonthsToPayoff))
			report.Scenarios[i].PayoffMonth = &m
		}
	}

	e.debugf("report %q: %d records, %d scenarios", req.Name, len(schedule), len(scenarios))
	return report, nil
}

func (e *Engine) debugf(format string, args ...any) {
	if e.Debug {
		e.Logger.Debugf(format, args...)
	}
}
