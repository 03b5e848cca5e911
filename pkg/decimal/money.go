package decimal

import (
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// Money is a cent-precision view of an engine amount, used wherever figures are
// rounded or rendered for people.
type Money struct {
	decimal.Decimal
}

var hundred = decimal.NewFromInt(100)

// NewMoney creates a new Money instance from a float64
func NewMoney(value float64) Money {
	return Money{decimal.NewFromFloat(value)}
}

// NewMoneyFromDecimal creates a new Money instance from a decimal.Decimal
func NewMoneyFromDecimal(d decimal.Decimal) Money {
	return Money{d}
}

// NewMoneyFromString creates a new Money instance from a string
func NewMoneyFromString(value string) (Money, error) {
	d, err := decimal.NewFromString(strings.ReplaceAll(strings.TrimPrefix(strings.TrimSpace(value), "$"), ",", ""))
	if err != nil {
		return Money{}, err
	}
	return Money{d}, nil
}

// Zero returns a zero Money amount
func Zero() Money {
	return Money{decimal.Zero}
}

// Sum adds float amounts exactly in decimal, avoiding float accumulation drift.
func Sum(values ...float64) Money {
	total := decimal.Zero
	for _, v := range values {
		total = total.Add(decimal.NewFromFloat(v))
	}
	return Money{total}
}

// Round rounds to cents, half away from zero
func (m Money) Round() Money {
	return Money{m.Decimal.Round(2)}
}

// Cents returns the amount as a whole number of cents after rounding
func (m Money) Cents() int64 {
	return m.Decimal.Mul(hundred).Round(0).IntPart()
}

// Float64 returns the cent-rounded amount as a float64
func (m Money) Float64() float64 {
	return m.Round().InexactFloat64()
}

// Add adds another Money amount
func (m Money) Add(other Money) Money {
	return Money{m.Decimal.Add(other.Decimal)}
}

// Sub subtracts another Money amount
func (m Money) Sub(other Money) Money {
	return Money{m.Decimal.Sub(other.Decimal)}
}

// Mul multiplies by a decimal factor
func (m Money) Mul(factor decimal.Decimal) Money {
	return Money{m.Decimal.Mul(factor)}
}

// Div divides by a decimal factor
func (m Money) Div(factor decimal.Decimal) Money {
	return Money{m.Decimal.Div(factor)}
}

// Abs returns the absolute amount
func (m Money) Abs() Money {
	return Money{m.Decimal.Abs()}
}

// GreaterThan checks if this amount is greater than another
func (m Money) GreaterThan(other Money) bool {
	return m.Decimal.GreaterThan(other.Decimal)
}

// LessThan checks if this amount is less than another
func (m Money) LessThan(other Money) bool {
	return m.Decimal.LessThan(other.Decimal)
}

// Equal checks if this amount equals another
func (m Money) Equal(other Money) bool {
	return m.Decimal.Equal(other.Decimal)
}

// WithinCents reports whether two amounts differ by at most n cents.
func (m Money) WithinCents(other Money, n int64) bool {
	return m.Sub(other).Abs().LessThanOrEqual(decimal.New(n, -2))
}

// String returns the amount with exactly two decimals, no grouping
func (m Money) String() string {
	return m.Decimal.StringFixed(2)
}

// Format renders the amount as US currency with thousands separators, e.g. $1,199.10
func (m Money) Format() string {
	r := m.Round()
	s := "$" + humanize.FormatFloat("#,###.##", r.Abs().InexactFloat64())
	if r.IsNegative() {
		return "-" + s
	}
	return s
}

// FormatPercent renders a percentage value with the given number of decimals
func FormatPercent(value float64, places int32) string {
	return decimal.NewFromFloat(value).StringFixed(places) + "%"
}
