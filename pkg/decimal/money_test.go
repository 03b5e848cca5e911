package decimal

import (
	"testing"

	stddec "github.com/shopspring/decimal"
)

func TestConstructors(t *testing.T) {
	m := NewMoney(1199.1010503)
	if m.Round().String() != "1199.10" {
		t.Fatalf("NewMoney round mismatch: got %s", m.Round().String())
	}

	d := stddec.NewFromFloat(10.125)
	m2 := NewMoneyFromDecimal(d)
	if !m2.Decimal.Equal(d) {
		t.Fatalf("NewMoneyFromDecimal mismatch: got %s want %s", m2.Decimal, d)
	}

	m3, err := NewMoneyFromString(" $231,676.38 ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m3.String() != "231676.38" {
		t.Fatalf("NewMoneyFromString mismatch: got %s", m3.String())
	}

	if _, err := NewMoneyFromString("not-a-number"); err == nil {
		t.Fatalf("expected error for invalid string")
	}
}

func TestRoundingAndCents(t *testing.T) {
	cases := []struct {
		in    string
		out   string
		cents int64
	}{
		{"2.344", "2.34", 234},
		{"2.345", "2.35", 235},
		{"416.6666667", "416.67", 41667},
		{"-0.005", "-0.01", -1},
	}
	for _, c := range cases {
		m, _ := NewMoneyFromString(c.in)
		if got := m.Round().String(); got != c.out {
			t.Fatalf("round(%s) got %s want %s", c.in, got, c.out)
		}
		if got := m.Cents(); got != c.cents {
			t.Fatalf("cents(%s) got %d want %d", c.in, got, c.cents)
		}
	}
}

func TestSumAvoidsFloatDrift(t *testing.T) {
	values := make([]float64, 10)
	for i := range values {
		values[i] = 0.1
	}
	if got := Sum(values...).String(); got != "1.00" {
		t.Fatalf("Sum got %s want 1.00", got)
	}
	if !Sum().IsZero() {
		t.Fatalf("empty Sum should be zero")
	}
}

func TestArithmeticAndComparisons(t *testing.T) {
	a := NewMoney(10.10)
	b := NewMoney(5.05)
	if got := a.Add(b).String(); got != "15.15" {
		t.Fatalf("Add got %s", got)
	}
	if got := a.Sub(b).String(); got != "5.05" {
		t.Fatalf("Sub got %s", got)
	}
	if got := a.Mul(stddec.NewFromFloat(2.5)).String(); got != "25.25" {
		t.Fatalf("Mul got %s", got)
	}
	if got := a.Div(stddec.NewFromInt(2)).String(); got != "5.05" {
		t.Fatalf("Div got %s", got)
	}
	if !a.GreaterThan(b) || !b.LessThan(a) || a.Equal(b) {
		t.Fatalf("comparison logic failure")
	}
	if !NewMoney(100.004).WithinCents(NewMoney(100), 1) {
		t.Fatalf("WithinCents should accept sub-cent difference")
	}
	if NewMoney(100.02).WithinCents(NewMoney(100), 1) {
		t.Fatalf("WithinCents should reject two-cent difference")
	}
	if got := NewMoney(-3.5).Abs().String(); got != "3.50" {
		t.Fatalf("Abs got %s", got)
	}
	if got := NewMoney(416.666666).Float64(); got != 416.67 {
		t.Fatalf("Float64 got %v", got)
	}
}

func TestFormat(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "$0.00"},
		{12.5, "$12.50"},
		{999.999, "$1,000.00"},
		{1199.10, "$1,199.10"},
		{231676.3825, "$231,676.38"},
		{1500000, "$1,500,000.00"},
		{-42.1, "-$42.10"},
		{-0.001, "$0.00"},
	}
	for _, c := range cases {
		if got := NewMoney(c.in).Format(); got != c.want {
			t.Fatalf("Format(%v) got %q want %q", c.in, got, c.want)
		}
	}
}

func TestFormatPercent(t *testing.T) {
	if got := FormatPercent(115.83819, 2); got != "115.84%" {
		t.Fatalf("FormatPercent got %s", got)
	}
	if got := FormatPercent(0.5, 4); got != "0.5000%" {
		t.Fatalf("FormatPercent got %s", got)
	}
}
