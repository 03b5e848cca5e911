//go:build unit

package output

import (
	"testing"
	"time"

	"github.com/multicalc/loancalc/internal/domain"
)

func TestIntToString(t *testing.T) {
	if got, want := intToString(360), "360"; got != want {
		t.Errorf("intToString(360) = %q, want %q", got, want)
	}
}

func TestBoolToString(t *testing.T) {
	if got, want := boolToString(true), "true"; got != want {
		t.Errorf("boolToString(true) = %q, want %q", got, want)
	}
	if got, want := boolToString(false), "false"; got != want {
		t.Errorf("boolToString(false) = %q, want %q", got, want)
	}
}

func TestMonthCell(t *testing.T) {
	if got := monthCell(nil); got != "" {
		t.Errorf("monthCell(nil) = %q", got)
	}
	m := domain.NewMonth(time.Date(2030, 7, 19, 0, 0, 0, 0, time.UTC))
	if got, want := monthCell(&m), "2030-07"; got != want {
		t.Errorf("monthCell = %q, want %q", got, want)
	}
}
