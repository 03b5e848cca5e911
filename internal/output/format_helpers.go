package output

import (
	"strconv"

	"github.com/multicalc/loancalc/pkg/dateutil"
	"github.com/multicalc/loancalc/pkg/decimal"
)

// FormatCurrency formats an amount as USD with grouping and 2 decimals.
// Kept here so it can be reused by multiple formatters and unit tested in isolation.
func FormatCurrency(amount float64) string { return decimal.NewMoney(amount).Format() }

// FormatPercentage formats a percentage value with 2 decimals.
func FormatPercentage(amount float64) string { return decimal.FormatPercent(amount, 2) }

// FormatAmount renders a cent-rounded amount without symbol or grouping, for CSV cells.
func FormatAmount(amount float64) string { return decimal.NewMoney(amount).Round().String() }

// FormatDuration renders a month count as years and months.
func FormatDuration(months int) string { return dateutil.FormatYearsMonths(months) }

func intToString(i int) string { return strconv.Itoa(i) }

func boolToString(b bool) string { return strconv.FormatBool(b) }

// FloatCents rounds an amount to cents for serialized series.
func FloatCents(amount float64) float64 { return decimal.NewMoney(amount).Float64() }
