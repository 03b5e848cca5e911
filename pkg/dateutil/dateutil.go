package dateutil

import (
	"fmt"
	"time"
)

// FirstOfMonth truncates a date to midnight UTC on the first day of its month
func FirstOfMonth(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// AddMonths adds a specified number of months to a date
func AddMonths(date time.Time, months int) time.Time {
	return date.AddDate(0, months, 0)
}

// PaymentDate returns the due month of the given 1-based payment period when the
// first payment falls in the month of start.
func PaymentDate(start time.Time, period int) time.Time {
	if period < 1 {
		period = 1
	}
	return AddMonths(FirstOfMonth(start), period-1)
}

// PayoffDate returns the month of the final payment for a loan retired in months payments
func PayoffDate(start time.Time, months int) time.Time {
	return PaymentDate(start, months)
}

// YearsMonths splits a month count into whole years and remaining months
func YearsMonths(months int) (years, rem int) {
	if months < 0 {
		months = 0
	}
	return months / 12, months % 12
}

// FormatYearsMonths renders a month count as "N years, M months"
func FormatYearsMonths(months int) string {
	y, m := YearsMonths(months)
	return fmt.Sprintf("%d %s, %d %s", y, plural(y, "year"), m, plural(m, "month"))
}

func plural(n int, unit string) string {
	if n == 1 {
		return unit
	}
	return unit + "s"
}
