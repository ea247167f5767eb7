package financing

import (
	"time"

	"star-gestao-backend/internal/domain"
)

// DaysInMonth returns the number of days in a given month
func DaysInMonth(year, month int) int {
	if month == 2 {
		if (year%4 == 0 && year%100 != 0) || (year%400 == 0) {
			return 29
		}
		return 28
	}

	// April, June, September, November
	if month == 4 || month == 6 || month == 9 || month == 11 {
		return 30
	}

	return 31
}

// DaysBetween counts calendar days from a to b (negative when b is before a).
func DaysBetween(a, b domain.Date) int {
	return int(b.Sub(a.Time) / (24 * time.Hour))
}

// MonthsBetween measures the distance from one date to another in months:
// whole calendar months plus the leftover days as a fraction of the month
// they fall in. Returns 0 when to is not after from.
func MonthsBetween(from, to domain.Date) float64 {
	if !to.After(from) {
		return 0
	}

	y1, m1, _ := from.Date()
	y2, m2, _ := to.Date()
	months := (y2-y1)*12 + int(m2-m1)
	// the day of month may not have been reached yet in the final month
	for months > 0 && from.AddMonths(months).After(to) {
		months--
	}

	anchor := from.AddMonths(months)
	leftover := DaysBetween(anchor, to)
	if leftover == 0 {
		return float64(months)
	}
	span := DaysBetween(anchor, from.AddMonths(months+1))
	return float64(months) + float64(leftover)/float64(span)
}
