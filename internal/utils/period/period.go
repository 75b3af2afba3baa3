// Package period splits expense slices into calendar periods. Dates are
// carried as bare YYYY-MM-DD strings; they are pinned to 12:00 UTC before any
// field extraction so that a date never shifts by a day regardless of the
// host timezone.
package period

import (
	"fmt"
	"time"

	"github.com/SscSPs/expense_tracker_app/internal/core/domain"
)

const dayLayout = "2006-01-02"

// ParseDay parses a YYYY-MM-DD string into a time pinned at noon UTC.
func ParseDay(s string) (time.Time, error) {
	t, err := time.Parse(dayLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 12, 0, 0, 0, time.UTC), nil
}

// FormatDay renders a time back to its YYYY-MM-DD form.
func FormatDay(t time.Time) string {
	return t.Format(dayLayout)
}

// YearMonth extracts the calendar year and 1-based month of an expense date.
// Malformed dates report (0, 0); they are kept out of every period rather
// than guessed at.
func YearMonth(date string) (year, month int) {
	t, err := ParseDay(date)
	if err != nil {
		return 0, 0
	}
	return t.Year(), int(t.Month())
}

// Previous returns the calendar month immediately before (year, month),
// wrapping January back to December of the prior year.
func Previous(year, month int) (int, int) {
	if month == 1 {
		return year - 1, 12
	}
	return year, month - 1
}

// Partition holds the three slices every view needs: the selected month, the
// month before it, and the whole selected year.
type Partition struct {
	Current    []domain.Expense
	Previous   []domain.Expense
	YearToDate []domain.Expense
}

// Split partitions records by comparing calendar fields only. month is
// 1-based.
func Split(records []domain.Expense, year, month int) Partition {
	prevYear, prevMonth := Previous(year, month)

	var p Partition
	for _, r := range records {
		y, m := YearMonth(r.Date)
		if y == 0 {
			continue
		}
		if y == year {
			p.YearToDate = append(p.YearToDate, r)
		}
		switch {
		case y == year && m == month:
			p.Current = append(p.Current, r)
		case y == prevYear && m == prevMonth:
			p.Previous = append(p.Previous, r)
		}
	}
	return p
}

// FilterYear returns the records whose date falls in the given year.
func FilterYear(records []domain.Expense, year int) []domain.Expense {
	var out []domain.Expense
	for _, r := range records {
		if y, _ := YearMonth(r.Date); y == year {
			out = append(out, r)
		}
	}
	return out
}
