// Package rates resolves the effective ARS→USD exchange rate for a month
// from the sparse map of user-entered monthly overrides.
package rates

import (
	"fmt"
	"sort"

	"github.com/SscSPs/expense_tracker_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DefaultRate is used when no override exists at or before the target month.
var DefaultRate = decimal.NewFromInt(1000)

// MonthKey builds the zero-padded YYYY-MM key for a year and 1-based month.
// Zero padding is what makes lexicographic order equal chronological order;
// every comparison in this package depends on that exact format.
func MonthKey(year, month int) string {
	return fmt.Sprintf("%04d-%02d", year, month)
}

// Resolve returns the effective rate for monthKey: the exact override when
// present, otherwise the override of the chronologically latest month at or
// before monthKey, otherwise DefaultRate. It never fails.
func Resolve(monthKey string, overrides domain.RateMap) decimal.Decimal {
	if r, ok := overrides[monthKey]; ok {
		return r
	}

	keys := make([]string, 0, len(overrides))
	for k := range overrides {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for i := len(keys) - 1; i >= 0; i-- {
		if keys[i] <= monthKey {
			return overrides[keys[i]]
		}
	}
	return DefaultRate
}

// HasOverride reports whether the month has its own entry, as opposed to
// falling back to a prior month or the default.
func HasOverride(monthKey string, overrides domain.RateMap) bool {
	_, ok := overrides[monthKey]
	return ok
}
