package domain

import (
	"github.com/shopspring/decimal"
)

// DimensionTotal is one row of a group-by breakdown (by category or by
// payment method). Pct is the row's share of the slice total in [0, 100].
type DimensionTotal struct {
	Label string          `json:"label"`
	Count int             `json:"count"`
	Total decimal.Decimal `json:"total"`
	Pct   float64         `json:"pct"`
}

// CategoryDelta compares one category's spend between the current and the
// previous month. Pct is only meaningful when HasBoth is true; when activity
// exists in a single period the UI shows a placeholder instead of ±100%.
type CategoryDelta struct {
	Category string          `json:"category"`
	Current  decimal.Decimal `json:"current"`
	Previous decimal.Decimal `json:"previous"`
	Delta    decimal.Decimal `json:"delta"`
	Pct      float64         `json:"pct"`
	HasBoth  bool            `json:"hasBoth"`
}

// MonthComparison is the month-over-month view: headline totals (Investments
// excluded) plus per-category rows.
type MonthComparison struct {
	CurrentTotal  decimal.Decimal `json:"currentTotal"`
	PreviousTotal decimal.Decimal `json:"previousTotal"`
	TotalDelta    decimal.Decimal `json:"totalDelta"`
	TotalPct      float64         `json:"totalPct"`
	Categories    []CategoryDelta `json:"categories"`
}

// RankedExpense is one entry of the top-N listing, annotated with its share
// of the slice total.
type RankedExpense struct {
	Expense Expense `json:"expense"`
	Pct     float64 `json:"pct"`
}

// RecurringGroup is a cluster of records sharing a normalized note (or
// category when the note is empty) that appears in two or more distinct
// months of one year.
type RecurringGroup struct {
	Note       string          `json:"note"`
	Category   string          `json:"category"` // First-seen member's category
	MonthCount int             `json:"monthCount"`
	Count      int             `json:"count"`
	Total      decimal.Decimal `json:"total"`
	Avg        decimal.Decimal `json:"avg"`
	Min        decimal.Decimal `json:"min"`
	Max        decimal.Decimal `json:"max"`
}

// MonthlyAnalytics bundles everything the month view renders: breakdowns by
// both dimensions, the month-over-month comparison, the top-N listing and the
// resolved exchange rate.
type MonthlyAnalytics struct {
	Year             int              `json:"year"`
	Month            int              `json:"month"`
	HeadlineTotal    decimal.Decimal  `json:"headlineTotal"`
	ByCategory       []DimensionTotal `json:"byCategory"`
	ByPaymentMethod  []DimensionTotal `json:"byPaymentMethod"`
	Comparison       MonthComparison  `json:"comparison"`
	Top              []RankedExpense  `json:"top"`
	Rate             decimal.Decimal  `json:"rate"`
	RateHasOverride  bool             `json:"rateHasOverride"`
	HeadlineTotalUSD decimal.Decimal  `json:"headlineTotalUSD"`
}

// MonthTotal is one month's slot of a year summary. Rate is the resolved
// ARS→USD rate; HasCustomRate reports whether the month had its own override
// or fell back to a prior month (or the default).
type MonthTotal struct {
	Month         int             `json:"month"` // 1..12
	Total         decimal.Decimal `json:"total"`
	Count         int             `json:"count"`
	Rate          decimal.Decimal `json:"rate"`
	HasCustomRate bool            `json:"hasCustomRate"`
	TotalUSD      decimal.Decimal `json:"totalUSD"`
}

// YearSummary aggregates a full year: per-month totals, USD conversion,
// averages over months with data, and the most/least expensive months.
type YearSummary struct {
	Year           int             `json:"year"`
	Months         []MonthTotal    `json:"months"` // Always 12 entries, January first
	Total          decimal.Decimal `json:"total"`
	TotalUSD       decimal.Decimal `json:"totalUSD"`
	MonthsWithData int             `json:"monthsWithData"`
	AverageMonthly decimal.Decimal `json:"averageMonthly"`
	MaxMonth       *MonthTotal     `json:"maxMonth,omitempty"`
	MinMonth       *MonthTotal     `json:"minMonth,omitempty"`
	Recurring      []RecurringGroup `json:"recurring"`
}
