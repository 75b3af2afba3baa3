package domain

import (
	"github.com/shopspring/decimal"
)

// RateOverride is the user-entered ARS→USD exchange rate for one month.
// At most one override exists per month key.
type RateOverride struct {
	UserID   string          `json:"userID"`
	MonthKey string          `json:"monthKey"` // Zero-padded YYYY-MM
	Rate     decimal.Decimal `json:"rate"`     // Must be > 0
	AuditFields
}

// RateMap is the sparse month key → rate mapping consulted by the resolver.
type RateMap map[string]decimal.Decimal
