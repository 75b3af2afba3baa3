package models

import (
	"github.com/shopspring/decimal"
)

// RateOverride is the persistence model for a per-month exchange rate.
// (user_id, month_key) is the primary key, so at most one rate per month.
type RateOverride struct {
	UserID   string          `db:"user_id" json:"userID"`
	MonthKey string          `db:"month_key" json:"monthKey"`
	Rate     decimal.Decimal `db:"rate" json:"rate"`
	AuditFields
}
