package dto

import (
	"github.com/SscSPs/expense_tracker_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// UpsertRateRequest sets the ARS→USD rate for one month. MonthKey must be a
// zero-padded YYYY-MM string.
type UpsertRateRequest struct {
	MonthKey string          `json:"monthKey" binding:"required,len=7"`
	Rate     decimal.Decimal `json:"rate" binding:"required"`
}

// RatesResponse returns the user's full month key → rate map. Upserts return
// the updated map so the client can replace its cache wholesale.
type RatesResponse struct {
	Rates map[string]decimal.Decimal `json:"rates"`
}

// ToRatesResponse converts a domain RateMap to its response DTO
func ToRatesResponse(m domain.RateMap) RatesResponse {
	out := make(map[string]decimal.Decimal, len(m))
	for k, v := range m {
		out[k] = v
	}
	return RatesResponse{Rates: out}
}

// ResolvedRateResponse is the effective rate for one month after fallback.
type ResolvedRateResponse struct {
	MonthKey    string          `json:"monthKey"`
	Rate        decimal.Decimal `json:"rate"`
	HasOverride bool            `json:"hasOverride"`
}
