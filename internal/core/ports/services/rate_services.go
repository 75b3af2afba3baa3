package services

import (
	"context"

	"github.com/SscSPs/expense_tracker_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RateReaderSvc defines read operations for exchange rate overrides
type RateReaderSvc interface {
	// GetRates retrieves the full map of stored overrides, keyed by
	// "YYYY-MM".
	GetRates(ctx context.Context, userID string) (domain.RateMap, error)

	// ResolveRate resolves the effective ARS→USD rate for a month: the
	// month's own override, else the latest earlier override, else the
	// built-in default. The bool reports whether the month had its own.
	ResolveRate(ctx context.Context, userID string, monthKey string) (decimal.Decimal, bool, error)
}

// RateWriterSvc defines write operations for exchange rate overrides
type RateWriterSvc interface {
	// UpsertRate stores a month's override and returns the full updated map.
	UpsertRate(ctx context.Context, userID string, monthKey string, rate decimal.Decimal) (domain.RateMap, error)

	// DeleteRate removes a month's override and returns the full updated map.
	DeleteRate(ctx context.Context, userID string, monthKey string) (domain.RateMap, error)
}

// RateSvcFacade combines all rate-related service interfaces
type RateSvcFacade interface {
	RateReaderSvc
	RateWriterSvc
}
