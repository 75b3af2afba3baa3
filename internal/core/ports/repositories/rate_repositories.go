package repositories

import (
	"context"

	"github.com/SscSPs/expense_tracker_app/internal/core/domain"
)

// RateReader defines read operations for exchange rate overrides
type RateReader interface {
	// FindRateOverrides retrieves every stored rate override for a user.
	FindRateOverrides(ctx context.Context, userID string) ([]domain.RateOverride, error)
}

// RateWriter defines write operations for exchange rate overrides
type RateWriter interface {
	// UpsertRateOverride inserts or replaces the override for a month.
	UpsertRateOverride(ctx context.Context, override domain.RateOverride) error

	// DeleteRateOverride removes the override for a month.
	DeleteRateOverride(ctx context.Context, userID string, monthKey string) error
}

// RateRepositoryFacade combines all rate-related repository interfaces
type RateRepositoryFacade interface {
	RateReader
	RateWriter
}
