package services

import (
	"context"

	"github.com/SscSPs/expense_tracker_app/internal/core/domain"
)

// AnalyticsSvcFacade defines the read-only aggregation views.
type AnalyticsSvcFacade interface {
	// GetMonthlyAnalytics computes the month view: breakdowns by category
	// and payment method, the month-over-month comparison and the top-N
	// listing, with the month's resolved exchange rate.
	GetMonthlyAnalytics(ctx context.Context, userID string, year int, month int) (*domain.MonthlyAnalytics, error)

	// GetYearSummary computes the annual view: per-month totals with USD
	// conversion, averages and the recurring-expense clusters.
	GetYearSummary(ctx context.Context, userID string, year int) (*domain.YearSummary, error)
}
