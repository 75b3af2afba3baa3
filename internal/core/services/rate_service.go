package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/expense_tracker_app/internal/apperrors"
	"github.com/SscSPs/expense_tracker_app/internal/core/domain"
	portsrepo "github.com/SscSPs/expense_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/expense_tracker_app/internal/core/ports/services"
	"github.com/SscSPs/expense_tracker_app/internal/utils/rates"
	"github.com/shopspring/decimal"
)

// rateService implements the RateSvcFacade interface
type rateService struct {
	BaseService
	rateRepo portsrepo.RateRepositoryFacade
}

// NewRateService creates a new rate service with the provided dependencies
func NewRateService(rateRepo portsrepo.RateRepositoryFacade) portssvc.RateSvcFacade {
	return &rateService{rateRepo: rateRepo}
}

var _ portssvc.RateSvcFacade = (*rateService)(nil)

func (s *rateService) loadRateMap(ctx context.Context, userID string) (domain.RateMap, error) {
	overrides, err := s.rateRepo.FindRateOverrides(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load rate overrides", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to load rate overrides: %w", err)
	}
	m := make(domain.RateMap, len(overrides))
	for _, o := range overrides {
		m[o.MonthKey] = o.Rate
	}
	return m, nil
}

// GetRates retrieves the full map of stored overrides.
func (s *rateService) GetRates(ctx context.Context, userID string) (domain.RateMap, error) {
	return s.loadRateMap(ctx, userID)
}

// ResolveRate resolves the effective rate for a month after fallback.
func (s *rateService) ResolveRate(ctx context.Context, userID string, monthKey string) (decimal.Decimal, bool, error) {
	if err := validateMonthKey(monthKey); err != nil {
		return decimal.Zero, false, err
	}
	m, err := s.loadRateMap(ctx, userID)
	if err != nil {
		return decimal.Zero, false, err
	}
	return rates.Resolve(monthKey, m), rates.HasOverride(monthKey, m), nil
}

// UpsertRate stores a month's override and returns the full updated map.
func (s *rateService) UpsertRate(ctx context.Context, userID string, monthKey string, rate decimal.Decimal) (domain.RateMap, error) {
	if err := validateMonthKey(monthKey); err != nil {
		return nil, err
	}
	if rate.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: rate must be positive", apperrors.ErrValidation)
	}

	now := time.Now()
	override := domain.RateOverride{
		UserID:   userID,
		MonthKey: monthKey,
		Rate:     rate,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	if err := s.rateRepo.UpsertRateOverride(ctx, override); err != nil {
		s.LogError(ctx, err, "Failed to upsert rate override",
			slog.String("user_id", userID), slog.String("month_key", monthKey))
		return nil, fmt.Errorf("failed to upsert rate override: %w", err)
	}

	return s.loadRateMap(ctx, userID)
}

// DeleteRate removes a month's override and returns the full updated map.
func (s *rateService) DeleteRate(ctx context.Context, userID string, monthKey string) (domain.RateMap, error) {
	if err := validateMonthKey(monthKey); err != nil {
		return nil, err
	}
	if err := s.rateRepo.DeleteRateOverride(ctx, userID, monthKey); err != nil {
		s.LogError(ctx, err, "Failed to delete rate override",
			slog.String("user_id", userID), slog.String("month_key", monthKey))
		return nil, err
	}
	return s.loadRateMap(ctx, userID)
}

// validateMonthKey enforces the zero-padded YYYY-MM shape the resolver's
// lexicographic ordering depends on.
func validateMonthKey(monthKey string) error {
	var year, month int
	if _, err := fmt.Sscanf(monthKey, "%4d-%2d", &year, &month); err != nil || len(monthKey) != 7 {
		return fmt.Errorf("%w: month key must be YYYY-MM, got '%s'", apperrors.ErrValidation, monthKey)
	}
	if month < 1 || month > 12 {
		return fmt.Errorf("%w: month key month out of range in '%s'", apperrors.ErrValidation, monthKey)
	}
	if rates.MonthKey(year, month) != monthKey {
		return fmt.Errorf("%w: month key must be zero padded, got '%s'", apperrors.ErrValidation, monthKey)
	}
	return nil
}
