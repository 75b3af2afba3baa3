package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/expense_tracker_app/internal/apperrors"
	"github.com/SscSPs/expense_tracker_app/internal/core/domain"
	portssvc "github.com/SscSPs/expense_tracker_app/internal/core/ports/services"
	"github.com/SscSPs/expense_tracker_app/internal/utils/aggregation"
	"github.com/SscSPs/expense_tracker_app/internal/utils/period"
	"github.com/SscSPs/expense_tracker_app/internal/utils/rates"
	"golang.org/x/sync/errgroup"
)

// analyticsService implements the AnalyticsSvcFacade interface. It is a pure
// read-side composition of the expense, rate and settings services; all the
// arithmetic lives in the aggregation package.
type analyticsService struct {
	BaseService
	expenses portssvc.ExpenseReaderSvc
	rateSvc  portssvc.RateReaderSvc
	settings portssvc.SettingsSvcFacade
}

// NewAnalyticsService creates a new analytics service with the provided dependencies
func NewAnalyticsService(expenses portssvc.ExpenseReaderSvc, rateSvc portssvc.RateReaderSvc, settings portssvc.SettingsSvcFacade) portssvc.AnalyticsSvcFacade {
	return &analyticsService{
		expenses: expenses,
		rateSvc:  rateSvc,
		settings: settings,
	}
}

var _ portssvc.AnalyticsSvcFacade = (*analyticsService)(nil)

// loadYearInputs fetches the year's expenses, the rate map and the user's
// settings concurrently.
func (s *analyticsService) loadYearInputs(ctx context.Context, userID string, year int) ([]domain.Expense, domain.RateMap, *domain.Settings, error) {
	var (
		records  []domain.Expense
		rateMap  domain.RateMap
		settings *domain.Settings
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		records, err = s.expenses.ListExpensesByYear(gctx, userID, year)
		return err
	})
	g.Go(func() error {
		var err error
		rateMap, err = s.rateSvc.GetRates(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		settings, err = s.settings.GetSettings(gctx, userID)
		return err
	})
	if err := g.Wait(); err != nil {
		s.LogError(ctx, err, "Failed to load analytics inputs",
			slog.String("user_id", userID), slog.Int("year", year))
		return nil, nil, nil, fmt.Errorf("failed to load analytics inputs: %w", err)
	}
	return records, rateMap, settings, nil
}

// GetMonthlyAnalytics computes the month view. The whole year is loaded once
// and partitioned locally so that the previous-month comparison and the month
// slice stay consistent with each other.
func (s *analyticsService) GetMonthlyAnalytics(ctx context.Context, userID string, year int, month int) (*domain.MonthlyAnalytics, error) {
	if month < 1 || month > 12 {
		return nil, fmt.Errorf("%w: month must be between 1 and 12", apperrors.ErrValidation)
	}

	// A January view needs December of the prior year for the comparison,
	// so load both years' records when the boundary is in play.
	records, rateMap, settings, err := s.loadYearInputs(ctx, userID, year)
	if err != nil {
		return nil, err
	}
	if month == 1 {
		prior, err := s.expenses.ListExpensesByYear(ctx, userID, year-1)
		if err != nil {
			return nil, err
		}
		records = append(records, prior...)
	}

	parts := period.Split(records, year, month)

	monthKey := rates.MonthKey(year, month)
	rate := rates.Resolve(monthKey, rateMap)
	hasOverride := rates.HasOverride(monthKey, rateMap)

	headline := aggregation.HeadlineTotal(parts.Current)
	headlineUSD := headline
	if rate.IsPositive() {
		headlineUSD = headline.Div(rate)
	}

	result := &domain.MonthlyAnalytics{
		Year:             year,
		Month:            month,
		HeadlineTotal:    headline,
		ByCategory:       aggregation.GroupByDimension(parts.Current, settings.Categories, aggregation.ByCategory),
		ByPaymentMethod:  aggregation.GroupByDimension(parts.Current, settings.PaymentMethods, aggregation.ByPaymentMethod),
		Comparison:       aggregation.MonthOverMonth(parts.Current, parts.Previous, settings.Categories),
		Top:              aggregation.TopN(parts.Current, aggregation.TopNDefault),
		Rate:             rate,
		RateHasOverride:  hasOverride,
		HeadlineTotalUSD: headlineUSD,
	}
	return result, nil
}

// GetYearSummary computes the annual view.
func (s *analyticsService) GetYearSummary(ctx context.Context, userID string, year int) (*domain.YearSummary, error) {
	records, rateMap, _, err := s.loadYearInputs(ctx, userID, year)
	if err != nil {
		return nil, err
	}

	summary := aggregation.BuildYearSummary(period.FilterYear(records, year), year, rateMap)
	return &summary, nil
}
