package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/expense_tracker_app/internal/apperrors"
	"github.com/SscSPs/expense_tracker_app/internal/core/domain"
	portsrepo "github.com/SscSPs/expense_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/expense_tracker_app/internal/core/ports/services"
	"github.com/SscSPs/expense_tracker_app/internal/dto"
	"github.com/SscSPs/expense_tracker_app/internal/utils/period"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// expenseService implements the ExpenseSvcFacade interface
type expenseService struct {
	BaseService
	expenseRepo portsrepo.ExpenseRepositoryFacade
	settings    portssvc.SettingsSvcFacade
}

// NewExpenseService creates a new expense service with the provided dependencies
func NewExpenseService(expenseRepo portsrepo.ExpenseRepositoryFacade, settings portssvc.SettingsSvcFacade) portssvc.ExpenseSvcFacade {
	return &expenseService{
		expenseRepo: expenseRepo,
		settings:    settings,
	}
}

var _ portssvc.ExpenseSvcFacade = (*expenseService)(nil)

// validateLabels checks the payment method and category against the user's
// configured label sets. Unknown labels are rejected at write time; labels
// removed later never invalidate stored records.
func (s *expenseService) validateLabels(ctx context.Context, userID, paymentMethod, category string) error {
	settings, err := s.settings.GetSettings(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to load settings for label validation: %w", err)
	}
	if !contains(settings.PaymentMethods, paymentMethod) {
		return fmt.Errorf("%w: unknown payment method '%s'", apperrors.ErrValidation, paymentMethod)
	}
	if !contains(settings.Categories, category) {
		return fmt.Errorf("%w: unknown category '%s'", apperrors.ErrValidation, category)
	}
	return nil
}

func contains(labels []string, label string) bool {
	for _, l := range labels {
		if l == label {
			return true
		}
	}
	return false
}

// CreateExpense validates and persists a new expense.
func (s *expenseService) CreateExpense(ctx context.Context, userID string, req dto.CreateExpenseRequest) (*domain.Expense, error) {
	// Date format is handled by DTO binding tags.
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}
	if _, err := period.ParseDay(req.Date); err != nil {
		return nil, fmt.Errorf("%w: invalid date '%s'", apperrors.ErrValidation, req.Date)
	}
	if err := s.validateLabels(ctx, userID, req.PaymentMethod, req.Category); err != nil {
		return nil, err
	}

	now := time.Now()
	expense := domain.Expense{
		ExpenseID:     uuid.NewString(),
		UserID:        userID,
		Date:          req.Date,
		Amount:        req.Amount,
		PaymentMethod: req.PaymentMethod,
		Category:      req.Category,
		Note:          req.Note,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.expenseRepo.SaveExpense(ctx, expense); err != nil {
		s.LogError(ctx, err, "Failed to save expense", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}

	s.LogDebug(ctx, "Expense created", slog.String("expense_id", expense.ExpenseID))
	return &expense, nil
}

// CreateExpenses validates and persists a batch of new expenses in a single
// write. The batch is all-or-nothing: any invalid row rejects the whole call,
// so callers doing best-effort work validate rows before batching.
func (s *expenseService) CreateExpenses(ctx context.Context, userID string, reqs []dto.CreateExpenseRequest) ([]domain.Expense, error) {
	if len(reqs) == 0 {
		return []domain.Expense{}, nil
	}

	now := time.Now()
	expenses := make([]domain.Expense, 0, len(reqs))
	for i, req := range reqs {
		if req.Amount.LessThanOrEqual(decimal.Zero) {
			return nil, fmt.Errorf("%w: row %d: amount must be positive", apperrors.ErrValidation, i+1)
		}
		if _, err := period.ParseDay(req.Date); err != nil {
			return nil, fmt.Errorf("%w: row %d: invalid date '%s'", apperrors.ErrValidation, i+1, req.Date)
		}
		if err := s.validateLabels(ctx, userID, req.PaymentMethod, req.Category); err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		expenses = append(expenses, domain.Expense{
			ExpenseID:     uuid.NewString(),
			UserID:        userID,
			Date:          req.Date,
			Amount:        req.Amount,
			PaymentMethod: req.PaymentMethod,
			Category:      req.Category,
			Note:          req.Note,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     userID,
				LastUpdatedAt: now,
				LastUpdatedBy: userID,
			},
		})
	}

	if err := s.expenseRepo.SaveExpenses(ctx, expenses); err != nil {
		s.LogError(ctx, err, "Failed to save expense batch",
			slog.String("user_id", userID), slog.Int("count", len(expenses)))
		return nil, fmt.Errorf("failed to create expenses: %w", err)
	}

	s.LogInfo(ctx, "Expense batch created", slog.Int("count", len(expenses)))
	return expenses, nil
}

// GetExpenseByID retrieves a single expense.
func (s *expenseService) GetExpenseByID(ctx context.Context, userID string, expenseID string) (*domain.Expense, error) {
	expense, err := s.expenseRepo.FindExpenseByID(ctx, userID, expenseID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find expense by ID", slog.String("expense_id", expenseID))
		}
		return nil, err
	}
	return expense, nil
}

// ListExpensesByYear retrieves all expenses within a calendar year.
func (s *expenseService) ListExpensesByYear(ctx context.Context, userID string, year int) ([]domain.Expense, error) {
	expenses, err := s.expenseRepo.FindExpensesByYear(ctx, userID, year)
	if err != nil {
		s.LogError(ctx, err, "Failed to list expenses by year",
			slog.String("user_id", userID), slog.Int("year", year))
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	if expenses == nil {
		return []domain.Expense{}, nil
	}
	return expenses, nil
}

// ListExpensesByMonth retrieves all expenses within a calendar month.
func (s *expenseService) ListExpensesByMonth(ctx context.Context, userID string, year int, month int) ([]domain.Expense, error) {
	if month < 1 || month > 12 {
		return nil, fmt.Errorf("%w: month must be between 1 and 12", apperrors.ErrValidation)
	}
	expenses, err := s.expenseRepo.FindExpensesByMonth(ctx, userID, year, month)
	if err != nil {
		s.LogError(ctx, err, "Failed to list expenses by month",
			slog.String("user_id", userID), slog.Int("year", year), slog.Int("month", month))
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	if expenses == nil {
		return []domain.Expense{}, nil
	}
	return expenses, nil
}

// UpdateExpense applies a partial update to an existing expense.
func (s *expenseService) UpdateExpense(ctx context.Context, userID string, expenseID string, req dto.UpdateExpenseRequest) (*domain.Expense, error) {
	expense, err := s.expenseRepo.FindExpenseByID(ctx, userID, expenseID)
	if err != nil {
		return nil, err
	}

	if req.Date != nil {
		if _, err := period.ParseDay(*req.Date); err != nil {
			return nil, fmt.Errorf("%w: invalid date '%s'", apperrors.ErrValidation, *req.Date)
		}
		expense.Date = *req.Date
	}
	if req.Amount != nil {
		if req.Amount.LessThanOrEqual(decimal.Zero) {
			return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
		}
		expense.Amount = *req.Amount
	}
	paymentMethod := expense.PaymentMethod
	category := expense.Category
	if req.PaymentMethod != nil {
		paymentMethod = *req.PaymentMethod
	}
	if req.Category != nil {
		category = *req.Category
	}
	if req.PaymentMethod != nil || req.Category != nil {
		if err := s.validateLabels(ctx, userID, paymentMethod, category); err != nil {
			return nil, err
		}
		expense.PaymentMethod = paymentMethod
		expense.Category = category
	}
	if req.Note != nil {
		expense.Note = *req.Note
	}

	expense.LastUpdatedAt = time.Now()
	expense.LastUpdatedBy = userID

	if err := s.expenseRepo.UpdateExpense(ctx, *expense); err != nil {
		s.LogError(ctx, err, "Failed to update expense", slog.String("expense_id", expenseID))
		return nil, fmt.Errorf("failed to update expense: %w", err)
	}

	return expense, nil
}

// DeleteExpense removes a single expense.
func (s *expenseService) DeleteExpense(ctx context.Context, userID string, expenseID string) error {
	if err := s.expenseRepo.DeleteExpense(ctx, userID, expenseID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete expense", slog.String("expense_id", expenseID))
		}
		return err
	}
	s.LogDebug(ctx, "Expense deleted", slog.String("expense_id", expenseID))
	return nil
}

// BulkDeleteExpenses removes a batch of expenses. IDs that do not exist (or
// belong to another user) are ignored; the returned slice holds the IDs that
// were actually removed.
func (s *expenseService) BulkDeleteExpenses(ctx context.Context, userID string, expenseIDs []string) ([]string, error) {
	if len(expenseIDs) == 0 {
		return []string{}, nil
	}
	deleted, err := s.expenseRepo.DeleteExpenses(ctx, userID, expenseIDs)
	if err != nil {
		s.LogError(ctx, err, "Failed to bulk delete expenses",
			slog.String("user_id", userID), slog.Int("requested", len(expenseIDs)))
		return nil, fmt.Errorf("failed to bulk delete expenses: %w", err)
	}
	s.LogInfo(ctx, "Bulk delete completed",
		slog.Int("requested", len(expenseIDs)), slog.Int("deleted", len(deleted)))
	return deleted, nil
}
