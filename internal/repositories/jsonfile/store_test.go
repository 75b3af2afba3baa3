package jsonfile

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/SscSPs/expense_tracker_app/internal/apperrors"
	"github.com/SscSPs/expense_tracker_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func expenseFixture(id, date string, amount int64) domain.Expense {
	now := time.Now()
	return domain.Expense{
		ExpenseID:     id,
		UserID:        "user-1",
		Date:          date,
		Amount:        decimal.NewFromInt(amount),
		PaymentMethod: "Cash",
		Category:      "Groceries",
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     "user-1",
			LastUpdatedAt: now,
			LastUpdatedBy: "user-1",
		},
	}
}

func TestStorePersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "data.json")

	provider, err := NewRepositoryProvider(path)
	require.NoError(t, err)

	require.NoError(t, provider.ExpenseRepo.SaveExpense(ctx, expenseFixture("exp-1", "2025-03-15", 2500)))

	// Reopen from disk and expect the record back.
	provider2, err := NewRepositoryProvider(path)
	require.NoError(t, err)

	found, err := provider2.ExpenseRepo.FindExpenseByID(ctx, "user-1", "exp-1")
	require.NoError(t, err)
	require.Equal(t, "2025-03-15", found.Date)
	require.True(t, found.Amount.Equal(decimal.NewFromInt(2500)))
}

func TestStoreFindExpensesByMonthSortsNewestFirst(t *testing.T) {
	ctx := context.Background()
	provider, err := NewRepositoryProvider(filepath.Join(t.TempDir(), "data.json"))
	require.NoError(t, err)

	require.NoError(t, provider.ExpenseRepo.SaveExpense(ctx, expenseFixture("exp-1", "2025-03-05", 100)))
	require.NoError(t, provider.ExpenseRepo.SaveExpense(ctx, expenseFixture("exp-2", "2025-03-20", 200)))
	require.NoError(t, provider.ExpenseRepo.SaveExpense(ctx, expenseFixture("exp-3", "2025-04-01", 300)))

	march, err := provider.ExpenseRepo.FindExpensesByMonth(ctx, "user-1", 2025, 3)
	require.NoError(t, err)
	require.Len(t, march, 2)
	require.Equal(t, "exp-2", march[0].ExpenseID)
	require.Equal(t, "exp-1", march[1].ExpenseID)
}

func TestStoreBulkDeleteIgnoresUnknownIDs(t *testing.T) {
	ctx := context.Background()
	provider, err := NewRepositoryProvider(filepath.Join(t.TempDir(), "data.json"))
	require.NoError(t, err)

	require.NoError(t, provider.ExpenseRepo.SaveExpense(ctx, expenseFixture("exp-1", "2025-03-05", 100)))
	require.NoError(t, provider.ExpenseRepo.SaveExpense(ctx, expenseFixture("exp-2", "2025-03-06", 200)))

	deleted, err := provider.ExpenseRepo.DeleteExpenses(ctx, "user-1", []string{"exp-1", "missing"})
	require.NoError(t, err)
	require.Equal(t, []string{"exp-1"}, deleted)

	_, err = provider.ExpenseRepo.FindExpenseByID(ctx, "user-1", "exp-1")
	require.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestStoreRateUpsertReplacesExisting(t *testing.T) {
	ctx := context.Background()
	provider, err := NewRepositoryProvider(filepath.Join(t.TempDir(), "data.json"))
	require.NoError(t, err)

	override := domain.RateOverride{UserID: "user-1", MonthKey: "2025-03", Rate: decimal.NewFromInt(1200)}
	require.NoError(t, provider.RateRepo.UpsertRateOverride(ctx, override))
	override.Rate = decimal.NewFromInt(1450)
	require.NoError(t, provider.RateRepo.UpsertRateOverride(ctx, override))

	overrides, err := provider.RateRepo.FindRateOverrides(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, overrides, 1)
	require.True(t, overrides[0].Rate.Equal(decimal.NewFromInt(1450)))
}

func TestStoreSettingsNotFoundForNewUser(t *testing.T) {
	ctx := context.Background()
	provider, err := NewRepositoryProvider(filepath.Join(t.TempDir(), "data.json"))
	require.NoError(t, err)

	_, err = provider.SettingsRepo.FindSettings(ctx, "user-1")
	require.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestStoreUserDuplicateEmailRejected(t *testing.T) {
	ctx := context.Background()
	provider, err := NewRepositoryProvider(filepath.Join(t.TempDir(), "data.json"))
	require.NoError(t, err)

	user := domain.User{UserID: "user-1", Email: "ada@example.com", AuthProvider: domain.ProviderLocal}
	require.NoError(t, provider.UserRepo.SaveUser(ctx, user))

	dup := domain.User{UserID: "user-2", Email: "ada@example.com", AuthProvider: domain.ProviderLocal}
	require.ErrorIs(t, provider.UserRepo.SaveUser(ctx, dup), apperrors.ErrDuplicate)
}
