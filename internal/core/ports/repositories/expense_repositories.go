package repositories

import (
	"context"

	"github.com/SscSPs/expense_tracker_app/internal/core/domain"
)

// ExpenseReader defines read operations for expense data
type ExpenseReader interface {
	// FindExpenseByID retrieves a specific expense by its ID.
	FindExpenseByID(ctx context.Context, userID string, expenseID string) (*domain.Expense, error)

	// FindExpensesByYear retrieves all expenses of a user dated within a calendar year.
	FindExpensesByYear(ctx context.Context, userID string, year int) ([]domain.Expense, error)

	// FindExpensesByMonth retrieves all expenses of a user dated within a calendar month.
	FindExpensesByMonth(ctx context.Context, userID string, year int, month int) ([]domain.Expense, error)
}

// ExpenseWriter defines write operations for expense data
type ExpenseWriter interface {
	// SaveExpense persists a new expense.
	SaveExpense(ctx context.Context, expense domain.Expense) error

	// SaveExpenses persists a batch of new expenses.
	SaveExpenses(ctx context.Context, expenses []domain.Expense) error

	// UpdateExpense updates an existing expense.
	UpdateExpense(ctx context.Context, expense domain.Expense) error

	// DeleteExpense removes an expense.
	DeleteExpense(ctx context.Context, userID string, expenseID string) error

	// DeleteExpenses removes a batch of expenses, returning the IDs actually removed.
	DeleteExpenses(ctx context.Context, userID string, expenseIDs []string) ([]string, error)
}

// ExpenseRepositoryFacade combines all expense-related repository interfaces
type ExpenseRepositoryFacade interface {
	ExpenseReader
	ExpenseWriter
}
