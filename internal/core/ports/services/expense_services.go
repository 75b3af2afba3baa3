package services

import (
	"context"

	"github.com/SscSPs/expense_tracker_app/internal/core/domain"
	"github.com/SscSPs/expense_tracker_app/internal/dto"
)

// ExpenseReaderSvc defines read operations for expense data
type ExpenseReaderSvc interface {
	// GetExpenseByID retrieves a single expense.
	GetExpenseByID(ctx context.Context, userID string, expenseID string) (*domain.Expense, error)

	// ListExpensesByYear retrieves all expenses within a calendar year,
	// newest first.
	ListExpensesByYear(ctx context.Context, userID string, year int) ([]domain.Expense, error)

	// ListExpensesByMonth retrieves all expenses within a calendar month,
	// newest first.
	ListExpensesByMonth(ctx context.Context, userID string, year int, month int) ([]domain.Expense, error)
}

// ExpenseWriterSvc defines write operations for expense data
type ExpenseWriterSvc interface {
	// CreateExpense validates and persists a new expense.
	CreateExpense(ctx context.Context, userID string, req dto.CreateExpenseRequest) (*domain.Expense, error)

	// CreateExpenses validates and persists a batch of new expenses in a
	// single write. The batch is all-or-nothing.
	CreateExpenses(ctx context.Context, userID string, reqs []dto.CreateExpenseRequest) ([]domain.Expense, error)

	// UpdateExpense applies a partial update to an existing expense.
	UpdateExpense(ctx context.Context, userID string, expenseID string, req dto.UpdateExpenseRequest) (*domain.Expense, error)

	// DeleteExpense removes a single expense.
	DeleteExpense(ctx context.Context, userID string, expenseID string) error

	// BulkDeleteExpenses removes a batch of expenses and reports which IDs
	// were actually deleted.
	BulkDeleteExpenses(ctx context.Context, userID string, expenseIDs []string) ([]string, error)
}

// ExpenseSvcFacade combines all expense-related service interfaces
type ExpenseSvcFacade interface {
	ExpenseReaderSvc
	ExpenseWriterSvc
}
