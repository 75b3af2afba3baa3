package dto

import (
	"time"

	"github.com/SscSPs/expense_tracker_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateExpenseRequest defines the payload for logging a new expense.
type CreateExpenseRequest struct {
	Date          string          `json:"date" binding:"required,datetime=2006-01-02"`
	Amount        decimal.Decimal `json:"amount" binding:"required"`
	PaymentMethod string          `json:"paymentMethod" binding:"required"`
	Category      string          `json:"category" binding:"required"`
	Note          string          `json:"note"`
}

// UpdateExpenseRequest defines the payload for editing an expense. All fields
// are optional; omitted fields keep their stored value.
type UpdateExpenseRequest struct {
	Date          *string          `json:"date,omitempty" binding:"omitempty,datetime=2006-01-02"`
	Amount        *decimal.Decimal `json:"amount,omitempty"`
	PaymentMethod *string          `json:"paymentMethod,omitempty"`
	Category      *string          `json:"category,omitempty"`
	Note          *string          `json:"note,omitempty"`
}

// BulkDeleteExpensesRequest carries the ids for a bulk delete.
type BulkDeleteExpensesRequest struct {
	ExpenseIDs []string `json:"expenseIDs" binding:"required,min=1,dive,required"`
}

// BulkDeleteExpensesResponse reports how many rows were removed.
type BulkDeleteExpensesResponse struct {
	Deleted int `json:"deleted"`
}

// ExpenseResponse is the API shape of an expense record.
type ExpenseResponse struct {
	ExpenseID     string          `json:"expenseID"`
	Date          string          `json:"date"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentMethod string          `json:"paymentMethod"`
	Category      string          `json:"category"`
	Note          string          `json:"note,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
	LastUpdatedAt time.Time       `json:"lastUpdatedAt"`
}

// ToExpenseResponse converts a domain.Expense to its response DTO
func ToExpenseResponse(e *domain.Expense) ExpenseResponse {
	return ExpenseResponse{
		ExpenseID:     e.ExpenseID,
		Date:          e.Date,
		Amount:        e.Amount,
		PaymentMethod: e.PaymentMethod,
		Category:      e.Category,
		Note:          e.Note,
		CreatedAt:     e.CreatedAt,
		LastUpdatedAt: e.LastUpdatedAt,
	}
}

// ToListExpenseResponse converts a slice of domain expenses to response DTOs.
func ToListExpenseResponse(es []domain.Expense) []ExpenseResponse {
	responses := make([]ExpenseResponse, len(es))
	for i := range es {
		responses[i] = ToExpenseResponse(&es[i])
	}
	return responses
}
