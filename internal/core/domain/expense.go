package domain

import (
	"github.com/shopspring/decimal"
)

// Expense is a single dated expense record in the home currency (ARS).
// Date is a bare calendar day with no time component; all period grouping
// derives from it.
type Expense struct {
	ExpenseID     string          `json:"expenseID"` // Primary Key (UUID)
	UserID        string          `json:"userID"`    // Owning user
	Date          string          `json:"date"`      // YYYY-MM-DD
	Amount        decimal.Decimal `json:"amount"`    // Must be > 0
	PaymentMethod string          `json:"paymentMethod"`
	Category      string          `json:"category"`
	Note          string          `json:"note"` // Optional free text
	AuditFields
}
