package models

import (
	"github.com/shopspring/decimal"
)

// Expense is the persistence model for an expense row. Date is stored as a
// bare YYYY-MM-DD string (a DATE column in pgsql) so no timezone ever touches
// it.
type Expense struct {
	ExpenseID     string          `db:"expense_id" json:"expenseID"`
	UserID        string          `db:"user_id" json:"userID"`
	Date          string          `db:"date" json:"date"`
	Amount        decimal.Decimal `db:"amount" json:"amount"`
	PaymentMethod string          `db:"payment_method" json:"paymentMethod"`
	Category      string          `db:"category" json:"category"`
	Note          string          `db:"note" json:"note"`
	AuditFields
}
