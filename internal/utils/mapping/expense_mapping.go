package mapping

import (
	"github.com/SscSPs/expense_tracker_app/internal/core/domain"
	"github.com/SscSPs/expense_tracker_app/internal/models"
)

// ToModelExpense converts a domain Expense to a model Expense
func ToModelExpense(d domain.Expense) models.Expense {
	return models.Expense{
		ExpenseID:     d.ExpenseID,
		UserID:        d.UserID,
		Date:          d.Date,
		Amount:        d.Amount,
		PaymentMethod: d.PaymentMethod,
		Category:      d.Category,
		Note:          d.Note,
		AuditFields:   toModelAudit(d.AuditFields),
	}
}

// ToDomainExpense converts a model Expense to a domain Expense
func ToDomainExpense(m models.Expense) domain.Expense {
	return domain.Expense{
		ExpenseID:     m.ExpenseID,
		UserID:        m.UserID,
		Date:          m.Date,
		Amount:        m.Amount,
		PaymentMethod: m.PaymentMethod,
		Category:      m.Category,
		Note:          m.Note,
		AuditFields:   toDomainAudit(m.AuditFields),
	}
}

// ToDomainExpenseSlice converts a slice of model Expenses to domain Expenses
func ToDomainExpenseSlice(ms []models.Expense) []domain.Expense {
	ds := make([]domain.Expense, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainExpense(m)
	}
	return ds
}
