package jsonfile

import (
	"context"
	"sort"

	"github.com/SscSPs/expense_tracker_app/internal/apperrors"
	"github.com/SscSPs/expense_tracker_app/internal/core/domain"
	portsrepo "github.com/SscSPs/expense_tracker_app/internal/core/ports/repositories"
	"github.com/SscSPs/expense_tracker_app/internal/utils/period"
)

type expenseRepository struct {
	store *Store
}

func newExpenseRepository(store *Store) portsrepo.ExpenseRepositoryFacade {
	return &expenseRepository{store: store}
}

var _ portsrepo.ExpenseRepositoryFacade = (*expenseRepository)(nil)

func toJSONExpense(d domain.Expense) jsonExpense {
	return jsonExpense{
		ExpenseID:     d.ExpenseID,
		UserID:        d.UserID,
		Date:          d.Date,
		Amount:        d.Amount,
		PaymentMethod: d.PaymentMethod,
		Category:      d.Category,
		Note:          d.Note,
		jsonAudit: jsonAudit{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}
}

func toDomainExpense(j jsonExpense) domain.Expense {
	return domain.Expense{
		ExpenseID:     j.ExpenseID,
		UserID:        j.UserID,
		Date:          j.Date,
		Amount:        j.Amount,
		PaymentMethod: j.PaymentMethod,
		Category:      j.Category,
		Note:          j.Note,
		AuditFields: domain.AuditFields{
			CreatedAt:     j.CreatedAt,
			CreatedBy:     j.CreatedBy,
			LastUpdatedAt: j.LastUpdatedAt,
			LastUpdatedBy: j.LastUpdatedBy,
		},
	}
}

func (r *expenseRepository) SaveExpense(ctx context.Context, expense domain.Expense) error {
	return r.store.update(func(doc *document) error {
		doc.Expenses = append(doc.Expenses, toJSONExpense(expense))
		return nil
	})
}

func (r *expenseRepository) SaveExpenses(ctx context.Context, expenses []domain.Expense) error {
	if len(expenses) == 0 {
		return nil
	}
	return r.store.update(func(doc *document) error {
		for _, e := range expenses {
			doc.Expenses = append(doc.Expenses, toJSONExpense(e))
		}
		return nil
	})
}

func (r *expenseRepository) FindExpenseByID(ctx context.Context, userID string, expenseID string) (*domain.Expense, error) {
	var found *domain.Expense
	err := r.store.read(func(doc *document) error {
		for _, j := range doc.Expenses {
			if j.UserID == userID && j.ExpenseID == expenseID {
				d := toDomainExpense(j)
				found = &d
				return nil
			}
		}
		return apperrors.ErrNotFound
	})
	if err != nil {
		return nil, err
	}
	return found, nil
}

// sortNewestFirst orders by date descending, then creation time descending,
// matching the pgsql queries.
func sortNewestFirst(out []domain.Expense) {
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date > out[j].Date
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
}

func (r *expenseRepository) FindExpensesByYear(ctx context.Context, userID string, year int) ([]domain.Expense, error) {
	var out []domain.Expense
	err := r.store.read(func(doc *document) error {
		for _, j := range doc.Expenses {
			if j.UserID != userID {
				continue
			}
			if y, _ := period.YearMonth(j.Date); y == year {
				out = append(out, toDomainExpense(j))
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sortNewestFirst(out)
	return out, nil
}

func (r *expenseRepository) FindExpensesByMonth(ctx context.Context, userID string, year int, month int) ([]domain.Expense, error) {
	var out []domain.Expense
	err := r.store.read(func(doc *document) error {
		for _, j := range doc.Expenses {
			if j.UserID != userID {
				continue
			}
			if y, m := period.YearMonth(j.Date); y == year && m == month {
				out = append(out, toDomainExpense(j))
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sortNewestFirst(out)
	return out, nil
}

func (r *expenseRepository) UpdateExpense(ctx context.Context, expense domain.Expense) error {
	return r.store.update(func(doc *document) error {
		for i, j := range doc.Expenses {
			if j.UserID == expense.UserID && j.ExpenseID == expense.ExpenseID {
				doc.Expenses[i] = toJSONExpense(expense)
				return nil
			}
		}
		return apperrors.ErrNotFound
	})
}

func (r *expenseRepository) DeleteExpense(ctx context.Context, userID string, expenseID string) error {
	return r.store.update(func(doc *document) error {
		for i, j := range doc.Expenses {
			if j.UserID == userID && j.ExpenseID == expenseID {
				doc.Expenses = append(doc.Expenses[:i], doc.Expenses[i+1:]...)
				return nil
			}
		}
		return apperrors.ErrNotFound
	})
}

func (r *expenseRepository) DeleteExpenses(ctx context.Context, userID string, expenseIDs []string) ([]string, error) {
	wanted := make(map[string]struct{}, len(expenseIDs))
	for _, id := range expenseIDs {
		wanted[id] = struct{}{}
	}

	deleted := []string{}
	err := r.store.update(func(doc *document) error {
		kept := doc.Expenses[:0]
		for _, j := range doc.Expenses {
			if _, ok := wanted[j.ExpenseID]; ok && j.UserID == userID {
				deleted = append(deleted, j.ExpenseID)
				continue
			}
			kept = append(kept, j)
		}
		doc.Expenses = kept
		return nil
	})
	if err != nil {
		return nil, err
	}
	return deleted, nil
}
