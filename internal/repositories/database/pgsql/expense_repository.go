package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/expense_tracker_app/internal/apperrors"
	"github.com/SscSPs/expense_tracker_app/internal/core/domain"
	portsrepo "github.com/SscSPs/expense_tracker_app/internal/core/ports/repositories"
	"github.com/SscSPs/expense_tracker_app/internal/models"
	"github.com/SscSPs/expense_tracker_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxExpenseRepository struct {
	BaseRepository
}

func newPgxExpenseRepository(db *pgxpool.Pool) portsrepo.ExpenseRepositoryFacade {
	return &PgxExpenseRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.ExpenseRepositoryFacade = (*PgxExpenseRepository)(nil)

const expenseColumns = `expense_id, user_id, date::text, amount, payment_method, category, note, created_at, created_by, last_updated_at, last_updated_by`

func scanExpense(row pgx.Row) (models.Expense, error) {
	var m models.Expense
	err := row.Scan(
		&m.ExpenseID,
		&m.UserID,
		&m.Date,
		&m.Amount,
		&m.PaymentMethod,
		&m.Category,
		&m.Note,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxExpenseRepository) SaveExpense(ctx context.Context, expense domain.Expense) error {
	m := mapping.ToModelExpense(expense)
	query := `
        INSERT INTO expenses (expense_id, user_id, date, amount, payment_method, category, note, created_at, created_by, last_updated_at, last_updated_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
    `
	_, err := r.Pool.Exec(ctx, query,
		m.ExpenseID, m.UserID, m.Date, m.Amount, m.PaymentMethod, m.Category, m.Note,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save expense: %w", err)
	}
	return nil
}

func (r *PgxExpenseRepository) SaveExpenses(ctx context.Context, expenses []domain.Expense) error {
	if len(expenses) == 0 {
		return nil
	}
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	query := `
        INSERT INTO expenses (expense_id, user_id, date, amount, payment_method, category, note, created_at, created_by, last_updated_at, last_updated_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
    `
	batch := &pgx.Batch{}
	for _, expense := range expenses {
		m := mapping.ToModelExpense(expense)
		batch.Queue(query,
			m.ExpenseID, m.UserID, m.Date, m.Amount, m.PaymentMethod, m.Category, m.Note,
			m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
		)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("failed to save expense batch: %w", err)
	}
	return r.Commit(ctx, tx)
}

func (r *PgxExpenseRepository) FindExpenseByID(ctx context.Context, userID string, expenseID string) (*domain.Expense, error) {
	query := fmt.Sprintf(`SELECT %s FROM expenses WHERE user_id = $1 AND expense_id = $2;`, expenseColumns)
	m, err := scanExpense(r.Pool.QueryRow(ctx, query, userID, expenseID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find expense by ID %s: %w", expenseID, err)
	}
	d := mapping.ToDomainExpense(m)
	return &d, nil
}

func (r *PgxExpenseRepository) FindExpensesByYear(ctx context.Context, userID string, year int) ([]domain.Expense, error) {
	query := fmt.Sprintf(`
        SELECT %s FROM expenses
        WHERE user_id = $1 AND date >= make_date($2, 1, 1) AND date < make_date($2 + 1, 1, 1)
        ORDER BY date DESC, created_at DESC;
    `, expenseColumns)
	return r.queryExpenses(ctx, query, userID, year)
}

func (r *PgxExpenseRepository) FindExpensesByMonth(ctx context.Context, userID string, year int, month int) ([]domain.Expense, error) {
	query := fmt.Sprintf(`
        SELECT %s FROM expenses
        WHERE user_id = $1
          AND date >= make_date($2, $3, 1)
          AND date < make_date($2, $3, 1) + INTERVAL '1 month'
        ORDER BY date DESC, created_at DESC;
    `, expenseColumns)
	return r.queryExpenses(ctx, query, userID, year, month)
}

func (r *PgxExpenseRepository) queryExpenses(ctx context.Context, query string, args ...any) ([]domain.Expense, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query expenses: %w", err)
	}
	defer rows.Close()

	var ms []models.Expense
	for rows.Next() {
		m, err := scanExpense(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan expense row: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating expense rows: %w", err)
	}
	return mapping.ToDomainExpenseSlice(ms), nil
}

func (r *PgxExpenseRepository) UpdateExpense(ctx context.Context, expense domain.Expense) error {
	m := mapping.ToModelExpense(expense)
	query := `
        UPDATE expenses
        SET date = $3, amount = $4, payment_method = $5, category = $6, note = $7,
            last_updated_at = $8, last_updated_by = $9
        WHERE user_id = $1 AND expense_id = $2;
    `
	tag, err := r.Pool.Exec(ctx, query,
		m.UserID, m.ExpenseID, m.Date, m.Amount, m.PaymentMethod, m.Category, m.Note,
		m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update expense %s: %w", m.ExpenseID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxExpenseRepository) DeleteExpense(ctx context.Context, userID string, expenseID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM expenses WHERE user_id = $1 AND expense_id = $2;`, userID, expenseID)
	if err != nil {
		return fmt.Errorf("failed to delete expense %s: %w", expenseID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxExpenseRepository) DeleteExpenses(ctx context.Context, userID string, expenseIDs []string) ([]string, error) {
	if len(expenseIDs) == 0 {
		return []string{}, nil
	}
	query := `
        DELETE FROM expenses
        WHERE user_id = $1 AND expense_id = ANY($2)
        RETURNING expense_id;
    `
	rows, err := r.Pool.Query(ctx, query, userID, expenseIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to bulk delete expenses: %w", err)
	}
	defer rows.Close()

	deleted := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan deleted expense id: %w", err)
		}
		deleted = append(deleted, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating deleted expense rows: %w", err)
	}
	return deleted, nil
}
