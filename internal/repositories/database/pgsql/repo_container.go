package pgsql

import (
	portsrepo "github.com/SscSPs/expense_tracker_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires every pgsql-backed repository.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		ExpenseRepo:  newPgxExpenseRepository(dbPool),
		RateRepo:     newPgxRateRepository(dbPool),
		SettingsRepo: newPgxSettingsRepository(dbPool),
		UserRepo:     newPgxUserRepository(dbPool),
	}
}
