package jsonfile

import (
	portsrepo "github.com/SscSPs/expense_tracker_app/internal/core/ports/repositories"
)

// NewRepositoryProvider opens the store at path and wires every file-backed
// repository around it.
func NewRepositoryProvider(path string) (portsrepo.RepositoryProvider, error) {
	store, err := Open(path)
	if err != nil {
		return portsrepo.RepositoryProvider{}, err
	}
	return portsrepo.RepositoryProvider{
		ExpenseRepo:  newExpenseRepository(store),
		RateRepo:     newRateRepository(store),
		SettingsRepo: newSettingsRepository(store),
		UserRepo:     newUserRepository(store),
	}, nil
}
