package services

import (
	portsrepo "github.com/SscSPs/expense_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/expense_tracker_app/internal/core/ports/services"
	"github.com/SscSPs/expense_tracker_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Settings first: expense creation validates labels against it.
	container.Settings = NewSettingsService(repos.SettingsRepo)
	container.Rate = NewRateService(repos.RateRepo)
	container.Expense = NewExpenseService(repos.ExpenseRepo, container.Settings)
	container.Analytics = NewAnalyticsService(container.Expense, container.Rate, container.Settings)
	container.Import = NewImportService(container.Expense, container.Settings)

	container.User = NewUserService(repos.UserRepo)
	container.Token = NewTokenService(cfg, container.User)
	container.OAuth = NewGoogleOAuthHandlerService(cfg)

	return container
}
