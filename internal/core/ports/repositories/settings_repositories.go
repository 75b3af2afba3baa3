package repositories

import (
	"context"

	"github.com/SscSPs/expense_tracker_app/internal/core/domain"
)

// SettingsReader defines read operations for user settings
type SettingsReader interface {
	// FindSettings retrieves the stored settings of a user.
	// Returns apperrors.ErrNotFound when the user never saved any.
	FindSettings(ctx context.Context, userID string) (*domain.Settings, error)
}

// SettingsWriter defines write operations for user settings
type SettingsWriter interface {
	// SaveSettings inserts or replaces the settings of a user.
	SaveSettings(ctx context.Context, settings domain.Settings) error
}

// SettingsRepositoryFacade combines all settings-related repository interfaces
type SettingsRepositoryFacade interface {
	SettingsReader
	SettingsWriter
}
