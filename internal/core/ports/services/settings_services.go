package services

import (
	"context"

	"github.com/SscSPs/expense_tracker_app/internal/core/domain"
	"github.com/SscSPs/expense_tracker_app/internal/dto"
)

// SettingsSvcFacade defines operations for user settings. Reads always
// succeed: a user who never saved settings gets the built-in defaults.
type SettingsSvcFacade interface {
	// GetSettings retrieves the user's settings, falling back to defaults.
	GetSettings(ctx context.Context, userID string) (*domain.Settings, error)

	// SaveSettings validates and replaces the user's settings.
	SaveSettings(ctx context.Context, userID string, req dto.SaveSettingsRequest) (*domain.Settings, error)
}
