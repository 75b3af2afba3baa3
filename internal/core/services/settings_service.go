package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/expense_tracker_app/internal/apperrors"
	"github.com/SscSPs/expense_tracker_app/internal/core/domain"
	portsrepo "github.com/SscSPs/expense_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/expense_tracker_app/internal/core/ports/services"
	"github.com/SscSPs/expense_tracker_app/internal/dto"
)

// settingsService implements the SettingsSvcFacade interface
type settingsService struct {
	BaseService
	settingsRepo portsrepo.SettingsRepositoryFacade
}

// NewSettingsService creates a new settings service with the provided dependencies
func NewSettingsService(settingsRepo portsrepo.SettingsRepositoryFacade) portssvc.SettingsSvcFacade {
	return &settingsService{settingsRepo: settingsRepo}
}

var _ portssvc.SettingsSvcFacade = (*settingsService)(nil)

// GetSettings retrieves the user's settings, falling back to the built-in
// defaults when nothing is stored yet.
func (s *settingsService) GetSettings(ctx context.Context, userID string) (*domain.Settings, error) {
	settings, err := s.settingsRepo.FindSettings(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			defaults := domain.DefaultSettings(userID)
			return &defaults, nil
		}
		s.LogError(ctx, err, "Failed to load settings", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	return settings, nil
}

// SaveSettings validates and replaces the user's label sets.
func (s *settingsService) SaveSettings(ctx context.Context, userID string, req dto.SaveSettingsRequest) (*domain.Settings, error) {
	paymentMethods, err := cleanLabels(req.PaymentMethods, "payment method")
	if err != nil {
		return nil, err
	}
	categories, err := cleanLabels(req.Categories, "category")
	if err != nil {
		return nil, err
	}

	now := time.Now()
	settings := domain.Settings{
		UserID:         userID,
		PaymentMethods: paymentMethods,
		Categories:     categories,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	if err := s.settingsRepo.SaveSettings(ctx, settings); err != nil {
		s.LogError(ctx, err, "Failed to save settings", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to save settings: %w", err)
	}

	s.LogDebug(ctx, "Settings saved", slog.String("user_id", userID))
	return &settings, nil
}

// cleanLabels trims each label, drops empties after trimming and rejects
// duplicates. Order is preserved.
func cleanLabels(labels []string, kind string) ([]string, error) {
	out := make([]string, 0, len(labels))
	seen := make(map[string]struct{}, len(labels))
	for _, l := range labels {
		l = strings.TrimSpace(l)
		if l == "" {
			continue
		}
		key := strings.ToLower(l)
		if _, dup := seen[key]; dup {
			return nil, fmt.Errorf("%w: duplicate %s '%s'", apperrors.ErrValidation, kind, l)
		}
		seen[key] = struct{}{}
		out = append(out, l)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: at least one %s is required", apperrors.ErrValidation, kind)
	}
	return out, nil
}
