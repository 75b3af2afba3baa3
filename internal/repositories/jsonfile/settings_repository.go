package jsonfile

import (
	"context"

	"github.com/SscSPs/expense_tracker_app/internal/apperrors"
	"github.com/SscSPs/expense_tracker_app/internal/core/domain"
	portsrepo "github.com/SscSPs/expense_tracker_app/internal/core/ports/repositories"
)

type settingsRepository struct {
	store *Store
}

func newSettingsRepository(store *Store) portsrepo.SettingsRepositoryFacade {
	return &settingsRepository{store: store}
}

var _ portsrepo.SettingsRepositoryFacade = (*settingsRepository)(nil)

func (r *settingsRepository) FindSettings(ctx context.Context, userID string) (*domain.Settings, error) {
	var found *domain.Settings
	err := r.store.read(func(doc *document) error {
		for _, j := range doc.Settings {
			if j.UserID == userID {
				found = &domain.Settings{
					UserID:         j.UserID,
					PaymentMethods: append([]string(nil), j.PaymentMethods...),
					Categories:     append([]string(nil), j.Categories...),
					AuditFields: domain.AuditFields{
						CreatedAt:     j.CreatedAt,
						CreatedBy:     j.CreatedBy,
						LastUpdatedAt: j.LastUpdatedAt,
						LastUpdatedBy: j.LastUpdatedBy,
					},
				}
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

func (r *settingsRepository) SaveSettings(ctx context.Context, settings domain.Settings) error {
	entry := jsonSettings{
		UserID:         settings.UserID,
		PaymentMethods: append([]string(nil), settings.PaymentMethods...),
		Categories:     append([]string(nil), settings.Categories...),
		jsonAudit: jsonAudit{
			CreatedAt:     settings.CreatedAt,
			CreatedBy:     settings.CreatedBy,
			LastUpdatedAt: settings.LastUpdatedAt,
			LastUpdatedBy: settings.LastUpdatedBy,
		},
	}
	return r.store.update(func(doc *document) error {
		for i, j := range doc.Settings {
			if j.UserID == settings.UserID {
				entry.CreatedAt = j.CreatedAt
				entry.CreatedBy = j.CreatedBy
				doc.Settings[i] = entry
				return nil
			}
		}
		doc.Settings = append(doc.Settings, entry)
		return nil
	})
}
