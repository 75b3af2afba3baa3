package jsonfile

import (
	"context"

	"github.com/SscSPs/expense_tracker_app/internal/apperrors"
	"github.com/SscSPs/expense_tracker_app/internal/core/domain"
	portsrepo "github.com/SscSPs/expense_tracker_app/internal/core/ports/repositories"
)

type rateRepository struct {
	store *Store
}

func newRateRepository(store *Store) portsrepo.RateRepositoryFacade {
	return &rateRepository{store: store}
}

var _ portsrepo.RateRepositoryFacade = (*rateRepository)(nil)

func (r *rateRepository) FindRateOverrides(ctx context.Context, userID string) ([]domain.RateOverride, error) {
	var out []domain.RateOverride
	err := r.store.read(func(doc *document) error {
		for _, j := range doc.RateOverrides {
			if j.UserID != userID {
				continue
			}
			out = append(out, domain.RateOverride{
				UserID:   j.UserID,
				MonthKey: j.MonthKey,
				Rate:     j.Rate,
				AuditFields: domain.AuditFields{
					CreatedAt:     j.CreatedAt,
					CreatedBy:     j.CreatedBy,
					LastUpdatedAt: j.LastUpdatedAt,
					LastUpdatedBy: j.LastUpdatedBy,
				},
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *rateRepository) UpsertRateOverride(ctx context.Context, override domain.RateOverride) error {
	return r.store.update(func(doc *document) error {
		for i, j := range doc.RateOverrides {
			if j.UserID == override.UserID && j.MonthKey == override.MonthKey {
				doc.RateOverrides[i].Rate = override.Rate
				doc.RateOverrides[i].LastUpdatedAt = override.LastUpdatedAt
				doc.RateOverrides[i].LastUpdatedBy = override.LastUpdatedBy
				return nil
			}
		}
		doc.RateOverrides = append(doc.RateOverrides, jsonRateOverride{
			UserID:   override.UserID,
			MonthKey: override.MonthKey,
			Rate:     override.Rate,
			jsonAudit: jsonAudit{
				CreatedAt:     override.CreatedAt,
				CreatedBy:     override.CreatedBy,
				LastUpdatedAt: override.LastUpdatedAt,
				LastUpdatedBy: override.LastUpdatedBy,
			},
		})
		return nil
	})
}

func (r *rateRepository) DeleteRateOverride(ctx context.Context, userID string, monthKey string) error {
	return r.store.update(func(doc *document) error {
		for i, j := range doc.RateOverrides {
			if j.UserID == userID && j.MonthKey == monthKey {
				doc.RateOverrides = append(doc.RateOverrides[:i], doc.RateOverrides[i+1:]...)
				return nil
			}
		}
		return apperrors.ErrNotFound
	})
}
