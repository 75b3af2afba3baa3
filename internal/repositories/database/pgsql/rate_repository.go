package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/expense_tracker_app/internal/apperrors"
	"github.com/SscSPs/expense_tracker_app/internal/core/domain"
	portsrepo "github.com/SscSPs/expense_tracker_app/internal/core/ports/repositories"
	"github.com/SscSPs/expense_tracker_app/internal/models"
	"github.com/SscSPs/expense_tracker_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxRateRepository struct {
	BaseRepository
}

func newPgxRateRepository(db *pgxpool.Pool) portsrepo.RateRepositoryFacade {
	return &PgxRateRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.RateRepositoryFacade = (*PgxRateRepository)(nil)

func (r *PgxRateRepository) FindRateOverrides(ctx context.Context, userID string) ([]domain.RateOverride, error) {
	query := `
        SELECT user_id, month_key, rate, created_at, created_by, last_updated_at, last_updated_by
        FROM rate_overrides
        WHERE user_id = $1
        ORDER BY month_key;
    `
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query rate overrides: %w", err)
	}
	defer rows.Close()

	var out []domain.RateOverride
	for rows.Next() {
		var m models.RateOverride
		if err := rows.Scan(
			&m.UserID, &m.MonthKey, &m.Rate,
			&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
		); err != nil {
			return nil, fmt.Errorf("failed to scan rate override row: %w", err)
		}
		out = append(out, mapping.ToDomainRateOverride(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rate override rows: %w", err)
	}
	return out, nil
}

func (r *PgxRateRepository) UpsertRateOverride(ctx context.Context, override domain.RateOverride) error {
	m := mapping.ToModelRateOverride(override)
	query := `
        INSERT INTO rate_overrides (user_id, month_key, rate, created_at, created_by, last_updated_at, last_updated_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        ON CONFLICT (user_id, month_key) DO UPDATE SET
            rate = EXCLUDED.rate,
            last_updated_at = EXCLUDED.last_updated_at,
            last_updated_by = EXCLUDED.last_updated_by;
    `
	_, err := r.Pool.Exec(ctx, query,
		m.UserID, m.MonthKey, m.Rate,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert rate override for %s: %w", m.MonthKey, err)
	}
	return nil
}

func (r *PgxRateRepository) DeleteRateOverride(ctx context.Context, userID string, monthKey string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM rate_overrides WHERE user_id = $1 AND month_key = $2;`, userID, monthKey)
	if err != nil {
		return fmt.Errorf("failed to delete rate override for %s: %w", monthKey, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
