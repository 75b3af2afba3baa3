package mapping

import (
	"github.com/SscSPs/expense_tracker_app/internal/core/domain"
	"github.com/SscSPs/expense_tracker_app/internal/models"
)

// ToModelRateOverride converts a domain RateOverride to a model RateOverride
func ToModelRateOverride(d domain.RateOverride) models.RateOverride {
	return models.RateOverride{
		UserID:      d.UserID,
		MonthKey:    d.MonthKey,
		Rate:        d.Rate,
		AuditFields: toModelAudit(d.AuditFields),
	}
}

// ToDomainRateOverride converts a model RateOverride to a domain RateOverride
func ToDomainRateOverride(m models.RateOverride) domain.RateOverride {
	return domain.RateOverride{
		UserID:      m.UserID,
		MonthKey:    m.MonthKey,
		Rate:        m.Rate,
		AuditFields: toDomainAudit(m.AuditFields),
	}
}

// ToRateMap flattens override rows into the month key → rate map the
// resolver consumes.
func ToRateMap(ms []models.RateOverride) domain.RateMap {
	out := make(domain.RateMap, len(ms))
	for _, m := range ms {
		out[m.MonthKey] = m.Rate
	}
	return out
}
