package mapping

import (
	"github.com/SscSPs/expense_tracker_app/internal/core/domain"
	"github.com/SscSPs/expense_tracker_app/internal/models"
)

// ToModelSettings converts domain Settings to model Settings
func ToModelSettings(d domain.Settings) models.Settings {
	return models.Settings{
		UserID:         d.UserID,
		PaymentMethods: d.PaymentMethods,
		Categories:     d.Categories,
		AuditFields:    toModelAudit(d.AuditFields),
	}
}

// ToDomainSettings converts model Settings to domain Settings
func ToDomainSettings(m models.Settings) domain.Settings {
	return domain.Settings{
		UserID:         m.UserID,
		PaymentMethods: m.PaymentMethods,
		Categories:     m.Categories,
		AuditFields:    toDomainAudit(m.AuditFields),
	}
}
