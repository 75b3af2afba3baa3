package dto

import (
	"github.com/SscSPs/expense_tracker_app/internal/core/domain"
)

// SaveSettingsRequest replaces the user's label sets.
type SaveSettingsRequest struct {
	PaymentMethods []string `json:"paymentMethods" binding:"required,min=1,dive,required"`
	Categories     []string `json:"categories" binding:"required,min=1,dive,required"`
}

// SettingsResponse is the API shape of the user's label sets.
type SettingsResponse struct {
	PaymentMethods []string `json:"paymentMethods"`
	Categories     []string `json:"categories"`
}

// ToSettingsResponse converts domain Settings to its response DTO
func ToSettingsResponse(s *domain.Settings) SettingsResponse {
	return SettingsResponse{
		PaymentMethods: s.PaymentMethods,
		Categories:     s.Categories,
	}
}
