package dto

import (
	"github.com/SscSPs/expense_tracker_app/internal/core/domain"
)

// UserResponse is the public view of a user.
type UserResponse struct {
	UserID       string `json:"userID"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	AuthProvider string `json:"authProvider"`
}

// UpdateUserRequest defines the data allowed for updating a user.
// Pointers differentiate omitted fields from zero-value fields.
type UpdateUserRequest struct {
	Name *string `json:"name"`
}

// ToUserResponse converts a domain.User to its API representation.
func ToUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		UserID:       user.UserID,
		Name:         user.Name,
		Email:        user.Email,
		AuthProvider: string(user.AuthProvider),
	}
}
