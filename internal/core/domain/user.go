package domain

import "time"

// AuthProvider identifies how a user authenticates.
type AuthProvider string

const (
	ProviderLocal  AuthProvider = "LOCAL"
	ProviderGoogle AuthProvider = "GOOGLE"
)

// User is an account holder. PasswordHash is empty for OAuth-only users.
type User struct {
	UserID       string       `json:"userID"`
	Name         string       `json:"name"`
	Email        string       `json:"email"`
	AuthProvider AuthProvider `json:"authProvider"`
	PasswordHash string       `json:"-"`

	// Refresh token state; only the SHA256 hash is stored.
	RefreshTokenHash       string     `json:"-"`
	RefreshTokenExpiryTime *time.Time `json:"-"`

	AuditFields
}

// GoogleUserInfo mirrors the subset of Google's userinfo payload we consume.
type GoogleUserInfo struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verified_email"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
}
