package models

import (
	"database/sql"
)

// User is the persistence model for an account holder.
type User struct {
	UserID       string         `db:"user_id" json:"userID"`
	Name         string         `db:"name" json:"name"`
	Email        string         `db:"email" json:"email"`
	AuthProvider string         `db:"auth_provider" json:"authProvider"`
	PasswordHash sql.NullString `db:"password_hash" json:"-"`
	AuditFields

	RefreshTokenHash       sql.NullString `db:"refresh_token_hash" json:"-"`
	RefreshTokenExpiryTime sql.NullTime   `db:"refresh_token_expiry_time" json:"-"`
}
