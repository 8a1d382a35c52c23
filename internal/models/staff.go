package models

import (
	"time"

	"github.com/google/uuid"
)

// Staff roles.
const (
	RoleAdmin = "admin"
	RoleStaff = "staff"
)

// Staff represents a back-office account that may call the API.
type Staff struct {
	// ID is the unique identifier for the account (UUID format).
	ID string `db:"id" json:"id"`

	// Email is unique and used to log in.
	Email string `db:"email" json:"email"`

	DisplayName string `db:"display_name" json:"display_name"`

	// PasswordHash is the bcrypt hash of the password. Never serialized.
	PasswordHash string `db:"password_hash" json:"-"`

	// Role is RoleAdmin or RoleStaff.
	Role string `db:"role" json:"role"`

	CreatedAt int64 `db:"created_at" json:"created_at"`
	UpdatedAt int64 `db:"updated_at" json:"updated_at"`
}

// NewStaff returns an account with a fresh ID and timestamps.
func NewStaff(email, displayName, passwordHash, role string) *Staff {
	now := time.Now().Unix()
	return &Staff{
		ID:           uuid.New().String(),
		Email:        email,
		DisplayName:  displayName,
		PasswordHash: passwordHash,
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
