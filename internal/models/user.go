package models

import (
	"time"

	"github.com/google/uuid"
)

// Role controls what a signed-in user can do on the dashboard.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleAgent Role = "agent"
)

// User represents a registered dashboard account.
type User struct {
	// ID is the unique identifier for the user (UUID format).
	ID string

	// Email is the user's email address (unique). Used for login.
	Email string

	DisplayName string

	// Role is admin or agent. Only agents can be assigned to transactions.
	Role Role

	// PasswordHash is the bcrypt hash of the user's password.
	PasswordHash string

	CreatedAt int64
	UpdatedAt int64
}

// NewUser builds a user with a fresh ID and timestamps.
func NewUser(email, displayName, passwordHash string, role Role) *User {
	now := time.Now().Unix()
	return &User{
		ID:           uuid.New().String(),
		Email:        email,
		DisplayName:  displayName,
		Role:         role,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
