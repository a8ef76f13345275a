// Package domain defines the core user domain entities and types.
package domain

import (
	"time"

	"github.com/google/uuid"

	authDomain "github.com/allisson/notes/internal/auth/domain"
	"github.com/allisson/notes/internal/errors"
)

// User represents a registered account.
type User struct {
	ID           uuid.UUID
	Name         string
	Email        string
	PasswordHash string
	Role         authDomain.Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Identity derives the authentication identity for this user.
func (u *User) Identity() authDomain.Identity {
	return authDomain.Identity{ID: u.ID, Role: u.Role}
}

// Domain-specific errors for user operations.
var (
	// ErrUserNotFound indicates the requested user does not exist.
	ErrUserNotFound = errors.Wrap(errors.ErrNotFound, "user not found")

	// ErrEmailAlreadyTaken indicates a user with the same email already exists.
	ErrEmailAlreadyTaken = errors.Wrap(errors.ErrConflict, "email already taken")
)
