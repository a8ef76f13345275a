// Package domain defines authentication and authorization domain models.
// Implements JWT-based stateless identity with simple user/admin roles.
package domain

import (
	"github.com/google/uuid"

	"github.com/allisson/notes/internal/errors"
)

// Role is the privilege level carried by an identity.
type Role string

const (
	// RoleUser is the default role assigned at registration.
	RoleUser Role = "user"

	// RoleAdmin grants access to admin-only operations (e.g., listing all users).
	RoleAdmin Role = "admin"
)

// Valid reports whether the role is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// Identity is the authenticated caller, reconstructed from a verified token
// on every request. It is request-local and never persisted on its own.
type Identity struct {
	ID   uuid.UUID
	Role Role
}

// IsAdmin reports whether the identity carries the admin role.
func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}

// Authentication errors.
var (
	// ErrInvalidToken is the single error returned by token verification for
	// every failure mode (empty, malformed, bad signature, undecodable payload,
	// expired). The constant shape avoids oracle behavior.
	ErrInvalidToken = errors.Wrap(errors.ErrMalformedCredential, "invalid auth token")
)
