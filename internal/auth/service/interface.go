// Package service provides technical services for authentication operations.
//
// This package implements the stateless token codec (JWT, HS256) and the
// password hashing service (Argon2id with legacy bcrypt verification).
package service

import (
	authDomain "github.com/allisson/notes/internal/auth/domain"
)

// TokenCodec issues and verifies signed, stateless identity tokens.
// Both operations are pure functions of the identity and the process-wide
// signing key; no server-side token state exists.
type TokenCodec interface {
	// Issue encodes the identity into a signed token.
	Issue(identity authDomain.Identity) (string, error)

	// Verify validates the token signature and reconstructs the identity.
	// Every failure mode returns authDomain.ErrInvalidToken; callers cannot
	// distinguish a malformed token from a bad signature.
	Verify(token string) (authDomain.Identity, error)
}

// PasswordService hashes and verifies user passwords.
type PasswordService interface {
	// Hash hashes a plain text password for storage.
	Hash(plainPassword string) (string, error)

	// Verify compares a plain password against a stored hash.
	// legacy is true when the stored hash uses the bcrypt format produced by
	// the previous implementation of this service; callers should rehash the
	// password with Hash on the next successful verification.
	Verify(plainPassword string, storedHash string) (valid bool, legacy bool)
}
