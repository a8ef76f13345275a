package service

import (
	"strings"

	"github.com/allisson/go-pwdhash"
	"golang.org/x/crypto/bcrypt"

	apperrors "github.com/allisson/notes/internal/errors"
)

// passwordService implements PasswordService using Argon2id for new hashes.
// Hashes produced by the previous implementation of this service used bcrypt;
// Verify still accepts those so imported accounts keep working, and reports
// them as legacy so they can be upgraded on the next successful login.
type passwordService struct {
	hasher *pwdhash.PasswordHasher
}

// NewPasswordService creates a PasswordService using the Argon2id interactive
// policy for user passwords.
func NewPasswordService() (PasswordService, error) {
	hasher, err := pwdhash.New(pwdhash.WithPolicy(pwdhash.PolicyInteractive))
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to create password hasher")
	}

	return &passwordService{hasher: hasher}, nil
}

// Hash hashes a plain text password using Argon2id.
func (s *passwordService) Hash(plainPassword string) (string, error) {
	hashed, err := s.hasher.Hash([]byte(plainPassword))
	if err != nil {
		return "", apperrors.Wrap(err, "failed to hash password")
	}
	return hashed, nil
}

// Verify compares a plain password against a stored hash, falling back to
// bcrypt for legacy hashes.
func (s *passwordService) Verify(plainPassword string, storedHash string) (valid bool, legacy bool) {
	if isBcryptHash(storedHash) {
		err := bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(plainPassword))
		return err == nil, true
	}

	ok, err := s.hasher.Verify([]byte(plainPassword), storedHash)
	if err != nil {
		return false, false
	}
	return ok, false
}

// isBcryptHash reports whether the stored hash uses the bcrypt format.
func isBcryptHash(hash string) bool {
	return strings.HasPrefix(hash, "$2a$") ||
		strings.HasPrefix(hash, "$2b$") ||
		strings.HasPrefix(hash, "$2y$")
}
