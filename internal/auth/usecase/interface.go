// Package usecase implements the authentication business logic.
package usecase

import (
	"context"

	"github.com/google/uuid"

	userDomain "github.com/allisson/notes/internal/user/domain"
)

// LoginInput contains the credentials submitted to the login endpoint
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthUseCase defines the interface for authentication operations
type AuthUseCase interface {
	// Login verifies the credentials and returns a signed auth token.
	// Unknown email and wrong password are indistinguishable to the caller.
	Login(ctx context.Context, input LoginInput) (string, error)
}

// UserRepository defines the user repository operations the auth flow needs
type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*userDomain.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*userDomain.User, error)
	Update(ctx context.Context, user *userDomain.User) error
}
