// Package usecase implements the user business logic and orchestrates user domain operations.
package usecase

import (
	"context"

	"github.com/google/uuid"

	authDomain "github.com/allisson/notes/internal/auth/domain"
	"github.com/allisson/notes/internal/user/domain"
)

// RegisterUserInput contains the input data for user registration
type RegisterUserInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateUserInput contains the input data for updating an account.
// Password carries the current password and is required when NewPassword
// is set.
type UpdateUserInput struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	NewPassword string `json:"newPassword"`
}

// RegisterUserOutput contains the created user and its freshly issued auth token
type RegisterUserOutput struct {
	User  *domain.User
	Token string
}

// UseCase defines the interface for user business logic operations
type UseCase interface {
	Register(ctx context.Context, input RegisterUserInput) (*RegisterUserOutput, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	List(ctx context.Context, offset, limit int) ([]*domain.User, error)
	Update(ctx context.Context, caller authDomain.Identity, id uuid.UUID, input UpdateUserInput) (*domain.User, error)
	Delete(ctx context.Context, caller authDomain.Identity, id uuid.UUID) error
}

// UserRepository interface defines user repository operations
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context, offset, limit int) ([]*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id uuid.UUID) error
}
