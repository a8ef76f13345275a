// Package usecase implements the label business logic.
package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/allisson/notes/internal/label/domain"
)

// LabelInput contains the client-settable fields of a label
type LabelInput struct {
	Name string `json:"name"`
}

// UseCase defines the interface for label business logic operations.
// Every operation is scoped to the owner; labels belonging to other users are
// indistinguishable from missing labels.
type UseCase interface {
	Create(ctx context.Context, ownerID uuid.UUID, input LabelInput) (*domain.Label, error)
	GetByID(ctx context.Context, ownerID, id uuid.UUID) (*domain.Label, error)
	List(ctx context.Context, ownerID uuid.UUID, offset, limit int) ([]*domain.Label, error)
	Update(ctx context.Context, ownerID, id uuid.UUID, input LabelInput) (*domain.Label, error)
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
}

// LabelRepository interface defines label repository operations
type LabelRepository interface {
	Create(ctx context.Context, label *domain.Label) error
	GetByID(ctx context.Context, ownerID, id uuid.UUID) (*domain.Label, error)
	List(ctx context.Context, ownerID uuid.UUID, offset, limit int) ([]*domain.Label, error)
	Update(ctx context.Context, label *domain.Label) error
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
}
