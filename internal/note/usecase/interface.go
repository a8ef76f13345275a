// Package usecase implements the note business logic.
package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/allisson/notes/internal/note/domain"
)

// TickInput is a single checklist item in a note payload
type TickInput struct {
	Name   string `json:"name"`
	Ticked bool   `json:"ticked"`
}

// NoteInput contains the client-settable fields of a note. The owner is
// never part of the payload; it always comes from the authenticated identity.
type NoteInput struct {
	Title    string      `json:"title"`
	Archived bool        `json:"archived"`
	Pinned   bool        `json:"pinned"`
	Color    string      `json:"color"`
	Text     string      `json:"text"`
	LabelIDs []string    `json:"labelIds"`
	Ticks    []TickInput `json:"ticks"`
}

// UseCase defines the interface for note business logic operations.
// Every operation is scoped to the owner; notes belonging to other users are
// indistinguishable from missing notes.
type UseCase interface {
	Create(ctx context.Context, ownerID uuid.UUID, input NoteInput) (*domain.Note, error)
	GetByID(ctx context.Context, ownerID, id uuid.UUID) (*domain.Note, error)
	List(ctx context.Context, ownerID uuid.UUID, offset, limit int) ([]*domain.Note, error)
	Update(ctx context.Context, ownerID, id uuid.UUID, input NoteInput) (*domain.Note, error)
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
}

// NoteRepository interface defines note repository operations
type NoteRepository interface {
	Create(ctx context.Context, note *domain.Note) error
	GetByID(ctx context.Context, ownerID, id uuid.UUID) (*domain.Note, error)
	List(ctx context.Context, ownerID uuid.UUID, offset, limit int) ([]*domain.Note, error)
	Update(ctx context.Context, note *domain.Note) error
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
}
