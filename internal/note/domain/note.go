// Package domain contains the note entity and its domain errors.
package domain

import (
	"time"

	"github.com/google/uuid"

	apperrors "github.com/allisson/notes/internal/errors"
)

// Tick is a single checklist item inside a note. Order is preserved.
type Tick struct {
	Name   string `json:"name"`
	Ticked bool   `json:"ticked"`
}

// Note represents a user's note. OwnerID is set at creation from the
// authenticated identity and never changes afterwards.
type Note struct {
	ID        uuid.UUID
	OwnerID   uuid.UUID
	Title     string
	Archived  bool
	Pinned    bool
	Color     string
	Text      string
	LabelIDs  []uuid.UUID
	Ticks     []Tick
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ErrNoteNotFound is returned when a note does not exist for the owner.
// Notes belonging to other users are reported with this same error, so a
// caller cannot distinguish a foreign note from a missing one.
var ErrNoteNotFound = apperrors.Wrap(apperrors.ErrNotFound, "note not found")
