// Package domain contains the label entity and its domain errors.
package domain

import (
	"time"

	"github.com/google/uuid"

	apperrors "github.com/allisson/notes/internal/errors"
)

// Label represents a user's label. OwnerID is set at creation from the
// authenticated identity and never changes afterwards.
type Label struct {
	ID        uuid.UUID
	OwnerID   uuid.UUID
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ErrLabelNotFound is returned when a label does not exist for the owner.
// Labels belonging to other users are reported with this same error.
var ErrLabelNotFound = apperrors.Wrap(apperrors.ErrNotFound, "label not found")
