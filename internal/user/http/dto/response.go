// Package dto provides data transfer objects for the user HTTP layer.
package dto

import (
	"time"

	"github.com/google/uuid"
)

// UserResponse represents the API response for a user.
// It excludes the password hash and provides a clean external
// representation of the user domain model.
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
