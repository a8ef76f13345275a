// Package dto provides data transfer objects for the label HTTP layer.
package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/allisson/notes/internal/label/domain"
	"github.com/allisson/notes/internal/label/usecase"
)

// LabelRequest represents the API request for creating or renaming a label
type LabelRequest struct {
	Name string `json:"name"`
}

// LabelResponse represents the API response for a label
type LabelResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToLabelInput converts a LabelRequest DTO to a use case input
func ToLabelInput(req LabelRequest) usecase.LabelInput {
	return usecase.LabelInput{Name: req.Name}
}

// ToLabelResponse converts a domain Label model to a LabelResponse DTO
func ToLabelResponse(label *domain.Label) LabelResponse {
	return LabelResponse{
		ID:        label.ID,
		Name:      label.Name,
		CreatedAt: label.CreatedAt,
		UpdatedAt: label.UpdatedAt,
	}
}

// ToLabelListResponse converts a slice of domain labels to response DTOs
func ToLabelListResponse(labels []*domain.Label) []LabelResponse {
	responses := make([]LabelResponse, 0, len(labels))
	for _, label := range labels {
		responses = append(responses, ToLabelResponse(label))
	}
	return responses
}
