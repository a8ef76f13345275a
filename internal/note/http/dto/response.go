// Package dto provides data transfer objects for the note HTTP layer.
package dto

import (
	"time"

	"github.com/google/uuid"
)

// TickResponse is a single checklist item in a note response
type TickResponse struct {
	Name   string `json:"name"`
	Ticked bool   `json:"ticked"`
}

// NoteResponse represents the API response for a note
type NoteResponse struct {
	ID        uuid.UUID      `json:"id"`
	Title     string         `json:"title"`
	Archived  bool           `json:"archived"`
	Pinned    bool           `json:"pinned"`
	Color     string         `json:"color"`
	Text      string         `json:"text"`
	LabelIDs  []string       `json:"labelIds"`
	Ticks     []TickResponse `json:"ticks"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}
