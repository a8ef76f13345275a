// Package dto provides data transfer objects for the note HTTP layer.
package dto

// TickRequest is a single checklist item in a note payload.
// Ticked defaults to false when omitted.
type TickRequest struct {
	Name   string `json:"name"`
	Ticked bool   `json:"ticked"`
}

// NoteRequest represents the API request for creating or replacing a note.
// The owner is never part of the payload.
type NoteRequest struct {
	Title    string        `json:"title"`
	Archived bool          `json:"archived"`
	Pinned   bool          `json:"pinned"`
	Color    string        `json:"color"`
	Text     string        `json:"text"`
	LabelIDs []string      `json:"labelIds"`
	Ticks    []TickRequest `json:"ticks"`
}
