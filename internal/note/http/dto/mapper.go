package dto

import (
	"github.com/allisson/notes/internal/note/domain"
	"github.com/allisson/notes/internal/note/usecase"
)

// ToNoteInput converts a NoteRequest DTO to a use case input
func ToNoteInput(req NoteRequest) usecase.NoteInput {
	ticks := make([]usecase.TickInput, 0, len(req.Ticks))
	for _, tick := range req.Ticks {
		ticks = append(ticks, usecase.TickInput{Name: tick.Name, Ticked: tick.Ticked})
	}

	return usecase.NoteInput{
		Title:    req.Title,
		Archived: req.Archived,
		Pinned:   req.Pinned,
		Color:    req.Color,
		Text:     req.Text,
		LabelIDs: req.LabelIDs,
		Ticks:    ticks,
	}
}

// ToNoteResponse converts a domain Note model to a NoteResponse DTO
func ToNoteResponse(note *domain.Note) NoteResponse {
	labelIDs := make([]string, 0, len(note.LabelIDs))
	for _, id := range note.LabelIDs {
		labelIDs = append(labelIDs, id.String())
	}

	ticks := make([]TickResponse, 0, len(note.Ticks))
	for _, tick := range note.Ticks {
		ticks = append(ticks, TickResponse{Name: tick.Name, Ticked: tick.Ticked})
	}

	return NoteResponse{
		ID:        note.ID,
		Title:     note.Title,
		Archived:  note.Archived,
		Pinned:    note.Pinned,
		Color:     note.Color,
		Text:      note.Text,
		LabelIDs:  labelIDs,
		Ticks:     ticks,
		CreatedAt: note.CreatedAt,
		UpdatedAt: note.UpdatedAt,
	}
}

// ToNoteListResponse converts a slice of domain notes to response DTOs
func ToNoteListResponse(notes []*domain.Note) []NoteResponse {
	responses := make([]NoteResponse, 0, len(notes))
	for _, note := range notes {
		responses = append(responses, ToNoteResponse(note))
	}
	return responses
}
