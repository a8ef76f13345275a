package usecase

import (
	"context"
	"strings"

	validation "github.com/jellydator/validation"

	"github.com/google/uuid"

	"github.com/allisson/notes/internal/note/domain"
	appValidation "github.com/allisson/notes/internal/validation"
)

// NoteUseCase handles note-related business logic
type NoteUseCase struct {
	noteRepo NoteRepository
}

// NewNoteUseCase creates a new NoteUseCase
func NewNoteUseCase(noteRepo NoteRepository) UseCase {
	return &NoteUseCase{
		noteRepo: noteRepo,
	}
}

// validateNoteInput validates a note payload using jellydator/validation
func (uc *NoteUseCase) validateNoteInput(input NoteInput) error {
	err := validation.ValidateStruct(&input,
		validation.Field(&input.Title,
			validation.Required.Error("title is required"),
			appValidation.NotBlank,
			validation.Length(1, 255).Error("title must be between 1 and 255 characters"),
		),
		validation.Field(&input.Color,
			validation.Length(0, 24).Error("color must be at most 24 characters"),
		),
		validation.Field(&input.Text,
			validation.Length(0, 4192).Error("text must be at most 4192 characters"),
		),
		validation.Field(&input.LabelIDs,
			validation.Each(
				validation.Required.Error("label id is required"),
				appValidation.UUID,
			),
		),
		validation.Field(&input.Ticks,
			validation.Each(validation.By(validateTick)),
		),
	)
	return appValidation.WrapValidationError(err)
}

// validateTick validates a single checklist item.
func validateTick(value interface{}) error {
	tick, ok := value.(TickInput)
	if !ok {
		return validation.NewError("validation_tick_type", "must be a checklist item")
	}

	return validation.ValidateStruct(&tick,
		validation.Field(&tick.Name,
			validation.Required.Error("tick name is required"),
			validation.Length(1, 4192).Error("tick name must be at most 4192 characters"),
		),
	)
}

// Create creates a new note owned by the authenticated identity
func (uc *NoteUseCase) Create(ctx context.Context, ownerID uuid.UUID, input NoteInput) (*domain.Note, error) {
	if err := uc.validateNoteInput(input); err != nil {
		return nil, err
	}

	note := &domain.Note{
		ID:      uuid.Must(uuid.NewV7()),
		OwnerID: ownerID,
	}
	applyNoteInput(note, input)

	if err := uc.noteRepo.Create(ctx, note); err != nil {
		return nil, err
	}

	return note, nil
}

// GetByID retrieves one of the owner's notes
func (uc *NoteUseCase) GetByID(ctx context.Context, ownerID, id uuid.UUID) (*domain.Note, error) {
	return uc.noteRepo.GetByID(ctx, ownerID, id)
}

// List retrieves the owner's notes
func (uc *NoteUseCase) List(ctx context.Context, ownerID uuid.UUID, offset, limit int) ([]*domain.Note, error) {
	return uc.noteRepo.List(ctx, ownerID, offset, limit)
}

// Update replaces the client-settable fields of one of the owner's notes
func (uc *NoteUseCase) Update(ctx context.Context, ownerID, id uuid.UUID, input NoteInput) (*domain.Note, error) {
	if err := uc.validateNoteInput(input); err != nil {
		return nil, err
	}

	note, err := uc.noteRepo.GetByID(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	applyNoteInput(note, input)

	if err := uc.noteRepo.Update(ctx, note); err != nil {
		return nil, err
	}

	return note, nil
}

// Delete removes one of the owner's notes
func (uc *NoteUseCase) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	return uc.noteRepo.Delete(ctx, ownerID, id)
}

// applyNoteInput copies the validated payload onto the note. The label ids
// were already validated as UUIDs, so the parse cannot fail here.
func applyNoteInput(note *domain.Note, input NoteInput) {
	note.Title = strings.TrimSpace(input.Title)
	note.Archived = input.Archived
	note.Pinned = input.Pinned
	note.Color = input.Color
	note.Text = input.Text

	labelIDs := make([]uuid.UUID, 0, len(input.LabelIDs))
	for _, raw := range input.LabelIDs {
		if id, err := uuid.Parse(raw); err == nil {
			labelIDs = append(labelIDs, id)
		}
	}
	note.LabelIDs = labelIDs

	ticks := make([]domain.Tick, 0, len(input.Ticks))
	for _, tick := range input.Ticks {
		ticks = append(ticks, domain.Tick{Name: tick.Name, Ticked: tick.Ticked})
	}
	note.Ticks = ticks
}
