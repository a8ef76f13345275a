package usecase

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "github.com/allisson/notes/internal/errors"
	"github.com/allisson/notes/internal/note/domain"
)

// MockNoteRepository is a mock implementation of NoteRepository
type MockNoteRepository struct {
	mock.Mock
}

func (m *MockNoteRepository) Create(ctx context.Context, note *domain.Note) error {
	args := m.Called(ctx, note)
	return args.Error(0)
}

func (m *MockNoteRepository) GetByID(ctx context.Context, ownerID, id uuid.UUID) (*domain.Note, error) {
	args := m.Called(ctx, ownerID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Note), args.Error(1)
}

func (m *MockNoteRepository) List(ctx context.Context, ownerID uuid.UUID, offset, limit int) ([]*domain.Note, error) {
	args := m.Called(ctx, ownerID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Note), args.Error(1)
}

func (m *MockNoteRepository) Update(ctx context.Context, note *domain.Note) error {
	args := m.Called(ctx, note)
	return args.Error(0)
}

func (m *MockNoteRepository) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	args := m.Called(ctx, ownerID, id)
	return args.Error(0)
}

func validNoteInput() NoteInput {
	return NoteInput{
		Title:    "Groceries",
		Pinned:   true,
		Color:    "yellow",
		Text:     "weekly shopping",
		LabelIDs: []string{uuid.Must(uuid.NewV7()).String()},
		Ticks: []TickInput{
			{Name: "milk", Ticked: true},
			{Name: "bread"},
		},
	}
}

func TestNoteUseCase_Create(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.Must(uuid.NewV7())

	t.Run("success", func(t *testing.T) {
		noteRepo := &MockNoteRepository{}
		useCase := NewNoteUseCase(noteRepo)

		noteRepo.On("Create", ctx, mock.AnythingOfType("*domain.Note")).Return(nil)

		input := validNoteInput()
		note, err := useCase.Create(ctx, ownerID, input)
		require.NoError(t, err)
		assert.Equal(t, ownerID, note.OwnerID)
		assert.Equal(t, "Groceries", note.Title)
		assert.True(t, note.Pinned)
		assert.False(t, note.Archived)
		require.Len(t, note.LabelIDs, 1)
		assert.Equal(t, input.LabelIDs[0], note.LabelIDs[0].String())
		require.Len(t, note.Ticks, 2)
		// Ticked defaults to false when omitted from the payload
		assert.False(t, note.Ticks[1].Ticked)
		noteRepo.AssertExpectations(t)
	})

	t.Run("title at maximum length", func(t *testing.T) {
		noteRepo := &MockNoteRepository{}
		useCase := NewNoteUseCase(noteRepo)

		noteRepo.On("Create", ctx, mock.AnythingOfType("*domain.Note")).Return(nil)

		input := validNoteInput()
		input.Title = strings.Repeat("a", 255)
		note, err := useCase.Create(ctx, ownerID, input)
		require.NoError(t, err)
		assert.Len(t, note.Title, 255)
		noteRepo.AssertExpectations(t)
	})

	t.Run("validation errors", func(t *testing.T) {
		noteRepo := &MockNoteRepository{}
		useCase := NewNoteUseCase(noteRepo)

		tests := []struct {
			name   string
			mutate func(*NoteInput)
		}{
			{"missing title", func(i *NoteInput) { i.Title = "" }},
			{"blank title", func(i *NoteInput) { i.Title = "   " }},
			{"long title", func(i *NoteInput) { i.Title = strings.Repeat("a", 256) }},
			{"long color", func(i *NoteInput) { i.Color = strings.Repeat("a", 25) }},
			{"long text", func(i *NoteInput) { i.Text = strings.Repeat("a", 4193) }},
			{"bad label id", func(i *NoteInput) { i.LabelIDs = []string{"not-a-uuid"} }},
			{"tick without name", func(i *NoteInput) { i.Ticks = []TickInput{{Ticked: true}} }},
			{"long tick name", func(i *NoteInput) { i.Ticks = []TickInput{{Name: strings.Repeat("a", 4193)}} }},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				input := validNoteInput()
				tt.mutate(&input)

				note, err := useCase.Create(ctx, ownerID, input)
				assert.Nil(t, note)
				assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
				noteRepo.AssertNotCalled(t, "Create")
			})
		}
	})
}

func TestNoteUseCase_Update(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.Must(uuid.NewV7())
	noteID := uuid.Must(uuid.NewV7())

	t.Run("success", func(t *testing.T) {
		noteRepo := &MockNoteRepository{}
		useCase := NewNoteUseCase(noteRepo)

		stored := &domain.Note{ID: noteID, OwnerID: ownerID, Title: "Old title"}
		noteRepo.On("GetByID", ctx, ownerID, noteID).Return(stored, nil)
		noteRepo.On("Update", ctx, stored).Return(nil)

		input := validNoteInput()
		input.Archived = true
		note, err := useCase.Update(ctx, ownerID, noteID, input)
		require.NoError(t, err)
		assert.Equal(t, noteID, note.ID)
		assert.Equal(t, ownerID, note.OwnerID)
		assert.Equal(t, "Groceries", note.Title)
		assert.True(t, note.Archived)
		noteRepo.AssertExpectations(t)
	})

	t.Run("missing or foreign note", func(t *testing.T) {
		noteRepo := &MockNoteRepository{}
		useCase := NewNoteUseCase(noteRepo)

		noteRepo.On("GetByID", ctx, ownerID, noteID).Return(nil, domain.ErrNoteNotFound)

		note, err := useCase.Update(ctx, ownerID, noteID, validNoteInput())
		assert.Nil(t, note)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})

	t.Run("validation failure before any read", func(t *testing.T) {
		noteRepo := &MockNoteRepository{}
		useCase := NewNoteUseCase(noteRepo)

		input := validNoteInput()
		input.Title = ""

		note, err := useCase.Update(ctx, ownerID, noteID, input)
		assert.Nil(t, note)
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
		noteRepo.AssertNotCalled(t, "GetByID")
	})
}

func TestNoteUseCase_GetByID(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.Must(uuid.NewV7())
	noteID := uuid.Must(uuid.NewV7())

	noteRepo := &MockNoteRepository{}
	useCase := NewNoteUseCase(noteRepo)

	stored := &domain.Note{ID: noteID, OwnerID: ownerID}
	noteRepo.On("GetByID", ctx, ownerID, noteID).Return(stored, nil)

	note, err := useCase.GetByID(ctx, ownerID, noteID)
	require.NoError(t, err)
	assert.Equal(t, stored, note)
}

func TestNoteUseCase_List(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.Must(uuid.NewV7())

	noteRepo := &MockNoteRepository{}
	useCase := NewNoteUseCase(noteRepo)

	notes := []*domain.Note{{ID: uuid.Must(uuid.NewV7()), OwnerID: ownerID}}
	noteRepo.On("List", ctx, ownerID, 0, 50).Return(notes, nil)

	got, err := useCase.List(ctx, ownerID, 0, 50)
	require.NoError(t, err)
	assert.Equal(t, notes, got)
}

func TestNoteUseCase_Delete(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.Must(uuid.NewV7())
	noteID := uuid.Must(uuid.NewV7())

	t.Run("success", func(t *testing.T) {
		noteRepo := &MockNoteRepository{}
		useCase := NewNoteUseCase(noteRepo)

		noteRepo.On("Delete", ctx, ownerID, noteID).Return(nil)

		assert.NoError(t, useCase.Delete(ctx, ownerID, noteID))
	})

	t.Run("missing or foreign note", func(t *testing.T) {
		noteRepo := &MockNoteRepository{}
		useCase := NewNoteUseCase(noteRepo)

		noteRepo.On("Delete", ctx, ownerID, noteID).Return(domain.ErrNoteNotFound)

		err := useCase.Delete(ctx, ownerID, noteID)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})
}
