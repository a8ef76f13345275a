// Package repository provides data persistence implementations for note entities.
//
// Provides PostgreSQL and MySQL implementations with transaction support via
// database.GetTx(). Checklist ticks and label references are stored as JSON
// columns. Every query that addresses a single note is scoped by
// {id, owner_id}, so rows belonging to other users behave as missing rows.
package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/google/uuid"

	"github.com/allisson/notes/internal/database"
	apperrors "github.com/allisson/notes/internal/errors"
	"github.com/allisson/notes/internal/note/domain"
)

// PostgreSQLNoteRepository handles note persistence for PostgreSQL
type PostgreSQLNoteRepository struct {
	db *sql.DB
}

// NewPostgreSQLNoteRepository creates a new PostgreSQLNoteRepository
func NewPostgreSQLNoteRepository(db *sql.DB) *PostgreSQLNoteRepository {
	return &PostgreSQLNoteRepository{
		db: db,
	}
}

// Create inserts a new note
func (r *PostgreSQLNoteRepository) Create(ctx context.Context, note *domain.Note) error {
	querier := database.GetTx(ctx, r.db)

	labelIDs, ticks, err := marshalNoteJSON(note)
	if err != nil {
		return err
	}

	query := `INSERT INTO notes (id, owner_id, title, archived, pinned, color, text, label_ids, ticks, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())`

	_, err = querier.ExecContext(ctx, query,
		note.ID, note.OwnerID, note.Title, note.Archived, note.Pinned,
		note.Color, note.Text, labelIDs, ticks,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create note")
	}
	return nil
}

// GetByID retrieves a note by ID, scoped to the owner
func (r *PostgreSQLNoteRepository) GetByID(ctx context.Context, ownerID, id uuid.UUID) (*domain.Note, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, owner_id, title, archived, pinned, color, text, label_ids, ticks, created_at, updated_at
			  FROM notes WHERE id = $1 AND owner_id = $2`

	note, err := scanNote(querier.QueryRowContext(ctx, query, id, ownerID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNoteNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get note")
	}

	return note, nil
}

// List retrieves the owner's notes ordered by creation time
func (r *PostgreSQLNoteRepository) List(ctx context.Context, ownerID uuid.UUID, offset, limit int) ([]*domain.Note, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, owner_id, title, archived, pinned, color, text, label_ids, ticks, created_at, updated_at
			  FROM notes WHERE owner_id = $1 ORDER BY created_at OFFSET $2 LIMIT $3`

	rows, err := querier.QueryContext(ctx, query, ownerID, offset, limit)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list notes")
	}
	defer rows.Close()

	var notes []*domain.Note
	for rows.Next() {
		note, err := scanNote(rows)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan note row")
		}
		notes = append(notes, note)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate note rows")
	}

	return notes, nil
}

// Update persists changes to a note, scoped to the owner
func (r *PostgreSQLNoteRepository) Update(ctx context.Context, note *domain.Note) error {
	querier := database.GetTx(ctx, r.db)

	labelIDs, ticks, err := marshalNoteJSON(note)
	if err != nil {
		return err
	}

	query := `UPDATE notes
			  SET title = $1, archived = $2, pinned = $3, color = $4, text = $5,
				  label_ids = $6, ticks = $7, updated_at = NOW()
			  WHERE id = $8 AND owner_id = $9`

	result, err := querier.ExecContext(ctx, query,
		note.Title, note.Archived, note.Pinned, note.Color, note.Text,
		labelIDs, ticks, note.ID, note.OwnerID,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to update note")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to get affected rows")
	}
	if affected == 0 {
		return domain.ErrNoteNotFound
	}

	return nil
}

// Delete removes a note by ID, scoped to the owner
func (r *PostgreSQLNoteRepository) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	querier := database.GetTx(ctx, r.db)

	query := `DELETE FROM notes WHERE id = $1 AND owner_id = $2`

	result, err := querier.ExecContext(ctx, query, id, ownerID)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete note")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to get affected rows")
	}
	if affected == 0 {
		return domain.ErrNoteNotFound
	}

	return nil
}

// rowScanner abstracts *sql.Row and *sql.Rows for shared scan logic.
type rowScanner interface {
	Scan(dest ...any) error
}

// marshalNoteJSON serializes the JSON columns of a note.
func marshalNoteJSON(note *domain.Note) (labelIDs, ticks []byte, err error) {
	ids := note.LabelIDs
	if ids == nil {
		ids = []uuid.UUID{}
	}
	labelIDs, err = json.Marshal(ids)
	if err != nil {
		return nil, nil, apperrors.Wrap(err, "failed to marshal label ids")
	}

	tickList := note.Ticks
	if tickList == nil {
		tickList = []domain.Tick{}
	}
	ticks, err = json.Marshal(tickList)
	if err != nil {
		return nil, nil, apperrors.Wrap(err, "failed to marshal ticks")
	}

	return labelIDs, ticks, nil
}

// scanNote reads a note row, deserializing the JSON columns.
func scanNote(row rowScanner) (*domain.Note, error) {
	var note domain.Note
	var labelIDs, ticks []byte

	err := row.Scan(
		&note.ID, &note.OwnerID, &note.Title, &note.Archived, &note.Pinned,
		&note.Color, &note.Text, &labelIDs, &ticks, &note.CreatedAt, &note.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(labelIDs) > 0 {
		if err := json.Unmarshal(labelIDs, &note.LabelIDs); err != nil {
			return nil, apperrors.Wrap(err, "failed to unmarshal label ids")
		}
	}
	if len(ticks) > 0 {
		if err := json.Unmarshal(ticks, &note.Ticks); err != nil {
			return nil, apperrors.Wrap(err, "failed to unmarshal ticks")
		}
	}

	return &note, nil
}
