package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/allisson/notes/internal/database"
	apperrors "github.com/allisson/notes/internal/errors"
	"github.com/allisson/notes/internal/note/domain"
)

// MySQLNoteRepository handles note persistence for MySQL
type MySQLNoteRepository struct {
	db *sql.DB
}

// NewMySQLNoteRepository creates a new MySQLNoteRepository
func NewMySQLNoteRepository(db *sql.DB) *MySQLNoteRepository {
	return &MySQLNoteRepository{
		db: db,
	}
}

// Create inserts a new note
func (r *MySQLNoteRepository) Create(ctx context.Context, note *domain.Note) error {
	querier := database.GetTx(ctx, r.db)

	labelIDs, ticks, err := marshalNoteJSON(note)
	if err != nil {
		return err
	}

	query := `INSERT INTO notes (id, owner_id, title, archived, pinned, color, text, label_ids, ticks, created_at, updated_at)
			  VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, NOW(), NOW())`

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
func (r *MySQLNoteRepository) GetByID(ctx context.Context, ownerID, id uuid.UUID) (*domain.Note, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, owner_id, title, archived, pinned, color, text, label_ids, ticks, created_at, updated_at
			  FROM notes WHERE id = ? AND owner_id = ?`

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
func (r *MySQLNoteRepository) List(ctx context.Context, ownerID uuid.UUID, offset, limit int) ([]*domain.Note, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, owner_id, title, archived, pinned, color, text, label_ids, ticks, created_at, updated_at
			  FROM notes WHERE owner_id = ? ORDER BY created_at LIMIT ? OFFSET ?`

	rows, err := querier.QueryContext(ctx, query, ownerID, limit, offset)
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
func (r *MySQLNoteRepository) Update(ctx context.Context, note *domain.Note) error {
	querier := database.GetTx(ctx, r.db)

	labelIDs, ticks, err := marshalNoteJSON(note)
	if err != nil {
		return err
	}

	query := `UPDATE notes
			  SET title = ?, archived = ?, pinned = ?, color = ?, text = ?,
				  label_ids = ?, ticks = ?, updated_at = NOW()
			  WHERE id = ? AND owner_id = ?`

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
func (r *MySQLNoteRepository) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	querier := database.GetTx(ctx, r.db)

	query := `DELETE FROM notes WHERE id = ? AND owner_id = ?`

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
