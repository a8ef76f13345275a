package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/allisson/notes/internal/database"
	apperrors "github.com/allisson/notes/internal/errors"
	"github.com/allisson/notes/internal/label/domain"
)

// MySQLLabelRepository handles label persistence for MySQL
type MySQLLabelRepository struct {
	db *sql.DB
}

// NewMySQLLabelRepository creates a new MySQLLabelRepository
func NewMySQLLabelRepository(db *sql.DB) *MySQLLabelRepository {
	return &MySQLLabelRepository{
		db: db,
	}
}

// Create inserts a new label
func (r *MySQLLabelRepository) Create(ctx context.Context, label *domain.Label) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO labels (id, owner_id, name, created_at, updated_at)
			  VALUES (?, ?, ?, NOW(), NOW())`

	_, err := querier.ExecContext(ctx, query, label.ID, label.OwnerID, label.Name)
	if err != nil {
		return apperrors.Wrap(err, "failed to create label")
	}
	return nil
}

// GetByID retrieves a label by ID, scoped to the owner
func (r *MySQLLabelRepository) GetByID(ctx context.Context, ownerID, id uuid.UUID) (*domain.Label, error) {
	var label domain.Label
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, owner_id, name, created_at, updated_at
			  FROM labels WHERE id = ? AND owner_id = ?`

	err := querier.QueryRowContext(ctx, query, id, ownerID).Scan(
		&label.ID, &label.OwnerID, &label.Name, &label.CreatedAt, &label.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrLabelNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get label")
	}

	return &label, nil
}

// List retrieves the owner's labels ordered by creation time
func (r *MySQLLabelRepository) List(ctx context.Context, ownerID uuid.UUID, offset, limit int) ([]*domain.Label, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, owner_id, name, created_at, updated_at
			  FROM labels WHERE owner_id = ? ORDER BY created_at LIMIT ? OFFSET ?`

	rows, err := querier.QueryContext(ctx, query, ownerID, limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list labels")
	}
	defer rows.Close()

	var labels []*domain.Label
	for rows.Next() {
		var label domain.Label
		if err := rows.Scan(
			&label.ID, &label.OwnerID, &label.Name, &label.CreatedAt, &label.UpdatedAt,
		); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan label row")
		}
		labels = append(labels, &label)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate label rows")
	}

	return labels, nil
}

// Update persists changes to a label, scoped to the owner
func (r *MySQLLabelRepository) Update(ctx context.Context, label *domain.Label) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE labels SET name = ?, updated_at = NOW()
			  WHERE id = ? AND owner_id = ?`

	result, err := querier.ExecContext(ctx, query, label.Name, label.ID, label.OwnerID)
	if err != nil {
		return apperrors.Wrap(err, "failed to update label")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to get affected rows")
	}
	if affected == 0 {
		return domain.ErrLabelNotFound
	}

	return nil
}

// Delete removes a label by ID, scoped to the owner
func (r *MySQLLabelRepository) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	querier := database.GetTx(ctx, r.db)

	query := `DELETE FROM labels WHERE id = ? AND owner_id = ?`

	result, err := querier.ExecContext(ctx, query, id, ownerID)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete label")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to get affected rows")
	}
	if affected == 0 {
		return domain.ErrLabelNotFound
	}

	return nil
}
