package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/allisson/notes/internal/metrics"
	"github.com/allisson/notes/internal/note/domain"
)

// noteUseCaseWithMetrics decorates UseCase with metrics instrumentation.
type noteUseCaseWithMetrics struct {
	next    UseCase
	metrics metrics.BusinessMetrics
}

// NewNoteUseCaseWithMetrics wraps a note UseCase with metrics recording.
func NewNoteUseCaseWithMetrics(useCase UseCase, m metrics.BusinessMetrics) UseCase {
	return &noteUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

func (n *noteUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}

	n.metrics.RecordOperation(ctx, "note", operation, status)
	n.metrics.RecordDuration(ctx, "note", operation, time.Since(start), status)
}

// Create records metrics for note creation operations.
func (n *noteUseCaseWithMetrics) Create(
	ctx context.Context,
	ownerID uuid.UUID,
	input NoteInput,
) (*domain.Note, error) {
	start := time.Now()
	note, err := n.next.Create(ctx, ownerID, input)
	n.record(ctx, "create", start, err)
	return note, err
}

// GetByID records metrics for note retrieval operations.
func (n *noteUseCaseWithMetrics) GetByID(ctx context.Context, ownerID, id uuid.UUID) (*domain.Note, error) {
	start := time.Now()
	note, err := n.next.GetByID(ctx, ownerID, id)
	n.record(ctx, "get", start, err)
	return note, err
}

// List records metrics for note list operations.
func (n *noteUseCaseWithMetrics) List(
	ctx context.Context,
	ownerID uuid.UUID,
	offset, limit int,
) ([]*domain.Note, error) {
	start := time.Now()
	notes, err := n.next.List(ctx, ownerID, offset, limit)
	n.record(ctx, "list", start, err)
	return notes, err
}

// Update records metrics for note update operations.
func (n *noteUseCaseWithMetrics) Update(
	ctx context.Context,
	ownerID, id uuid.UUID,
	input NoteInput,
) (*domain.Note, error) {
	start := time.Now()
	note, err := n.next.Update(ctx, ownerID, id, input)
	n.record(ctx, "update", start, err)
	return note, err
}

// Delete records metrics for note deletion operations.
func (n *noteUseCaseWithMetrics) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	start := time.Now()
	err := n.next.Delete(ctx, ownerID, id)
	n.record(ctx, "delete", start, err)
	return err
}
