package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/allisson/notes/internal/label/domain"
	"github.com/allisson/notes/internal/metrics"
)

// labelUseCaseWithMetrics decorates UseCase with metrics instrumentation.
type labelUseCaseWithMetrics struct {
	next    UseCase
	metrics metrics.BusinessMetrics
}

// NewLabelUseCaseWithMetrics wraps a label UseCase with metrics recording.
func NewLabelUseCaseWithMetrics(useCase UseCase, m metrics.BusinessMetrics) UseCase {
	return &labelUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

func (l *labelUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}

	l.metrics.RecordOperation(ctx, "label", operation, status)
	l.metrics.RecordDuration(ctx, "label", operation, time.Since(start), status)
}

// Create records metrics for label creation operations.
func (l *labelUseCaseWithMetrics) Create(
	ctx context.Context,
	ownerID uuid.UUID,
	input LabelInput,
) (*domain.Label, error) {
	start := time.Now()
	label, err := l.next.Create(ctx, ownerID, input)
	l.record(ctx, "create", start, err)
	return label, err
}

// GetByID records metrics for label retrieval operations.
func (l *labelUseCaseWithMetrics) GetByID(ctx context.Context, ownerID, id uuid.UUID) (*domain.Label, error) {
	start := time.Now()
	label, err := l.next.GetByID(ctx, ownerID, id)
	l.record(ctx, "get", start, err)
	return label, err
}

// List records metrics for label list operations.
func (l *labelUseCaseWithMetrics) List(
	ctx context.Context,
	ownerID uuid.UUID,
	offset, limit int,
) ([]*domain.Label, error) {
	start := time.Now()
	labels, err := l.next.List(ctx, ownerID, offset, limit)
	l.record(ctx, "list", start, err)
	return labels, err
}

// Update records metrics for label update operations.
func (l *labelUseCaseWithMetrics) Update(
	ctx context.Context,
	ownerID, id uuid.UUID,
	input LabelInput,
) (*domain.Label, error) {
	start := time.Now()
	label, err := l.next.Update(ctx, ownerID, id, input)
	l.record(ctx, "update", start, err)
	return label, err
}

// Delete records metrics for label deletion operations.
func (l *labelUseCaseWithMetrics) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	start := time.Now()
	err := l.next.Delete(ctx, ownerID, id)
	l.record(ctx, "delete", start, err)
	return err
}
