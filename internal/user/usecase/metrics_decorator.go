package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	authDomain "github.com/allisson/notes/internal/auth/domain"
	"github.com/allisson/notes/internal/metrics"
	"github.com/allisson/notes/internal/user/domain"
)

// userUseCaseWithMetrics decorates UseCase with metrics instrumentation.
type userUseCaseWithMetrics struct {
	next    UseCase
	metrics metrics.BusinessMetrics
}

// NewUserUseCaseWithMetrics wraps a user UseCase with metrics recording.
func NewUserUseCaseWithMetrics(useCase UseCase, m metrics.BusinessMetrics) UseCase {
	return &userUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Register records metrics for user registration operations.
func (u *userUseCaseWithMetrics) Register(
	ctx context.Context,
	input RegisterUserInput,
) (*RegisterUserOutput, error) {
	start := time.Now()
	output, err := u.next.Register(ctx, input)

	status := "success"
	if err != nil {
		status = "error"
	}

	u.metrics.RecordOperation(ctx, "user", "register", status)
	u.metrics.RecordDuration(ctx, "user", "register", time.Since(start), status)

	return output, err
}

// GetByID records metrics for user retrieval operations.
func (u *userUseCaseWithMetrics) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	start := time.Now()
	user, err := u.next.GetByID(ctx, id)

	status := "success"
	if err != nil {
		status = "error"
	}

	u.metrics.RecordOperation(ctx, "user", "get", status)
	u.metrics.RecordDuration(ctx, "user", "get", time.Since(start), status)

	return user, err
}

// List records metrics for user list operations.
func (u *userUseCaseWithMetrics) List(ctx context.Context, offset, limit int) ([]*domain.User, error) {
	start := time.Now()
	users, err := u.next.List(ctx, offset, limit)

	status := "success"
	if err != nil {
		status = "error"
	}

	u.metrics.RecordOperation(ctx, "user", "list", status)
	u.metrics.RecordDuration(ctx, "user", "list", time.Since(start), status)

	return users, err
}

// Update records metrics for user update operations.
func (u *userUseCaseWithMetrics) Update(
	ctx context.Context,
	caller authDomain.Identity,
	id uuid.UUID,
	input UpdateUserInput,
) (*domain.User, error) {
	start := time.Now()
	user, err := u.next.Update(ctx, caller, id, input)

	status := "success"
	if err != nil {
		status = "error"
	}

	u.metrics.RecordOperation(ctx, "user", "update", status)
	u.metrics.RecordDuration(ctx, "user", "update", time.Since(start), status)

	return user, err
}

// Delete records metrics for user deletion operations.
func (u *userUseCaseWithMetrics) Delete(ctx context.Context, caller authDomain.Identity, id uuid.UUID) error {
	start := time.Now()
	err := u.next.Delete(ctx, caller, id)

	status := "success"
	if err != nil {
		status = "error"
	}

	u.metrics.RecordOperation(ctx, "user", "delete", status)
	u.metrics.RecordDuration(ctx, "user", "delete", time.Since(start), status)

	return err
}
