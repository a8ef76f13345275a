package usecase

import (
	"context"
	"time"

	"github.com/allisson/notes/internal/metrics"
)

// authUseCaseWithMetrics decorates AuthUseCase with metrics instrumentation.
type authUseCaseWithMetrics struct {
	next    AuthUseCase
	metrics metrics.BusinessMetrics
}

// NewAuthUseCaseWithMetrics wraps an AuthUseCase with metrics recording.
func NewAuthUseCaseWithMetrics(useCase AuthUseCase, m metrics.BusinessMetrics) AuthUseCase {
	return &authUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Login records metrics for login operations.
func (a *authUseCaseWithMetrics) Login(ctx context.Context, input LoginInput) (string, error) {
	start := time.Now()
	token, err := a.next.Login(ctx, input)

	status := "success"
	if err != nil {
		status = "error"
	}

	a.metrics.RecordOperation(ctx, "auth", "login", status)
	a.metrics.RecordDuration(ctx, "auth", "login", time.Since(start), status)

	return token, err
}
