package usecase

import (
	"context"
	"time"

	authDomain "github.com/memoriz2/greensupia-sub000/internal/auth/domain"
	"github.com/memoriz2/greensupia-sub000/internal/metrics"
)

// adminUseCaseWithMetrics decorates AdminUseCase with metrics instrumentation.
type adminUseCaseWithMetrics struct {
	next    AdminUseCase
	metrics metrics.BusinessMetrics
}

// NewAdminUseCaseWithMetrics wraps an AdminUseCase with metrics recording.
func NewAdminUseCaseWithMetrics(useCase AdminUseCase, m metrics.BusinessMetrics) AdminUseCase {
	return &adminUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Create records metrics for admin creation.
func (a *adminUseCaseWithMetrics) Create(
	ctx context.Context,
	username, password string,
) (*authDomain.Admin, error) {
	start := time.Now()
	admin, err := a.next.Create(ctx, username, password)
	a.record(ctx, "admin_create", start, err)
	return admin, err
}

// Login records metrics for login attempts.
func (a *adminUseCaseWithMetrics) Login(
	ctx context.Context,
	username, password string,
) (*authDomain.Session, error) {
	start := time.Now()
	session, err := a.next.Login(ctx, username, password)
	a.record(ctx, "admin_login", start, err)
	return session, err
}

// Authenticate records metrics for session authentication.
func (a *adminUseCaseWithMetrics) Authenticate(ctx context.Context, token string) (*authDomain.Admin, error) {
	start := time.Now()
	admin, err := a.next.Authenticate(ctx, token)
	a.record(ctx, "session_authenticate", start, err)
	return admin, err
}

func (a *adminUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	status := metrics.StatusFor(err)
	a.metrics.RecordOperation(ctx, "auth", operation, status)
	a.metrics.RecordDuration(ctx, "auth", operation, time.Since(start), status)
}
