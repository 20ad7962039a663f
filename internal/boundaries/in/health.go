package in

import (
	"context"

	"github.com/bnema/pkgvault/internal/domain"
)

// HealthService defines the contract for backend readiness checks.
type HealthService interface {
	// Check probes every configured backend concurrently.
	Check(ctx context.Context) *domain.HealthReport
}
