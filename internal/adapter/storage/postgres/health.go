package postgres

import "context"

// HealthChecker implements ports.HealthChecker for PostgreSQL.
type HealthChecker struct {
	pool Pool
}

// NewHealthChecker creates a new PostgreSQL health checker.
func NewHealthChecker(pool Pool) *HealthChecker {
	return &HealthChecker{pool: pool}
}

// Ping verifies database connectivity.
func (h *HealthChecker) Ping(ctx context.Context) error {
	return h.pool.Ping(ctx)
}

// Name returns the dependency name.
func (h *HealthChecker) Name() string {
	return "postgresql"
}
