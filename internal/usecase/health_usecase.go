package usecase

import "context"

// Health statuses.
const (
	StatusHealthy   = "healthy"
	StatusUnhealthy = "unhealthy"
)

// HealthReport describes the state of the backend.
type HealthReport struct {
	Status              string
	DatabaseConnected   bool
	AccountsTableExists bool
	AccountsCount       int64
	// Error is set when the status is unhealthy.
	Error string
}

// HealthUsecase reports on the backend's dependencies.
type HealthUsecase interface {
	Check(ctx context.Context) *HealthReport
}
