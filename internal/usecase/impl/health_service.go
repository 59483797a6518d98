package impl

import (
	"context"
	"log/slog"

	"majorexplorer/internal/domain/repository"
	"majorexplorer/internal/usecase"

	"go.uber.org/fx"
)

type healthService struct {
	healthRepo repository.HealthRepository
	logger     *slog.Logger
}

// HealthServiceParams holds dependencies for HealthService, injected by Fx.
type HealthServiceParams struct {
	fx.In

	HealthRepo repository.HealthRepository
	Logger     *slog.Logger
}

// NewHealthService creates a new health service.
func NewHealthService(params HealthServiceParams) usecase.HealthUsecase {
	return &healthService{healthRepo: params.HealthRepo, logger: params.Logger}
}

// Check reports unhealthy, with the probe error, when the persistence layer cannot be reached.
func (srv *healthService) Check(ctx context.Context) *usecase.HealthReport {
	status, err := srv.healthRepo.Health(ctx)

	report := &usecase.HealthReport{Status: usecase.StatusHealthy}
	if status != nil {
		report.DatabaseConnected = status.DatabaseConnected
		report.AccountsTableExists = status.AccountsTableExists
		report.AccountsCount = status.AccountsCount
	}
	if err != nil {
		srv.logger.WarnContext(ctx, "Health check failed", slog.Any("error", err))
		report.Status = usecase.StatusUnhealthy
		report.Error = err.Error()
	}

	return report
}
