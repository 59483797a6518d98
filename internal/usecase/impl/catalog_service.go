package impl

import (
	"context"
	"log/slog"

	"majorexplorer/internal/domain/entity"
	"majorexplorer/internal/domain/repository"
	"majorexplorer/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type catalogService struct {
	catalogRepo repository.CatalogRepository
	logger      *slog.Logger
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	CatalogRepo repository.CatalogRepository
	Logger      *slog.Logger
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		catalogRepo: params.CatalogRepo,
		logger:      params.Logger,
	}
}

func (srv *catalogService) ListMajors(ctx context.Context, filter entity.MajorFilter) ([]*entity.MajorSummary, error) {
	summaries, err := srv.catalogRepo.ListMajorSummaries(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list majors")
	}

	return summaries, nil
}

func (srv *catalogService) ListInterestAreas(ctx context.Context) ([]*entity.InterestArea, error) {
	areas, err := srv.catalogRepo.ListInterestAreas(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list interest areas")
	}

	return areas, nil
}

func (srv *catalogService) SearchInterestAreas(ctx context.Context, query string) ([]*entity.InterestArea, error) {
	areas, err := srv.catalogRepo.SearchInterestAreas(ctx, query)
	if err != nil {
		return nil, errors.Wrap(err, "failed to search interest areas")
	}

	return areas, nil
}

// GetMajorJobs lists the statistics of a major. An unknown major yields an empty listing, not an error.
func (srv *catalogService) GetMajorJobs(ctx context.Context, majorID int64) (*usecase.MajorJobsOutput, error) {
	major, err := srv.catalogRepo.FindMajor(ctx, majorID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find major")
	}

	jobs, err := srv.catalogRepo.ListMajorJobStats(ctx, majorID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list major job statistics")
	}

	name := usecase.UnknownMajorName
	if major != nil {
		name = major.Name
	} else {
		srv.logger.DebugContext(ctx, "Job listing requested for unknown major", slog.Int64("majorID", majorID))
	}

	return &usecase.MajorJobsOutput{
		MajorID:   majorID,
		MajorName: name,
		Jobs:      jobs,
		Count:     len(jobs),
	}, nil
}
