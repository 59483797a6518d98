package usecase

import (
	"context"

	"majorexplorer/internal/domain/entity"
)

// UnknownMajorName is reported for job listings of a major that does not exist.
const UnknownMajorName = "Unknown Major"

// MajorJobsOutput lists the statistics rows of one major.
type MajorJobsOutput struct {
	MajorID   int64
	MajorName string
	Jobs      []*entity.MajorJobStat
	Count     int
}

// CatalogUsecase serves the read-only catalog.
type CatalogUsecase interface {
	ListMajors(ctx context.Context, filter entity.MajorFilter) ([]*entity.MajorSummary, error)
	ListInterestAreas(ctx context.Context) ([]*entity.InterestArea, error)
	SearchInterestAreas(ctx context.Context, query string) ([]*entity.InterestArea, error)
	GetMajorJobs(ctx context.Context, majorID int64) (*MajorJobsOutput, error)
}
