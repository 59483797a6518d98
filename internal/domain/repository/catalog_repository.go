package repository

import (
	"context"

	"majorexplorer/internal/domain/entity"
)

// CatalogRepository is the read-only query surface over majors, interest areas and job statistics.
type CatalogRepository interface {
	ListMajorSummaries(ctx context.Context, filter entity.MajorFilter) ([]*entity.MajorSummary, error)
	ListInterestAreas(ctx context.Context) ([]*entity.InterestArea, error)
	// SearchInterestAreas matches names case-insensitively by substring, ordered by name.
	SearchInterestAreas(ctx context.Context, query string) ([]*entity.InterestArea, error)
	// FindMajor returns nil without error when the major does not exist.
	FindMajor(ctx context.Context, majorID int64) (*entity.Major, error)
	// ListMajorJobStats returns statistics rows ordered by average salary, highest first.
	ListMajorJobStats(ctx context.Context, majorID int64) ([]*entity.MajorJobStat, error)
}

// HealthRepository probes the persistence layer.
type HealthRepository interface {
	Health(ctx context.Context) (*entity.HealthStatus, error)
}
