package postgres

import (
	"context"
	"strings"

	"majorexplorer/internal/domain/entity"
	"majorexplorer/internal/domain/repository"
	"majorexplorer/internal/errors"
	"majorexplorer/internal/infra/persistence/model"

	"gorm.io/gorm"
)

const majorSummariesSQL = `SELECT m.major_id, m.major_name, m.interest_area_id,
	ROUND(AVG(ms.avg_salary), 2)::float8 AS average_salary,
	ROUND(AVG(ms.job_growth_rate) * 100, 2)::float8 AS job_growth_rate,
	ROUND(AVG(ms.grad_count), 0)::float8 AS grads
FROM major_stats ms
JOIN majors m ON m.major_id = ms.major_id
WHERE (CAST(? AS BIGINT) IS NULL OR m.interest_area_id = ?)
GROUP BY m.major_id, m.major_name, m.interest_area_id
HAVING AVG(ms.avg_salary) >= ? AND AVG(ms.job_growth_rate) * 100 >= ?
ORDER BY m.major_id`

// NULLS LAST keeps rows without a salary at the end, as MySQL orders them.
const majorJobStatsSQL = `SELECT ms.stat_id, ms.avg_salary::float8 AS avg_salary,
	ms.job_growth_rate::float8 AS job_growth_rate, ms.grad_count, ms.year,
	ds.name AS source_name, ds.url AS source_url
FROM major_stats ms
LEFT JOIN data_sources ds ON ds.source_id = ms.source_id
WHERE ms.major_id = ?
ORDER BY ms.avg_salary DESC NULLS LAST, ms.stat_id`

// catalogRepository serves read-only catalog queries. Reads may be routed to replicas.
type catalogRepository struct {
	db *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) repository.CatalogRepository {
	return &catalogRepository{db: db}
}

type majorSummaryRow struct {
	MajorID        int64
	MajorName      string
	InterestAreaID *int64
	AverageSalary  *float64
	JobGrowthRate  *float64
	Grads          *float64
}

func (repo *catalogRepository) ListMajorSummaries(ctx context.Context, filter entity.MajorFilter) ([]*entity.MajorSummary, error) {
	var rows []majorSummaryRow
	err := repo.db.WithContext(ctx).
		Raw(majorSummariesSQL, filter.InterestAreaID, filter.InterestAreaID, filter.MinSalary, filter.MinGrowth).
		Scan(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list majors")
	}

	summaries := make([]*entity.MajorSummary, 0, len(rows))
	for _, row := range rows {
		summaries = append(summaries, &entity.MajorSummary{
			MajorID:        row.MajorID,
			MajorName:      row.MajorName,
			InterestAreaID: row.InterestAreaID,
			AverageSalary:  row.AverageSalary,
			JobGrowthRate:  row.JobGrowthRate,
			Grads:          row.Grads,
		})
	}

	return summaries, nil
}

func (repo *catalogRepository) ListInterestAreas(ctx context.Context) ([]*entity.InterestArea, error) {
	var areas []model.InterestAreaModel
	if err := repo.db.WithContext(ctx).Order("interest_area_id").Find(&areas).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list interest areas")
	}

	return toInterestAreasDomain(areas), nil
}

func (repo *catalogRepository) SearchInterestAreas(ctx context.Context, query string) ([]*entity.InterestArea, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []*entity.InterestArea{}, nil
	}

	var areas []model.InterestAreaModel
	err := repo.db.WithContext(ctx).
		Where("LOWER(name) LIKE LOWER(?)", "%"+query+"%").
		Order("name").
		Find(&areas).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to search interest areas")
	}

	return toInterestAreasDomain(areas), nil
}

func (repo *catalogRepository) FindMajor(ctx context.Context, majorID int64) (*entity.Major, error) {
	var majorM model.MajorModel
	err := repo.db.WithContext(ctx).Where("major_id = ?", majorID).Take(&majorM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to find major")
	}

	return &entity.Major{
		ID:             majorM.MajorID,
		Name:           majorM.MajorName,
		InterestAreaID: majorM.InterestAreaID,
	}, nil
}

type majorJobStatRow struct {
	StatID        int64
	AvgSalary     *float64
	JobGrowthRate *float64
	GradCount     *int64
	Year          *int
	SourceName    *string
	SourceURL     *string `gorm:"column:source_url"`
}

func (repo *catalogRepository) ListMajorJobStats(ctx context.Context, majorID int64) ([]*entity.MajorJobStat, error) {
	var rows []majorJobStatRow
	if err := repo.db.WithContext(ctx).Raw(majorJobStatsSQL, majorID).Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list major job statistics")
	}

	stats := make([]*entity.MajorJobStat, 0, len(rows))
	for _, row := range rows {
		stats = append(stats, &entity.MajorJobStat{
			StatID:        row.StatID,
			AvgSalary:     row.AvgSalary,
			JobGrowthRate: row.JobGrowthRate,
			GradCount:     row.GradCount,
			Year:          row.Year,
			SourceName:    row.SourceName,
			SourceURL:     row.SourceURL,
		})
	}

	return stats, nil
}

func toInterestAreasDomain(areas []model.InterestAreaModel) []*entity.InterestArea {
	out := make([]*entity.InterestArea, 0, len(areas))
	for _, area := range areas {
		out = append(out, &entity.InterestArea{ID: area.InterestAreaID, Name: area.Name})
	}

	return out
}
