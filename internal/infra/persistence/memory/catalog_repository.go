package memory

import (
	"cmp"
	"context"
	"math"
	"slices"
	"strings"

	"majorexplorer/internal/domain/entity"
	"majorexplorer/internal/domain/repository"
)

type catalogRepository struct {
	store *Store
}

func NewCatalogRepository(store *Store) repository.CatalogRepository {
	return &catalogRepository{store: store}
}

// ListMajorSummaries aggregates like the SQL query: majors without statistics are absent and NULLs are ignored.
func (repo *catalogRepository) ListMajorSummaries(ctx context.Context, filter entity.MajorFilter) ([]*entity.MajorSummary, error) {
	var summaries []*entity.MajorSummary

	err := repo.store.read(func(d *dataset) error {
		summaries = make([]*entity.MajorSummary, 0)
		for _, major := range d.catalog.Majors {
			if filter.InterestAreaID != nil && (major.InterestAreaID == nil || *major.InterestAreaID != *filter.InterestAreaID) {
				continue
			}

			var salaries, growth, grads []float64
			rows := 0
			for _, stat := range d.catalog.Stats {
				if stat.MajorID != major.ID {
					continue
				}
				rows++
				if stat.AvgSalary != nil {
					salaries = append(salaries, *stat.AvgSalary)
				}
				if stat.JobGrowthRate != nil {
					growth = append(growth, *stat.JobGrowthRate*100)
				}
				if stat.GradCount != nil {
					grads = append(grads, float64(*stat.GradCount))
				}
			}
			if rows == 0 {
				continue
			}

			avgSalary, avgGrowth := average(salaries), average(growth)
			if avgSalary == nil || *avgSalary < filter.MinSalary {
				continue
			}
			if avgGrowth == nil || *avgGrowth < filter.MinGrowth {
				continue
			}

			summaries = append(summaries, &entity.MajorSummary{
				MajorID:        major.ID,
				MajorName:      major.Name,
				InterestAreaID: major.InterestAreaID,
				AverageSalary:  round(avgSalary, 2),
				JobGrowthRate:  round(avgGrowth, 2),
				Grads:          round(average(grads), 0),
			})
		}

		slices.SortFunc(summaries, func(a, b *entity.MajorSummary) int { return cmp.Compare(a.MajorID, b.MajorID) })

		return nil
	})

	return summaries, err
}

func (repo *catalogRepository) ListInterestAreas(ctx context.Context) ([]*entity.InterestArea, error) {
	var areas []*entity.InterestArea

	err := repo.store.read(func(d *dataset) error {
		areas = make([]*entity.InterestArea, 0, len(d.catalog.InterestAreas))
		for _, area := range d.catalog.InterestAreas {
			a := area
			areas = append(areas, &a)
		}
		slices.SortFunc(areas, func(a, b *entity.InterestArea) int { return cmp.Compare(a.ID, b.ID) })

		return nil
	})

	return areas, err
}

func (repo *catalogRepository) SearchInterestAreas(ctx context.Context, query string) ([]*entity.InterestArea, error) {
	needle := strings.ToLower(strings.TrimSpace(query))
	if needle == "" {
		return []*entity.InterestArea{}, nil
	}

	all, err := repo.ListInterestAreas(ctx)
	if err != nil {
		return nil, err
	}

	matches := slices.DeleteFunc(all, func(area *entity.InterestArea) bool {
		return !strings.Contains(strings.ToLower(area.Name), needle)
	})
	slices.SortFunc(matches, func(a, b *entity.InterestArea) int { return cmp.Compare(a.Name, b.Name) })

	return matches, nil
}

func (repo *catalogRepository) FindMajor(ctx context.Context, majorID int64) (*entity.Major, error) {
	var found *entity.Major

	err := repo.store.read(func(d *dataset) error {
		if major, ok := d.major(majorID); ok {
			found = &major
		}

		return nil
	})

	return found, err
}

func (repo *catalogRepository) ListMajorJobStats(ctx context.Context, majorID int64) ([]*entity.MajorJobStat, error) {
	var stats []*entity.MajorJobStat

	err := repo.store.read(func(d *dataset) error {
		stats = make([]*entity.MajorJobStat, 0)
		for _, stat := range d.catalog.Stats {
			if stat.MajorID == majorID {
				s := stat.MajorJobStat
				stats = append(stats, &s)
			}
		}

		// Highest salary first, rows without a salary last.
		slices.SortStableFunc(stats, func(a, b *entity.MajorJobStat) int {
			switch {
			case a.AvgSalary == nil && b.AvgSalary == nil:
				return cmp.Compare(a.StatID, b.StatID)
			case a.AvgSalary == nil:
				return 1
			case b.AvgSalary == nil:
				return -1
			}
			if c := cmp.Compare(*b.AvgSalary, *a.AvgSalary); c != 0 {
				return c
			}

			return cmp.Compare(a.StatID, b.StatID)
		})

		return nil
	})

	return stats, err
}

type healthRepository struct {
	store *Store
}

func NewHealthRepository(store *Store) repository.HealthRepository {
	return &healthRepository{store: store}
}

func (repo *healthRepository) Health(ctx context.Context) (*entity.HealthStatus, error) {
	status := &entity.HealthStatus{DatabaseConnected: true, AccountsTableExists: true}

	err := repo.store.read(func(d *dataset) error {
		status.AccountsCount = int64(len(d.accounts))

		return nil
	})

	return status, err
}

// average returns nil for an empty input, as SQL AVG does.
func average(values []float64) *float64 {
	if len(values) == 0 {
		return nil
	}

	var sum float64
	for _, v := range values {
		sum += v
	}
	avg := sum / float64(len(values))

	return &avg
}

func round(v *float64, places int) *float64 {
	if v == nil {
		return nil
	}

	scale := math.Pow(10, float64(places))
	r := math.Round(*v*scale) / scale

	return &r
}
