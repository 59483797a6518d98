package memory

import "majorexplorer/internal/domain/entity"

func ptr[T any](v T) *T { return &v }

// DefaultCatalog is a small sample catalog for local runs without PostgreSQL.
func DefaultCatalog() Catalog {
	const (
		bls  = "Bureau of Labor Statistics"
		nces = "National Center for Education Statistics"
	)
	blsURL := ptr("https://www.bls.gov/ooh/")
	ncesURL := ptr("https://nces.ed.gov/")

	stat := func(id, majorID int64, salary, growth float64, grads int64, year int, source string, url *string) MajorStat {
		return MajorStat{
			MajorID: majorID,
			MajorJobStat: entity.MajorJobStat{
				StatID:        id,
				AvgSalary:     ptr(salary),
				JobGrowthRate: ptr(growth),
				GradCount:     ptr(grads),
				Year:          ptr(year),
				SourceName:    ptr(source),
				SourceURL:     url,
			},
		}
	}

	return Catalog{
		InterestAreas: []entity.InterestArea{
			{ID: 1, Name: "Arts & Humanities"},
			{ID: 2, Name: "Business"},
			{ID: 3, Name: "Engineering & Technology"},
			{ID: 4, Name: "Health Sciences"},
			{ID: 5, Name: "Natural Sciences"},
		},
		Majors: []entity.Major{
			{ID: 1, Name: "Computer Science", InterestAreaID: ptr[int64](3)},
			{ID: 2, Name: "Mechanical Engineering", InterestAreaID: ptr[int64](3)},
			{ID: 3, Name: "Nursing", InterestAreaID: ptr[int64](4)},
			{ID: 4, Name: "Finance", InterestAreaID: ptr[int64](2)},
			{ID: 5, Name: "History", InterestAreaID: ptr[int64](1)},
			{ID: 6, Name: "Biology", InterestAreaID: ptr[int64](5)},
			{ID: 7, Name: "Philosophy", InterestAreaID: ptr[int64](1)},
		},
		Stats: []MajorStat{
			stat(1, 1, 105000, 0.22, 97000, 2023, bls, blsURL),
			stat(2, 1, 98500, 0.25, 94000, 2022, nces, ncesURL),
			stat(3, 2, 87500, 0.10, 33000, 2023, bls, blsURL),
			stat(4, 3, 81200, 0.06, 190000, 2023, bls, blsURL),
			stat(5, 3, 79000, 0.07, 184000, 2022, nces, ncesURL),
			stat(6, 4, 92000, 0.08, 51000, 2023, bls, blsURL),
			stat(7, 5, 52000, 0.04, 25000, 2023, nces, ncesURL),
			stat(8, 6, 61000, 0.05, 120000, 2023, bls, blsURL),
		},
	}
}
