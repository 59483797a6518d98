package postgres

import (
	"context"
	"regexp"
	"testing"

	"majorexplorer/internal/domain/entity"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogRepository_ListMajorSummaries(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCatalogRepository(db)

	areaID := int64(3)
	rows := sqlmock.NewRows([]string{"major_id", "major_name", "interest_area_id", "average_salary", "job_growth_rate", "grads"}).
		AddRow(int64(1), "Computer Science", areaID, 95000.25, 12.5, 1500.0)
	mock.ExpectQuery(regexp.QuoteMeta("HAVING AVG(ms.avg_salary) >= $3 AND AVG(ms.job_growth_rate) * 100 >= $4")).
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), 50000.0, 5.0).
		WillReturnRows(rows)

	summaries, err := repo.ListMajorSummaries(context.Background(), entity.MajorFilter{
		InterestAreaID: &areaID,
		MinSalary:      50000,
		MinGrowth:      5,
	})

	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, "Computer Science", summaries[0].MajorName)
	require.NotNil(t, summaries[0].JobGrowthRate)
	assert.InDelta(t, 12.5, *summaries[0].JobGrowthRate, 0.001)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCatalogRepository_SearchInterestAreas(t *testing.T) {
	t.Run("blank query skips the database", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewCatalogRepository(db)

		areas, err := repo.SearchInterestAreas(context.Background(), "   ")

		require.NoError(t, err)
		assert.Empty(t, areas)
		assert.NotNil(t, areas)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("case-insensitive substring", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewCatalogRepository(db)

		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "interest_areas" WHERE LOWER(name) LIKE LOWER($1) ORDER BY name`)).
			WithArgs("%eng%").
			WillReturnRows(sqlmock.NewRows([]string{"interest_area_id", "name"}).AddRow(int64(2), "Engineering"))

		areas, err := repo.SearchInterestAreas(context.Background(), " eng ")

		require.NoError(t, err)
		require.Len(t, areas, 1)
		assert.Equal(t, &entity.InterestArea{ID: 2, Name: "Engineering"}, areas[0])
	})
}

func TestCatalogRepository_FindMajor_Missing(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCatalogRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "majors" WHERE major_id = $1`)).
		WillReturnRows(sqlmock.NewRows([]string{"major_id", "major_name", "interest_area_id"}))

	major, err := repo.FindMajor(context.Background(), 404)

	require.NoError(t, err)
	assert.Nil(t, major)
}

func TestCatalogRepository_ListMajorJobStats(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCatalogRepository(db)

	rows := sqlmock.NewRows([]string{"stat_id", "avg_salary", "job_growth_rate", "grad_count", "year", "source_name", "source_url"}).
		AddRow(int64(11), 90000.0, 0.08, int64(1200), 2023, "BLS", "https://www.bls.gov").
		AddRow(int64(12), nil, nil, nil, nil, nil, nil)
	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY ms.avg_salary DESC NULLS LAST")).
		WithArgs(int64(1)).
		WillReturnRows(rows)

	stats, err := repo.ListMajorJobStats(context.Background(), 1)

	require.NoError(t, err)
	require.Len(t, stats, 2)
	require.NotNil(t, stats[0].SourceName)
	assert.Equal(t, "BLS", *stats[0].SourceName)
	assert.Equal(t, "https://www.bls.gov", *stats[0].SourceURL)
	assert.Nil(t, stats[1].AvgSalary)
	assert.Nil(t, stats[1].SourceURL)
}
