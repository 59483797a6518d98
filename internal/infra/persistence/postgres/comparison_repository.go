package postgres

import (
	"context"
	"strings"
	"time"

	"majorexplorer/internal/domain/entity"
	"majorexplorer/internal/domain/repository"
	"majorexplorer/internal/errors"
	"majorexplorer/internal/infra/persistence/model"

	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

// clock_timestamp() advances within a transaction, so rows saved in one batch keep their order.
const insertComparisonSQL = `INSERT INTO saved_comparisons (account_id, major_id, saved_at)
VALUES (?, ?, clock_timestamp())
ON CONFLICT (account_id, major_id) DO NOTHING`

const listComparisonsSQL = `SELECT sc.major_id, m.major_name,
	AVG(ms.avg_salary)::float8 AS average_salary,
	COUNT(ms.stat_id) AS job_stat_count,
	sc.saved_at
FROM saved_comparisons sc
JOIN majors m ON m.major_id = sc.major_id
LEFT JOIN major_stats ms ON ms.major_id = sc.major_id
WHERE sc.account_id = ?
GROUP BY sc.comparison_id, sc.major_id, m.major_name, sc.saved_at
ORDER BY sc.saved_at DESC, sc.comparison_id DESC`

type comparisonRepository struct {
	db *gorm.DB
}

// NewComparisonRepository binds a comparison repository to db, which may be a transaction.
func NewComparisonRepository(db *gorm.DB) repository.ComparisonRepository {
	return &comparisonRepository{db: db}
}

// Insert saves the pair. An existing pair is absorbed by ON CONFLICT and reported as OutcomeDuplicate.
// Any other failure, a unique violation included, is fatal to the surrounding transaction.
func (repo *comparisonRepository) Insert(ctx context.Context, accountID, majorID int64) (repository.Outcome, error) {
	result := repo.db.WithContext(ctx).Exec(insertComparisonSQL, accountID, majorID)
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			if strings.Contains(constraintName(result.Error), "account_id") {
				return 0, repository.ErrAccountNotFound
			}

			return 0, errors.Wrapf(repository.ErrMajorNotFound, "major %d", majorID)
		}

		return 0, databaseError(result.Error, "failed to save comparison")
	}

	if result.RowsAffected == 0 {
		return repository.OutcomeDuplicate, nil
	}

	return repository.OutcomeApplied, nil
}

type savedComparisonRow struct {
	MajorID       int64
	MajorName     string
	AverageSalary *float64
	JobStatCount  int64
	SavedAt       time.Time
}

// ListWithStats reads from the primary so a list right after add or remove sees the change.
func (repo *comparisonRepository) ListWithStats(ctx context.Context, accountID int64) ([]*entity.SavedComparisonView, error) {
	var rows []savedComparisonRow
	if err := repo.db.WithContext(ctx).Clauses(dbresolver.Write).Raw(listComparisonsSQL, accountID).Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list saved comparisons")
	}

	views := make([]*entity.SavedComparisonView, 0, len(rows))
	for _, row := range rows {
		views = append(views, &entity.SavedComparisonView{
			MajorID:       row.MajorID,
			MajorName:     row.MajorName,
			AverageSalary: row.AverageSalary,
			JobStatCount:  row.JobStatCount,
			SavedAt:       row.SavedAt,
		})
	}

	return views, nil
}

func (repo *comparisonRepository) Delete(ctx context.Context, accountID, majorID int64) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("account_id = ? AND major_id = ?", accountID, majorID).
		Delete(&model.SavedComparisonModel{})
	if result.Error != nil {
		return 0, databaseError(result.Error, "failed to remove saved comparison")
	}

	return result.RowsAffected, nil
}
