package memory

import (
	"cmp"
	"context"
	"slices"

	"majorexplorer/internal/domain/entity"
	"majorexplorer/internal/domain/repository"
	"majorexplorer/internal/errors"
)

type comparisonRepository struct {
	store *Store
	scope scope
}

// NewComparisonRepository returns a comparison repository over the committed state of store.
func NewComparisonRepository(store *Store) repository.ComparisonRepository {
	return &comparisonRepository{store: store, scope: store}
}

func (repo *comparisonRepository) Insert(ctx context.Context, accountID, majorID int64) (repository.Outcome, error) {
	outcome := repository.OutcomeApplied

	err := repo.scope.write(ctx, func(d *dataset) error {
		if _, ok := d.accounts[accountID]; !ok {
			return repository.ErrAccountNotFound
		}
		if _, ok := d.major(majorID); !ok {
			return errors.Wrapf(repository.ErrMajorNotFound, "major %d", majorID)
		}

		for _, row := range d.comparisons {
			if row.accountID == accountID && row.majorID == majorID {
				outcome = repository.OutcomeDuplicate

				return nil
			}
		}

		d.comparisons = append(d.comparisons, comparisonRow{
			id:        d.nextComparisonID,
			accountID: accountID,
			majorID:   majorID,
			savedAt:   repo.store.now(),
		})
		d.nextComparisonID++

		return nil
	})
	if err != nil {
		return 0, err
	}

	return outcome, nil
}

func (repo *comparisonRepository) ListWithStats(ctx context.Context, accountID int64) ([]*entity.SavedComparisonView, error) {
	var views []*entity.SavedComparisonView

	err := repo.scope.read(func(d *dataset) error {
		rows := make([]comparisonRow, 0)
		for _, row := range d.comparisons {
			if row.accountID == accountID {
				rows = append(rows, row)
			}
		}

		slices.SortFunc(rows, func(a, b comparisonRow) int {
			if c := b.savedAt.Compare(a.savedAt); c != 0 {
				return c
			}

			return cmp.Compare(b.id, a.id)
		})

		views = make([]*entity.SavedComparisonView, 0, len(rows))
		for _, row := range rows {
			major, ok := d.major(row.majorID)
			if !ok {
				continue
			}

			var salaries []float64
			var statCount int64
			for _, stat := range d.catalog.Stats {
				if stat.MajorID != row.majorID {
					continue
				}
				statCount++
				if stat.AvgSalary != nil {
					salaries = append(salaries, *stat.AvgSalary)
				}
			}

			views = append(views, &entity.SavedComparisonView{
				MajorID:       row.majorID,
				MajorName:     major.Name,
				AverageSalary: average(salaries),
				JobStatCount:  statCount,
				SavedAt:       row.savedAt,
			})
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return views, nil
}

func (repo *comparisonRepository) Delete(ctx context.Context, accountID, majorID int64) (int64, error) {
	var removed int64

	err := repo.scope.write(ctx, func(d *dataset) error {
		d.comparisons = slices.DeleteFunc(d.comparisons, func(row comparisonRow) bool {
			if row.accountID == accountID && row.majorID == majorID {
				removed++

				return true
			}

			return false
		})

		return nil
	})
	if err != nil {
		return 0, err
	}

	return removed, nil
}
