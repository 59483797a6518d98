package repository

import (
	"context"

	"majorexplorer/internal/domain/entity"
	"majorexplorer/internal/errors"
)

// ErrMajorNotFound is returned when a saved comparison references a major that does not exist.
var ErrMajorNotFound = errors.New("major not found")

// ComparisonRepository owns the per-account set of saved majors.
type ComparisonRepository interface {
	// Insert adds the pair guarded by the (account, major) uniqueness constraint.
	Insert(ctx context.Context, accountID, majorID int64) (Outcome, error)

	// ListWithStats returns the saved majors of an account, most recently saved first.
	ListWithStats(ctx context.Context, accountID int64) ([]*entity.SavedComparisonView, error)

	// Delete removes the pair and returns the number of rows removed.
	Delete(ctx context.Context, accountID, majorID int64) (int64, error)
}
