package usecase

import (
	"context"

	"majorexplorer/internal/domain/entity"
)

// AddComparisonsInput saves several majors for one account in a single unit of work.
type AddComparisonsInput struct {
	AccountID int64
	MajorIDs  []int64
}

// AddComparisonsOutput counts the majors newly saved and the ones that were already saved.
type AddComparisonsOutput struct {
	Saved   int
	Skipped int
	Message string
}

// ListComparisonsOutput is the saved set of an account, most recent first.
type ListComparisonsOutput struct {
	AccountID   int64
	Comparisons []*entity.SavedComparisonView
	Count       int
}

// ComparisonUsecase manages the per-account set of saved majors.
type ComparisonUsecase interface {
	Add(ctx context.Context, input *AddComparisonsInput) (*AddComparisonsOutput, error)
	List(ctx context.Context, accountID int64) (*ListComparisonsOutput, error)
	Remove(ctx context.Context, accountID, majorID int64) error
}
