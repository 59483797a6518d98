package impl

import (
	"context"
	"fmt"
	"log/slog"

	deliverycontext "majorexplorer/internal/delivery/context"
	domainerrors "majorexplorer/internal/domain/errors"
	"majorexplorer/internal/domain/repository"
	"majorexplorer/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type comparisonService struct {
	txManager      repository.TransactionManager
	comparisonRepo repository.ComparisonRepository
	logger         *slog.Logger
}

// ComparisonServiceParams holds dependencies for ComparisonService, injected by Fx.
type ComparisonServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	ComparisonRepo repository.ComparisonRepository
	Logger         *slog.Logger
}

// NewComparisonService creates a new comparison service.
func NewComparisonService(params ComparisonServiceParams) usecase.ComparisonUsecase {
	return &comparisonService{
		txManager:      params.TxManager,
		comparisonRepo: params.ComparisonRepo,
		logger:         params.Logger,
	}
}

func (srv *comparisonService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Add saves every major of the batch in one READ COMMITTED unit of work.
// Majors already saved are skipped; any other failure discards the whole batch.
func (srv *comparisonService) Add(ctx context.Context, input *usecase.AddComparisonsInput) (*usecase.AddComparisonsOutput, error) {
	if input.AccountID == 0 || len(input.MajorIDs) == 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("Missing user_id or major_ids")
	}

	var saved, skipped int
	var failedMajorID int64
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		saved, skipped = 0, 0
		comparisonRepo := repoFactory.ComparisonRepo()

		for _, majorID := range input.MajorIDs {
			outcome, err := comparisonRepo.Insert(ctx, input.AccountID, majorID)
			if err != nil {
				failedMajorID = majorID

				return errors.Wrapf(err, "failed to save major %d", majorID)
			}

			if outcome == repository.OutcomeDuplicate {
				skipped++
				srv.log(ctx).Debug("Duplicate comparison skipped",
					slog.Int64("accountID", input.AccountID), slog.Int64("majorID", majorID))

				continue
			}
			saved++
			srv.log(ctx).Debug("Comparison saved",
				slog.Int64("accountID", input.AccountID), slog.Int64("majorID", majorID))
		}

		return nil
	}, repository.WithIsolation(repository.IsolationReadCommitted))
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrAccountNotFound):
			return nil, domainerrors.ErrAccountNotFound
		case errors.Is(err, repository.ErrMajorNotFound):
			return nil, domainerrors.ErrMajorNotFound.WithDetails(fmt.Sprintf("Major %d does not exist", failedMajorID))
		}
		srv.log(ctx).Error("Failed to save comparisons", slog.Int64("accountID", input.AccountID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute save comparisons transaction")
	}

	srv.log(ctx).Info("Comparisons saved",
		slog.Int64("accountID", input.AccountID), slog.Int("saved", saved), slog.Int("skipped", skipped))

	return &usecase.AddComparisonsOutput{
		Saved:   saved,
		Skipped: skipped,
		Message: addComparisonsMessage(saved, skipped),
	}, nil
}

func addComparisonsMessage(saved, skipped int) string {
	switch {
	case saved > 0 && skipped > 0:
		return fmt.Sprintf("Saved %d new comparisons. %d were already saved.", saved, skipped)
	case saved > 0:
		return fmt.Sprintf("Successfully saved %d comparison(s).", saved)
	default:
		return fmt.Sprintf("All %d comparison(s) were already saved.", skipped)
	}
}

// List returns the saved majors of an account with their aggregated statistics.
func (srv *comparisonService) List(ctx context.Context, accountID int64) (*usecase.ListComparisonsOutput, error) {
	views, err := srv.comparisonRepo.ListWithStats(ctx, accountID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list saved comparisons")
	}

	return &usecase.ListComparisonsOutput{
		AccountID:   accountID,
		Comparisons: views,
		Count:       len(views),
	}, nil
}

// Remove deletes one saved major. Removing a pair that is not saved reports ErrComparisonNotFound.
func (srv *comparisonService) Remove(ctx context.Context, accountID, majorID int64) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		removed, err := repoFactory.ComparisonRepo().Delete(ctx, accountID, majorID)
		if err != nil {
			return errors.Wrap(err, "failed to delete saved comparison")
		}
		if removed == 0 {
			return domainerrors.ErrComparisonNotFound
		}

		return nil
	}, repository.WithIsolation(repository.IsolationReadCommitted))
	if err != nil {
		if errors.Is(err, domainerrors.ErrComparisonNotFound) {
			return err
		}
		srv.log(ctx).Error("Failed to remove comparison",
			slog.Int64("accountID", accountID), slog.Int64("majorID", majorID), slog.Any("error", err))

		return errors.Wrap(err, "failed to execute remove comparison transaction")
	}

	srv.log(ctx).Info("Comparison removed", slog.Int64("accountID", accountID), slog.Int64("majorID", majorID))

	return nil
}
