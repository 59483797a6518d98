package impl

import (
	"context"
	"log/slog"

	deliverycontext "majorexplorer/internal/delivery/context"
	"majorexplorer/internal/domain/entity"
	domainerrors "majorexplorer/internal/domain/errors"
	"majorexplorer/internal/domain/repository"
	"majorexplorer/internal/domain/service"
	"majorexplorer/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type profileService struct {
	txManager   repository.TransactionManager
	accountRepo repository.AccountRepository
	hasher      service.PasswordHasher
	logger      *slog.Logger
}

// ProfileServiceParams holds dependencies for ProfileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	AccountRepo repository.AccountRepository
	Hasher      service.PasswordHasher
	Logger      *slog.Logger
}

// NewProfileService creates a new profile service.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		txManager:   params.TxManager,
		accountRepo: params.AccountRepo,
		hasher:      params.Hasher,
		logger:      params.Logger,
	}
}

func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetProfile retrieves an account by ID.
func (srv *profileService) GetProfile(ctx context.Context, accountID int64) (*entity.Account, error) {
	account, err := srv.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find account")
	}

	return account, nil
}

// UpdateProfile applies every provided field or none of them.
func (srv *profileService) UpdateProfile(ctx context.Context, accountID int64, input *usecase.UpdateProfileInput) error {
	update := entity.AccountUpdate{
		Username: nonEmpty(input.Username),
		Email:    nonEmpty(input.Email),
	}
	password := nonEmpty(input.Password)
	if update.Username == nil && update.Email == nil && password == nil {
		return domainerrors.ErrValidationFailed.WithDetails("At least one field must be provided")
	}

	if password != nil {
		hashedPassword, err := srv.hasher.Hash(*password)
		if err != nil {
			srv.log(ctx).Error("Failed to hash password during profile update", slog.Int64("accountID", accountID), slog.Any("error", err))

			return errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
		}
		update.PasswordHash = &hashedPassword
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		result, err := repoFactory.AccountRepo().UpdateFields(ctx, accountID, update)
		if err != nil {
			return errors.Wrap(err, "failed to update account")
		}

		switch result.Outcome {
		case repository.OutcomeNotFound:
			return domainerrors.ErrAccountNotFound
		case repository.OutcomeDuplicate:
			if result.Conflict == repository.FieldEmail {
				return domainerrors.ErrEmailTaken
			}

			return domainerrors.ErrUsernameTaken
		default:
			return nil
		}
	}, repository.WithIsolation(repository.IsolationReadCommitted))
	if err != nil {
		var appErr domainerrors.AppError
		if errors.As(err, &appErr) && appErr.HTTPCode() < 500 {
			return err
		}
		srv.log(ctx).Error("Failed to update profile", slog.Int64("accountID", accountID), slog.Any("error", err))

		return errors.Wrap(err, "failed to execute profile update transaction")
	}

	srv.log(ctx).Info("Profile updated", slog.Int64("accountID", accountID))

	return nil
}

func nonEmpty(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}

	return s
}
