// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"sync"

	"majorexplorer/config"
	deliverycontext "majorexplorer/internal/delivery/context"
	"majorexplorer/internal/domain/entity"
	domainerrors "majorexplorer/internal/domain/errors"
	"majorexplorer/internal/domain/repository"
	"majorexplorer/internal/domain/service"
	"majorexplorer/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager    repository.TransactionManager
	accountRepo  repository.AccountRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	policy       *passwordPolicy
	logger       *slog.Logger

	dummyHashOnce sync.Once
	dummyHash     string
}

// fallbackDummyHash is a bcrypt hash of a random string, used when the hasher cannot produce one.
const fallbackDummyHash = "$2a$10$7EqJtq98hPqEX7fNZaFWoOhi5BWX4Z3Oa2nPl7f5mi8l5anb3Nw5e"

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	AccountRepo repository.AccountRepository
	Hasher      service.PasswordHasher
	// TokenService is nil when access tokens are disabled.
	TokenService service.TokenService
	Config       *config.Config
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		txManager:    params.TxManager,
		accountRepo:  params.AccountRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		policy:       newPasswordPolicy(params.Config),
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// unknownAccountHash is hashed once with the configured hasher so its cost matches real accounts.
func (srv *authService) unknownAccountHash() string {
	srv.dummyHashOnce.Do(func() {
		hash, err := srv.hasher.Hash("unknown-account-placeholder")
		if err != nil {
			hash = fallbackDummyHash
		}
		srv.dummyHash = hash
	})

	return srv.dummyHash
}

// Signup validates the input, hashes the password outside any transaction and
// creates the account in one READ COMMITTED unit of work.
func (srv *authService) Signup(ctx context.Context, input *usecase.SignupInput) (*usecase.SignupOutput, error) {
	if input.Username == "" || input.Email == "" || input.Password == "" || input.ConfirmPassword == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("All fields are required")
	}
	if input.Password != input.ConfirmPassword {
		return nil, domainerrors.ErrPasswordMismatch
	}
	if err := srv.policy.checkEmail(input.Email); err != nil {
		return nil, err
	}
	if err := srv.policy.checkPassword(input.Password); err != nil {
		return nil, err
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during signup", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	account := &entity.Account{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hashedPassword,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		outcome, err := repoFactory.AccountRepo().Create(ctx, account)
		if err != nil {
			return errors.Wrap(err, "failed to create account")
		}
		if outcome == repository.OutcomeDuplicate {
			return domainerrors.ErrDuplicateIdentity
		}

		return nil
	}, repository.WithIsolation(repository.IsolationReadCommitted))
	if err != nil {
		if errors.Is(err, domainerrors.ErrDuplicateIdentity) {
			srv.log(ctx).Info("Duplicate signup attempt",
				slog.String("username", input.Username), slog.String("email", input.Email))

			return nil, err
		}
		srv.log(ctx).Error("Failed to execute signup transaction", slog.String("username", input.Username), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute signup transaction")
	}

	srv.log(ctx).Info("Account registered", slog.Int64("accountID", account.ID), slog.String("username", account.Username))

	return &usecase.SignupOutput{AccountID: account.ID, Username: account.Username}, nil
}

// Login verifies the credentials. Unknown identifiers and wrong passwords are indistinguishable.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	if input.Identifier == "" || input.Password == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("Username/email and password are required")
	}

	account, err := srv.accountRepo.FindByUsernameOrEmail(ctx, input.Identifier)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			// Spend the same bcrypt work as a wrong password.
			srv.hasher.Check(input.Password, srv.unknownAccountHash())
			srv.log(ctx).Debug("Login for unknown identifier")

			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to find account for login")
	}

	if !srv.hasher.Check(input.Password, account.PasswordHash) {
		srv.log(ctx).Debug("Login with wrong password", slog.Int64("accountID", account.ID))

		return nil, domainerrors.ErrInvalidCredentials
	}

	output := &usecase.LoginOutput{AccountID: account.ID, Username: account.Username}

	if srv.tokenService != nil {
		token, err := srv.tokenService.GenerateAccessToken(account.ID)
		if err != nil {
			srv.log(ctx).Error("Failed to issue access token", slog.Int64("accountID", account.ID), slog.Any("error", err))

			return nil, errors.Wrap(domainerrors.ErrTokenIssueFailed, err.Error())
		}
		output.AccessToken = token.Token
		output.ExpiresAt = token.ExpiresAt
	}

	srv.log(ctx).Info("Login succeeded", slog.Int64("accountID", account.ID))

	return output, nil
}
