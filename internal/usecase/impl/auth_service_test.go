package impl

import (
	"context"
	"sync"
	"testing"
	"time"

	"majorexplorer/config"
	domainerrors "majorexplorer/internal/domain/errors"
	"majorexplorer/internal/domain/repository"
	"majorexplorer/internal/domain/service"
	"majorexplorer/internal/infra/persistence"
	mockRepo "majorexplorer/internal/mocks/repository"
	mockSvc "majorexplorer/internal/mocks/service"
	"majorexplorer/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type authServiceFixtures struct {
	service usecase.AuthUsecase
	backend persistence.Result
}

func createTestAuthService(t *testing.T, tokenService service.TokenService) authServiceFixtures {
	t.Helper()

	backend := newMemoryBackend()
	srv := NewAuthService(AuthServiceParams{
		TxManager:    backend.TxManager,
		AccountRepo:  backend.AccountRepository,
		Hasher:       newTestHasher(),
		TokenService: tokenService,
		Config:       newTestConfig(),
		Logger:       newDiscardLogger(),
	})

	return authServiceFixtures{service: srv, backend: backend}
}

func signupInput(username, email string) *usecase.SignupInput {
	return &usecase.SignupInput{
		Username:        username,
		Email:           email,
		Password:        "Password123!",
		ConfirmPassword: "Password123!",
	}
}

func TestAuthService_Signup_Success(t *testing.T) {
	fx := createTestAuthService(t, nil)
	ctx := context.Background()

	output, err := fx.service.Signup(ctx, signupInput("alice", "alice@example.com"))
	require.NoError(t, err)
	assert.Equal(t, "alice", output.Username)
	assert.Positive(t, output.AccountID)

	account, err := fx.backend.AccountRepository.FindByID(ctx, output.AccountID)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", account.Email)
	assert.NotEqual(t, "Password123!", account.PasswordHash)
	assert.True(t, newTestHasher().Check("Password123!", account.PasswordHash))
}

func TestAuthService_Signup_Validation(t *testing.T) {
	tests := []struct {
		name    string
		input   *usecase.SignupInput
		wantErr error
	}{
		{
			name:    "missing username",
			input:   &usecase.SignupInput{Email: "a@example.com", Password: "x", ConfirmPassword: "x"},
			wantErr: domainerrors.ErrValidationFailed,
		},
		{
			name:    "missing confirmation",
			input:   &usecase.SignupInput{Username: "a", Email: "a@example.com", Password: "x"},
			wantErr: domainerrors.ErrValidationFailed,
		},
		{
			name:    "password mismatch",
			input:   &usecase.SignupInput{Username: "a", Email: "a@example.com", Password: "x", ConfirmPassword: "y"},
			wantErr: domainerrors.ErrPasswordMismatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAuthService(t, nil)

			_, err := fx.service.Signup(context.Background(), tt.input)
			require.ErrorIs(t, err, tt.wantErr)

			count, err := fx.backend.AccountRepository.Count(context.Background())
			require.NoError(t, err)
			assert.Zero(t, count)
		})
	}
}

func TestAuthService_Signup_AllFieldsRequiredDetails(t *testing.T) {
	fx := createTestAuthService(t, nil)

	_, err := fx.service.Signup(context.Background(), &usecase.SignupInput{})

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "All fields are required", appErr.Details())
}

func TestAuthService_Signup_DuplicateIdentity(t *testing.T) {
	fx := createTestAuthService(t, nil)
	ctx := context.Background()

	_, err := fx.service.Signup(ctx, signupInput("alice", "alice@example.com"))
	require.NoError(t, err)

	_, err = fx.service.Signup(ctx, signupInput("alice", "other@example.com"))
	assert.ErrorIs(t, err, domainerrors.ErrDuplicateIdentity)

	_, err = fx.service.Signup(ctx, signupInput("bob", "alice@example.com"))
	assert.ErrorIs(t, err, domainerrors.ErrDuplicateIdentity)

	count, err := fx.backend.AccountRepository.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestAuthService_Signup_ConcurrentSameUsername(t *testing.T) {
	fx := createTestAuthService(t, nil)
	ctx := context.Background()

	const attempts = 8
	var wg sync.WaitGroup
	errs := make([]error, attempts)
	for i := range attempts {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, errs[i] = fx.service.Signup(ctx, signupInput("alice", "alice@example.com"))
		}()
	}
	wg.Wait()

	var succeeded, duplicates int
	for _, err := range errs {
		switch {
		case err == nil:
			succeeded++
		case errors.Is(err, domainerrors.ErrDuplicateIdentity):
			duplicates++
		default:
			t.Errorf("unexpected error: %v", err)
		}
	}
	assert.Equal(t, 1, succeeded)
	assert.Equal(t, attempts-1, duplicates)

	count, err := fx.backend.AccountRepository.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestAuthService_Signup_PasswordPolicy(t *testing.T) {
	backend := newMemoryBackend()
	cfg := newTestConfig()
	cfg.PasswordStrength = &config.PasswordStrengthConfig{
		MinLength:          10,
		RequireUppercase:   true,
		RequireNumbers:     true,
		RequireEmailFormat: true,
	}
	srv := NewAuthService(AuthServiceParams{
		TxManager:   backend.TxManager,
		AccountRepo: backend.AccountRepository,
		Hasher:      newTestHasher(),
		Config:      cfg,
		Logger:      newDiscardLogger(),
	})
	ctx := context.Background()

	short := signupInput("alice", "alice@example.com")
	short.Password, short.ConfirmPassword = "Pass1", "Pass1"
	_, err := srv.Signup(ctx, short)
	assert.ErrorIs(t, err, domainerrors.ErrPasswordStrength)

	noDigit := signupInput("alice", "alice@example.com")
	noDigit.Password, noDigit.ConfirmPassword = "Passwordxyz", "Passwordxyz"
	_, err = srv.Signup(ctx, noDigit)
	assert.ErrorIs(t, err, domainerrors.ErrPasswordStrength)

	_, err = srv.Signup(ctx, signupInput("alice", "not-an-email"))
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = srv.Signup(ctx, signupInput("alice", "alice@example.com"))
	assert.NoError(t, err)
}

func TestAuthService_Signup_HashFailure(t *testing.T) {
	backend := newMemoryBackend()
	hasher := mockSvc.NewMockPasswordHasher(t)
	hasher.EXPECT().Hash("Password123!").Return("", errors.New("entropy exhausted"))

	srv := NewAuthService(AuthServiceParams{
		TxManager:   backend.TxManager,
		AccountRepo: backend.AccountRepository,
		Hasher:      hasher,
		Config:      newTestConfig(),
		Logger:      newDiscardLogger(),
	})

	_, err := srv.Signup(context.Background(), signupInput("alice", "alice@example.com"))
	require.ErrorIs(t, err, domainerrors.ErrPasswordHashFailed)

	count, err := backend.AccountRepository.Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestAuthService_Login(t *testing.T) {
	fx := createTestAuthService(t, nil)
	ctx := context.Background()

	created, err := fx.service.Signup(ctx, signupInput("alice", "alice@example.com"))
	require.NoError(t, err)

	t.Run("by username", func(t *testing.T) {
		output, err := fx.service.Login(ctx, &usecase.LoginInput{Identifier: "alice", Password: "Password123!"})
		require.NoError(t, err)
		assert.Equal(t, created.AccountID, output.AccountID)
		assert.Equal(t, "alice", output.Username)
		assert.Empty(t, output.AccessToken)
	})

	t.Run("by email", func(t *testing.T) {
		output, err := fx.service.Login(ctx, &usecase.LoginInput{Identifier: "alice@example.com", Password: "Password123!"})
		require.NoError(t, err)
		assert.Equal(t, created.AccountID, output.AccountID)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := fx.service.Login(ctx, &usecase.LoginInput{Identifier: "alice", Password: "nope"})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})

	t.Run("unknown identifier", func(t *testing.T) {
		_, err := fx.service.Login(ctx, &usecase.LoginInput{Identifier: "mallory", Password: "Password123!"})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})

	t.Run("missing fields", func(t *testing.T) {
		_, err := fx.service.Login(ctx, &usecase.LoginInput{Identifier: "alice"})
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})
}

func TestAuthService_Login_IssuesToken(t *testing.T) {
	tokenService := mockSvc.NewMockTokenService(t)
	fx := createTestAuthService(t, tokenService)
	ctx := context.Background()

	created, err := fx.service.Signup(ctx, signupInput("alice", "alice@example.com"))
	require.NoError(t, err)

	expiresAt := time.Date(2024, 3, 1, 12, 15, 0, 0, time.UTC)
	tokenService.EXPECT().GenerateAccessToken(created.AccountID).
		Return(&service.AccessToken{Token: "signed", ExpiresAt: expiresAt}, nil)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Identifier: "alice", Password: "Password123!"})
	require.NoError(t, err)
	assert.Equal(t, "signed", output.AccessToken)
	assert.Equal(t, expiresAt, output.ExpiresAt)
}

func TestAuthService_Login_TokenFailure(t *testing.T) {
	tokenService := mockSvc.NewMockTokenService(t)
	fx := createTestAuthService(t, tokenService)
	ctx := context.Background()

	created, err := fx.service.Signup(ctx, signupInput("alice", "alice@example.com"))
	require.NoError(t, err)

	tokenService.EXPECT().GenerateAccessToken(created.AccountID).Return(nil, errors.New("key unavailable"))

	_, err = fx.service.Login(ctx, &usecase.LoginInput{Identifier: "alice", Password: "Password123!"})
	assert.ErrorIs(t, err, domainerrors.ErrTokenIssueFailed)
}

func TestAuthService_Login_RepositoryFailure(t *testing.T) {
	accountRepo := mockRepo.NewMockAccountRepository(t)
	accountRepo.EXPECT().FindByUsernameOrEmail(context.Background(), "alice").
		Return(nil, errors.New("connection refused"))

	srv := NewAuthService(AuthServiceParams{
		TxManager:   mockRepo.NewMockTransactionManager(t),
		AccountRepo: accountRepo,
		Hasher:      newTestHasher(),
		Config:      newTestConfig(),
		Logger:      newDiscardLogger(),
	})

	_, err := srv.Login(context.Background(), &usecase.LoginInput{Identifier: "alice", Password: "Password123!"})
	require.Error(t, err)
	assert.NotErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestAuthService_Login_UnknownIdentifierStillChecksPassword(t *testing.T) {
	accountRepo := mockRepo.NewMockAccountRepository(t)
	accountRepo.EXPECT().FindByUsernameOrEmail(mock.Anything, "mallory").
		Return(nil, repository.ErrAccountNotFound).Twice()

	hasher := mockSvc.NewMockPasswordHasher(t)
	hasher.EXPECT().Hash(mock.Anything).Return("$2a$04$placeholder", nil).Once()
	hasher.EXPECT().Check("Password123!", "$2a$04$placeholder").Return(false).Twice()

	srv := NewAuthService(AuthServiceParams{
		TxManager:   mockRepo.NewMockTransactionManager(t),
		AccountRepo: accountRepo,
		Hasher:      hasher,
		Config:      newTestConfig(),
		Logger:      newDiscardLogger(),
	})

	for range 2 {
		_, err := srv.Login(context.Background(), &usecase.LoginInput{Identifier: "mallory", Password: "Password123!"})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	}
}

func TestAuthService_Login_UnknownIdentifierWhenHashFails(t *testing.T) {
	accountRepo := mockRepo.NewMockAccountRepository(t)
	accountRepo.EXPECT().FindByUsernameOrEmail(mock.Anything, "mallory").Return(nil, repository.ErrAccountNotFound)

	hasher := mockSvc.NewMockPasswordHasher(t)
	hasher.EXPECT().Hash(mock.Anything).Return("", errors.New("entropy exhausted"))
	hasher.EXPECT().Check("pw", fallbackDummyHash).Return(false)

	srv := NewAuthService(AuthServiceParams{
		TxManager:   mockRepo.NewMockTransactionManager(t),
		AccountRepo: accountRepo,
		Hasher:      hasher,
		Config:      newTestConfig(),
		Logger:      newDiscardLogger(),
	})

	_, err := srv.Login(context.Background(), &usecase.LoginInput{Identifier: "mallory", Password: "pw"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Signup_CreateFailureIsWrapped(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	accountRepo := mockRepo.NewMockAccountRepository(t)

	ctx := context.Background()
	txManager.EXPECT().Execute(ctx, mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error, _ ...repository.TxOption) error {
			return fn(factory)
		})
	factory.EXPECT().AccountRepo().Return(accountRepo)
	accountRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Account")).Return(0, errors.New("disk full"))

	srv := NewAuthService(AuthServiceParams{
		TxManager:   txManager,
		AccountRepo: accountRepo,
		Hasher:      newTestHasher(),
		Config:      newTestConfig(),
		Logger:      newDiscardLogger(),
	})

	_, err := srv.Signup(ctx, signupInput("alice", "alice@example.com"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create account")
	assert.Contains(t, err.Error(), "disk full")
}
