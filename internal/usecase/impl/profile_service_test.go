package impl

import (
	"context"
	"testing"

	domainerrors "majorexplorer/internal/domain/errors"
	"majorexplorer/internal/infra/persistence"
	mockRepo "majorexplorer/internal/mocks/repository"
	mockSvc "majorexplorer/internal/mocks/service"
	"majorexplorer/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type profileServiceFixtures struct {
	service usecase.ProfileUsecase
	auth    usecase.AuthUsecase
	backend persistence.Result
	alice   int64
	bob     int64
}

func createTestProfileService(t *testing.T) profileServiceFixtures {
	t.Helper()

	backend := newMemoryBackend()
	auth := NewAuthService(AuthServiceParams{
		TxManager:   backend.TxManager,
		AccountRepo: backend.AccountRepository,
		Hasher:      newTestHasher(),
		Config:      newTestConfig(),
		Logger:      newDiscardLogger(),
	})
	ctx := context.Background()

	alice, err := auth.Signup(ctx, signupInput("alice", "alice@example.com"))
	require.NoError(t, err)
	bob, err := auth.Signup(ctx, signupInput("bob", "bob@example.com"))
	require.NoError(t, err)

	srv := NewProfileService(ProfileServiceParams{
		TxManager:   backend.TxManager,
		AccountRepo: backend.AccountRepository,
		Hasher:      newTestHasher(),
		Logger:      newDiscardLogger(),
	})

	return profileServiceFixtures{service: srv, auth: auth, backend: backend, alice: alice.AccountID, bob: bob.AccountID}
}

func strPtr(s string) *string { return &s }

func TestProfileService_GetProfile(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()

	account, err := fx.service.GetProfile(ctx, fx.alice)
	require.NoError(t, err)
	assert.Equal(t, "alice", account.Username)
	assert.Equal(t, "alice@example.com", account.Email)

	_, err = fx.service.GetProfile(ctx, 404)
	assert.ErrorIs(t, err, domainerrors.ErrAccountNotFound)
}

func TestProfileService_GetProfile_FindError(t *testing.T) {
	accountRepo := mockRepo.NewMockAccountRepository(t)
	accountRepo.EXPECT().FindByID(context.Background(), int64(1)).Return(nil, errors.New("db error"))

	srv := NewProfileService(ProfileServiceParams{
		TxManager:   mockRepo.NewMockTransactionManager(t),
		AccountRepo: accountRepo,
		Hasher:      newTestHasher(),
		Logger:      newDiscardLogger(),
	})

	account, err := srv.GetProfile(context.Background(), 1)
	assert.Nil(t, account)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to find account")
}

func TestProfileService_UpdateProfile_RequiresAField(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()

	err := fx.service.UpdateProfile(ctx, fx.alice, &usecase.UpdateProfileInput{})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	err = fx.service.UpdateProfile(ctx, fx.alice, &usecase.UpdateProfileInput{Username: strPtr(""), Email: strPtr("")})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestProfileService_UpdateProfile_AllFields(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()

	err := fx.service.UpdateProfile(ctx, fx.alice, &usecase.UpdateProfileInput{
		Username: strPtr("alice2"),
		Email:    strPtr("alice2@example.com"),
		Password: strPtr("NewPassword456!"),
	})
	require.NoError(t, err)

	account, err := fx.service.GetProfile(ctx, fx.alice)
	require.NoError(t, err)
	assert.Equal(t, "alice2", account.Username)
	assert.Equal(t, "alice2@example.com", account.Email)

	_, err = fx.auth.Login(ctx, &usecase.LoginInput{Identifier: "alice2", Password: "NewPassword456!"})
	require.NoError(t, err)
	_, err = fx.auth.Login(ctx, &usecase.LoginInput{Identifier: "alice2", Password: "Password123!"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestProfileService_UpdateProfile_EmptyFieldsUnchanged(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()

	err := fx.service.UpdateProfile(ctx, fx.alice, &usecase.UpdateProfileInput{Username: strPtr("alicia"), Email: strPtr("")})
	require.NoError(t, err)

	account, err := fx.service.GetProfile(ctx, fx.alice)
	require.NoError(t, err)
	assert.Equal(t, "alicia", account.Username)
	assert.Equal(t, "alice@example.com", account.Email)
}

func TestProfileService_UpdateProfile_Conflicts(t *testing.T) {
	tests := []struct {
		name    string
		input   *usecase.UpdateProfileInput
		wantErr error
	}{
		{
			name:    "username taken",
			input:   &usecase.UpdateProfileInput{Username: strPtr("bob"), Email: strPtr("new@example.com")},
			wantErr: domainerrors.ErrUsernameTaken,
		},
		{
			name:    "email taken",
			input:   &usecase.UpdateProfileInput{Username: strPtr("alicia"), Email: strPtr("bob@example.com")},
			wantErr: domainerrors.ErrEmailTaken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestProfileService(t)
			ctx := context.Background()

			err := fx.service.UpdateProfile(ctx, fx.alice, tt.input)
			require.ErrorIs(t, err, tt.wantErr)

			account, err := fx.service.GetProfile(ctx, fx.alice)
			require.NoError(t, err)
			assert.Equal(t, "alice", account.Username)
			assert.Equal(t, "alice@example.com", account.Email)
		})
	}
}

func TestProfileService_UpdateProfile_KeepOwnValues(t *testing.T) {
	fx := createTestProfileService(t)

	err := fx.service.UpdateProfile(context.Background(), fx.alice, &usecase.UpdateProfileInput{
		Username: strPtr("alice"),
		Email:    strPtr("alice@example.com"),
	})
	assert.NoError(t, err)
}

func TestProfileService_UpdateProfile_MissingAccount(t *testing.T) {
	fx := createTestProfileService(t)

	err := fx.service.UpdateProfile(context.Background(), 404, &usecase.UpdateProfileInput{Username: strPtr("ghost")})
	assert.ErrorIs(t, err, domainerrors.ErrAccountNotFound)
}

func TestProfileService_UpdateProfile_HashFailure(t *testing.T) {
	fx := createTestProfileService(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	hasher.EXPECT().Hash("secret").Return("", errors.New("cost out of range"))

	srv := NewProfileService(ProfileServiceParams{
		TxManager:   fx.backend.TxManager,
		AccountRepo: fx.backend.AccountRepository,
		Hasher:      hasher,
		Logger:      newDiscardLogger(),
	})

	err := srv.UpdateProfile(context.Background(), fx.alice, &usecase.UpdateProfileInput{
		Username: strPtr("alicia"),
		Password: strPtr("secret"),
	})
	require.ErrorIs(t, err, domainerrors.ErrPasswordHashFailed)

	account, err := fx.service.GetProfile(context.Background(), fx.alice)
	require.NoError(t, err)
	assert.Equal(t, "alice", account.Username)
}
