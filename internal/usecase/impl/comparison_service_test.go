package impl

import (
	"context"
	"sync"
	"testing"

	domainerrors "majorexplorer/internal/domain/errors"
	"majorexplorer/internal/domain/repository"
	"majorexplorer/internal/infra/persistence"
	mockRepo "majorexplorer/internal/mocks/repository"
	"majorexplorer/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type comparisonServiceFixtures struct {
	service   usecase.ComparisonUsecase
	backend   persistence.Result
	accountID int64
}

func createTestComparisonService(t *testing.T) comparisonServiceFixtures {
	t.Helper()

	backend := newMemoryBackend()
	auth := NewAuthService(AuthServiceParams{
		TxManager:   backend.TxManager,
		AccountRepo: backend.AccountRepository,
		Hasher:      newTestHasher(),
		Config:      newTestConfig(),
		Logger:      newDiscardLogger(),
	})
	created, err := auth.Signup(context.Background(), signupInput("alice", "alice@example.com"))
	require.NoError(t, err)

	srv := NewComparisonService(ComparisonServiceParams{
		TxManager:      backend.TxManager,
		ComparisonRepo: backend.ComparisonRepository,
		Logger:         newDiscardLogger(),
	})

	return comparisonServiceFixtures{service: srv, backend: backend, accountID: created.AccountID}
}

func savedMajorIDs(t *testing.T, srv usecase.ComparisonUsecase, accountID int64) []int64 {
	t.Helper()

	list, err := srv.List(context.Background(), accountID)
	require.NoError(t, err)

	ids := make([]int64, 0, len(list.Comparisons))
	for _, view := range list.Comparisons {
		ids = append(ids, view.MajorID)
	}

	return ids
}

func TestComparisonService_Add_CountsSavedAndSkipped(t *testing.T) {
	fx := createTestComparisonService(t)
	ctx := context.Background()

	_, err := fx.service.Add(ctx, &usecase.AddComparisonsInput{AccountID: fx.accountID, MajorIDs: []int64{1}})
	require.NoError(t, err)

	output, err := fx.service.Add(ctx, &usecase.AddComparisonsInput{AccountID: fx.accountID, MajorIDs: []int64{1, 2, 1}})
	require.NoError(t, err)
	assert.Equal(t, 1, output.Saved)
	assert.Equal(t, 2, output.Skipped)
	assert.Equal(t, "Saved 1 new comparisons. 2 were already saved.", output.Message)

	assert.ElementsMatch(t, []int64{1, 2}, savedMajorIDs(t, fx.service, fx.accountID))
}

func TestComparisonService_Add_ConcurrentSamePairs(t *testing.T) {
	fx := createTestComparisonService(t)
	ctx := context.Background()

	const attempts = 20
	var wg sync.WaitGroup
	outputs := make([]*usecase.AddComparisonsOutput, attempts)
	errs := make([]error, attempts)
	for i := range attempts {
		wg.Add(1)
		go func() {
			defer wg.Done()
			outputs[i], errs[i] = fx.service.Add(ctx, &usecase.AddComparisonsInput{
				AccountID: fx.accountID,
				MajorIDs:  []int64{1, 2},
			})
		}()
	}
	wg.Wait()

	var saved, skipped int
	for i := range attempts {
		require.NoError(t, errs[i])
		saved += outputs[i].Saved
		skipped += outputs[i].Skipped
	}
	assert.Equal(t, 2, saved)
	assert.Equal(t, 2*attempts, saved+skipped)

	assert.ElementsMatch(t, []int64{1, 2}, savedMajorIDs(t, fx.service, fx.accountID))
}

func TestComparisonService_Add_Messages(t *testing.T) {
	fx := createTestComparisonService(t)
	ctx := context.Background()

	output, err := fx.service.Add(ctx, &usecase.AddComparisonsInput{AccountID: fx.accountID, MajorIDs: []int64{3, 4}})
	require.NoError(t, err)
	assert.Equal(t, "Successfully saved 2 comparison(s).", output.Message)

	output, err = fx.service.Add(ctx, &usecase.AddComparisonsInput{AccountID: fx.accountID, MajorIDs: []int64{4, 3}})
	require.NoError(t, err)
	assert.Equal(t, 0, output.Saved)
	assert.Equal(t, 2, output.Skipped)
	assert.Equal(t, "All 2 comparison(s) were already saved.", output.Message)
}

func TestComparisonService_Add_Validation(t *testing.T) {
	fx := createTestComparisonService(t)
	ctx := context.Background()

	_, err := fx.service.Add(ctx, &usecase.AddComparisonsInput{MajorIDs: []int64{1}})
	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = fx.service.Add(ctx, &usecase.AddComparisonsInput{AccountID: fx.accountID})
	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "Missing user_id or major_ids", appErr.Details())
}

func TestComparisonService_Add_UnknownMajorDiscardsBatch(t *testing.T) {
	fx := createTestComparisonService(t)
	ctx := context.Background()

	_, err := fx.service.Add(ctx, &usecase.AddComparisonsInput{AccountID: fx.accountID, MajorIDs: []int64{1, 2, 99}})
	require.ErrorIs(t, err, domainerrors.ErrMajorNotFound)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "Major 99 does not exist", appErr.Details())

	assert.Empty(t, savedMajorIDs(t, fx.service, fx.accountID))
}

func TestComparisonService_Add_UnknownAccount(t *testing.T) {
	fx := createTestComparisonService(t)

	_, err := fx.service.Add(context.Background(), &usecase.AddComparisonsInput{AccountID: 404, MajorIDs: []int64{1}})
	require.ErrorIs(t, err, domainerrors.ErrAccountNotFound)
}

// failingComparisonRepo fails the insert at position failAt.
type failingComparisonRepo struct {
	repository.ComparisonRepository

	calls  int
	failAt int
}

func (r *failingComparisonRepo) Insert(ctx context.Context, accountID, majorID int64) (repository.Outcome, error) {
	r.calls++
	if r.calls == r.failAt {
		return 0, errors.New("connection reset by peer")
	}

	return r.ComparisonRepository.Insert(ctx, accountID, majorID)
}

type faultyFactory struct {
	repository.RepositoryFactory

	comparisons *failingComparisonRepo
}

func (f *faultyFactory) ComparisonRepo() repository.ComparisonRepository {
	f.comparisons.ComparisonRepository = f.RepositoryFactory.ComparisonRepo()

	return f.comparisons
}

func TestComparisonService_Add_MidBatchFailureLeavesNoRows(t *testing.T) {
	fx := createTestComparisonService(t)
	ctx := context.Background()

	faulty := &failingComparisonRepo{failAt: 3}
	txManager := mockRepo.NewMockTransactionManager(t)
	txManager.EXPECT().Execute(ctx, mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error, opts ...repository.TxOption) error {
			return fx.backend.TxManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
				return fn(&faultyFactory{RepositoryFactory: factory, comparisons: faulty})
			}, opts...)
		})

	srv := NewComparisonService(ComparisonServiceParams{
		TxManager:      txManager,
		ComparisonRepo: fx.backend.ComparisonRepository,
		Logger:         newDiscardLogger(),
	})

	_, err := srv.Add(ctx, &usecase.AddComparisonsInput{AccountID: fx.accountID, MajorIDs: []int64{1, 2, 3, 4}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection reset by peer")
	assert.Equal(t, 3, faulty.calls)

	assert.Empty(t, savedMajorIDs(t, fx.service, fx.accountID))
}

func TestComparisonService_List_MostRecentFirstWithStats(t *testing.T) {
	fx := createTestComparisonService(t)
	ctx := context.Background()

	_, err := fx.service.Add(ctx, &usecase.AddComparisonsInput{AccountID: fx.accountID, MajorIDs: []int64{5}})
	require.NoError(t, err)
	_, err = fx.service.Add(ctx, &usecase.AddComparisonsInput{AccountID: fx.accountID, MajorIDs: []int64{7}})
	require.NoError(t, err)

	list, err := fx.service.List(ctx, fx.accountID)
	require.NoError(t, err)
	require.Equal(t, 2, list.Count)
	assert.Equal(t, fx.accountID, list.AccountID)

	philosophy, history := list.Comparisons[0], list.Comparisons[1]
	assert.Equal(t, int64(7), philosophy.MajorID)
	assert.Equal(t, "Philosophy", philosophy.MajorName)
	assert.Nil(t, philosophy.AverageSalary)
	assert.Zero(t, philosophy.JobStatCount)

	assert.Equal(t, int64(5), history.MajorID)
	require.NotNil(t, history.AverageSalary)
	assert.InDelta(t, 52000, *history.AverageSalary, 0.001)
	assert.Equal(t, int64(1), history.JobStatCount)
	assert.True(t, philosophy.SavedAt.After(history.SavedAt))
}

func TestComparisonService_List_Empty(t *testing.T) {
	fx := createTestComparisonService(t)

	list, err := fx.service.List(context.Background(), fx.accountID)
	require.NoError(t, err)
	assert.Zero(t, list.Count)
	assert.Empty(t, list.Comparisons)
}

func TestComparisonService_Remove(t *testing.T) {
	fx := createTestComparisonService(t)
	ctx := context.Background()

	_, err := fx.service.Add(ctx, &usecase.AddComparisonsInput{AccountID: fx.accountID, MajorIDs: []int64{1, 2}})
	require.NoError(t, err)

	require.NoError(t, fx.service.Remove(ctx, fx.accountID, 1))
	assert.Equal(t, []int64{2}, savedMajorIDs(t, fx.service, fx.accountID))

	err = fx.service.Remove(ctx, fx.accountID, 1)
	assert.ErrorIs(t, err, domainerrors.ErrComparisonNotFound)

	err = fx.service.Remove(ctx, 404, 2)
	assert.ErrorIs(t, err, domainerrors.ErrComparisonNotFound)
	assert.Equal(t, []int64{2}, savedMajorIDs(t, fx.service, fx.accountID))
}

func TestComparisonService_Remove_DeleteFailure(t *testing.T) {
	ctx := context.Background()
	txManager := mockRepo.NewMockTransactionManager(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	comparisonRepo := mockRepo.NewMockComparisonRepository(t)

	txManager.EXPECT().Execute(ctx, mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error, _ ...repository.TxOption) error {
			return fn(factory)
		})
	factory.EXPECT().ComparisonRepo().Return(comparisonRepo)
	comparisonRepo.EXPECT().Delete(ctx, int64(1), int64(2)).Return(0, errors.New("deadlock detected"))

	srv := NewComparisonService(ComparisonServiceParams{
		TxManager:      txManager,
		ComparisonRepo: comparisonRepo,
		Logger:         newDiscardLogger(),
	})

	err := srv.Remove(ctx, 1, 2)
	require.Error(t, err)
	assert.NotErrorIs(t, err, domainerrors.ErrComparisonNotFound)
	assert.Contains(t, err.Error(), "deadlock detected")
}
