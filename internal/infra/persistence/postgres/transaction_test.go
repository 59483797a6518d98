package postgres

import (
	"context"
	"testing"

	"majorexplorer/config"
	"majorexplorer/internal/domain/repository"
	"majorexplorer/internal/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTxManager(t *testing.T) (repository.TransactionManager, sqlmock.Sqlmock) {
	t.Helper()

	db, mock := newMockDB(t)
	tm, err := NewTransactionManager(db, config.Default())
	require.NoError(t, err)

	return tm, mock
}

func TestTransactionManager_Execute_CommitsBatch(t *testing.T) {
	tm, mock := newTestTxManager(t)

	mock.ExpectBegin()
	mock.ExpectExec(insertComparisonPattern).WithArgs(int64(1), int64(10)).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(insertComparisonPattern).WithArgs(int64(1), int64(20)).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	var outcomes []repository.Outcome
	err := tm.Execute(context.Background(), func(repos repository.RepositoryFactory) error {
		for _, majorID := range []int64{10, 20} {
			outcome, err := repos.ComparisonRepo().Insert(context.Background(), 1, majorID)
			if err != nil {
				return err
			}
			outcomes = append(outcomes, outcome)
		}

		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, []repository.Outcome{repository.OutcomeApplied, repository.OutcomeDuplicate}, outcomes)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionManager_Execute_RollsBackOnFailure(t *testing.T) {
	tm, mock := newTestTxManager(t)

	mock.ExpectBegin()
	mock.ExpectExec(insertComparisonPattern).WithArgs(int64(1), int64(10)).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(insertComparisonPattern).WithArgs(int64(1), int64(20)).WillReturnError(errors.New("connection lost"))
	mock.ExpectRollback()

	err := tm.Execute(context.Background(), func(repos repository.RepositoryFactory) error {
		for _, majorID := range []int64{10, 20} {
			if _, err := repos.ComparisonRepo().Insert(context.Background(), 1, majorID); err != nil {
				return err
			}
		}

		return nil
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection lost")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionManager_Begin_CompletesOnce(t *testing.T) {
	tm, mock := newTestTxManager(t)

	mock.ExpectBegin()
	mock.ExpectCommit()

	uow, err := tm.Begin(context.Background(), repository.WithIsolation(repository.IsolationSerializable))
	require.NoError(t, err)

	require.NoError(t, uow.Commit())
	assert.ErrorIs(t, uow.Commit(), repository.ErrTxDone)
	assert.NoError(t, uow.Rollback())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionManager_Begin_RollbackTwice(t *testing.T) {
	tm, mock := newTestTxManager(t)

	mock.ExpectBegin()
	mock.ExpectRollback()

	uow, err := tm.Begin(context.Background())
	require.NoError(t, err)

	require.NoError(t, uow.Rollback())
	assert.ErrorIs(t, uow.Rollback(), repository.ErrTxDone)
	assert.ErrorIs(t, uow.Commit(), repository.ErrTxDone)
}

func TestNewTransactionManager_RejectsUnknownIsolation(t *testing.T) {
	db, _ := newMockDB(t)
	cfg := config.Default()
	cfg.Database.IsolationLevel = "chaos"

	_, err := NewTransactionManager(db, cfg)
	assert.Error(t, err)
}

func TestToSQLIsolation(t *testing.T) {
	assert.Equal(t, "Read Committed", toSQLIsolation(repository.IsolationReadCommitted).String())
	assert.Equal(t, "Repeatable Read", toSQLIsolation(repository.IsolationRepeatableRead).String())
	assert.Equal(t, "Serializable", toSQLIsolation(repository.IsolationSerializable).String())
	assert.Equal(t, "Read Committed", toSQLIsolation(repository.IsolationDefault).String())
}
