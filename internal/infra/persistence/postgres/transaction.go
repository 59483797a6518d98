// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"database/sql"

	"majorexplorer/config"
	"majorexplorer/internal/domain/repository"
	"majorexplorer/internal/errors"

	"gorm.io/gorm"
)

// gormTransactionManager implements the domain's TransactionManager interface using GORM.
type gormTransactionManager struct {
	db           *gorm.DB
	defaultLevel repository.IsolationLevel
}

// NewTransactionManager is the constructor for gormTransactionManager.
func NewTransactionManager(db *gorm.DB, cfg *config.Config) (repository.TransactionManager, error) {
	level, err := repository.ParseIsolationLevel(cfg.Database.IsolationLevel)
	if err != nil {
		return nil, err
	}
	if level == repository.IsolationDefault {
		level = repository.IsolationReadCommitted
	}

	return &gormTransactionManager{db: db, defaultLevel: level}, nil
}

// Begin opens a transaction on the primary at the requested isolation level.
func (tm *gormTransactionManager) Begin(ctx context.Context, opts ...repository.TxOption) (repository.UnitOfWork, error) {
	options := repository.BuildTxOptions(tm.defaultLevel, opts...)

	tx := tm.db.WithContext(ctx).Begin(&sql.TxOptions{
		Isolation: toSQLIsolation(options.Isolation),
		ReadOnly:  options.ReadOnly,
	})
	if tx.Error != nil {
		return nil, errors.Wrap(tx.Error, "failed to begin transaction")
	}

	return &gormUnitOfWork{tx: tx, factory: &gormRepositoryFactory{tx: tx}}, nil
}

// Execute runs the given function within a single database transaction.
func (tm *gormTransactionManager) Execute(
	ctx context.Context,
	fn func(txRepoFactory repository.RepositoryFactory) error,
	opts ...repository.TxOption,
) error {
	uow, err := tm.Begin(ctx, opts...)
	if err != nil {
		return err
	}

	return repository.RunInUnitOfWork(uow, fn)
}

func toSQLIsolation(level repository.IsolationLevel) sql.IsolationLevel {
	switch level {
	case repository.IsolationRepeatableRead:
		return sql.LevelRepeatableRead
	case repository.IsolationSerializable:
		return sql.LevelSerializable
	default:
		return sql.LevelReadCommitted
	}
}

// gormUnitOfWork is one open *gorm.DB transaction.
type gormUnitOfWork struct {
	tx        *gorm.DB
	factory   *gormRepositoryFactory
	done      bool
	committed bool
}

func (u *gormUnitOfWork) Repositories() repository.RepositoryFactory {
	return u.factory
}

func (u *gormUnitOfWork) Commit() error {
	if u.done {
		return repository.ErrTxDone
	}
	u.done = true

	if err := u.tx.Commit().Error; err != nil {
		return errors.Wrap(err, "commit failed")
	}
	u.committed = true

	return nil
}

func (u *gormUnitOfWork) Rollback() error {
	if u.committed {
		return nil
	}
	if u.done {
		return repository.ErrTxDone
	}
	u.done = true

	if err := u.tx.Rollback().Error; err != nil {
		return errors.Wrap(err, "rollback failed")
	}

	return nil
}

// gormRepositoryFactory hands out repositories bound to a single transaction.
type gormRepositoryFactory struct {
	tx *gorm.DB
}

func (f *gormRepositoryFactory) AccountRepo() repository.AccountRepository {
	return NewAccountRepository(f.tx)
}

func (f *gormRepositoryFactory) ComparisonRepo() repository.ComparisonRepository {
	return NewComparisonRepository(f.tx)
}
