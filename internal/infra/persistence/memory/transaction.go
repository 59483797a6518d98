package memory

import (
	"context"
	"sync"

	"majorexplorer/internal/domain/repository"
)

type transactionManager struct {
	store *Store
}

// NewTransactionManager returns a TransactionManager over store. Every isolation level is satisfied
// because units of work run one at a time.
func NewTransactionManager(store *Store) repository.TransactionManager {
	return &transactionManager{store: store}
}

func (tm *transactionManager) Begin(ctx context.Context, _ ...repository.TxOption) (repository.UnitOfWork, error) {
	if err := tm.store.acquireWriter(ctx); err != nil {
		return nil, err
	}

	uow := &unitOfWork{store: tm.store, data: tm.store.snapshot()}
	uow.factory = &repositoryFactory{store: tm.store, scope: uow}

	return uow, nil
}

func (tm *transactionManager) Execute(
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

type unitOfWork struct {
	store   *Store
	factory *repositoryFactory

	mu        sync.Mutex
	data      *dataset
	done      bool
	committed bool
}

func (u *unitOfWork) Repositories() repository.RepositoryFactory {
	return u.factory
}

func (u *unitOfWork) Commit() error {
	u.mu.Lock()
	defer u.mu.Unlock()

	if u.done {
		return repository.ErrTxDone
	}
	u.done = true
	u.committed = true

	u.store.publish(u.data)
	u.store.releaseWriter()

	return nil
}

func (u *unitOfWork) Rollback() error {
	u.mu.Lock()
	defer u.mu.Unlock()

	if u.committed {
		return nil
	}
	if u.done {
		return repository.ErrTxDone
	}
	u.done = true
	u.data = nil

	u.store.releaseWriter()

	return nil
}

func (u *unitOfWork) read(fn func(d *dataset) error) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	if u.done {
		return repository.ErrTxDone
	}

	return fn(u.data)
}

// write applies fn to the private copy. A failed statement leaves the copy untouched.
func (u *unitOfWork) write(_ context.Context, fn func(d *dataset) error) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	if u.done {
		return repository.ErrTxDone
	}

	next := u.data.clone()
	if err := fn(next); err != nil {
		return err
	}
	u.data = next

	return nil
}

type repositoryFactory struct {
	store *Store
	scope scope
}

func (f *repositoryFactory) AccountRepo() repository.AccountRepository {
	return &accountRepository{store: f.store, scope: f.scope}
}

func (f *repositoryFactory) ComparisonRepo() repository.ComparisonRepository {
	return &comparisonRepository{store: f.store, scope: f.scope}
}
