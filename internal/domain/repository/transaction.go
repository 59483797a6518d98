package repository

import (
	"context"
	"strings"

	"majorexplorer/internal/errors"
)

// ErrTxDone is returned when a unit of work is used after it has been committed or rolled back.
var ErrTxDone = errors.New("unit of work already completed")

// IsolationLevel is the transaction isolation a unit of work runs at.
type IsolationLevel int

const (
	// IsolationDefault defers to the transaction manager's configured level.
	IsolationDefault IsolationLevel = iota
	IsolationReadCommitted
	IsolationRepeatableRead
	IsolationSerializable
)

func (l IsolationLevel) String() string {
	switch l {
	case IsolationReadCommitted:
		return "readCommitted"
	case IsolationRepeatableRead:
		return "repeatableRead"
	case IsolationSerializable:
		return "serializable"
	default:
		return "default"
	}
}

// ParseIsolationLevel accepts readCommitted, repeatableRead and serializable in any case, with or without separators.
func ParseIsolationLevel(s string) (IsolationLevel, error) {
	normalized := strings.NewReplacer("_", "", "-", "", " ", "").Replace(strings.ToLower(s))
	switch normalized {
	case "", "default":
		return IsolationDefault, nil
	case "readcommitted":
		return IsolationReadCommitted, nil
	case "repeatableread":
		return IsolationRepeatableRead, nil
	case "serializable":
		return IsolationSerializable, nil
	default:
		return IsolationDefault, errors.Errorf("unknown isolation level: %q", s)
	}
}

// TxOptions configures a unit of work.
type TxOptions struct {
	Isolation IsolationLevel
	ReadOnly  bool
}

// TxOption mutates TxOptions.
type TxOption func(*TxOptions)

// WithIsolation sets the isolation level of the unit of work.
func WithIsolation(level IsolationLevel) TxOption {
	return func(o *TxOptions) {
		o.Isolation = level
	}
}

// WithReadOnly marks the unit of work as read-only.
func WithReadOnly() TxOption {
	return func(o *TxOptions) {
		o.ReadOnly = true
	}
}

// BuildTxOptions applies opts over a default isolation level.
func BuildTxOptions(defaultLevel IsolationLevel, opts ...TxOption) TxOptions {
	options := TxOptions{Isolation: defaultLevel}
	for _, opt := range opts {
		opt(&options)
	}
	if options.Isolation == IsolationDefault {
		options.Isolation = defaultLevel
	}

	return options
}

// UnitOfWork is one open transaction.
type UnitOfWork interface {
	// Repositories returns repositories bound to this transaction.
	Repositories() RepositoryFactory
	Commit() error
	// Rollback is a no-op after a successful Commit.
	Rollback() error
}

// TransactionManager defines the interface for managing database transactions.
// This allows the use case layer to handle transactions without depending on a specific DB driver like GORM.
type TransactionManager interface {
	// Begin opens a unit of work. The caller must Commit or Rollback it.
	Begin(ctx context.Context, opts ...TxOption) (UnitOfWork, error)

	// Execute runs a function within a database transaction.
	// If the function returns an error or panics, the transaction is rolled back. Otherwise, it's committed.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error, opts ...TxOption) error
}

// RepositoryFactory provides repository instances that are bound to a specific transaction.
type RepositoryFactory interface {
	AccountRepo() AccountRepository
	ComparisonRepo() ComparisonRepository
}

// RunInUnitOfWork runs fn against uow and commits exactly once if fn succeeds.
// Any error or panic from fn rolls the unit back; panics are re-raised afterwards.
func RunInUnitOfWork(uow UnitOfWork, fn func(txRepoFactory RepositoryFactory) error) error {
	defer func() {
		if r := recover(); r != nil {
			_ = uow.Rollback()
			panic(r)
		}
	}()

	if err := fn(uow.Repositories()); err != nil {
		return errors.WithRollback(err, uow.Rollback())
	}

	if err := uow.Commit(); err != nil {
		return errors.Wrap(err, "failed to commit transaction")
	}

	return nil
}
