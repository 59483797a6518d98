// Package persistence selects the storage backend named by database.driver.
package persistence

import (
	"log/slog"

	"majorexplorer/config"
	"majorexplorer/internal/domain/repository"
	"majorexplorer/internal/errors"
	"majorexplorer/internal/infra/persistence/memory"
	"majorexplorer/internal/infra/persistence/postgres"

	"go.uber.org/fx"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// Result exposes the repositories of the selected backend to fx.
type Result struct {
	fx.Out

	TxManager            repository.TransactionManager
	AccountRepository    repository.AccountRepository
	ComparisonRepository repository.ComparisonRepository
	CatalogRepository    repository.CatalogRepository
	HealthRepository     repository.HealthRepository
}

// New builds the repositories for cfg.Database.Driver.
func New(params Params) (Result, error) {
	switch params.Config.Database.Driver {
	case config.DriverMemory:
		params.Logger.Warn("Using in-memory persistence; data is lost on restart")

		return NewMemory(memory.NewStore()), nil
	case config.DriverPostgres:
		db, err := postgres.New(postgres.Params{
			Lifecycle: params.Lifecycle,
			Config:    params.Config,
			Logger:    params.Logger,
		})
		if err != nil {
			return Result{}, err
		}

		txManager, err := postgres.NewTransactionManager(db, params.Config)
		if err != nil {
			return Result{}, err
		}

		return Result{
			TxManager:            txManager,
			AccountRepository:    postgres.NewAccountRepository(db),
			ComparisonRepository: postgres.NewComparisonRepository(db),
			CatalogRepository:    postgres.NewCatalogRepository(db),
			HealthRepository:     postgres.NewHealthRepository(db),
		}, nil
	default:
		return Result{}, errors.Errorf("unknown database driver: %q", params.Config.Database.Driver)
	}
}

// NewMemory wires every repository to store.
func NewMemory(store *memory.Store) Result {
	return Result{
		TxManager:            memory.NewTransactionManager(store),
		AccountRepository:    memory.NewAccountRepository(store),
		ComparisonRepository: memory.NewComparisonRepository(store),
		CatalogRepository:    memory.NewCatalogRepository(store),
		HealthRepository:     memory.NewHealthRepository(store),
	}
}
