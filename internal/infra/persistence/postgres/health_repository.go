package postgres

import (
	"context"

	"majorexplorer/internal/domain/entity"
	"majorexplorer/internal/domain/repository"
	"majorexplorer/internal/errors"
	"majorexplorer/internal/infra/persistence/model"

	"gorm.io/gorm"
)

type healthRepository struct {
	db *gorm.DB
}

func NewHealthRepository(db *gorm.DB) repository.HealthRepository {
	return &healthRepository{db: db}
}

// Health pings the primary and reports whether the accounts table exists and how many rows it holds.
func (repo *healthRepository) Health(ctx context.Context) (*entity.HealthStatus, error) {
	status := &entity.HealthStatus{}

	sqlDB, err := repo.db.DB()
	if err != nil {
		return status, errors.Wrap(err, "failed to get sql.DB")
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return status, errors.Wrap(err, "failed to ping database")
	}
	status.DatabaseConnected = true

	db := repo.db.WithContext(ctx)
	status.AccountsTableExists = db.Migrator().HasTable(&model.AccountModel{})
	if !status.AccountsTableExists {
		return status, nil
	}

	if err := db.Model(&model.AccountModel{}).Count(&status.AccountsCount).Error; err != nil {
		return status, errors.Wrap(err, "failed to count accounts")
	}

	return status, nil
}
