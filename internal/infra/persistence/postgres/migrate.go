package postgres

import (
	"context"
	"database/sql"

	"majorexplorer/internal/errors"
	"majorexplorer/internal/infra/persistence/migrations"

	"github.com/pressly/goose/v3"
)

const migrationsDir = "."

func prepareGoose() error {
	goose.SetBaseFS(migrations.FS)

	if err := goose.SetDialect("postgres"); err != nil {
		return errors.Wrap(err, "failed to set goose dialect")
	}

	return nil
}

// MigrateUp applies every pending embedded migration.
func MigrateUp(ctx context.Context, db *sql.DB) error {
	if err := prepareGoose(); err != nil {
		return err
	}
	if err := goose.UpContext(ctx, db, migrationsDir); err != nil {
		return errors.Wrap(err, "failed to apply migrations")
	}

	return nil
}

// MigrateDown rolls back the most recent migration.
func MigrateDown(ctx context.Context, db *sql.DB) error {
	if err := prepareGoose(); err != nil {
		return err
	}
	if err := goose.DownContext(ctx, db, migrationsDir); err != nil {
		return errors.Wrap(err, "failed to roll back migration")
	}

	return nil
}

// MigrateStatus logs the state of every embedded migration through goose.
func MigrateStatus(ctx context.Context, db *sql.DB) error {
	if err := prepareGoose(); err != nil {
		return err
	}
	if err := goose.StatusContext(ctx, db, migrationsDir); err != nil {
		return errors.Wrap(err, "failed to read migration status")
	}

	return nil
}

// MigrationVersion returns the current schema version.
func MigrationVersion(ctx context.Context, db *sql.DB) (int64, error) {
	if err := prepareGoose(); err != nil {
		return 0, err
	}
	version, err := goose.GetDBVersionContext(ctx, db)
	if err != nil {
		return 0, errors.Wrap(err, "failed to read schema version")
	}

	return version, nil
}
