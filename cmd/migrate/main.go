package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"

	"majorexplorer/config"
	logs "majorexplorer/internal/infra/log"
	"majorexplorer/internal/infra/persistence/postgres"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		slog.Error("Migration failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "migrate",
		Short:         "Manage the College Major Explorer database schema",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(
		newMigrationCommand("up", "Apply every pending migration", postgres.MigrateUp),
		newMigrationCommand("down", "Roll back the most recent migration", postgres.MigrateDown),
		newMigrationCommand("status", "Print the state of every migration", postgres.MigrateStatus),
		&cobra.Command{
			Use:   "version",
			Short: "Print the current schema version",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withDatabase(cmd.Context(), func(ctx context.Context, db *sql.DB) error {
					version, err := postgres.MigrationVersion(ctx, db)
					if err != nil {
						return err
					}
					fmt.Fprintln(cmd.OutOrStdout(), version)

					return nil
				})
			},
		},
	)

	return cmd
}

func newMigrationCommand(use, short string, run func(ctx context.Context, db *sql.DB) error) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withDatabase(cmd.Context(), run)
		},
	}
}

// withDatabase opens the configured primary database for the duration of fn.
func withDatabase(ctx context.Context, fn func(ctx context.Context, db *sql.DB) error) error {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := config.New()
	if err != nil {
		return err
	}
	if cfg.Database.Driver != config.DriverPostgres {
		return errors.Errorf("migrations need the postgres driver, got %q", cfg.Database.Driver)
	}

	logger, err := logs.New(logs.Params{Config: cfg})
	if err != nil {
		return err
	}

	db, err := postgres.Open(cfg, logger)
	if err != nil {
		return err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}
	defer sqlDB.Close()

	return fn(ctx, sqlDB)
}
