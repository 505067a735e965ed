package postgres

import (
	"database/sql"
	"log/slog"

	"marquee/config"
	"marquee/internal/errors"

	"github.com/golang-migrate/migrate/v4"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

// applyMigrations runs the SQL migrations against the connected database.
// A missing migrations path in config skips the step entirely.
func applyMigrations(cfg *config.Config, sqlDB *sql.DB, logger *slog.Logger) error {
	if cfg.Migrations == "" {
		return nil
	}

	driver, err := migratepg.WithInstance(sqlDB, &migratepg.Config{})
	if err != nil {
		return errors.Wrap(err, "failed to create migrate driver")
	}

	m, err := migrate.NewWithDatabaseInstance("file://"+cfg.Migrations, "postgres", driver)
	if err != nil {
		return errors.Wrap(err, "failed to create migrate instance")
	}

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			logger.Debug("Database schema already up to date")

			return nil
		}

		return errors.Wrap(err, "failed to run migrations")
	}

	logger.Info("Database migrations applied", slog.String("path", cfg.Migrations))

	return nil
}
