package commands

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/mysql"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/memoriz2/greensupia-sub000/internal/database"
)

// migrationsPath returns the migration source for driver.
func migrationsPath(driver string) (string, error) {
	switch driver {
	case database.DriverPostgres:
		return "file://migrations/postgresql", nil
	case database.DriverMySQL:
		return "file://migrations/mysql", nil
	default:
		return "", database.ValidateDriver(driver)
	}
}

// migrationURL prefixes a bare MySQL DSN with the scheme golang-migrate dispatches on.
func migrationURL(driver, connectionString string) string {
	if driver == database.DriverMySQL && !strings.HasPrefix(connectionString, "mysql://") {
		return "mysql://" + connectionString
	}
	return connectionString
}

func newMigrate(logger *slog.Logger, driver, connectionString string) (*migrate.Migrate, error) {
	path, err := migrationsPath(driver)
	if err != nil {
		return nil, fmt.Errorf("failed to create migrate instance: %w", err)
	}

	m, err := migrate.New(path, migrationURL(driver, connectionString))
	if err != nil {
		return nil, fmt.Errorf("failed to create migrate instance: %w", err)
	}
	m.Log = migrateLogger{logger: logger}
	return m, nil
}

// RunMigrations applies every pending migration.
func RunMigrations(logger *slog.Logger, driver, connectionString string) error {
	return RunMigrationSteps(logger, driver, connectionString, 0)
}

// RunMigrationSteps moves the schema by steps migrations: positive applies, negative
// rolls back, zero applies everything pending. Being already at the target is not an error.
func RunMigrationSteps(logger *slog.Logger, driver, connectionString string, steps int) error {
	logger.Info("running database migrations", slog.String("driver", driver), slog.Int("steps", steps))

	m, err := newMigrate(logger, driver, connectionString)
	if err != nil {
		return err
	}
	defer closeMigrate(m, logger)

	if steps == 0 {
		err = m.Up()
	} else {
		err = m.Steps(steps)
	}
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	logger.Info("migrations completed successfully")
	return nil
}

// RunMigrationVersion writes the current schema version and whether the last migration
// left it dirty.
func RunMigrationVersion(logger *slog.Logger, out io.Writer, driver, connectionString, format string) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	m, err := newMigrate(logger, driver, connectionString)
	if err != nil {
		return err
	}
	defer closeMigrate(m, logger)

	version, dirty, err := m.Version()
	switch {
	case errors.Is(err, migrate.ErrNilVersion):
		version, dirty = 0, false
	case err != nil:
		return fmt.Errorf("failed to read migration version: %w", err)
	}

	return writeResult(out, format, []string{"version", "dirty"}, map[string]any{
		"version": version,
		"dirty":   dirty,
	})
}

// migrateLogger routes golang-migrate progress lines to slog at debug level.
type migrateLogger struct {
	logger *slog.Logger
}

func (l migrateLogger) Printf(format string, v ...any) {
	l.logger.Debug(strings.TrimSpace(fmt.Sprintf(format, v...)), slog.String("component", "migrate"))
}

func (l migrateLogger) Verbose() bool {
	return false
}
