package database

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	migratedb "github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/sirupsen/logrus"
)

//go:embed migrations/postgres/*.sql migrations/sqlite/*.sql
var migrationFS embed.FS

// Migrate brings the schema up to date. It opens its own handle to dsn and
// closes it when done, so the application pool never loses a connection to
// the migration lock.
func Migrate(driver, dsn string) error {
	src, err := iofs.New(migrationFS, "migrations/"+driver)
	if err != nil {
		return fmt.Errorf("error loading migrations: %w", err)
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return fmt.Errorf("error opening migration connection: %w", err)
	}

	var target migratedb.Driver
	switch driver {
	case DriverPostgres:
		target, err = postgres.WithInstance(db, &postgres.Config{})
	case DriverSQLite:
		target, err = sqlite.WithInstance(db, &sqlite.Config{})
	default:
		err = fmt.Errorf("unsupported database driver %q", driver)
	}
	if err != nil {
		db.Close()
		return fmt.Errorf("error preparing migrations: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", src, driver, target)
	if err != nil {
		target.Close()
		return fmt.Errorf("error preparing migrations: %w", err)
	}
	// closes both the source and db
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migration failed: %w", err)
	}

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("error reading schema version: %w", err)
	}
	logrus.WithFields(logrus.Fields{
		"component": "database",
		"version":   version,
		"dirty":     dirty,
	}).Info("Schema up to date")
	return nil
}
