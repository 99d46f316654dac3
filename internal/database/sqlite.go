package database

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// OpenSQLite opens a file-backed SQLite database for local runs and tests.
// A single connection keeps writers serialized.
func OpenSQLite(path string) (*sqlx.DB, error) {
	db, err := sqlx.Open(DriverSQLite, path)
	if err != nil {
		return nil, fmt.Errorf("error opening sqlite database: %w", err)
	}
	db.SetMaxOpenConns(1)
	return db, nil
}
