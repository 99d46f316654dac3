package services

import (
	"context"
	"database/sql"
)

// DB is the subset of *sqlx.DB the services need. Queries are written with
// '?' placeholders and passed through Rebind for the active driver.
type DB interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	SelectContext(ctx context.Context, dest any, query string, args ...any) error
	GetContext(ctx context.Context, dest any, query string, args ...any) error
	Rebind(query string) string
}
