package iodb

import (
	"errors"
	"strings"

	"github.com/gnames/herbdb/pkg/config"
	"github.com/gnames/herbdb/pkg/query"
	"github.com/jackc/pgx/v5/pgconn"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// pgUniqueViolation is SQLSTATE of unique_violation.
const pgUniqueViolation = "23505"

// PostgresDialect describes PostgreSQL accessed through pgx.
type PostgresDialect struct{}

// Name returns "postgres".
func (PostgresDialect) Name() string { return config.DriverPostgres }

// Placeholder returns $n.
func (PostgresDialect) Placeholder(n int) string { return query.Dollar(n) }

// IsUniqueViolation checks SQLSTATE of a pgconn error.
func (PostgresDialect) IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}

// SQLiteDialect describes SQLite accessed through modernc.org/sqlite.
type SQLiteDialect struct{}

// Name returns "sqlite".
func (SQLiteDialect) Name() string { return config.DriverSQLite }

// Placeholder returns ?.
func (SQLiteDialect) Placeholder(n int) string { return query.Question(n) }

// IsUniqueViolation checks extended result code of a sqlite error.
func (SQLiteDialect) IsUniqueViolation(err error) bool {
	var sErr *sqlite.Error
	if !errors.As(err, &sErr) {
		return false
	}
	switch sErr.Code() {
	case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
		return true
	}
	// primary result code only, when extended codes are off
	return sErr.Code()&0xff == sqlite3.SQLITE_CONSTRAINT &&
		strings.Contains(sErr.Error(), "UNIQUE constraint failed")
}
