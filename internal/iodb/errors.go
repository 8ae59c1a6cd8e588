package iodb

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/herbdb/pkg/errcode"
)

// ConnectionError creates an error for PostgreSQL connection failures.
func ConnectionError(
	host string,
	port int,
	database, user string,
	err error,
) error {
	msg := `Cannot connect to PostgreSQL database

<em>Possible causes:</em>
  - PostgreSQL is not running
  - Database configuration is incorrect
  - Network connectivity issues

<em>How to fix:</em>
  1. Check if PostgreSQL is running: <em>pg_isready -h %s -p %d</em>
  2. Verify database exists: <em>psql -U %s -l</em>
  3. Review database settings in <em>~/.config/herbdb/config.yaml</em>
     or HERBDB_DATABASE_* environment variables
  4. Or switch to the embedded store: <em>HERBDB_DATABASE_DRIVER=sqlite</em>`

	return &gn.Error{
		Code: errcode.DBConnectionError,
		Msg:  msg,
		Vars: []any{host, port, user},
		Err: fmt.Errorf(
			"failed to connect to %s:%d/%s: %w",
			host, port, database, err,
		),
	}
}

// SQLiteOpenError creates an error for failures to open a SQLite file.
func SQLiteOpenError(path string, err error) error {
	msg := `Cannot open SQLite database <em>%s</em>

<em>How to fix:</em>
  1. Check that the directory exists and is writable
  2. Set a different file with <em>HERBDB_DATABASE_PATH</em>`

	return &gn.Error{
		Code: errcode.DBConnectionError,
		Msg:  msg,
		Vars: []any{path},
		Err:  fmt.Errorf("failed to open sqlite database %s: %w", path, err),
	}
}

// UnknownDriverError is returned for unsupported database drivers.
func UnknownDriverError(driver string) error {
	msg := `Unknown database driver <em>%s</em>, use postgres or sqlite`

	return &gn.Error{
		Code: errcode.DBUnknownDriverError,
		Msg:  msg,
		Vars: []any{driver},
		Err:  fmt.Errorf("unknown database driver %q", driver),
	}
}

// NotConnectedError is returned when an operation runs before Connect.
func NotConnectedError() error {
	msg := "Database operation attempted without connection"

	return &gn.Error{
		Code: errcode.DBNotConnectedError,
		Msg:  msg,
		Err:  fmt.Errorf("not connected to database"),
	}
}

// TableExistsCheckError creates an error for a failed check of a table.
func TableExistsCheckError(table string, err error) error {
	msg := "Cannot check if table <em>%s</em> exists"

	return &gn.Error{
		Code: errcode.DBTableExistsCheckError,
		Msg:  msg,
		Vars: []any{table},
		Err:  fmt.Errorf("failed to check table %s: %w", table, err),
	}
}

// TableCheckError creates an error for a failed check of database state.
func TableCheckError(err error) error {
	msg := `Cannot verify database state

<em>How to fix:</em>
  1. Check database connection settings
  2. Make sure the user can read the database catalog`

	return &gn.Error{
		Code: errcode.DBTableCheckError,
		Msg:  msg,
		Err:  fmt.Errorf("failed to check database tables: %w", err),
	}
}

// QueryTablesError creates an error for a failed listing of tables.
func QueryTablesError(err error) error {
	msg := "Cannot get the list of tables"

	return &gn.Error{
		Code: errcode.DBQueryTablesError,
		Msg:  msg,
		Err:  fmt.Errorf("failed to query tables: %w", err),
	}
}

// ScanTableError creates an error for a failed read of a table name.
func ScanTableError(err error) error {
	msg := "Cannot read table name"

	return &gn.Error{
		Code: errcode.DBScanTableError,
		Msg:  msg,
		Err:  fmt.Errorf("failed to scan table name: %w", err),
	}
}

// DropTableError creates an error for a failed DROP TABLE.
func DropTableError(table string, err error) error {
	msg := `Cannot drop table <em>%s</em>

<em>How to fix:</em>
  1. Check that the database user owns the table
  2. Close other connections that may lock the table`

	return &gn.Error{
		Code: errcode.DBDropTableError,
		Msg:  msg,
		Vars: []any{table},
		Err:  fmt.Errorf("failed to drop table %s: %w", table, err),
	}
}
