package iodb

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"

	"github.com/gnames/herbdb/pkg/config"
	"github.com/gnames/herbdb/pkg/db"
)

// MemoryPath opens a private in-memory SQLite database.
const MemoryPath = ":memory:"

// sqlitePragmas enable foreign keys (needed for cascade deletes), WAL
// for concurrent readers, and a busy timeout. Write transactions start
// with BEGIN IMMEDIATE so concurrent writers queue up on the lock
// instead of failing on upgrade from a read lock.
const sqlitePragmas = "_pragma=foreign_keys(1)" +
	"&_pragma=busy_timeout(30000)" +
	"&_pragma=journal_mode(WAL)" +
	"&_txlock=immediate" +
	"&_time_format=sqlite"

type sqliteOperator struct {
	db   *sql.DB
	path string
}

// NewSQLiteOperator creates a new SQLite operator (without connecting).
func NewSQLiteOperator() db.Operator {
	return &sqliteOperator{}
}

// SQLiteDSN returns data source name for modernc.org/sqlite driver.
func SQLiteDSN(path string) string {
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + sqlitePragmas
}

// Connect opens the SQLite file given by cfg.Path.
func (s *sqliteOperator) Connect(
	ctx context.Context,
	cfg *config.DatabaseConfig,
) error {
	path := cfg.Path
	if path == "" {
		return SQLiteOpenError(path, fmt.Errorf("database path is empty"))
	}

	sqlDB, err := sql.Open("sqlite", SQLiteDSN(path))
	if err != nil {
		return SQLiteOpenError(path, err)
	}

	if path == MemoryPath {
		// every connection gets its own in-memory database
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxOpenConns(max(cfg.MaxConns, 1))
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		sqlDB.Close()
		return SQLiteOpenError(path, err)
	}

	s.db = sqlDB
	s.path = path
	slog.Info("Opened SQLite database", "path", path)
	return nil
}

// Close closes the database.
func (s *sqliteOperator) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// DB returns the connection pool.
func (s *sqliteOperator) DB() *sql.DB {
	return s.db
}

// Dialect returns SQLite dialect.
func (s *sqliteOperator) Dialect() db.Dialect {
	return SQLiteDialect{}
}

// TableExists checks sqlite_master for the table.
func (s *sqliteOperator) TableExists(
	ctx context.Context,
	tableName string,
) (bool, error) {
	if s.db == nil {
		return false, NotConnectedError()
	}

	query := `
		SELECT COUNT(*) FROM sqlite_master
		WHERE type = 'table' AND name = ?
	`

	var count int
	err := s.db.QueryRowContext(ctx, query, tableName).Scan(&count)
	if err != nil {
		return false, TableExistsCheckError(tableName, err)
	}
	return count > 0, nil
}

// HasTables checks if there are user tables in the database.
func (s *sqliteOperator) HasTables(ctx context.Context) (bool, error) {
	if s.db == nil {
		return false, NotConnectedError()
	}

	query := `
		SELECT COUNT(*) FROM sqlite_master
		WHERE type = 'table' AND name NOT LIKE 'sqlite_%'
	`

	var count int
	if err := s.db.QueryRowContext(ctx, query).Scan(&count); err != nil {
		return false, TableCheckError(err)
	}
	return count > 0, nil
}

// DropAllTables drops user tables. Foreign keys are switched off on a
// dedicated connection while tables are dropped.
func (s *sqliteOperator) DropAllTables(ctx context.Context) error {
	if s.db == nil {
		return NotConnectedError()
	}

	conn, err := s.db.Conn(ctx)
	if err != nil {
		return TableCheckError(err)
	}
	defer conn.Close()

	query := `
		SELECT name FROM sqlite_master
		WHERE type = 'table' AND name NOT LIKE 'sqlite_%'
	`
	tables, err := tableNames(ctx, conn, query)
	if err != nil {
		return err
	}

	if _, err = conn.ExecContext(ctx, "PRAGMA foreign_keys = OFF"); err != nil {
		return DropTableError("*", err)
	}
	defer func() {
		_, _ = conn.ExecContext(context.Background(), "PRAGMA foreign_keys = ON")
	}()

	for _, table := range tables {
		dropSQL := fmt.Sprintf("DROP TABLE IF EXISTS %q", table)
		if _, err := conn.ExecContext(ctx, dropSQL); err != nil {
			return DropTableError(table, err)
		}
	}
	return nil
}
