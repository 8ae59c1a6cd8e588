package db

import (
	"context"
	"database/sql"

	"github.com/gnames/herbdb/pkg/config"
)

// Operator defines the interface for basic database management operations.
// It provides connection lifecycle management and exposes a *sql.DB for
// high-level components (SchemaManager, catalog store) to run their own SQL.
//
// Both PostgreSQL and SQLite implement it, store differences are described
// by Dialect.
type Operator interface {
	// Connect opens and verifies a bounded connection pool.
	Connect(context.Context, *config.DatabaseConfig) error

	// Close closes the database connection pool.
	Close() error

	// DB returns the connection pool. It is nil before Connect.
	DB() *sql.DB

	// Dialect describes SQL differences of the connected store.
	Dialect() Dialect

	// TableExists checks if a table exists in the database.
	TableExists(ctx context.Context, tableName string) (bool, error)

	// HasTables checks if the database has any tables.
	// Used to determine if schema creation should prompt for confirmation.
	HasTables(ctx context.Context) (bool, error)

	// DropAllTables drops all tables.
	// Used during schema creation when overwriting existing data.
	DropAllTables(ctx context.Context) error
}

// Dialect is a capability description of a relational store.
type Dialect interface {
	// Name is the driver name ("postgres" or "sqlite").
	Name() string

	// Placeholder returns a bind marker for the n-th argument (1-based).
	Placeholder(n int) string

	// IsUniqueViolation tells if err was caused by a unique constraint.
	IsUniqueViolation(err error) bool
}
