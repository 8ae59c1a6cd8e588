package lifecycle

import (
	"context"

	"github.com/gnames/herbdb/pkg/config"
)

// SchemaManager defines the interface for database schema management.
// PostgreSQL schema is created with GORM AutoMigrate, SQLite schema
// from generated DDL. Schema creation is idempotent - safe to run
// multiple times.
type SchemaManager interface {
	// Create creates tables, case-insensitive unique indexes and, for
	// PostgreSQL, "C" collation of name columns so ordering matches
	// SQLite.
	Create(ctx context.Context, cfg *config.Config) error
}
