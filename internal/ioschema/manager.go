// Package ioschema implements SchemaManager interface for
// database schema management. This is an impure I/O package
// that wraps GORM AutoMigrate for PostgreSQL and generated
// DDL for SQLite.
package ioschema

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/gnames/herbdb/pkg/config"
	"github.com/gnames/herbdb/pkg/db"
	"github.com/gnames/herbdb/pkg/lifecycle"
	"github.com/gnames/herbdb/pkg/schema"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// manager implements the lifecycle.SchemaManager interface.
type manager struct {
	operator db.Operator
}

// NewManager creates a new SchemaManager.
func NewManager(op db.Operator) lifecycle.SchemaManager {
	return &manager{operator: op}
}

// Create creates tables and indexes of herbdb. Existing tables
// are kept.
func (m *manager) Create(
	ctx context.Context,
	cfg *config.Config,
) error {
	sqlDB := m.operator.DB()
	if sqlDB == nil {
		return NotConnectedError()
	}

	var err error
	switch m.operator.Dialect().Name() {
	case config.DriverPostgres:
		err = m.createPostgres(ctx, sqlDB)
	default:
		err = m.createSQLite(ctx, sqlDB)
	}
	if err != nil {
		return err
	}

	if err = m.createIndexes(ctx, sqlDB); err != nil {
		return err
	}

	slog.Info("Database schema is ready",
		"driver", m.operator.Dialect().Name())
	return nil
}

func (m *manager) createPostgres(
	ctx context.Context,
	sqlDB *sql.DB,
) error {
	// Connect with GORM
	gormDB, err := gorm.Open(
		postgres.New(postgres.Config{Conn: sqlDB}),
		&gorm.Config{Logger: logger.Discard},
	)
	if err != nil {
		return GORMConnectionError(err)
	}

	// Run GORM AutoMigrate to create schema
	if err := schema.Migrate(gormDB.WithContext(ctx)); err != nil {
		return CreateSchemaError(err)
	}

	// Set collation for name columns
	// (ordering must not depend on server locale)
	return m.setCollation(ctx, sqlDB)
}

func (m *manager) createSQLite(
	ctx context.Context,
	sqlDB *sql.DB,
) error {
	var missing []schema.DDLGenerator
	for _, tbl := range schema.AllTables() {
		exists, err := m.operator.TableExists(ctx, tbl.TableName())
		if err != nil {
			return err
		}
		if exists {
			slog.Debug("Table exists, skipping", "table", tbl.TableName())
			continue
		}
		missing = append(missing, tbl)
	}

	tx, err := sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return CreateSchemaError(err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, tbl := range missing {
		if _, err = tx.ExecContext(ctx, tbl.TableDDL()); err != nil {
			return CreateSchemaError(err)
		}
	}

	if err = tx.Commit(); err != nil {
		return CreateSchemaError(err)
	}
	return nil
}

func (m *manager) createIndexes(
	ctx context.Context,
	sqlDB *sql.DB,
) error {
	for _, tbl := range schema.AllTables() {
		for _, stmt := range tbl.IndexDDL() {
			if _, err := sqlDB.ExecContext(ctx, stmt); err != nil {
				return IndexError(tbl.TableName(), err)
			}
		}
	}
	return nil
}

// setCollation sets "C" collation on name columns. This
// makes ordering by name byte-wise, the same as in SQLite.
func (m *manager) setCollation(
	ctx context.Context,
	sqlDB *sql.DB,
) error {
	type columnDef struct {
		table, column string
		varchar       int
	}

	columns := []columnDef{
		{"plants", "scientific_name", 255},
		{"plants", "common_name", 255},
		{"medicinal_uses", "use_name", 255},
	}

	qStr := `ALTER TABLE %s ALTER COLUMN %s ` +
		`TYPE VARCHAR(%d) COLLATE "C"`

	for _, col := range columns {
		q := formatCollationSQL(qStr, col.table,
			col.column, col.varchar)
		if _, err := sqlDB.ExecContext(ctx, q); err != nil {
			return CollationError(col.table, col.column, err)
		}
	}

	return nil
}
