// Package iodb implements database operations for PostgreSQL (pgxpool)
// and SQLite (modernc.org/sqlite). This is an impure I/O package that
// implements contracts defined in pkg/.
package iodb

import (
	"github.com/gnames/herbdb/pkg/config"
	"github.com/gnames/herbdb/pkg/db"
)

// NewOperator creates a not connected operator for the given driver.
func NewOperator(driver string) (db.Operator, error) {
	switch driver {
	case config.DriverPostgres:
		return NewPgxOperator(), nil
	case config.DriverSQLite:
		return NewSQLiteOperator(), nil
	default:
		return nil, UnknownDriverError(driver)
	}
}
