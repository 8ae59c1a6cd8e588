package db_test

import (
	"testing"

	"github.com/gnames/herbdb/internal/iodb"
	"github.com/gnames/herbdb/pkg/db"
)

// TestOperatorsImplementInterface verifies that both store operators
// implement the db.Operator interface.
// This test ensures compile-time contract compliance.
func TestOperatorsImplementInterface(t *testing.T) {
	// This will fail to compile if operators don't implement db.Operator
	var _ db.Operator = iodb.NewPgxOperator()
	var _ db.Operator = iodb.NewSQLiteOperator()
	var _ db.Dialect = iodb.PostgresDialect{}
	var _ db.Dialect = iodb.SQLiteDialect{}
}
