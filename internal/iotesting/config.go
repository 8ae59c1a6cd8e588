// Package iotesting provides shared test utilities for integration tests.
// This is an internal package for test infrastructure only.
package iotesting

import (
	"context"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/gnames/herbdb/pkg/config"
)

const (
	// TestDatabaseName is the database name used for all PostgreSQL
	// integration tests. This ensures tests never accidentally run against
	// production databases.
	TestDatabaseName = "herbdb_test"
)

// GetTestConfig returns a configuration suitable for integration tests.
// It starts from defaults, applies HERBDB_DATABASE_* environment
// variables and overrides the database name to TestDatabaseName for
// safety.
func GetTestConfig() *config.Config {
	cfg := config.New()

	var opts []config.Option
	if s := os.Getenv("HERBDB_DATABASE_HOST"); s != "" {
		opts = append(opts, config.OptDatabaseHost(s))
	}
	if s := os.Getenv("HERBDB_DATABASE_PORT"); s != "" {
		if port, err := strconv.Atoi(s); err == nil {
			opts = append(opts, config.OptDatabasePort(port))
		}
	}
	if s := os.Getenv("HERBDB_DATABASE_USER"); s != "" {
		opts = append(opts, config.OptDatabaseUser(s))
	}
	if s := os.Getenv("HERBDB_DATABASE_PASSWORD"); s != "" {
		opts = append(opts, config.OptDatabasePassword(s))
	}
	cfg.Update(opts)

	// Always use test database for safety
	cfg.Database.Database = TestDatabaseName

	return cfg
}

// GetTestDatabaseConfig returns only the PostgreSQL configuration for
// tests.
func GetTestDatabaseConfig() *config.DatabaseConfig {
	cfg := GetTestConfig()
	return &cfg.Database
}

// SQLiteConfig returns a SQLite configuration pointing to a fresh file in
// a temporary directory that is removed after the test.
func SQLiteConfig(t *testing.T) *config.DatabaseConfig {
	t.Helper()

	cfg := config.New()
	cfg.Update([]config.Option{
		config.OptDatabaseDriver(config.DriverSQLite),
		config.OptDatabasePath(filepath.Join(t.TempDir(), "herbdb.sqlite")),
		config.OptDatabaseMaxConns(4),
	})
	return &cfg.Database
}

// Connector is satisfied by db.Operator.
type Connector interface {
	Connect(context.Context, *config.DatabaseConfig) error
	Close() error
}

// ConnectPostgres connects op to the test PostgreSQL database. The test
// is skipped in short mode or when PostgreSQL is not reachable.
func ConnectPostgres(t *testing.T, op Connector) {
	t.Helper()

	if testing.Short() {
		t.Skip("Skipping PostgreSQL integration test in short mode")
	}

	err := op.Connect(context.Background(), GetTestDatabaseConfig())
	if err != nil {
		t.Skipf("PostgreSQL is not available: %v", err)
	}
	t.Cleanup(func() { op.Close() })
}
