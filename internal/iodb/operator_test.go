package iodb_test

import (
	"context"
	"testing"

	"github.com/gnames/herbdb/internal/iodb"
	"github.com/gnames/herbdb/internal/iotesting"
	"github.com/gnames/herbdb/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Note: PostgreSQL tests are integration tests.
//
// Configuration comes from HERBDB_DATABASE_* environment variables and
// built-in defaults (postgres/postgres). Database name is always forced
// to "herbdb_test" for safety.
//
// Skip them with:
//   go test -short
// They are also skipped when PostgreSQL is not reachable.

func TestNewOperator(t *testing.T) {
	op, err := iodb.NewOperator(config.DriverSQLite)
	require.NoError(t, err)
	assert.Equal(t, "sqlite", op.Dialect().Name())

	op, err = iodb.NewOperator(config.DriverPostgres)
	require.NoError(t, err)
	assert.Equal(t, "postgres", op.Dialect().Name())

	_, err = iodb.NewOperator("mysql")
	assert.Error(t, err)
}

func TestNotConnected(t *testing.T) {
	ctx := context.Background()
	for _, op := range []interface {
		TableExists(context.Context, string) (bool, error)
		HasTables(context.Context) (bool, error)
		DropAllTables(context.Context) error
	}{iodb.NewPgxOperator(), iodb.NewSQLiteOperator()} {
		_, err := op.TableExists(ctx, "plants")
		assert.Error(t, err)
		_, err = op.HasTables(ctx)
		assert.Error(t, err)
		assert.Error(t, op.DropAllTables(ctx))
	}
}

func TestSQLiteOperator_Connect_EmptyPath(t *testing.T) {
	op := iodb.NewSQLiteOperator()
	err := op.Connect(context.Background(), &config.DatabaseConfig{})
	assert.Error(t, err)
	assert.Nil(t, op.DB())
}

func TestSQLiteOperator_Tables(t *testing.T) {
	ctx := context.Background()
	op := iodb.NewSQLiteOperator()
	require.NoError(t, op.Connect(ctx, iotesting.SQLiteConfig(t)))
	defer op.Close()

	has, err := op.HasTables(ctx)
	require.NoError(t, err)
	assert.False(t, has, "fresh database is empty")

	_, err = op.DB().ExecContext(ctx,
		`CREATE TABLE parents (id INTEGER PRIMARY KEY)`)
	require.NoError(t, err)
	_, err = op.DB().ExecContext(ctx, `CREATE TABLE children (
		id INTEGER PRIMARY KEY,
		parent_id INTEGER REFERENCES parents(id) ON DELETE CASCADE
	)`)
	require.NoError(t, err)
	_, err = op.DB().ExecContext(ctx, `INSERT INTO parents (id) VALUES (1)`)
	require.NoError(t, err)
	_, err = op.DB().ExecContext(ctx,
		`INSERT INTO children (id, parent_id) VALUES (1, 1)`)
	require.NoError(t, err)

	exists, err := op.TableExists(ctx, "children")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = op.TableExists(ctx, "nonexistent_table")
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, op.DropAllTables(ctx))

	has, err = op.HasTables(ctx)
	require.NoError(t, err)
	assert.False(t, has, "all tables dropped")
}

func TestSQLiteOperator_ForeignKeysOn(t *testing.T) {
	ctx := context.Background()
	op := iodb.NewSQLiteOperator()
	require.NoError(t, op.Connect(ctx, iotesting.SQLiteConfig(t)))
	defer op.Close()

	var fk int
	err := op.DB().QueryRowContext(ctx, "PRAGMA foreign_keys").Scan(&fk)
	require.NoError(t, err)
	assert.Equal(t, 1, fk)
}

func TestPgxOperator_TableExists(t *testing.T) {
	op := iodb.NewPgxOperator()
	iotesting.ConnectPostgres(t, op)
	ctx := context.Background()

	exists, err := op.TableExists(ctx, "nonexistent_table")
	assert.NoError(t, err)
	assert.False(t, exists)

	_, err = op.HasTables(ctx)
	assert.NoError(t, err)
}

func TestPgxOperator_Connect_InvalidHost(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	op := iodb.NewPgxOperator()
	cfg := iotesting.GetTestDatabaseConfig()
	cfg.Host = "invalid-host-that-does-not-exist"

	err := op.Connect(context.Background(), cfg)
	assert.Error(t, err, "Connect should fail with invalid host")
}
