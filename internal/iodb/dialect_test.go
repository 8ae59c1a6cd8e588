package iodb_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/gnames/herbdb/internal/iodb"
	"github.com/gnames/herbdb/internal/iotesting"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaceholders(t *testing.T) {
	assert.Equal(t, "$3", iodb.PostgresDialect{}.Placeholder(3))
	assert.Equal(t, "?", iodb.SQLiteDialect{}.Placeholder(3))
	assert.Equal(t, "postgres", iodb.PostgresDialect{}.Name())
	assert.Equal(t, "sqlite", iodb.SQLiteDialect{}.Name())
}

func TestPostgresUniqueViolation(t *testing.T) {
	d := iodb.PostgresDialect{}

	unique := fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"})
	assert.True(t, d.IsUniqueViolation(unique))

	fk := &pgconn.PgError{Code: "23503"}
	assert.False(t, d.IsUniqueViolation(fk))
	assert.False(t, d.IsUniqueViolation(errors.New("23505")))
	assert.False(t, d.IsUniqueViolation(nil))
}

func TestSQLiteUniqueViolation(t *testing.T) {
	ctx := context.Background()
	op := iodb.NewSQLiteOperator()
	require.NoError(t, op.Connect(ctx, iotesting.SQLiteConfig(t)))
	defer op.Close()

	sqlDB := op.DB()
	_, err := sqlDB.ExecContext(ctx, `CREATE TABLE things (
		id INTEGER PRIMARY KEY,
		name TEXT NOT NULL,
		parent_id INTEGER REFERENCES things(id)
	)`)
	require.NoError(t, err)
	_, err = sqlDB.ExecContext(ctx,
		`CREATE UNIQUE INDEX things_name_lower ON things (LOWER(name))`)
	require.NoError(t, err)

	_, err = sqlDB.ExecContext(ctx, `INSERT INTO things (name) VALUES ('Sedative')`)
	require.NoError(t, err)

	d := op.Dialect()

	_, err = sqlDB.ExecContext(ctx, `INSERT INTO things (name) VALUES ('sedative')`)
	require.Error(t, err)
	assert.True(t, d.IsUniqueViolation(err), "case variant hits index")

	_, err = sqlDB.ExecContext(ctx,
		`INSERT INTO things (name, parent_id) VALUES ('Tonic', 999)`)
	require.Error(t, err)
	assert.False(t, d.IsUniqueViolation(err), "foreign key is not unique")
}
