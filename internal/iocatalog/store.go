// Package iocatalog implements catalog.Catalog on top of a relational
// store reached through database/sql. PostgreSQL and SQLite are
// supported, their differences come from db.Dialect.
//
// Writes run in transactions. Statements that may hit a unique
// constraint run under a savepoint, so the transaction stays usable for
// a follow-up lookup of the conflicting row.
package iocatalog

import (
	"context"
	"database/sql"
	"time"

	"github.com/gnames/herbdb/internal/iometrics"
	"github.com/gnames/herbdb/pkg/catalog"
	"github.com/gnames/herbdb/pkg/db"
	"github.com/gnames/herbdb/pkg/parserpool"
	"github.com/gnames/herbdb/pkg/query"
)

// store implements catalog.Catalog.
type store struct {
	db      *sql.DB
	dialect db.Dialect
	parser  parserpool.Pool
	metrics *iometrics.Metrics
	now     func() time.Time

	// beforeUseInsert runs between the lookup of a medicinal use name and
	// its insert. Set by tests to reproduce a lost race.
	beforeUseInsert func(ctx context.Context, tx *sql.Tx, name string) error

	// afterCommit runs once a transaction is committed. Set by tests to
	// change data between a write and its return.
	afterCommit func(ctx context.Context, op string)
}

// Option configures the catalog store.
type Option func(*store)

// OptParser sets a parser pool used to derive canonical forms of
// scientific names.
func OptParser(p parserpool.Pool) Option {
	return func(s *store) {
		s.parser = p
	}
}

// OptMetrics sets Prometheus metrics.
func OptMetrics(m *iometrics.Metrics) Option {
	return func(s *store) {
		s.metrics = m
	}
}

// New creates a catalog on a connected operator.
func New(op db.Operator, opts ...Option) (catalog.Catalog, error) {
	if op.DB() == nil {
		return nil, NotConnectedError()
	}
	res := &store{
		db:      op.DB(),
		dialect: op.Dialect(),
		now:     func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(res)
	}
	return res, nil
}

// querier is satisfied by both *sql.DB and *sql.Tx.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// q rebinds "?" markers to the placeholders of the store.
func (s *store) q(stmt string) string {
	return query.Rebind(stmt, s.dialect.Placeholder)
}

func (s *store) render(sel query.Select) (string, []any) {
	return sel.Render(s.dialect.Placeholder)
}

func (s *store) canonical(name string) (sql.NullString, sql.NullString) {
	if s.parser == nil {
		return sql.NullString{}, sql.NullString{}
	}
	can, id := s.parser.Canonical(name)
	if !id.Valid {
		return sql.NullString{}, sql.NullString{}
	}
	return nullString(can), nullString(id.UUID.String())
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
