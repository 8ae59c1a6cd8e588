package iocatalog

import (
	"context"
	"database/sql"

	"github.com/gnames/herbdb/pkg/catalog"
)

// SetBeforeUseInsert installs a hook that runs right before a new
// medicinal use is inserted.
func SetBeforeUseInsert(
	c catalog.Catalog,
	fn func(ctx context.Context, tx *sql.Tx, name string) error,
) {
	c.(*store).beforeUseInsert = fn
}

// SetAfterCommit installs a hook that runs after every committed
// transaction.
func SetAfterCommit(
	c catalog.Catalog,
	fn func(ctx context.Context, op string),
) {
	c.(*store).afterCommit = fn
}
