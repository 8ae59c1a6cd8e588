package iocatalog

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/herbdb/pkg/errcode"
)

// NotConnectedError is returned when a catalog is created on an operator
// without an open database.
func NotConnectedError() error {
	msg := "Catalog requires a connected database"

	return &gn.Error{
		Code: errcode.DBNotConnectedError,
		Msg:  msg,
		Err:  fmt.Errorf("not connected to database"),
	}
}

// QueryError wraps a failed statement of a catalog operation. gn.Error
// does not unwrap, the cause is reached through its Err field.
func QueryError(op string, err error) error {
	msg := "Catalog operation <em>%s</em> failed"
	vars := []any{op}

	return &gn.Error{
		Code: errcode.CatalogQueryError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("%s: %w", op, err),
	}
}

// TransactionError is returned when a transaction cannot begin or
// commit. The cause, for example context.Canceled, is reached through
// Err.
func TransactionError(op string, err error) error {
	msg := `Transaction of <em>%s</em> failed, no changes were saved

<em>Possible causes:</em>
  - Database connection was lost
  - Operation was cancelled
  - Database is locked by another process`
	vars := []any{op}

	return &gn.Error{
		Code: errcode.CatalogTransactionError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("transaction %s: %w", op, err),
	}
}

// UseNameError is returned when a medicinal use name cannot be resolved
// to a row. The driver error is reached through Err.
func UseNameError(name string, err error) error {
	msg := "Cannot save medicinal use <em>%s</em>"
	vars := []any{name}

	return &gn.Error{
		Code: errcode.CatalogUseNameError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("medicinal use %q: %w", name, err),
	}
}

// LinkError is returned when a plant cannot be linked to a medicinal
// use, usually because the use does not exist.
func LinkError(plantID, useID int, err error) error {
	msg := `Cannot link plant <em>%d</em> to medicinal use <em>%d</em>

<em>How to fix:</em>
  Check that the medicinal use exists with 'herbdb uses list'`
	vars := []any{plantID, useID}

	return &gn.Error{
		Code: errcode.CatalogQueryError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("link plant %d to use %d: %w", plantID, useID, err),
	}
}
