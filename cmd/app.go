package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/herbdb/internal/iocatalog"
	"github.com/gnames/herbdb/internal/iodb"
	"github.com/gnames/herbdb/pkg/catalog"
	"github.com/gnames/herbdb/pkg/db"
	"github.com/gnames/herbdb/pkg/errcode"
	"github.com/gnames/herbdb/pkg/parserpool"
)

// session is an open catalog with resources that have to be released.
type session struct {
	op  db.Operator
	cat catalog.Catalog
	pp  parserpool.Pool
}

func (s *session) Close() {
	if s.pp != nil {
		s.pp.Close()
	}
	if s.op != nil {
		s.op.Close()
	}
}

// connect opens the configured store without checking its schema.
func connect(ctx context.Context) (db.Operator, error) {
	op, err := iodb.NewOperator(cfg.Database.Driver)
	if err != nil {
		return nil, err
	}
	if err = op.Connect(ctx, &cfg.Database); err != nil {
		return nil, err
	}
	return op, nil
}

// openCatalog connects to the store and makes sure its schema exists.
func openCatalog(ctx context.Context) (*session, error) {
	op, err := connect(ctx)
	if err != nil {
		return nil, err
	}
	res := &session{op: op}

	exists, err := op.TableExists(ctx, "plants")
	if err != nil {
		res.Close()
		return nil, err
	}
	if !exists {
		res.Close()
		return nil, schemaMissingError()
	}

	res.pp = parserpool.NewPool(cfg.JobsNumber)
	res.cat, err = iocatalog.New(op,
		iocatalog.OptParser(res.pp),
		iocatalog.OptMetrics(metrics),
	)
	if err != nil {
		res.Close()
		return nil, err
	}
	return res, nil
}

func schemaMissingError() error {
	msg := `Database has no herbdb tables

<em>How to fix:</em>
  Run 'herbdb create' first`
	return &gn.Error{
		Code: errcode.SchemaMissingError,
		Msg:  msg,
		Err:  fmt.Errorf("table plants does not exist"),
	}
}

// report prints an error for a user and returns it.
func report(err error) error {
	if err == nil {
		return nil
	}

	var vErr *catalog.ValidationError
	var cErr *catalog.ConflictError
	var nfErr *catalog.NotFoundError
	switch {
	case errors.As(err, &vErr):
		gn.Warn("Invalid input: %s", vErr.Error())
	case errors.As(err, &cErr):
		gn.Warn("Cannot save: %s", cErr.Error())
	case errors.As(err, &nfErr):
		gn.Warn("Not found: %s", nfErr.Error())
	default:
		gn.PrintErrorMessage(err)
	}
	return err
}
