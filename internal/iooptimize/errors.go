package iooptimize

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/herbdb/pkg/errcode"
)

// NotConnectedError is returned when the operator has no connection.
func NotConnectedError() error {
	return &gn.Error{
		Code: errcode.DBNotConnectedError,
		Msg:  "Database not connected",
		Err:  fmt.Errorf("optimize: database is not connected"),
	}
}

// ReparseError is returned when canonical forms of plants cannot be
// refreshed.
func ReparseError(step string, err error) error {
	msg := `Cannot reparse scientific names of plants

<em>Possible causes:</em>
  1. Database connection was lost
  2. Database schema is outdated (recreate it with 'herbdb create')`

	return &gn.Error{
		Code: errcode.OptimizerReparseError,
		Msg:  msg,
		Err:  fmt.Errorf("reparse, %s: %w", step, err),
	}
}

// OrphanRemovalError is returned when removing medicinal uses without
// plants fails.
func OrphanRemovalError(err error) error {
	return &gn.Error{
		Code: errcode.OptimizerOrphanRemovalError,
		Msg:  "Failed to remove medicinal uses without plants",
		Err:  fmt.Errorf("delete orphan medicinal_uses: %w", err),
	}
}

// VacuumError is returned when the store cannot be compacted.
func VacuumError(stmt string, err error) error {
	msg := `Cannot run <em>%s</em>

<em>How to fix:</em>
  1. Check that no other process holds a lock on the database
  2. Check free disk space, VACUUM needs room for a copy of the data`

	return &gn.Error{
		Code: errcode.OptimizerVacuumError,
		Msg:  msg,
		Vars: []any{stmt},
		Err:  fmt.Errorf("%s: %w", stmt, err),
	}
}
