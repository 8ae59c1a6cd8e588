package ioseed

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/herbdb/pkg/errcode"
)

// ParseError is returned for a seed file that is not valid YAML or has
// unknown fields.
func ParseError(src string, err error) error {
	msg := `Cannot parse seed data from <em>%s</em>

<em>Expected format:</em>
  medicinal_uses:
    - use_name: Sedative
      description: Calms nerves
  plants:
    - scientific_name: Valeriana officinalis
      common_name: Valerian
      stock_status: in_stock
      medicinal_uses: [Sedative]`
	vars := []any{src}

	return &gn.Error{
		Code: errcode.SeedParseError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("parse seed %s: %w", src, err),
	}
}

// ImportError is returned when seeding stops on a store failure.
func ImportError(item string, err error) error {
	msg := "Seeding stopped at <em>%s</em>"
	vars := []any{item}

	return &gn.Error{
		Code: errcode.SeedReadError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("seed %s: %w", item, err),
	}
}
