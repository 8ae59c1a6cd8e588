package iometrics

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/herbdb/pkg/errcode"
)

// WriteError creates an error for a failed metrics file write.
func WriteError(path string, err error) error {
	msg := `Cannot write metrics to <em>%s</em>

<em>How to fix:</em>
  1. Check that the directory exists and is writable
  2. Change <em>metrics_file</em> in config or unset it`

	return &gn.Error{
		Code: errcode.MetricsWriteError,
		Msg:  msg,
		Vars: []any{path},
		Err:  fmt.Errorf("failed to write metrics to %s: %w", path, err),
	}
}
