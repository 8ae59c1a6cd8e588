package ioimages

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/herbdb/pkg/errcode"
)

// RequestError is returned when the image service cannot be reached.
func RequestError(name string, err error) error {
	msg := `Cannot reach image service for <em>%s</em>

<em>Possible causes:</em>
  - No network connection
  - Wrong images.base_url in config.yaml`
	vars := []any{name}

	return &gn.Error{
		Code: errcode.ImagesRequestError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("image request for %q: %w", name, err),
	}
}

// ResponseError is returned when the image service answers with an
// unexpected status or body.
func ResponseError(name string, status int, err error) error {
	msg := "Image service returned an unexpected response for <em>%s</em>"
	vars := []any{name}

	if err == nil {
		err = fmt.Errorf("status %d", status)
	}
	return &gn.Error{
		Code: errcode.ImagesResponseError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("image response for %q: %w", name, err),
	}
}

// BackfillError is returned when the backfill stops before every plant
// was processed.
func BackfillError(err error) error {
	msg := `Image backfill stopped

<em>How to fix:</em>
  Run 'herbdb images backfill' again, plants that are done are skipped`

	return &gn.Error{
		Code: errcode.ImagesBackfillError,
		Msg:  msg,
		Err:  fmt.Errorf("image backfill: %w", err),
	}
}
