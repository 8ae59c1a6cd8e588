package lifecycle

import (
	"context"

	"github.com/gnames/herbdb/pkg/config"
)

// Optimizer refreshes data derived from plant records and compacts the
// store. Plants and links between plants and medicinal uses are never
// changed.
type Optimizer interface {
	// Optimize runs these steps:
	//  1. Reparse scientific names and update canonical forms that changed
	//  2. Remove medicinal uses without plants (optional)
	//  3. Reclaim space and refresh query planner statistics
	Optimize(ctx context.Context, cfg *config.Config) (*OptimizeReport, error)
}

// OptimizeReport summarizes an optimization run.
type OptimizeReport struct {
	// Plants is the number of plants checked by the parser.
	Plants int `json:"plants"`

	// Reparsed is the number of plants with updated canonical forms.
	Reparsed int `json:"reparsed"`

	// UsesRemoved is the number of deleted medicinal uses.
	UsesRemoved int `json:"usesRemoved"`
}
