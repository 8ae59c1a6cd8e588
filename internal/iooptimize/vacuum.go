package iooptimize

import (
	"context"
	"log/slog"
	"time"

	"github.com/gnames/herbdb/pkg/config"
)

// vacuumAnalyze reclaims space and updates statistics used by the query
// planner. VACUUM cannot run inside a transaction block.
func vacuumAnalyze(ctx context.Context, o *optimizer) error {
	stmts := []string{"VACUUM ANALYZE"}
	if o.operator.Dialect().Name() == config.DriverSQLite {
		stmts = []string{"VACUUM", "ANALYZE"}
	}

	timeStart := time.Now()
	for _, v := range stmts {
		slog.Info("Running " + v)
		if _, err := o.operator.DB().ExecContext(ctx, v); err != nil {
			return VacuumError(v, err)
		}
	}

	slog.Info("Store compacted", "duration", time.Since(timeStart).String())
	return nil
}
