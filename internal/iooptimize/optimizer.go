// Package iooptimize implements lifecycle.Optimizer. It refreshes
// canonical forms of scientific names, removes medicinal uses that lost
// all their plants and compacts the store.
package iooptimize

import (
	"context"
	"log/slog"
	"time"

	"github.com/gnames/gn"
	"github.com/gnames/herbdb/internal/iometrics"
	"github.com/gnames/herbdb/pkg/config"
	"github.com/gnames/herbdb/pkg/db"
	"github.com/gnames/herbdb/pkg/lifecycle"
	"github.com/gnames/herbdb/pkg/parserpool"
)

type optimizer struct {
	operator  db.Operator
	parser    parserpool.Pool
	pruneUses bool
	metrics   *iometrics.Metrics
}

// Option configures the optimizer.
type Option func(*optimizer)

// OptPruneUses turns on removal of medicinal uses without plants.
func OptPruneUses(b bool) Option {
	return func(o *optimizer) {
		o.pruneUses = b
	}
}

// OptParser sets the parser pool. Without it a pool is created for the
// duration of Optimize.
func OptParser(p parserpool.Pool) Option {
	return func(o *optimizer) {
		o.parser = p
	}
}

// OptMetrics sets Prometheus metrics.
func OptMetrics(m *iometrics.Metrics) Option {
	return func(o *optimizer) {
		o.metrics = m
	}
}

// NewOptimizer creates a new Optimizer.
func NewOptimizer(op db.Operator, opts ...Option) lifecycle.Optimizer {
	res := &optimizer{operator: op}
	for _, opt := range opts {
		opt(res)
	}
	return res
}

// Optimize executes reparsing, orphan removal and vacuum steps one after
// another. Errors are returned to the CLI layer for display via
// gn.PrintErrorMessage().
func (o *optimizer) Optimize(
	ctx context.Context,
	cfg *config.Config,
) (*lifecycle.OptimizeReport, error) {
	var err error
	start := time.Now()
	defer func() {
		o.metrics.Observe(ctx, "optimize", err == nil, time.Since(start))
	}()

	if o.operator.DB() == nil {
		err = NotConnectedError()
		return nil, err
	}

	if o.parser == nil {
		o.parser = parserpool.NewPool(cfg.JobsNumber)
		defer func() {
			o.parser.Close()
			o.parser = nil
		}()
	}

	slog.Info("Starting catalog optimization")
	gn.Info("Optimization in progress...")
	res := &lifecycle.OptimizeReport{}

	slog.Info("Step 1/3: Reparsing scientific names")
	if res.Plants, res.Reparsed, err = reparsePlants(ctx, o, cfg.JobsNumber); err != nil {
		return nil, err
	}
	slog.Info("Step 1/3: Complete", "plants", res.Plants, "reparsed", res.Reparsed)

	if o.pruneUses {
		slog.Info("Step 2/3: Removing medicinal uses without plants")
		if res.UsesRemoved, err = removeOrphanUses(ctx, o); err != nil {
			return nil, err
		}
		slog.Info("Step 2/3: Complete", "removed", res.UsesRemoved)
	} else {
		slog.Info("Step 2/3: Skipped")
	}

	slog.Info("Step 3/3: Compacting the store")
	if err = vacuumAnalyze(ctx, o); err != nil {
		return nil, err
	}
	slog.Info("Step 3/3: Complete")

	slog.Info("Catalog optimization completed",
		"duration", time.Since(start).String())
	return res, nil
}
