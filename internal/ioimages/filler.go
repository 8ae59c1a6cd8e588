package ioimages

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/cheggaaa/pb/v3"
	"github.com/gnames/herbdb/internal/iometrics"
	"github.com/gnames/herbdb/pkg/catalog"
	"github.com/gnames/herbdb/pkg/images"
	"golang.org/x/sync/errgroup"
)

// Filler attaches images to plants of a catalog.
type Filler struct {
	cat      catalog.Catalog
	lookup   images.Lookup
	jobs     int
	metrics  *iometrics.Metrics
	progress bool
}

// Stats summarizes a backfill.
type Stats struct {
	Total    int
	Found    int
	NotFound int
	// Failed lookups are not saved, these plants stay in the backlog.
	Failed int
}

// FillerOption configures Filler.
type FillerOption func(*Filler)

// OptJobs sets the number of concurrent lookups of Backfill.
func OptJobs(n int) FillerOption {
	return func(f *Filler) {
		if n > 0 {
			f.jobs = n
		}
	}
}

// OptFillerMetrics sets Prometheus metrics.
func OptFillerMetrics(m *iometrics.Metrics) FillerOption {
	return func(f *Filler) {
		f.metrics = m
	}
}

// OptProgress toggles the progress bar of Backfill.
func OptProgress(b bool) FillerOption {
	return func(f *Filler) {
		f.progress = b
	}
}

// NewFiller creates a Filler.
func NewFiller(
	cat catalog.Catalog,
	lookup images.Lookup,
	opts ...FillerOption,
) *Filler {
	res := &Filler{cat: cat, lookup: lookup, jobs: 1}
	for _, opt := range opts {
		opt(res)
	}
	return res
}

// Ensure looks up an image for a plant that never had one looked up,
// and saves the outcome. A lookup that found nothing is saved as well.
// Plants with an image or a previous lookup are returned unchanged.
func (f *Filler) Ensure(
	ctx context.Context,
	p *catalog.Plant,
) (*catalog.Plant, error) {
	if !p.NeedsImage() {
		return p, nil
	}

	cand, err := f.find(ctx, p)
	if err != nil {
		return nil, err
	}
	if err = f.save(ctx, p, cand); err != nil {
		return nil, err
	}
	return f.cat.GetPlant(ctx, p.ID)
}

// Backfill runs image lookups for every plant without an image.
// Lookup failures are counted and skipped, store failures stop the
// backfill.
func (f *Filler) Backfill(ctx context.Context) (Stats, error) {
	var stats Stats
	plants, err := f.cat.PlantsWithoutImage(ctx)
	if err != nil {
		return stats, err
	}
	stats.Total = len(plants)
	if len(plants) == 0 {
		return stats, nil
	}

	var bar *pb.ProgressBar
	if f.progress {
		bar = pb.Full.Start(len(plants))
		bar.Set("prefix", "Looking up images: ")
		bar.Set(pb.CleanOnFinish, true)
		defer bar.Finish()
	}

	var found, notFound, failed atomic.Int64
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(f.jobs)

	for i := range plants {
		p := &plants[i]
		g.Go(func() error {
			if bar != nil {
				defer bar.Increment()
			}
			cand, err := f.find(gCtx, p)
			if err != nil {
				if gCtx.Err() != nil {
					return gCtx.Err()
				}
				failed.Add(1)
				slog.Warn("Image lookup failed",
					"plant_id", p.ID,
					"common_name", p.CommonName,
					"error", err,
				)
				return nil
			}
			if cand == nil {
				notFound.Add(1)
			} else {
				found.Add(1)
			}
			return f.save(gCtx, p, cand)
		})
	}

	err = g.Wait()
	stats.Found = int(found.Load())
	stats.NotFound = int(notFound.Load())
	stats.Failed = int(failed.Load())
	if err != nil {
		return stats, BackfillError(err)
	}

	slog.Info("Image backfill finished",
		"total", stats.Total,
		"found", stats.Found,
		"not_found", stats.NotFound,
		"failed", stats.Failed,
	)
	return stats, nil
}

func (f *Filler) find(
	ctx context.Context,
	p *catalog.Plant,
) (*images.Candidate, error) {
	name := p.CanonicalName
	if name == "" {
		name = p.ScientificName
	}

	cand, err := f.lookup.Find(ctx, name, p.CommonName)
	switch {
	case err != nil:
		f.metrics.ImageLookup(iometrics.LookupError)
	case cand == nil:
		f.metrics.ImageLookup(iometrics.LookupNotFound)
	default:
		f.metrics.ImageLookup(iometrics.LookupFound)
	}
	return cand, err
}

func (f *Filler) save(
	ctx context.Context,
	p *catalog.Plant,
	cand *images.Candidate,
) error {
	var url, ref string
	if cand != nil {
		url, ref = cand.ImageURL, cand.Ref
	}
	if err := f.cat.SetPlantImage(ctx, p.ID, url, ref); err != nil {
		return err
	}
	slog.Debug("Plant image saved",
		"plant_id", p.ID,
		"found", cand != nil,
		"ref", ref,
	)
	return nil
}
