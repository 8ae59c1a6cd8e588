/*
Copyright © 2025 Dmitry Mozzherin <dmozzherin@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"context"
	"errors"
	"time"

	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/gnames/herbdb/internal/ioimages"
	"github.com/spf13/cobra"
)

// getImagesCmd returns the images command with its subcommands.
func getImagesCmd() *cobra.Command {
	imagesCmd := &cobra.Command{
		Use:   "images",
		Short: "Find plant images in Trefle",
	}
	imagesCmd.AddCommand(getImagesBackfillCmd())
	return imagesCmd
}

func getImagesBackfillCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "backfill",
		Short: "Look up images for every plant that has none",
		Long: `Look up images for every plant that was never looked up before.

Lookups run concurrently (jobs_number in config.yaml). Plants without a
Trefle image are remembered and skipped next time. Plants whose lookup
failed are retried by the next run.

Requires images.token in config.yaml or HERBDB_IMAGES_TOKEN.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cfg.ImagesEnabled() {
				gn.Warn("Set <em>images.token</em> to enable image lookups")
				return errors.New("image lookups are disabled")
			}

			ctx := context.Background()
			s, err := openCatalog(ctx)
			if err != nil {
				return report(err)
			}
			defer s.Close()

			start := time.Now()
			filler := ioimages.NewFiller(s.cat, ioimages.NewTrefle(cfg.Images),
				ioimages.OptJobs(cfg.JobsNumber),
				ioimages.OptFillerMetrics(metrics),
				ioimages.OptProgress(outFormat == "text"),
			)
			stats, err := filler.Backfill(ctx)
			if err != nil {
				return report(err)
			}

			gn.Info("Looked up %d plants in %s: %d found, %d without image",
				stats.Total, gnfmt.TimeString(time.Since(start).Seconds()),
				stats.Found, stats.NotFound)
			if stats.Failed > 0 {
				gn.Warn("%d lookups failed, run backfill again later", stats.Failed)
			}
			return nil
		},
	}
}
