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
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/gnames/herbdb/internal/iooptimize"
	"github.com/spf13/cobra"
)

// getOptimizeCmd returns the optimize command.
func getOptimizeCmd() *cobra.Command {
	var pruneUses bool

	cmd := &cobra.Command{
		Use:   "optimize",
		Short: "Refresh canonical forms and compact the database",
		Long: `Refresh data derived from plants and compact the database.

This command:
  1. Reparses scientific names with the current gnparser and updates
     canonical forms that changed
  2. Removes medicinal uses without plants (with --prune-uses)
  3. Runs VACUUM and ANALYZE

Plants and their medicinal uses are not changed.

Examples:
  herbdb optimize
  herbdb optimize --prune-uses`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := context.Background()
			s, err := openCatalog(ctx)
			if err != nil {
				return report(err)
			}
			defer s.Close()

			start := time.Now()
			opt := iooptimize.NewOptimizer(s.op,
				iooptimize.OptParser(s.pp),
				iooptimize.OptPruneUses(pruneUses),
				iooptimize.OptMetrics(metrics),
			)
			res, err := opt.Optimize(ctx, cfg)
			if err != nil {
				return report(err)
			}

			gn.Info("Optimization finished in %s",
				gnfmt.TimeString(time.Since(start).Seconds()))
			return render(cmd.OutOrStdout(), res, func(w io.Writer) {
				fmt.Fprintf(w, "Checked %s %s, updated %s canonical %s\n",
					humanize.Comma(int64(res.Plants)), pluralize(res.Plants, "plant"),
					humanize.Comma(int64(res.Reparsed)), pluralize(res.Reparsed, "form"),
				)
				if pruneUses {
					fmt.Fprintf(w, "Removed %s medicinal %s without plants\n",
						humanize.Comma(int64(res.UsesRemoved)),
						pluralize(res.UsesRemoved, "use"))
				}
			})
		},
	}
	cmd.Flags().BoolVarP(&pruneUses, "prune-uses", "p", false,
		"remove medicinal uses without plants")
	return cmd
}
