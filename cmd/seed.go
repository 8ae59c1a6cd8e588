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

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/herbdb/internal/iofs"
	"github.com/gnames/herbdb/internal/ioseed"
	"github.com/spf13/cobra"
)

// getSeedCmd returns the seed command.
func getSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed FILE",
		Short: "Import plants and medicinal uses from a YAML file",
		Long: `Import plants and medicinal uses from a YAML file.

Plants that are already in the catalog are reported and skipped, so a
file can be imported more than once.

File format:
  medicinal_uses:
    - use_name: Sedative
      description: Calms nerves
  plants:
    - scientific_name: Valeriana officinalis
      common_name: Valerian
      stock_status: in_stock
      quantity_level: low
      medicinal_uses: [Sedative, Sleep Aid]`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := iofs.ReadFile(args[0])
			if err != nil {
				return report(err)
			}
			seed, err := ioseed.Parse(args[0], data)
			if err != nil {
				return report(err)
			}

			ctx := context.Background()
			s, err := openCatalog(ctx)
			if err != nil {
				return report(err)
			}
			defer s.Close()

			rep, err := ioseed.Import(ctx, s.cat, seed)
			if err != nil {
				return report(err)
			}

			for _, v := range rep.Skipped {
				gn.Warn("Skipped: %s", v)
			}
			for _, v := range rep.Invalid {
				gn.Warn("Invalid: %s", v)
			}
			return render(cmd.OutOrStdout(), rep, func(w io.Writer) {
				fmt.Fprintf(w, "Imported %s %s and %s medicinal %s\n",
					humanize.Comma(int64(rep.PlantsCreated)),
					pluralize(rep.PlantsCreated, "plant"),
					humanize.Comma(int64(rep.UsesCreated)),
					pluralize(rep.UsesCreated, "use"),
				)
			})
		},
	}
}
