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

	"github.com/gnames/gn"
	"github.com/gnames/herbdb/internal/ioimages"
	"github.com/gnames/herbdb/pkg/catalog"
	"github.com/spf13/cobra"
)

// getPlantsCmd returns the plants command with its subcommands.
func getPlantsCmd() *cobra.Command {
	plantsCmd := &cobra.Command{
		Use:   "plants",
		Short: "List, show and edit plants",
		Long: `Manage plants of the catalog.

Examples:
  herbdb plants list --stock in_stock --quantity low,medium
  herbdb plants list --use 3 --use 5 --order null --order on_order
  herbdb plants show 7
  herbdb plants add -s "Valeriana officinalis" -c Valerian --stock in_stock
  herbdb plants update 7 --stock out_of_stock --order needs_ordering
  herbdb plants delete 7
  herbdb plants check -s "Zingiber officinale" -c Ginger`,
	}

	plantsCmd.AddCommand(
		getPlantsListCmd(),
		getPlantsShowCmd(),
		getPlantsAddCmd(),
		getPlantsUpdateCmd(),
		getPlantsDeleteCmd(),
		getPlantsCheckCmd(),
	)
	return plantsCmd
}

func getPlantsListCmd() *cobra.Command {
	var stock, quantity, uses, orders []string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List plants that match filters",
		Long: `List plants ordered by common name.

Values of the same filter are alternatives, different filters must all
match. Use 'null' with --order to include plants without order status.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := catalog.ParseFilter(stock, quantity, uses, orders)
			if err != nil {
				return report(err)
			}
			return runPlantsList(cmd, f)
		},
	}

	fl := cmd.Flags()
	fl.StringSliceVar(&stock, "stock", nil, "stock status: in_stock, out_of_stock")
	fl.StringSliceVar(&quantity, "quantity", nil, "quantity level: high, medium, low")
	fl.StringSliceVar(&uses, "use", nil, "medicinal use id")
	fl.StringSliceVar(&orders, "order", nil,
		"order status: needs_ordering, on_order, null")
	return cmd
}

func runPlantsList(cmd *cobra.Command, f catalog.PlantFilter) error {
	ctx := context.Background()
	s, err := openCatalog(ctx)
	if err != nil {
		return report(err)
	}
	defer s.Close()

	plants, err := s.cat.ListPlants(ctx, f)
	if err != nil {
		return report(err)
	}
	return render(cmd.OutOrStdout(), plants, func(w io.Writer) {
		printPlants(w, plants)
	})
}

func getPlantsShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show a plant with its medicinal uses",
		Long: `Show a plant with its medicinal uses.

If images.token is configured and the plant was never looked up, its
image is searched in Trefle and saved.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(catalog.KindPlant, args[0])
			if err != nil {
				return report(err)
			}
			return runPlantsShow(cmd, id)
		},
	}
}

func runPlantsShow(cmd *cobra.Command, id int) error {
	ctx := context.Background()
	s, err := openCatalog(ctx)
	if err != nil {
		return report(err)
	}
	defer s.Close()

	p, err := s.cat.GetPlant(ctx, id)
	if err != nil {
		return report(err)
	}
	if p == nil {
		return report(notFound(catalog.KindPlant, id))
	}

	if cfg.ImagesEnabled() && p.NeedsImage() {
		filler := ioimages.NewFiller(s.cat, ioimages.NewTrefle(cfg.Images),
			ioimages.OptFillerMetrics(metrics))
		withImage, err := filler.Ensure(ctx, p)
		if err != nil {
			gn.Warn("Image lookup failed, showing plant without image")
		} else {
			p = withImage
		}
	}

	return render(cmd.OutOrStdout(), p, func(w io.Writer) {
		printPlant(w, p)
	})
}

func getPlantsAddCmd() *cobra.Command {
	var pf plantFlags

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a plant",
		Long: `Add a plant. Scientific name, common name and stock status are
required. Names are unique regardless of letter case.

Medicinal uses can be given by id (--use-id) or by name (--use-name).
Names that are not in the catalog yet are created.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var in catalog.PlantInput
			pf.apply(cmd, &in)
			return runPlantsAdd(cmd, in)
		},
	}
	pf.register(cmd)
	return cmd
}

func runPlantsAdd(cmd *cobra.Command, in catalog.PlantInput) error {
	ctx := context.Background()
	s, err := openCatalog(ctx)
	if err != nil {
		return report(err)
	}
	defer s.Close()

	p, err := s.cat.CreatePlant(ctx, in)
	if err != nil {
		return report(err)
	}
	gn.Info("Added plant <em>%s</em> with id %d", p.CommonName, p.ID)
	return render(cmd.OutOrStdout(), p, func(w io.Writer) {
		printPlant(w, p)
	})
}

func getPlantsUpdateCmd() *cobra.Command {
	var pf plantFlags

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Update a plant",
		Long: `Update a plant. Fields without a flag keep their values.

If --use-id or --use-name is given, the medicinal uses of the plant are
replaced by the given ones. Use 'null' to clear quantity or order
status.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(catalog.KindPlant, args[0])
			if err != nil {
				return report(err)
			}
			return runPlantsUpdate(cmd, id, &pf)
		},
	}
	pf.register(cmd)
	return cmd
}

func runPlantsUpdate(cmd *cobra.Command, id int, pf *plantFlags) error {
	ctx := context.Background()
	s, err := openCatalog(ctx)
	if err != nil {
		return report(err)
	}
	defer s.Close()

	cur, err := s.cat.GetPlant(ctx, id)
	if err != nil {
		return report(err)
	}
	if cur == nil {
		return report(notFound(catalog.KindPlant, id))
	}

	in := inputFromPlant(cur)
	pf.apply(cmd, &in)

	p, err := s.cat.UpdatePlant(ctx, id, in)
	if err != nil {
		return report(err)
	}
	gn.Info("Updated plant <em>%s</em>", p.CommonName)
	return render(cmd.OutOrStdout(), p, func(w io.Writer) {
		printPlant(w, p)
	})
}

func getPlantsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a plant",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(catalog.KindPlant, args[0])
			if err != nil {
				return report(err)
			}
			return runPlantsDelete(id)
		},
	}
}

func runPlantsDelete(id int) error {
	ctx := context.Background()
	s, err := openCatalog(ctx)
	if err != nil {
		return report(err)
	}
	defer s.Close()

	p, err := s.cat.DeletePlant(ctx, id)
	if err != nil {
		return report(err)
	}
	if p == nil {
		gn.Warn("Plant with id %d does not exist, nothing to delete", id)
		return nil
	}
	gn.Info("Deleted plant <em>%s</em>", p.CommonName)
	return nil
}

func getPlantsCheckCmd() *cobra.Command {
	var scientific, common string

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check if a plant with the same name exists",
		Long: `Check if a plant with the same scientific or common name is in the
catalog. Letter case is ignored.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPlantsCheck(cmd, scientific, common)
		},
	}
	cmd.Flags().StringVarP(&scientific, "scientific", "s", "", "scientific name")
	cmd.Flags().StringVarP(&common, "common", "c", "", "common name")
	return cmd
}

func runPlantsCheck(cmd *cobra.Command, scientific, common string) error {
	ctx := context.Background()
	s, err := openCatalog(ctx)
	if err != nil {
		return report(err)
	}
	defer s.Close()

	p, err := s.cat.FindPlantDuplicate(ctx, scientific, common)
	if err != nil {
		return report(err)
	}
	if p == nil {
		gn.Info("No plant with these names")
		return render(cmd.OutOrStdout(), nil, func(io.Writer) {})
	}
	gn.Info("Found <em>%s</em> (id %d)", p.CommonName, p.ID)
	return render(cmd.OutOrStdout(), p, func(w io.Writer) {
		fmt.Fprintf(w, "%d\t%s\t%s\n", p.ID, p.CommonName, p.ScientificName)
	})
}
