package cmd

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gnfmt"
	"github.com/gnames/herbdb/pkg/catalog"
)

// render writes v as JSON or passes the writer to the text renderer.
func render(w io.Writer, v any, text func(io.Writer)) error {
	if outFormat == "json" {
		enc := gnfmt.GNjson{Pretty: true}
		res, err := enc.Encode(v)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(res))
		return err
	}
	text(w)
	return nil
}

func printPlants(w io.Writer, plants []catalog.Plant) {
	if len(plants) == 0 {
		fmt.Fprintln(w, "No plants found")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tCOMMON NAME\tSCIENTIFIC NAME\tSTOCK\tQUANTITY\tORDER")
	for _, p := range plants {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n",
			p.ID, p.CommonName, p.ScientificName,
			p.StockStatus.Label(), p.QuantityLevel.Label(), p.OrderStatus.Label(),
		)
	}
	tw.Flush()
	fmt.Fprintf(w, "\n%s %s\n",
		humanize.Comma(int64(len(plants))), pluralize(len(plants), "plant"))
}

func printPlant(w io.Writer, p *catalog.Plant) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "ID:\t%d\n", p.ID)
	fmt.Fprintf(tw, "Common name:\t%s\n", p.CommonName)
	fmt.Fprintf(tw, "Scientific name:\t%s\n", p.ScientificName)
	if p.CanonicalName != "" {
		fmt.Fprintf(tw, "Canonical form:\t%s\n", p.CanonicalName)
	}
	fmt.Fprintf(tw, "Stock:\t%s\n", p.StockStatus.Label())
	fmt.Fprintf(tw, "Quantity:\t%s\n", p.QuantityLevel.Label())
	fmt.Fprintf(tw, "Order:\t%s\n", p.OrderStatus.Label())
	if p.ImageURL != "" {
		fmt.Fprintf(tw, "Image:\t%s\n", p.ImageURL)
	}
	uses := make([]string, len(p.MedicinalUses))
	for i, mu := range p.MedicinalUses {
		uses[i] = fmt.Sprintf("%s (%d)", mu.UseName, mu.ID)
	}
	if len(uses) == 0 {
		uses = append(uses, "N/A")
	}
	fmt.Fprintf(tw, "Medicinal uses:\t%s\n", strings.Join(uses, ", "))
	fmt.Fprintf(tw, "Updated:\t%s\n", humanize.Time(p.UpdatedAt))
	tw.Flush()
}

func printUses(w io.Writer, uses []catalog.MedicinalUse) {
	if len(uses) == 0 {
		fmt.Fprintln(w, "No medicinal uses found")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tPLANTS\tDESCRIPTION")
	for _, mu := range uses {
		fmt.Fprintf(tw, "%d\t%s\t%d\t%s\n",
			mu.ID, mu.UseName, mu.PlantCount, mu.Description)
	}
	tw.Flush()
}

func printUse(w io.Writer, mu *catalog.MedicinalUse) {
	fmt.Fprintf(w, "%s (id %d)\n", mu.UseName, mu.ID)
	if mu.Description != "" {
		fmt.Fprintf(w, "%s\n", mu.Description)
	}
	fmt.Fprintln(w)
	printPlants(w, mu.Plants)
}

func printSearch(w io.Writer, res *catalog.SearchResult) {
	fmt.Fprintf(w, "Plants matching '%s':\n", res.Term)
	printPlants(w, res.Plants)
	fmt.Fprintf(w, "\nMedicinal uses matching '%s':\n", res.Term)
	printUses(w, res.MedicinalUses)
}
