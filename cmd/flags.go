package cmd

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/gnames/herbdb/pkg/catalog"
	"github.com/spf13/cobra"
)

// plantFlags holds values of flags shared by 'plants add' and
// 'plants update'.
type plantFlags struct {
	scientific string
	common     string
	stock      string
	quantity   string
	order      string
	useIDs     []int
	useNames   []string
}

func (f *plantFlags) register(cmd *cobra.Command) {
	fl := cmd.Flags()
	fl.StringVarP(&f.scientific, "scientific", "s", "",
		"scientific name, e.g. 'Zingiber officinale'")
	fl.StringVarP(&f.common, "common", "c", "", "common name, e.g. 'Ginger'")
	fl.StringVar(&f.stock, "stock", "", "stock status: in_stock, out_of_stock")
	fl.StringVar(&f.quantity, "quantity", "",
		"quantity level: high, medium, low, or null")
	fl.StringVar(&f.order, "order", "",
		"order status: needs_ordering, on_order, or null")
	fl.IntSliceVar(&f.useIDs, "use-id", nil,
		"ids of existing medicinal uses (repeatable)")
	fl.StringSliceVar(&f.useNames, "use-name", nil,
		"names of medicinal uses, created when missing (repeatable)")
}

// apply copies changed flags into the input. Links are replaced as a
// whole set when either --use-id or --use-name is given.
func (f *plantFlags) apply(cmd *cobra.Command, in *catalog.PlantInput) {
	fl := cmd.Flags()
	if fl.Changed("scientific") {
		in.ScientificName = f.scientific
	}
	if fl.Changed("common") {
		in.CommonName = f.common
	}
	if fl.Changed("stock") {
		in.StockStatus = catalog.StockStatus(enumFlag(f.stock))
	}
	if fl.Changed("quantity") {
		in.QuantityLevel = catalog.QuantityLevel(enumFlag(f.quantity))
	}
	if fl.Changed("order") {
		in.OrderStatus = catalog.OrderStatus(enumFlag(f.order))
	}
	if fl.Changed("use-id") || fl.Changed("use-name") {
		in.MedicinalUseIDs = f.useIDs
		in.NewMedicinalUseNames = f.useNames
	}
}

// enumFlag normalizes an enum flag value. Null sentinels clear the field.
func enumFlag(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if slices.Contains(catalog.NullSentinels, s) {
		return ""
	}
	return s
}

// inputFromPlant makes an input that keeps a plant as it is.
func inputFromPlant(p *catalog.Plant) catalog.PlantInput {
	res := catalog.PlantInput{
		ScientificName: p.ScientificName,
		CommonName:     p.CommonName,
		StockStatus:    p.StockStatus,
		QuantityLevel:  p.QuantityLevel,
		OrderStatus:    p.OrderStatus,
	}
	for _, mu := range p.MedicinalUses {
		res.MedicinalUseIDs = append(res.MedicinalUseIDs, mu.ID)
	}
	return res
}

func parseID(kind, arg string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil || id <= 0 {
		return 0, &catalog.ValidationError{
			Field: kind + " id",
			Value: arg,
			Msg:   "must be a positive number",
		}
	}
	return id, nil
}

func notFound(kind string, id int) error {
	return &catalog.NotFoundError{Kind: kind, ID: id}
}

func pluralize(n int, word string) string {
	if n == 1 {
		return word
	}
	return fmt.Sprintf("%ss", word)
}
