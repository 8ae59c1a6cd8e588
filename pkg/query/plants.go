package query

import (
	"github.com/gnames/herbdb/pkg/catalog"
)

var plantColumns = []string{
	"id", "scientific_name", "common_name", "canonical_name", "canonical_id",
	"stock_status", "quantity_level", "order_status",
	"image_url", "external_image_ref", "image_checked_at",
	"created_at", "updated_at",
}

// PlantColumns returns columns of the plants table in scanning order,
// qualified by alias if it is not empty.
func PlantColumns(alias string) []string {
	res := make([]string, len(plantColumns))
	for i, c := range plantColumns {
		if alias != "" {
			c = alias + "." + c
		}
		res[i] = c
	}
	return res
}

// PlantFilter builds a listing of distinct plants that satisfy every
// non-empty group of the filter, ordered by common name. Medicinal use
// tables are joined only when the filter asks for medicinal uses.
func PlantFilter(f catalog.PlantFilter) Select {
	res := Select{
		Distinct: true,
		Columns:  PlantColumns("p"),
		From:     "plants p",
		OrderBy:  []string{"p.common_name ASC", "p.id ASC"},
	}

	if len(f.StockStatuses) > 0 {
		res.Where = append(res.Where, In("p.stock_status", strs(f.StockStatuses)...))
	}

	if len(f.QuantityLevels) > 0 {
		res.Where = append(res.Where, In("p.quantity_level", strs(f.QuantityLevels)...))
	}

	if len(f.MedicinalUseIDs) > 0 {
		res.Joins = append(res.Joins,
			Join{Table: "plant_medicinal_uses pmu", On: "pmu.plant_id = p.id"},
			Join{Table: "medicinal_uses mu", On: "mu.id = pmu.medicinal_use_id"},
		)
		res.Where = append(res.Where, In("mu.id", f.MedicinalUseIDs...))
	}

	if pred := orderStatusPred(f); pred != nil {
		res.Where = append(res.Where, pred)
	}

	return res
}

func orderStatusPred(f catalog.PlantFilter) Pred {
	hasVals := len(f.OrderStatuses) > 0
	switch {
	case hasVals && f.OrderStatusNull:
		return Or(
			In("p.order_status", strs(f.OrderStatuses)...),
			IsNull("p.order_status"),
		)
	case f.OrderStatusNull:
		return IsNull("p.order_status")
	case hasVals:
		return In("p.order_status", strs(f.OrderStatuses)...)
	default:
		return nil
	}
}

func strs[T ~string](vals []T) []string {
	res := make([]string, len(vals))
	for i := range vals {
		res[i] = string(vals[i])
	}
	return res
}
