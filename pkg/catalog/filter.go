package catalog

import (
	"slices"
	"strconv"
	"strings"
)

// NullSentinels are raw values that select plants without order status.
var NullSentinels = []string{"null", "none"}

// PlantFilter narrows a plant listing. Every field is a set; an empty set
// means no constraint on that field. Groups are combined with AND, values
// inside a group with OR.
type PlantFilter struct {
	StockStatuses   []StockStatus
	QuantityLevels  []QuantityLevel
	MedicinalUseIDs []int

	// OrderStatuses holds concrete statuses only.
	OrderStatuses []OrderStatus

	// OrderStatusNull adds plants without any order status.
	OrderStatusNull bool
}

// IsEmpty is true when the filter has no constraints.
func (f PlantFilter) IsEmpty() bool {
	return len(f.StockStatuses) == 0 &&
		len(f.QuantityLevels) == 0 &&
		len(f.MedicinalUseIDs) == 0 &&
		len(f.OrderStatuses) == 0 &&
		!f.OrderStatusNull
}

// ParseFilter converts raw string values into a typed PlantFilter.
// Empty strings are skipped, values are trimmed and lowercased. Unknown
// enum values and non-numeric ids are rejected with ValidationError.
func ParseFilter(stock, quantity, uses, orders []string) (PlantFilter, error) {
	var res PlantFilter

	for _, v := range cleanValues(stock) {
		s := StockStatus(v)
		if !s.Valid() {
			return res, &ValidationError{
				Field: "stock_status", Value: v,
				Msg: "must be in_stock or out_of_stock",
			}
		}
		res.StockStatuses = appendUnique(res.StockStatuses, s)
	}

	for _, v := range cleanValues(quantity) {
		q := QuantityLevel(v)
		if q == QuantityAbsent || !q.Valid() {
			return res, &ValidationError{
				Field: "quantity_level", Value: v,
				Msg: "must be high, medium or low",
			}
		}
		res.QuantityLevels = appendUnique(res.QuantityLevels, q)
	}

	for _, v := range cleanValues(uses) {
		id, err := strconv.Atoi(v)
		if err != nil || id <= 0 {
			return res, &ValidationError{
				Field: "medicinal_use", Value: v,
				Msg: "must be a positive integer id",
			}
		}
		res.MedicinalUseIDs = appendUnique(res.MedicinalUseIDs, id)
	}

	for _, v := range cleanValues(orders) {
		if isNullSentinel(v) {
			res.OrderStatusNull = true
			continue
		}
		o := OrderStatus(v)
		if o == OrderAbsent || !o.Valid() {
			return res, &ValidationError{
				Field: "order_status", Value: v,
				Msg: "must be needs_ordering, on_order or null",
			}
		}
		res.OrderStatuses = appendUnique(res.OrderStatuses, o)
	}

	return res, nil
}

func isNullSentinel(s string) bool {
	return slices.Contains(NullSentinels, s)
}

func cleanValues(vals []string) []string {
	res := make([]string, 0, len(vals))
	for _, v := range vals {
		v = strings.ToLower(strings.TrimSpace(v))
		if v != "" {
			res = append(res, v)
		}
	}
	return res
}

func appendUnique[T comparable](s []T, v T) []T {
	if slices.Contains(s, v) {
		return s
	}
	return append(s, v)
}
