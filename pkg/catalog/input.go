package catalog

import (
	"slices"
	"strings"
)

// PlantInput is the full payload of a plant write. It is used for both
// create and update: an update replaces every scalar field and the whole
// set of medicinal uses.
type PlantInput struct {
	ScientificName string        `yaml:"scientific_name"`
	CommonName     string        `yaml:"common_name"`
	StockStatus    StockStatus   `yaml:"stock_status"`
	QuantityLevel  QuantityLevel `yaml:"quantity_level"`
	OrderStatus    OrderStatus   `yaml:"order_status"`

	// MedicinalUseIDs are identifiers of existing medicinal uses.
	MedicinalUseIDs []int `yaml:"medicinal_use_ids"`

	// NewMedicinalUseNames are free-text names. Existing uses are matched
	// case-insensitively, missing ones are created.
	NewMedicinalUseNames []string `yaml:"medicinal_uses"`
}

// Normalize cleans up names of the input in place. Scientific name gets
// only the genus capitalized, common name is trimmed, new use names are
// normalized and de-duplicated, use ids are de-duplicated.
func (in *PlantInput) Normalize() {
	in.ScientificName = CapitalizeScientific(in.ScientificName)
	in.CommonName = strings.Join(strings.Fields(in.CommonName), " ")
	in.NewMedicinalUseNames = NormalizeUseNames(in.NewMedicinalUseNames)

	ids := slices.Clone(in.MedicinalUseIDs)
	slices.Sort(ids)
	in.MedicinalUseIDs = slices.Compact(ids)
}

// Validate checks required fields and enum values. It does not touch
// the store.
func (in *PlantInput) Validate() error {
	if strings.TrimSpace(in.ScientificName) == "" {
		return &ValidationError{Field: "scientific_name", Msg: "is required"}
	}
	if strings.TrimSpace(in.CommonName) == "" {
		return &ValidationError{Field: "common_name", Msg: "is required"}
	}
	if !in.StockStatus.Valid() {
		return &ValidationError{
			Field: "stock_status",
			Value: string(in.StockStatus),
			Msg:   "must be in_stock or out_of_stock",
		}
	}
	if !in.QuantityLevel.Valid() {
		return &ValidationError{
			Field: "quantity_level",
			Value: string(in.QuantityLevel),
			Msg:   "must be high, medium, low or empty",
		}
	}
	if !in.OrderStatus.Valid() {
		return &ValidationError{
			Field: "order_status",
			Value: string(in.OrderStatus),
			Msg:   "must be needs_ordering, on_order or empty",
		}
	}
	for _, id := range in.MedicinalUseIDs {
		if id <= 0 {
			return &ValidationError{
				Field: "medicinal_use_ids",
				Msg:   "ids must be positive integers",
			}
		}
	}
	return nil
}

// ValidateUseName checks a medicinal use name.
func ValidateUseName(name string) error {
	if strings.TrimSpace(name) == "" {
		return &ValidationError{Field: "use_name", Msg: "is required"}
	}
	return nil
}
