// Package catalog defines the domain of herbdb: plants, medicinal uses and
// the operations that read and mutate them.
//
// The package is pure. It contains entities, input contracts, normalization
// rules and the Catalog interface. Implementations live in internal/iocatalog.
package catalog

import "context"

// Catalog is the query-and-mutation surface of herbdb.
//
// All write operations are atomic. A failed write leaves no partial state
// behind: plant rows, newly created medicinal uses and junction rows are
// rolled back together.
type Catalog interface {
	// ListPlants returns distinct plants matching the filter, ordered by
	// common name. An empty filter returns every plant.
	ListPlants(ctx context.Context, f PlantFilter) ([]Plant, error)

	// GetPlant returns a plant with its medicinal uses ordered by name,
	// or nil if there is no such plant.
	GetPlant(ctx context.Context, id int) (*Plant, error)

	// PlantsWithoutImage returns plants that never went through an image
	// lookup.
	PlantsWithoutImage(ctx context.Context) ([]Plant, error)

	// ListMedicinalUses returns all medicinal uses ordered by name, each
	// with the number of plants linked to it.
	ListMedicinalUses(ctx context.Context) ([]MedicinalUse, error)

	// GetMedicinalUse returns a medicinal use with its plants ordered by
	// common name, or nil if there is no such use.
	GetMedicinalUse(ctx context.Context, id int) (*MedicinalUse, error)

	// FindPlantDuplicate matches scientific or common name
	// case-insensitively. Empty common name is ignored.
	FindPlantDuplicate(
		ctx context.Context,
		scientificName, commonName string,
	) (*Plant, error)

	// FindMedicinalUseDuplicate matches the name case-insensitively.
	FindMedicinalUseDuplicate(
		ctx context.Context,
		name string,
	) (*MedicinalUse, error)

	// CreatePlant inserts a plant and links it to the given medicinal uses,
	// creating uses from new names when needed.
	CreatePlant(ctx context.Context, in PlantInput) (*Plant, error)

	// UpdatePlant rewrites scalar fields of a plant and replaces its whole
	// set of medicinal uses.
	UpdatePlant(ctx context.Context, id int, in PlantInput) (*Plant, error)

	// DeletePlant removes a plant and returns it, or nil if it did not
	// exist.
	DeletePlant(ctx context.Context, id int) (*Plant, error)

	// SetPlantImage persists the outcome of an image lookup. Empty url
	// records that nothing was found.
	SetPlantImage(ctx context.Context, id int, url, ref string) error

	// CreateMedicinalUse returns an existing use with the same name or
	// inserts a new one.
	CreateMedicinalUse(
		ctx context.Context,
		name, description string,
	) (*MedicinalUse, error)

	// UpdateMedicinalUse renames a use and replaces its description.
	UpdateMedicinalUse(
		ctx context.Context,
		id int,
		name, description string,
	) (*MedicinalUse, error)

	// DeleteMedicinalUse removes a use and returns it, or nil if it did not
	// exist. Plants linked to it are not touched.
	DeleteMedicinalUse(ctx context.Context, id int) (*MedicinalUse, error)

	// Search runs independent substring searches over plants and
	// medicinal uses. An empty term finds nothing.
	Search(ctx context.Context, term string) (*SearchResult, error)
}
