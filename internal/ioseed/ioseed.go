// Package ioseed loads plants and medicinal uses from YAML files into
// the catalog.
package ioseed

import (
	"bytes"
	"context"
	_ "embed"
	"errors"
	"io"
	"log/slog"

	"github.com/gnames/herbdb/pkg/catalog"
	"gopkg.in/yaml.v3"
)

//go:embed example.yaml
var exampleYAML []byte

// Seed is the content of a seed file.
type Seed struct {
	MedicinalUses []UseSeed            `yaml:"medicinal_uses"`
	Plants        []catalog.PlantInput `yaml:"plants"`
}

// UseSeed is a medicinal use of a seed file.
type UseSeed struct {
	UseName     string `yaml:"use_name"`
	Description string `yaml:"description"`
}

// Report tells what happened to the records of a seed.
type Report struct {
	UsesCreated   int `json:"usesCreated"`
	UsesExisting  int `json:"usesExisting"`
	PlantsCreated int `json:"plantsCreated"`

	// Skipped lists plants that were already in the catalog.
	Skipped []string `json:"skipped,omitempty"`

	// Invalid lists records rejected by validation.
	Invalid []string `json:"invalid,omitempty"`
}

// Parse decodes a seed. src names the data in error messages.
func Parse(src string, data []byte) (*Seed, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var res Seed
	if err := dec.Decode(&res); err != nil && !errors.Is(err, io.EOF) {
		return nil, ParseError(src, err)
	}
	return &res, nil
}

// Example returns the placeholder seed used by 'herbdb create --example'.
func Example() *Seed {
	res, err := Parse("example.yaml", exampleYAML)
	if err != nil {
		panic(err)
	}
	return res
}

// Import creates medicinal uses first and plants after them. Plants
// that already exist and records that fail validation are reported and
// skipped. Any other failure stops the import, records created before it
// stay in the catalog.
func Import(
	ctx context.Context,
	cat catalog.Catalog,
	seed *Seed,
) (*Report, error) {
	res := &Report{}

	for _, v := range seed.MedicinalUses {
		existing, err := cat.FindMedicinalUseDuplicate(ctx, v.UseName)
		if err != nil {
			return res, ImportError(v.UseName, err)
		}
		if existing != nil {
			res.UsesExisting++
			continue
		}

		_, err = cat.CreateMedicinalUse(ctx, v.UseName, v.Description)
		if invalid(err) {
			res.Invalid = append(res.Invalid, err.Error())
			continue
		}
		if err != nil {
			return res, ImportError(v.UseName, err)
		}
		res.UsesCreated++
	}

	for _, in := range seed.Plants {
		p, err := cat.CreatePlant(ctx, in)
		var cErr *catalog.ConflictError
		switch {
		case errors.As(err, &cErr):
			slog.Info("Plant exists, skipping",
				"common_name", in.CommonName,
				"existing_id", cErr.ID,
			)
			res.Skipped = append(res.Skipped, cErr.Error())
		case invalid(err):
			res.Invalid = append(res.Invalid, err.Error())
		case err != nil:
			return res, ImportError(in.CommonName, err)
		default:
			slog.Debug("Plant seeded", "id", p.ID, "common_name", p.CommonName)
			res.PlantsCreated++
		}
	}

	slog.Info("Seed imported",
		"uses_created", res.UsesCreated,
		"uses_existing", res.UsesExisting,
		"plants_created", res.PlantsCreated,
		"skipped", len(res.Skipped),
		"invalid", len(res.Invalid),
	)
	return res, nil
}

func invalid(err error) bool {
	var vErr *catalog.ValidationError
	return errors.As(err, &vErr)
}
