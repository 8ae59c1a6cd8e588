package ioseed_test

import (
	"context"
	"errors"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/herbdb/internal/iocatalog"
	"github.com/gnames/herbdb/internal/iodb"
	"github.com/gnames/herbdb/internal/ioschema"
	"github.com/gnames/herbdb/internal/ioseed"
	"github.com/gnames/herbdb/internal/iotesting"
	"github.com/gnames/herbdb/pkg/catalog"
	"github.com/gnames/herbdb/pkg/config"
	"github.com/gnames/herbdb/pkg/errcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const seedYAML = `
medicinal_uses:
  - use_name: sedative
    description: Calms nerves
  - use_name: SEDATIVE
  - use_name: "  "

plants:
  - scientific_name: Valeriana officinalis
    common_name: Valerian
    stock_status: in_stock
    quantity_level: low
    medicinal_uses: [Sedative, Sleep Aid]
  - scientific_name: Valeriana officinalis
    common_name: Common Valerian
    stock_status: in_stock
  - scientific_name: Mentha piperita
    common_name: Peppermint
    stock_status: lots
`

func newCatalog(t *testing.T) catalog.Catalog {
	t.Helper()
	ctx := context.Background()

	op := iodb.NewSQLiteOperator()
	require.NoError(t, op.Connect(ctx, iotesting.SQLiteConfig(t)))
	t.Cleanup(func() { op.Close() })
	require.NoError(t, ioschema.NewManager(op).Create(ctx, config.New()))

	c, err := iocatalog.New(op)
	require.NoError(t, err)
	return c
}

func TestParse(t *testing.T) {
	seed, err := ioseed.Parse("seed.yaml", []byte(seedYAML))
	require.NoError(t, err)
	assert.Len(t, seed.MedicinalUses, 3)
	require.Len(t, seed.Plants, 3)
	assert.Equal(t, catalog.QuantityLow, seed.Plants[0].QuantityLevel)
	assert.Equal(t, []string{"Sedative", "Sleep Aid"},
		seed.Plants[0].NewMedicinalUseNames)

	seed, err = ioseed.Parse("empty.yaml", nil)
	require.NoError(t, err)
	assert.Empty(t, seed.Plants)

	_, err = ioseed.Parse("bad.yaml", []byte("plants:\n  - colour: green\n"))
	require.Error(t, err)
	var gnErr *gn.Error
	require.True(t, errors.As(err, &gnErr))
	assert.Equal(t, errcode.SeedParseError, gnErr.Code)
}

func TestImport(t *testing.T) {
	c := newCatalog(t)
	ctx := context.Background()

	seed, err := ioseed.Parse("seed.yaml", []byte(seedYAML))
	require.NoError(t, err)

	rep, err := ioseed.Import(ctx, c, seed)
	require.NoError(t, err)
	assert.Equal(t, 1, rep.UsesCreated)
	assert.Equal(t, 1, rep.UsesExisting)
	assert.Equal(t, 1, rep.PlantsCreated)
	assert.Len(t, rep.Skipped, 1)
	assert.Len(t, rep.Invalid, 2)

	uses, err := c.ListMedicinalUses(ctx)
	require.NoError(t, err)
	require.Len(t, uses, 2)
	assert.Equal(t, "Sedative", uses[0].UseName)
	assert.Equal(t, "Calms nerves", uses[0].Description)
	assert.Equal(t, 1, uses[0].PlantCount)
	assert.Equal(t, "Sleep Aid", uses[1].UseName)

	// second import changes nothing
	rep, err = ioseed.Import(ctx, c, seed)
	require.NoError(t, err)
	assert.Equal(t, 0, rep.UsesCreated)
	assert.Equal(t, 0, rep.PlantsCreated)
	assert.Len(t, rep.Skipped, 2)
}

func TestExample(t *testing.T) {
	c := newCatalog(t)
	ctx := context.Background()

	rep, err := ioseed.Import(ctx, c, ioseed.Example())
	require.NoError(t, err)
	assert.Equal(t, 1, rep.UsesCreated)
	assert.Equal(t, 1, rep.PlantsCreated)

	plants, err := c.ListPlants(ctx, catalog.PlantFilter{})
	require.NoError(t, err)
	require.Len(t, plants, 1)

	p, err := c.GetPlant(ctx, plants[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "Example Plant", p.CommonName)
	assert.Equal(t, catalog.QuantityMedium, p.QuantityLevel)
	require.Len(t, p.MedicinalUses, 1)
	assert.Equal(t, "Example Use", p.MedicinalUses[0].UseName)
}
