package schema_test

import (
	"strings"
	"testing"

	"github.com/gnames/herbdb/pkg/schema"
	"github.com/stretchr/testify/assert"
)

// TestPlantTableDDL tests DDL generation for Plant model
func TestPlantTableDDL(t *testing.T) {
	ddl := schema.Plant{}.TableDDL()

	assert.Contains(t, ddl, "CREATE TABLE plants")
	assert.Contains(t, ddl, "id INTEGER PRIMARY KEY AUTOINCREMENT")
	assert.Contains(t, ddl, "scientific_name VARCHAR(255) NOT NULL")
	assert.Contains(t, ddl, "common_name VARCHAR(255) NOT NULL")
	assert.Contains(t, ddl, "scientific_key TEXT NOT NULL")
	assert.Contains(t, ddl, "common_key TEXT NOT NULL")
	assert.Contains(t, ddl,
		"stock_status VARCHAR(50) NOT NULL CHECK (stock_status IN ('in_stock', 'out_of_stock'))")
	assert.Contains(t, ddl, "order_status VARCHAR(50) CHECK")
	assert.Contains(t, ddl, "image_checked_at TIMESTAMP")
	assert.True(t, strings.HasSuffix(ddl, ");"))
}

// TestPlantMedicinalUseTableDDL checks that associations do not leak into
// DDL and foreign keys cascade.
func TestPlantMedicinalUseTableDDL(t *testing.T) {
	ddl := schema.PlantMedicinalUse{}.TableDDL()

	assert.Contains(t, ddl, "CREATE TABLE plant_medicinal_uses")
	assert.Contains(t, ddl,
		"plant_id INTEGER NOT NULL REFERENCES plants(id) ON DELETE CASCADE")
	assert.Contains(t, ddl,
		"medicinal_use_id INTEGER NOT NULL REFERENCES medicinal_uses(id) ON DELETE CASCADE")
	assert.Equal(t, 3, strings.Count(ddl, "\n    "), "only 3 columns")
}

// TestIndexDDL tests unique indexes on case-folded keys.
func TestIndexDDL(t *testing.T) {
	idx := strings.Join(schema.MedicinalUse{}.IndexDDL(), "\n")
	assert.Contains(t, idx, "UNIQUE INDEX IF NOT EXISTS idx_medicinal_uses_use_key")
	assert.Contains(t, idx, "medicinal_uses(use_key)")
	assert.NotContains(t, idx, "LOWER(")

	idx = strings.Join(schema.Plant{}.IndexDDL(), "\n")
	assert.Contains(t, idx, "UNIQUE INDEX IF NOT EXISTS idx_plants_scientific_key ON plants(scientific_key)")
	assert.Contains(t, idx, "UNIQUE INDEX IF NOT EXISTS idx_plants_common_key ON plants(common_key)")

	idx = strings.Join(schema.PlantMedicinalUse{}.IndexDDL(), "\n")
	assert.Contains(t, idx, "(plant_id, medicinal_use_id)")
}

// TestAllTables checks that parents go first.
func TestAllTables(t *testing.T) {
	var names []string
	for _, tbl := range schema.AllTables() {
		names = append(names, tbl.TableName())
	}
	assert.Equal(t,
		[]string{"medicinal_uses", "plants", "plant_medicinal_uses"},
		names,
	)
	assert.Len(t, schema.AllModels(), 3)
}
