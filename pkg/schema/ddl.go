package schema

import (
	"fmt"
	"reflect"
	"strings"
)

// generateDDL creates a CREATE TABLE statement from struct tags.
func generateDDL(model interface{}, tableName string) string {
	v := reflect.ValueOf(model)
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	t := v.Type()

	var columns []string

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		dbTag := field.Tag.Get("db")
		ddlTag := field.Tag.Get("ddl")

		if dbTag != "" && ddlTag != "" {
			columns = append(columns, fmt.Sprintf("    %s %s", dbTag, ddlTag))
		}
	}

	ddl := fmt.Sprintf("CREATE TABLE %s (\n%s\n);",
		tableName,
		strings.Join(columns, ",\n"))

	return ddl
}

// AllTables returns DDL generators with parents before children.
func AllTables() []DDLGenerator {
	return []DDLGenerator{
		MedicinalUse{},
		Plant{},
		PlantMedicinalUse{},
	}
}

// MedicinalUse DDL methods
func (mu MedicinalUse) TableDDL() string {
	return generateDDL(mu, "medicinal_uses")
}

func (mu MedicinalUse) IndexDDL() []string {
	return []string{
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_medicinal_uses_use_key ON medicinal_uses(use_key);",
	}
}

func (mu MedicinalUse) TableName() string {
	return "medicinal_uses"
}

// Plant DDL methods
func (p Plant) TableDDL() string {
	return generateDDL(p, "plants")
}

func (p Plant) IndexDDL() []string {
	return []string{
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_plants_scientific_key ON plants(scientific_key);",
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_plants_common_key ON plants(common_key);",
		"CREATE INDEX IF NOT EXISTS idx_plants_common_name ON plants(common_name);",
		"CREATE INDEX IF NOT EXISTS idx_plants_canonical_id ON plants(canonical_id);",
	}
}

func (p Plant) TableName() string {
	return "plants"
}

// PlantMedicinalUse DDL methods
func (pmu PlantMedicinalUse) TableDDL() string {
	return generateDDL(pmu, "plant_medicinal_uses")
}

func (pmu PlantMedicinalUse) IndexDDL() []string {
	return []string{
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_plant_medicinal_uses_pair ON plant_medicinal_uses(plant_id, medicinal_use_id);",
		"CREATE INDEX IF NOT EXISTS idx_plant_medicinal_uses_use ON plant_medicinal_uses(medicinal_use_id);",
	}
}

func (pmu PlantMedicinalUse) TableName() string {
	return "plant_medicinal_uses"
}
