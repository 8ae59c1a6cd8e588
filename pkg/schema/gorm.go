package schema

import (
	"gorm.io/gorm"
)

// AllModels returns all schema models for GORM AutoMigrate.
func AllModels() []interface{} {
	return []interface{}{
		&MedicinalUse{},
		&Plant{},
		&PlantMedicinalUse{},
	}
}

// Migrate runs GORM AutoMigrate to create the schema.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(AllModels()...)
}
