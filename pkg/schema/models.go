// Package schema provides database schema models for herbdb.
//
// PostgreSQL tables are created by GORM AutoMigrate from gorm tags.
// SQLite tables are created from DDL generated out of db/ddl tags.
// Indexes are shared by both stores.
package schema

import (
	"database/sql"
	"time"
)

// DDLGenerator defines how Go models generate SQLite DDL.
type DDLGenerator interface {
	// TableDDL returns the CREATE TABLE statement for this model.
	TableDDL() string

	// IndexDDL returns CREATE INDEX statements for this model.
	// Statements are valid for both PostgreSQL and SQLite.
	IndexDDL() []string

	// TableName returns the table name for this model.
	TableName() string
}

// MedicinalUse is a tag describing a medicinal property of plants.
type MedicinalUse struct {
	ID int `db:"id" ddl:"INTEGER PRIMARY KEY AUTOINCREMENT" gorm:"primaryKey;autoIncrement"`

	UseName string `db:"use_name" ddl:"VARCHAR(255) NOT NULL" gorm:"type:varchar(255);not null"`

	// UseKey is the case-folded UseName. It carries the unique index.
	UseKey string `db:"use_key" ddl:"TEXT NOT NULL" gorm:"type:text;not null"`

	Description sql.NullString `db:"description" ddl:"TEXT" gorm:"type:text"`
}

// Plant is a catalog record of a medicinal plant.
type Plant struct {
	ID int `db:"id" ddl:"INTEGER PRIMARY KEY AUTOINCREMENT" gorm:"primaryKey;autoIncrement"`

	ScientificName string `db:"scientific_name" ddl:"VARCHAR(255) NOT NULL" gorm:"type:varchar(255);not null"`

	CommonName string `db:"common_name" ddl:"VARCHAR(255) NOT NULL" gorm:"type:varchar(255);not null"`

	// ScientificKey and CommonKey are case-folded names. Both are unique
	// (see IndexDDL). SQL LOWER() folds only ASCII, so keys are computed
	// by the application.
	ScientificKey string `db:"scientific_key" ddl:"TEXT NOT NULL" gorm:"type:text;not null"`
	CommonKey     string `db:"common_key" ddl:"TEXT NOT NULL" gorm:"type:text;not null"`

	// CanonicalName is a simple canonical form of the scientific name.
	CanonicalName sql.NullString `db:"canonical_name" ddl:"VARCHAR(255)" gorm:"type:varchar(255)"`

	// CanonicalID is UUID v5 of CanonicalName.
	CanonicalID sql.NullString `db:"canonical_id" ddl:"TEXT" gorm:"type:uuid"`

	StockStatus string `db:"stock_status" ddl:"VARCHAR(50) NOT NULL CHECK (stock_status IN ('in_stock', 'out_of_stock'))" gorm:"type:varchar(50);not null;check:chk_plants_stock_status,stock_status IN ('in_stock', 'out_of_stock')"`

	QuantityLevel sql.NullString `db:"quantity_level" ddl:"VARCHAR(50) CHECK (quantity_level IN ('high', 'medium', 'low'))" gorm:"type:varchar(50);check:chk_plants_quantity_level,quantity_level IN ('high', 'medium', 'low')"`

	OrderStatus sql.NullString `db:"order_status" ddl:"VARCHAR(50) CHECK (order_status IN ('needs_ordering', 'on_order'))" gorm:"type:varchar(50);check:chk_plants_order_status,order_status IN ('needs_ordering', 'on_order')"`

	ImageURL sql.NullString `db:"image_url" ddl:"TEXT" gorm:"column:image_url;type:text"`

	// ExternalImageRef is the record identifier in the image lookup
	// service.
	ExternalImageRef sql.NullString `db:"external_image_ref" ddl:"VARCHAR(255)" gorm:"type:varchar(255)"`

	// ImageCheckedAt is set after every completed image lookup, even
	// when nothing was found.
	ImageCheckedAt sql.NullTime `db:"image_checked_at" ddl:"TIMESTAMP"`

	CreatedAt time.Time `db:"created_at" ddl:"TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP" gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt time.Time `db:"updated_at" ddl:"TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP" gorm:"not null;default:CURRENT_TIMESTAMP"`
}

// PlantMedicinalUse links a plant to a medicinal use. Rows are removed
// together with either parent.
type PlantMedicinalUse struct {
	ID int `db:"id" ddl:"INTEGER PRIMARY KEY AUTOINCREMENT" gorm:"primaryKey;autoIncrement"`

	PlantID int `db:"plant_id" ddl:"INTEGER NOT NULL REFERENCES plants(id) ON DELETE CASCADE" gorm:"not null"`

	MedicinalUseID int `db:"medicinal_use_id" ddl:"INTEGER NOT NULL REFERENCES medicinal_uses(id) ON DELETE CASCADE" gorm:"not null"`

	// Associations are used by GORM to create foreign keys.
	Plant        Plant        `gorm:"constraint:OnDelete:CASCADE"`
	MedicinalUse MedicinalUse `gorm:"constraint:OnDelete:CASCADE"`
}
