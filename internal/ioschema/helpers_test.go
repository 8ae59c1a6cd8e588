package ioschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestFormatCollationSQL_FormatsCorrectly verifies SQL
// formatting.
func TestFormatCollationSQL_FormatsCorrectly(t *testing.T) {
	template := `ALTER TABLE %s ALTER COLUMN %s ` +
		`TYPE VARCHAR(%d) COLLATE "C"`

	result := formatCollationSQL(template, "plants", "common_name", 255)

	expected := `ALTER TABLE plants ALTER COLUMN ` +
		`common_name TYPE VARCHAR(255) COLLATE "C"`
	assert.Equal(t, expected, result)
}
