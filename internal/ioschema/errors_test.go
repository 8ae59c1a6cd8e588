package ioschema

import (
	"errors"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/herbdb/pkg/errcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNotConnectedError_Structure verifies error structure.
func TestNotConnectedError_Structure(t *testing.T) {
	err := NotConnectedError()

	require.NotNil(t, err)

	gnErr, ok := err.(*gn.Error)
	require.True(t, ok, "Error should be of type *gn.Error")

	assert.Equal(t, errcode.DBNotConnectedError, gnErr.Code)
	assert.NotEmpty(t, gnErr.Msg)
}

// TestWrappingErrors_Structure verifies codes and wrapped causes.
func TestWrappingErrors_Structure(t *testing.T) {
	originalErr := errors.New("failed")

	tests := []struct {
		name string
		err  error
		code gn.ErrorCode
		vars int
	}{
		{"gorm", GORMConnectionError(originalErr), errcode.SchemaGORMConnectionError, 0},
		{"create", CreateSchemaError(originalErr), errcode.SchemaCreateError, 0},
		{"index", IndexError("plants", originalErr), errcode.SchemaIndexError, 1},
		{"collation", CollationError("plants", "common_name", originalErr),
			errcode.SchemaCollationError, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gnErr, ok := tt.err.(*gn.Error)
			require.True(t, ok, "Error should be of type *gn.Error")

			assert.Equal(t, tt.code, gnErr.Code)
			assert.NotEmpty(t, gnErr.Msg)
			assert.Len(t, gnErr.Vars, tt.vars)
			assert.ErrorIs(t, gnErr.Err, originalErr)
		})
	}
}
