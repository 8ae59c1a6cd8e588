package iodb

import (
	"errors"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/herbdb/pkg/errcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestConnectionError_Structure verifies error structure.
func TestConnectionError_Structure(t *testing.T) {
	originalErr := errors.New("connection refused")

	err := ConnectionError("localhost", 5432, "test", "postgres",
		originalErr)

	require.NotNil(t, err)

	gnErr, ok := err.(*gn.Error)
	require.True(t, ok, "Error should be of type *gn.Error")

	assert.Equal(t, errcode.DBConnectionError, gnErr.Code)
	assert.NotEmpty(t, gnErr.Msg)
	assert.Len(t, gnErr.Vars, 3, "Should have 3 vars: host, port, user")
	assert.ErrorIs(t, gnErr.Err, originalErr)
}

func TestErrorCodes(t *testing.T) {
	originalErr := errors.New("boom")

	tests := []struct {
		name string
		err  error
		code gn.ErrorCode
	}{
		{"sqlite open", SQLiteOpenError("/tmp/x", originalErr), errcode.DBConnectionError},
		{"unknown driver", UnknownDriverError("mysql"), errcode.DBUnknownDriverError},
		{"not connected", NotConnectedError(), errcode.DBNotConnectedError},
		{"table exists", TableExistsCheckError("plants", originalErr), errcode.DBTableExistsCheckError},
		{"table check", TableCheckError(originalErr), errcode.DBTableCheckError},
		{"query tables", QueryTablesError(originalErr), errcode.DBQueryTablesError},
		{"scan table", ScanTableError(originalErr), errcode.DBScanTableError},
		{"drop table", DropTableError("plants", originalErr), errcode.DBDropTableError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gnErr, ok := tt.err.(*gn.Error)
			require.True(t, ok, "Error should be of type *gn.Error")
			assert.Equal(t, tt.code, gnErr.Code)
			assert.NotEmpty(t, gnErr.Msg)
			assert.Error(t, gnErr.Err)
		})
	}
}
