package iofs

import (
	"errors"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/herbdb/pkg/errcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrors(t *testing.T) {
	orig := errors.New("permission denied")
	tests := []struct {
		msg  string
		err  error
		code gn.ErrorCode
		path string
		text string
	}{
		{"create dir", CreateDirError("/data/herbdb", orig),
			errcode.CreateDirError, "/data/herbdb", "cannot create"},
		{"copy file", CopyFileError("/cfg/config.yaml", orig),
			errcode.CopyFileError, "/cfg/config.yaml", "cannot copy"},
		{"read file", ReadFileError("/seed.yaml", orig),
			errcode.ReadFileError, "/seed.yaml", "cannot read"},
	}

	for _, v := range tests {
		gnErr, ok := v.err.(*gn.Error)
		require.True(t, ok, v.msg)
		assert.Equal(t, v.code, gnErr.Code, v.msg)
		assert.Contains(t, gnErr.Msg, "%s", v.msg)
		require.Len(t, gnErr.Vars, 1, v.msg)
		assert.Equal(t, v.path, gnErr.Vars[0], v.msg)
		assert.ErrorIs(t, gnErr.Err, orig, v.msg)
		assert.Contains(t, gnErr.Err.Error(), v.text, v.msg)
		// caller is recorded
		assert.Contains(t, gnErr.Err.Error(), "from ", v.msg)
	}
}
