package iologger

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/herbdb/pkg/config"
	"github.com/gnames/herbdb/pkg/errcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitFile(t *testing.T) {
	defer slog.SetDefault(slog.Default())
	dir := t.TempDir()
	cfg := config.LogConfig{Format: "json", Level: "debug", Destination: "file"}

	closer, err := Init(dir, cfg, false)
	require.NoError(t, err)
	slog.Debug("Plant created", "id", 1)
	require.NoError(t, closer.Close())

	closer, err = Init(dir, cfg, true)
	require.NoError(t, err)
	slog.Info("Plant deleted", "id", 1)
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(filepath.Join(dir, LogFile))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"Plant created"`)
	assert.Contains(t, string(data), `"msg":"Plant deleted"`)

	closer, err = Init(dir, cfg, false)
	require.NoError(t, err)
	require.NoError(t, closer.Close())
	data, err = os.ReadFile(filepath.Join(dir, LogFile))
	require.NoError(t, err)
	assert.Empty(t, data, "log is truncated")
}

func TestInitError(t *testing.T) {
	cfg := config.LogConfig{Destination: "file"}
	_, err := Init(filepath.Join(t.TempDir(), "missing"), cfg, false)
	require.Error(t, err)
	gnErr, ok := err.(*gn.Error)
	require.True(t, ok)
	assert.Equal(t, errcode.CreateLogFileError, gnErr.Code)
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in  string
		out slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"verbose", slog.LevelInfo},
	}
	for _, v := range tests {
		assert.Equal(t, v.out, parseLevel(v.in), v.in)
	}
}
