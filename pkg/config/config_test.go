package config_test

import (
	"path/filepath"
	"runtime"
	"testing"

	"github.com/gnames/herbdb/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirs(t *testing.T) {
	tempHome := t.TempDir()

	tests := []struct {
		msg string
		fn  func(string) string
		res string
	}{
		{
			msg: "config dir",
			fn:  config.ConfigDir,
			res: filepath.Join(tempHome, ".config", "herbdb"),
		},
		{
			msg: "data dir",
			fn:  config.DataDir,
			res: filepath.Join(tempHome, ".local", "share", "herbdb"),
		},
		{
			msg: "log dir",
			fn:  config.LogDir,
			res: filepath.Join(tempHome, ".local", "share", "herbdb", "logs"),
		},
		{
			msg: "sqlite file",
			fn:  config.SQLitePath,
			res: filepath.Join(tempHome, ".local", "share", "herbdb", "herbdb.sqlite"),
		},
	}

	for _, v := range tests {
		res := v.fn(tempHome)
		assert.Equal(t, v.res, res, v.msg)
	}
}

func TestNew(t *testing.T) {
	cfg := config.New()

	t.Run("creates valid default config", func(t *testing.T) {
		require.NotNil(t, cfg)

		// Database defaults
		assert.Equal(t, config.DriverPostgres, cfg.Database.Driver)
		assert.Equal(t, "localhost", cfg.Database.Host)
		assert.Equal(t, 5432, cfg.Database.Port)
		assert.Equal(t, "postgres", cfg.Database.User)
		assert.Equal(t, "postgres", cfg.Database.Password)
		assert.Equal(t, "herbdb", cfg.Database.Database)
		assert.Equal(t, "disable", cfg.Database.SSLMode)
		assert.Equal(t, 10, cfg.Database.MaxConns)
		assert.Empty(t, cfg.Database.Path)

		// Images defaults
		assert.Equal(t, "https://trefle.io/api/v1", cfg.Images.BaseURL)
		assert.Equal(t, 10, cfg.Images.Timeout)
		assert.False(t, cfg.ImagesEnabled(), "no token means no lookups")

		// Log defaults
		assert.Equal(t, "json", cfg.Log.Format)
		assert.Equal(t, "info", cfg.Log.Level)
		assert.Equal(t, "file", cfg.Log.Destination)

		assert.Equal(t, runtime.NumCPU(), cfg.JobsNumber)
		assert.Empty(t, cfg.MetricsFile)
	})
}

func TestOptionDatabaseDriver(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "sets sqlite",
			input:    "sqlite",
			expected: "sqlite",
		},
		{
			name:     "normalizes case and spaces",
			input:    "  SQLite ",
			expected: "sqlite",
		},
		{
			name:     "ignores unknown driver",
			input:    "mysql",
			expected: "postgres",
		},
		{
			name:     "ignores empty string",
			input:    "",
			expected: "postgres",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			cfg.Update([]config.Option{config.OptDatabaseDriver(tt.input)})
			assert.Equal(t, tt.expected, cfg.Database.Driver)
		})
	}
}

func TestOptionDatabaseHost(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "sets valid host",
			input:    "db.example.com",
			expected: "db.example.com",
		},
		{
			name:     "trims whitespace",
			input:    "  db.example.com  ",
			expected: "db.example.com",
		},
		{
			name:     "ignores empty string",
			input:    "",
			expected: "localhost", // Should keep default
		},
		{
			name:     "ignores whitespace-only",
			input:    "   ",
			expected: "localhost", // Should keep default
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			opt := config.OptDatabaseHost(tt.input)
			cfg.Update([]config.Option{opt})
			assert.Equal(t, tt.expected, cfg.Database.Host)
		})
	}
}

func TestOptionDatabasePort(t *testing.T) {
	tests := []struct {
		name     string
		input    int
		expected int
	}{
		{
			name:     "sets valid port",
			input:    6543,
			expected: 6543,
		},
		{
			name:     "ignores zero",
			input:    0,
			expected: 5432, // Should keep default
		},
		{
			name:     "ignores negative",
			input:    -100,
			expected: 5432, // Should keep default
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			opt := config.OptDatabasePort(tt.input)
			cfg.Update([]config.Option{opt})
			assert.Equal(t, tt.expected, cfg.Database.Port)
		})
	}
}

func TestOptionDatabaseSSLMode(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "sets valid ssl mode - require",
			input:    "require",
			expected: "require",
		},
		{
			name:     "sets valid ssl mode - verify-full",
			input:    "verify-full",
			expected: "verify-full",
		},
		{
			name:     "normalizes to lowercase",
			input:    "REQUIRE",
			expected: "require",
		},
		{
			name:     "ignores invalid value",
			input:    "invalid",
			expected: "disable", // Should keep default
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			opt := config.OptDatabaseSSLMode(tt.input)
			cfg.Update([]config.Option{opt})
			assert.Equal(t, tt.expected, cfg.Database.SSLMode)
		})
	}
}

func TestOptionDatabaseMaxConns(t *testing.T) {
	cfg := config.New()
	cfg.Update([]config.Option{config.OptDatabaseMaxConns(0)})
	assert.Equal(t, 10, cfg.Database.MaxConns)

	cfg.Update([]config.Option{config.OptDatabaseMaxConns(3)})
	assert.Equal(t, 3, cfg.Database.MaxConns)
}

func TestOptionImages(t *testing.T) {
	cfg := config.New()
	cfg.Update([]config.Option{
		config.OptImagesBaseURL("http://localhost:8080/api/"),
		config.OptImagesToken("  secret "),
		config.OptImagesTimeout(-1),
	})

	assert.Equal(t, "http://localhost:8080/api", cfg.Images.BaseURL)
	assert.Equal(t, "secret", cfg.Images.Token)
	assert.Equal(t, 10, cfg.Images.Timeout)
	assert.True(t, cfg.ImagesEnabled())
}

func TestOptionLogLevel(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "sets valid log level - debug",
			input:    "debug",
			expected: "debug",
		},
		{
			name:     "sets valid log level - error",
			input:    "error",
			expected: "error",
		},
		{
			name:     "normalizes to lowercase",
			input:    "WARN",
			expected: "warn",
		},
		{
			name:     "ignores invalid value",
			input:    "verbose",
			expected: "info",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			cfg.Update([]config.Option{config.OptLogLevel(tt.input)})
			assert.Equal(t, tt.expected, cfg.Log.Level)
		})
	}
}

func TestOptionLogDestination(t *testing.T) {
	cfg := config.New()
	cfg.Update([]config.Option{config.OptLogDestination("STDERR")})
	assert.Equal(t, "stderr", cfg.Log.Destination)

	cfg.Update([]config.Option{config.OptLogDestination("syslog")})
	assert.Equal(t, "stderr", cfg.Log.Destination)
}

func TestOptionJobsNumber(t *testing.T) {
	cfg := config.New()
	cfg.Update([]config.Option{config.OptJobsNumber(4)})
	assert.Equal(t, 4, cfg.JobsNumber)

	cfg.Update([]config.Option{config.OptJobsNumber(0)})
	assert.Equal(t, 4, cfg.JobsNumber)
}

func TestMultipleOptions(t *testing.T) {
	cfg := config.New()
	cfg.Update([]config.Option{
		config.OptDatabaseDriver("sqlite"),
		config.OptDatabasePath("/tmp/herbs.sqlite"),
		config.OptLogFormat("text"),
		config.OptMetricsFile("/tmp/herbdb.prom"),
		config.OptHomeDir("/home/user"),
	})

	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "/tmp/herbs.sqlite", cfg.Database.Path)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, "/tmp/herbdb.prom", cfg.MetricsFile)
	assert.Equal(t, "/home/user", cfg.HomeDir)
}

func TestToOptions(t *testing.T) {
	src := config.New()
	src.Update([]config.Option{
		config.OptDatabaseDriver("sqlite"),
		config.OptDatabaseHost("db.example.com"),
		config.OptDatabasePort(6543),
		config.OptDatabasePath("/data/herbs.sqlite"),
		config.OptDatabaseMaxConns(4),
		config.OptImagesToken("secret"),
		config.OptLogLevel("debug"),
		config.OptJobsNumber(2),
		config.OptMetricsFile("/tmp/herbdb.prom"),
		config.OptHomeDir("/home/user"),
	})

	dst := config.New()
	dst.Update(src.ToOptions())

	assert.Equal(t, src.Database, dst.Database)
	assert.Equal(t, src.Images, dst.Images)
	assert.Equal(t, src.Log, dst.Log)
	assert.Equal(t, src.JobsNumber, dst.JobsNumber)
	assert.Equal(t, src.MetricsFile, dst.MetricsFile)
	assert.Empty(t, dst.HomeDir, "HomeDir is runtime-only")
}
