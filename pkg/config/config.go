// Package config provides configuration management for herbdb.
//
// This package has no I/O dependencies (no file operations, no network calls).
// Validation functions may write user-facing warnings via gn.Warn().
//
// # Configuration Sources
//
// Precedence (highest to lowest): CLI flags > env vars > config.yaml > defaults
//
// # Design Principles
//
// - Default config (from New()) is always valid - no validation needed
// - All mutations go through Option functions - the only way to modify Config
// - Invalid options are rejected with gn.Warn() - config remains in valid state
// - ToOptions() converts persistent fields (those in config.yaml)
// - Environment variables match ToOptions() fields exactly
//
// # Persistent vs Runtime Fields
//
// Persistent fields (in ToOptions, config.yaml, and env vars):
//   - Database: driver, host, port, user, password, database, ssl_mode,
//     path, max_conns
//   - Images: base_url, token, timeout
//   - Log: level, format, destination
//   - General: jobs_number, metrics_file
//
// Runtime-only fields (CLI flags only):
//   - HomeDir (set once at startup)
//
// # Environment Variables
//
// Use HERBDB_ prefix with underscores for nesting:
//
//	HERBDB_DATABASE_DRIVER=sqlite
//	HERBDB_DATABASE_HOST=localhost
//	HERBDB_DATABASE_PORT=5432
//	HERBDB_IMAGES_TOKEN=secret
//	HERBDB_LOG_LEVEL=info
//	HERBDB_JOBS_NUMBER=8
package config

import (
	"runtime"
)

const (
	// DriverPostgres selects PostgreSQL accessed through pgx.
	DriverPostgres = "postgres"
	// DriverSQLite selects an embedded SQLite file.
	DriverSQLite = "sqlite"
)

// Config represents the complete herbdb configuration.
type Config struct {
	// Database contains connection settings of the relational store.
	Database DatabaseConfig `mapstructure:"database" yaml:"database"`

	// Images contains settings of the plant image lookup service.
	Images ImagesConfig `mapstructure:"images" yaml:"images"`

	Log LogConfig `mapstructure:"log" yaml:"log"`

	// JobsNumber is the number of concurrent workers for parallel operations
	// such as image backfill.
	JobsNumber int `mapstructure:"jobs_number" yaml:"jobs_number"`

	// MetricsFile is a path where Prometheus metrics are written in the
	// textfile collector format after each command. Empty disables metrics
	// output.
	MetricsFile string `mapstructure:"metrics_file" yaml:"metrics_file"`

	// HomeDir determines where config, data and logs directories reside.
	// It must be set by CLI during init, there is no default value for it.
	HomeDir string
}

// DatabaseConfig contains connection parameters of the relational store.
type DatabaseConfig struct {
	// Driver is either "postgres" or "sqlite".
	Driver string `mapstructure:"driver" yaml:"driver"`

	// Host is the PostgreSQL server hostname or IP address.
	Host string `mapstructure:"host" yaml:"host"`

	// Port is the PostgreSQL server port number.
	Port int `mapstructure:"port" yaml:"port"`

	// User is the PostgreSQL database username.
	User string `mapstructure:"user" yaml:"user"`

	// Password is the PostgreSQL database password.
	Password string `mapstructure:"password" yaml:"password"`

	// Database is the PostgreSQL database name to connect to.
	Database string `mapstructure:"database" yaml:"database"`

	// SSLMode specifies the SSL connection mode.
	// Valid values: "disable", "require", "verify-ca", "verify-full"
	SSLMode string `mapstructure:"ssl_mode" yaml:"ssl_mode"`

	// Path is the SQLite database file. If empty, the file is created
	// in the data directory under HomeDir.
	Path string `mapstructure:"path" yaml:"path"`

	// MaxConns bounds the connection pool. Every catalog operation holds
	// one connection for its duration.
	MaxConns int `mapstructure:"max_conns" yaml:"max_conns"`
}

// ImagesConfig contains settings of the Trefle image lookup service.
type ImagesConfig struct {
	// BaseURL is the root of the Trefle REST API.
	BaseURL string `mapstructure:"base_url" yaml:"base_url"`

	// Token is the Trefle API access token. Image lookups are disabled
	// when it is empty.
	Token string `mapstructure:"token" yaml:"token"`

	// Timeout of a single lookup request in seconds.
	Timeout int `mapstructure:"timeout" yaml:"timeout"`
}

// LogConfig provides typical settings for application logs.
type LogConfig struct {
	// Format can be 'json', 'text' or 'tint' (user-facing and colored).
	Format string `mapstructure:"format"      yaml:"format"`
	// Level of logging -- 'error', 'warn', 'info', 'debug'
	Level string `mapstructure:"level"       yaml:"level"`
	// Destination can be a log file (to default place), STDERR or STDOUT
	Destination string `mapstructure:"destination" yaml:"destination"`
}

// New creates a Config with sensible default values.
// The returned config is always valid and ready to use.
// Default values can be overridden using Option functions via Update().
func New() *Config {
	res := &Config{
		Database: DatabaseConfig{
			Driver:   DriverPostgres,
			Host:     "localhost",
			Port:     5432,
			User:     "postgres",
			Password: "postgres",
			Database: "herbdb",
			SSLMode:  "disable",
			MaxConns: 10,
		},
		Images: ImagesConfig{
			BaseURL: "https://trefle.io/api/v1",
			Timeout: 10,
		},
		Log: LogConfig{
			Format: "json",
			Level:  "info",
			// for now file is rewritten every time the log starts
			Destination: "file",
		},
		JobsNumber: runtime.NumCPU(),
	}

	return res
}

// ImagesEnabled is true when the image lookup service can be queried.
func (c *Config) ImagesEnabled() bool {
	return c.Images.Token != "" && c.Images.BaseURL != ""
}
