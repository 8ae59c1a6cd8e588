package config

import (
	"path/filepath"
)

var (
	// AppName is used in generating file system paths.
	AppName = "herbdb"
)

// ConfigDir returns the directory path for configuration files.
// Returns ~/.config/herbdb by default.
func ConfigDir(homeDir string) string {
	return filepath.Join(homeDir, ".config", AppName)
}

// DataDir returns the directory path for the embedded database.
// Returns ~/.local/share/herbdb by default.
func DataDir(homeDir string) string {
	return filepath.Join(homeDir, ".local", "share", AppName)
}

// LogDir returns the directory path for log files.
// Returns ~/.local/share/herbdb/logs by default.
func LogDir(homeDir string) string {
	return filepath.Join(DataDir(homeDir), "logs")
}

// ConfigFilePath returns the full path to the config.yaml file.
// Returns ~/.config/herbdb/config.yaml by default.
func ConfigFilePath(homeDir string) string {
	return filepath.Join(ConfigDir(homeDir), "config.yaml")
}

// SQLitePath returns the default SQLite database file.
func SQLitePath(homeDir string) string {
	return filepath.Join(DataDir(homeDir), "herbdb.sqlite")
}
