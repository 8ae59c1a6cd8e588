// Package herbdb holds build information for the herbdb application.
package herbdb

var (
	// Version of herbdb, set by build flags.
	Version = "v0.1.0"
	// Build timestamp, set by build flags.
	Build = "n/a"
)
