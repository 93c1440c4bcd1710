// Package config provides configuration loading and defaults for habitual.
package config

// DefaultConfigDir is the default location for habitual configuration.
const DefaultConfigDir = "~/.config/habitual"

// DefaultDBName is the filename for the SQLite database.
const DefaultDBName = "habitual.db"

// DefaultConfigFile is the filename for the YAML config.
const DefaultConfigFile = "config.yaml"

// DefaultPeriodicity is used by add when no --periodicity is given.
const DefaultPeriodicity = "daily"

// DefaultLogLevel is the slog level used unless --verbose is set.
const DefaultLogLevel = "warn"

// DefaultOutput holds the default output preferences.
var DefaultOutput = Output{
	Color:    true,
	Width:    66,
	BarWidth: 20,
}
