// Package config provides configuration loading and validation for gclidtime.
package config

import "time"

// Config is the root configuration structure loaded from YAML.
type Config struct {
	// LocalZone is the IANA time zone used for the local rendering of a
	// recovered timestamp, e.g. "America/New_York".
	LocalZone string `yaml:"local_zone"`

	// LogLevel is a logrus level name (debug, info, warn, error).
	LogLevel string `yaml:"log_level"`

	// location is the resolved zone (populated during validation).
	location *time.Location
}

// Location returns the resolved local zone.
func (c *Config) Location() *time.Location {
	return c.location
}
