package config

import "os"

// Default values for configuration.
const (
	DefaultLocalZone = "America/New_York"
	DefaultLogLevel  = "warn"
)

// Environment variable names.
const (
	EnvLocalZone = "GCLIDTIME_LOCAL_ZONE"
	EnvLogLevel  = "GCLIDTIME_LOG_LEVEL"
)

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		LocalZone: DefaultLocalZone,
		LogLevel:  DefaultLogLevel,
	}
}

// applyEnvironmentOverrides applies environment variable overrides to the config.
func (c *Config) applyEnvironmentOverrides() {
	if zone := os.Getenv(EnvLocalZone); zone != "" {
		c.LocalZone = zone
	}
	if level := os.Getenv(EnvLogLevel); level != "" {
		c.LogLevel = level
	}
}
