package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"
	_ "time/tzdata" // zone lookups must not depend on the host database

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Load reads and validates a configuration file. An empty path yields the
// defaults, still subject to environment overrides.
func Load(_ context.Context, path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path) // #nosec G304 -- user-provided config path is expected
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}

		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	cfg.applyEnvironmentOverrides()

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// Validate checks a configuration for errors and resolves the local zone.
func Validate(cfg *Config) error {
	if cfg.LocalZone == "" {
		return errors.New("local_zone: a time zone is required")
	}

	loc, err := time.LoadLocation(cfg.LocalZone)
	if err != nil {
		return fmt.Errorf("local_zone: unknown time zone %q: %w", cfg.LocalZone, err)
	}
	cfg.location = loc

	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}

	if _, err := logrus.ParseLevel(cfg.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}

	return nil
}
