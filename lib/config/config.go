// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the master configuration for paramtext.
type Config struct {
	// DisableNameRecovery skips steps 3-4 of the Name Table lookup
	// algorithm (parent-structure guessing and numbered-template
	// fallback), leaving only exact known-name and owned-name hits.
	// Useful for callers that want a fast, purely dictionary-backed
	// lookup and would rather see a raw hash than a guessed name.
	DisableNameRecovery bool `yaml:"disable_name_recovery"`

	// DictionaryOverride, when non-empty, is a directory containing
	// botw_hashed_names.txt and botw_numbered_names.txt read as plain
	// (uncompressed) text instead of the embedded, zstd-compressed
	// defaults. Intended for development against a modified dictionary.
	DictionaryOverride string `yaml:"dictionary_override"`

	// LogLevel controls the verbosity of structured log output emitted
	// during parse/emit operations and Name Table initialization.
	// One of: "debug", "info", "warn", "error".
	LogLevel string `yaml:"log_level"`
}

// Default returns the default configuration: name recovery enabled, the
// embedded dictionaries, and "info" logging.
func Default() *Config {
	return &Config{
		DisableNameRecovery: false,
		DictionaryOverride:  "",
		LogLevel:            "info",
	}
}

// Load loads configuration from the PARAMTEXT_CONFIG environment
// variable.
//
// This is the only way to load configuration without an explicit path.
// There is no fallback to a default location - if PARAMTEXT_CONFIG is
// not set, this fails.
func Load() (*Config, error) {
	path := os.Getenv("PARAMTEXT_CONFIG")
	if path == "" {
		return nil, fmt.Errorf("PARAMTEXT_CONFIG environment variable not set; " +
			"set it to the path of your paramtext.yaml config file, or call LoadFile directly")
	}
	return LoadFile(path)
}

// LoadFile loads configuration from a specific file path, starting from
// [Default] and overwriting any field present in the file.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log_level: %q (want debug, info, warn, or error)", c.LogLevel)
	}
	return nil
}

// slogLevel maps LogLevel to its slog.Level, defaulting to
// slog.LevelInfo for an unrecognized or empty value rather than
// erroring, since ApplyLogLevel runs ahead of Validate in some call
// paths (e.g. a Configure call built from a literal struct).
func (c *Config) slogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// ApplyLogLevel installs a JSON handler (writing to stderr) at cfg's
// LogLevel as the process-wide slog default.
func ApplyLogLevel(cfg *Config) {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.slogLevel(),
	}))
	slog.SetDefault(logger)
}
