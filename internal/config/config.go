// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"

	"github.com/spf13/pflag"
)

// Output formats accepted by [Output.Format].
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// StructuredConfig is the top-level configuration of the opvault command.
// It is populated by merging environment variables, command-line flags and
// an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Vault locates the container and carries the master password.
	Vault Vault `envPrefix:"OPVAULT_"`

	// Log controls the zerolog level of the command.
	Log Log `envPrefix:"OPVAULT_LOG_"`

	// Output selects how command results are printed.
	Output Output `envPrefix:"OPVAULT_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / --config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Vault holds the location of the container and how to unlock it.
type Vault struct {
	// Path is the container directory, the one holding default/.
	// Env: OPVAULT_PATH
	Path string `env:"PATH"`

	// Password is the master password. It is read from the environment
	// only: never from flags, where it would leak into the process list,
	// and never from the JSON file.
	// Env: OPVAULT_PASSWORD
	Password string `env:"PASSWORD"`

	// Timeout bounds a whole command (e.g. "30s"). Zero means no limit.
	// Env: OPVAULT_TIMEOUT
	Timeout time.Duration `env:"TIMEOUT"`
}

// Log holds logging settings.
type Log struct {
	// Level is a zerolog level name ("debug", "info", "warn", ...).
	// Env: OPVAULT_LOG_LEVEL
	Level string `env:"LEVEL"`
}

// Output holds printing settings.
type Output struct {
	// Format is one of text, json or yaml.
	// Env: OPVAULT_OUTPUT
	Format string `env:"OUTPUT"`
}

// defaults fills every field no source has set.
func defaults() *StructuredConfig {
	return &StructuredConfig{
		Log:    Log{Level: "info"},
		Output: Output{Format: FormatText},
	}
}

// GetStructuredConfig loads, merges, and validates the configuration from
// all available sources. For every field the first source that sets it
// wins:
//  1. Environment variables
//  2. Command-line flags registered by [RegisterFlags] on fs
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// fs must already be parsed; it may be nil when there are no flags.
func GetStructuredConfig(fs *pflag.FlagSet) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(fs).
		withJSON().
		build()
}
