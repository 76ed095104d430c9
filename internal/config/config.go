// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// StructuredConfig is the top-level configuration container for the
// go-note-vault application. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Vault holds the location of the encrypted vault file and, optionally,
	// the hex key used to open it.
	Vault Vault `envPrefix:"VAULT_"`

	// Storage holds settings for the plaintext snapshot working area.
	Storage Storage `envPrefix:"STORAGE_"`

	// Log holds client log file settings.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`

	// Init requests headless vault creation instead of starting the TUI.
	// Populated via the -init flag only.
	Init bool
}

// Vault holds the vault file settings.
type Vault struct {
	// Path is the encrypted vault file. The TUI pre-fills its path input
	// with it.
	// Env: VAULT_PATH
	Path string `env:"PATH"`

	// Key is the 64-character hex vault key. Leave empty to be prompted.
	// Env: VAULT_KEY
	Key string `env:"KEY"`
}

// Storage holds settings for the transient plaintext snapshot.
type Storage struct {
	// TempDir is the directory where decrypted snapshots live for the
	// duration of one vault operation. Defaults to os.TempDir().
	// Env: STORAGE_TEMP_DIR
	TempDir string `env:"TEMP_DIR"`
}

// Log holds client logging settings.
type Log struct {
	// File is the rotated log file path. Defaults to "logs" next to the
	// executable.
	// Env: LOG_FILE
	File string `env:"FILE"`

	// Level is a zerolog level name (debug, info, warn, error).
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags (args, without the program name)
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
