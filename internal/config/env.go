// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from the notevault environment variables:
//
//	CONFIG            JSON config file path
//	VAULT_PATH        encrypted vault file
//	VAULT_KEY         64-character hex vault key
//	STORAGE_TEMP_DIR  directory for decrypted snapshots
//	LOG_FILE          rotated client log file
//	LOG_LEVEL         zerolog level name
//
// Names come from the `env` and `envPrefix` tags on [StructuredConfig].
// Unset variables leave their fields empty so that flags and the JSON file
// can fill them. There is no environment variable for -init.
func parseEnv(cfg *StructuredConfig) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error getting notevault env configs: %w", err)
	}

	return nil
}
