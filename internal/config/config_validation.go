// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.Log.Level != "" {
		if _, err := zerolog.ParseLevel(cfg.Log.Level); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidLogConfigs, err)
		}
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	info, err := os.Stat(cfg.Storage.TempDir)
	if err != nil || !info.IsDir() {
		return ErrInvalidStorageConfigs
	}

	if cfg.Init && cfg.Vault.Path == "" {
		return ErrInvalidVaultConfigs
	}

	return nil
}
