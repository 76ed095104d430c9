package config

import (
	"fmt"
	"os"
)

// ClientVault holds the vault the client starts with.
type ClientVault struct {
	// Path pre-fills the vault picker and is the -init target.
	Path string
	// Key is the optional hex key; empty means "ask the operator".
	Key string
}

// ClientStorage groups client snapshot settings.
type ClientStorage struct {
	// TempDir is where decrypted snapshots are created.
	TempDir string
}

// ClientLog contains client log settings.
type ClientLog struct {
	File  string
	Level string
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Vault contains the initial vault path and key.
	Vault ClientVault
	// Storage contains snapshot settings.
	Storage ClientStorage
	// Log contains logging settings.
	Log ClientLog
	// Init requests headless vault creation.
	Init bool
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], fills defaults for
// unset fields, and validates the resulting [ClientConfig].
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newClientConfig(cfg)
}

func newClientConfig(cfg *StructuredConfig) (*ClientConfig, error) {
	clientCfg := &ClientConfig{
		Vault: ClientVault{
			Path: cfg.Vault.Path,
			Key:  cfg.Vault.Key,
		},
		Storage: ClientStorage{
			TempDir: cfg.Storage.TempDir,
		},
		Log: ClientLog{
			File:  cfg.Log.File,
			Level: cfg.Log.Level,
		},
		Init: cfg.Init,
	}

	if clientCfg.Storage.TempDir == "" {
		clientCfg.Storage.TempDir = os.TempDir()
	}

	return clientCfg, clientCfg.validate()
}
