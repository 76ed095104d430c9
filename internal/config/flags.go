package config

import (
	"flag"
	"fmt"
)

// ParseFlags parses all configuration flags from args (the command line
// without the program name).
//
// Flags:
//
//	-v vault file path
//	-k vault key (64 hex characters)
//	-t snapshot temp directory
//	-c/-config json file path with configs
//	-log-file client log file path
//	-log-level client log level
//	-init create the vault at -v and exit
func ParseFlags(args []string) (*StructuredConfig, error) {
	var vaultPath string
	var vaultKey string
	var tempDir string
	var jsonConfigPath string
	var logFile string
	var logLevel string
	var initVault bool

	fs := flag.NewFlagSet("notevault", flag.ContinueOnError)
	fs.StringVar(&vaultPath, "v", "", "Vault file path")
	fs.StringVar(&vaultKey, "k", "", "Vault key, 64 hex characters")
	fs.StringVar(&tempDir, "t", "", "Directory for decrypted snapshots")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&logFile, "log-file", "", "Log file path")
	fs.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.BoolVar(&initVault, "init", false, "Create a new vault at -v and exit")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		Vault: Vault{
			Path: vaultPath,
			Key:  vaultKey,
		},
		Storage: Storage{
			TempDir: tempDir,
		},
		Log: Log{
			File:  logFile,
			Level: logLevel,
		},
		JSONFilePath: jsonConfigPath,
		Init:         initVault,
	}, nil
}
