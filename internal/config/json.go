package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// StructuredJSONConfig is the on-disk layout of the optional JSON config
// file. The vault key is deliberately absent: it is never read from a file.
type StructuredJSONConfig struct {
	Vault struct {
		Path string `json:"path"`
	} `json:"vault,omitempty"`

	Storage struct {
		TempDir string `json:"temp_dir"`
	} `json:"storage,omitempty"`

	Log struct {
		File  string `json:"file"`
		Level string `json:"level"`
	} `json:"log,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		Vault: Vault{
			Path: jsonCfg.Vault.Path,
		},
		Storage: Storage{
			TempDir: jsonCfg.Storage.TempDir,
		},
		Log: Log{
			File:  jsonCfg.Log.File,
			Level: jsonCfg.Log.Level,
		},
		JSONFilePath: "",
	}

	return cfg, nil
}
