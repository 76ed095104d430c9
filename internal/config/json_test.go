package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_Success(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "config.json")

	jsonBody := `{
		"vault":   { "path": "/data/notes.vault" },
		"storage": { "temp_dir": "/run/notevault" },
		"log":     { "file": "/var/log/nv.log", "level": "info" }
	}`

	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "/data/notes.vault", cfg.Vault.Path)
	assert.Empty(t, cfg.Vault.Key, "the key is never read from a file")
	assert.Equal(t, "/run/notevault", cfg.Storage.TempDir)
	assert.Equal(t, "/var/log/nv.log", cfg.Log.File)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_IgnoresKeyField(t *testing.T) {
	p := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"vault": {"path": "v", "key": "4141"}}`), 0o600))

	cfg, err := parseJSON(p)
	require.NoError(t, err)
	assert.Equal(t, "v", cfg.Vault.Path)
	assert.Empty(t, cfg.Vault.Key)
}

func TestParseJSON_FileNotFound(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestParseJSON_Malformed(t *testing.T) {
	p := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(p, []byte("{not json"), 0o600))

	_, err := parseJSON(p)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error decoding json configs")
}
