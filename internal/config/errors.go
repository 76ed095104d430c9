package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] and
// [ClientConfig.validate] when required configuration groups are incomplete
// or invalid.
var (
	// ErrInvalidStorageConfigs indicates that the snapshot temp directory
	// does not exist or is not a directory.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidVaultConfigs indicates missing vault settings for the
	// requested mode (for example, -init without a vault path).
	ErrInvalidVaultConfigs = errors.New("invalid vault configuration")
	// ErrInvalidLogConfigs indicates an unknown log level.
	ErrInvalidLogConfigs = errors.New("invalid log configuration")
)
