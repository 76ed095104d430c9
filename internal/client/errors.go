package client

import "errors"

var (
	ErrNilConfig       = errors.New("client config is not initialized")
	ErrNilServices     = errors.New("client services are not initialized")
	ErrNilUI           = errors.New("ui is not initialized")
	ErrKeysDoNotMatch  = errors.New("keys do not match")
	ErrEmptyKey        = errors.New("key cannot be empty")
	ErrVaultPathNeeded = errors.New("vault path is required for -init")
)
