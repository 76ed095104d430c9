package service

import "errors"

var (
	ErrVaultNotOpened = errors.New("vault is not opened")
	ErrEmptyTitle     = errors.New("note title is empty")
	ErrEmptyPath      = errors.New("vault path is empty")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
