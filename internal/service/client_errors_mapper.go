// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"

	"github.com/MKhiriev/go-note-vault/internal/app"
	"github.com/MKhiriev/go-note-vault/internal/vault"
)

// StatusMessage translates an error returned by ClientVaultService into the
// human-readable status line shown by the UI. Causes are never included so
// that file paths and driver messages stay in the log.
func StatusMessage(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, ErrVaultNotOpened), errors.Is(err, vault.ErrSessionClosed):
		return app.MsgVaultNotOpened
	case errors.Is(err, ErrEmptyTitle):
		return app.MsgTitleRequired
	case errors.Is(err, ErrEmptyPath):
		return app.MsgPathRequired
	}

	switch vault.KindOf(err) {
	case vault.KindInvalidKeyFormat:
		return app.MsgInvalidKey
	case vault.KindDecryption:
		return app.MsgWrongKeyOrCorrupted
	case vault.KindIO:
		return app.MsgVaultFileError
	case vault.KindNotFound:
		return app.MsgNoteNotFound
	case vault.KindSchema:
		return app.MsgDatabaseError
	}

	return app.MsgUnexpectedError
}
