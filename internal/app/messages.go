// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the human-readable status messages shown by the
// notevault terminal UI.
//
// Keeping them in one place keeps the wording consistent between the
// screens and the error mapping in the service layer.
package app

// Success messages.
const (
	// MsgVaultOpened is shown after a vault was decrypted and listed.
	MsgVaultOpened = "Vault opened successfully"

	// MsgVaultCreated is shown after a new vault was written to disk.
	MsgVaultCreated = "New vault created and encrypted successfully"

	// MsgNoteAdded is shown after a note was inserted.
	MsgNoteAdded = "Note added successfully"

	// MsgNoteUpdated is shown after a note was saved.
	MsgNoteUpdated = "Note updated successfully"

	// MsgNoteHidden is shown after a note was deleted. Notes are only
	// hidden, never removed from the vault.
	MsgNoteHidden = "Note hidden successfully"

	// MsgContentCopied is shown after the note content was put on the
	// system clipboard.
	MsgContentCopied = "Content copied to clipboard"

	// MsgVaultClosed is shown on the picker after leaving a vault.
	MsgVaultClosed = "Vault closed"
)

// Failure messages.
const (
	// MsgInvalidKey means the key is not 64 hex characters.
	MsgInvalidKey = "Invalid key: expected 64 hex characters"

	// MsgWrongKeyOrCorrupted means decryption failed. A wrong key and a
	// damaged file cannot be told apart.
	MsgWrongKeyOrCorrupted = "Failed to open vault: wrong key or corrupted file"

	// MsgVaultFileError means the vault file could not be read or written.
	MsgVaultFileError = "Vault file could not be read or written"

	// MsgNoteNotFound means the note does not exist or was deleted.
	MsgNoteNotFound = "Note not found"

	// MsgDatabaseError is an unexpected failure of the note database.
	MsgDatabaseError = "Vault database error"

	// MsgTitleRequired is shown when a note is submitted without a title.
	MsgTitleRequired = "Title is required"

	// MsgPathRequired is shown when no vault path was entered.
	MsgPathRequired = "Vault path is required"

	// MsgKeyRequired is shown when no key was entered.
	MsgKeyRequired = "Key is required"

	// MsgVaultNotOpened means an operation needs an open vault.
	MsgVaultNotOpened = "No vault is open"

	// MsgClipboardFailed means the system clipboard was not available.
	MsgClipboardFailed = "Failed to copy to clipboard"

	MsgUnexpectedError = "Unexpected error"
)
