package service

import (
	"context"

	"github.com/MKhiriev/go-note-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// ClientVaultService is the contract between the terminal UI and the vault.
// It owns the currently open vault session so the UI never holds the key
// between actions. At most one vault is open at a time.
type ClientVaultService interface {
	// CreateVault writes a new empty vault at path encrypted with keyHex.
	// An existing file at path is replaced. The currently open vault, if
	// any, is left as it is; the new vault is not opened.
	CreateVault(ctx context.Context, path, keyHex string) error

	// OpenVault decrypts the vault at path with keyHex and returns its
	// visible notes. On success the vault becomes the open vault and any
	// previously open one is closed. On failure the previously open vault,
	// if any, stays open.
	OpenVault(ctx context.Context, path, keyHex string) ([]models.NoteHeader, error)

	// ListNotes returns the visible notes of the open vault.
	ListNotes(ctx context.Context) ([]models.NoteHeader, error)

	// ReadNote returns a visible note of the open vault.
	ReadNote(ctx context.Context, id int64) (models.Note, error)

	// SaveNote replaces title and content of a visible note.
	// Returns ErrEmptyTitle when title is blank.
	SaveNote(ctx context.Context, id int64, title, content string) error

	// AddNote inserts a visible note and returns its id.
	// Returns ErrEmptyTitle when title is blank.
	AddNote(ctx context.Context, title, content string) (int64, error)

	// DeleteNote hides a note. Hiding a hidden note succeeds.
	DeleteNote(ctx context.Context, id int64) error

	// CloseVault wipes the key of the open vault. It is a no-op when no
	// vault is open.
	CloseVault()

	// IsOpen reports whether a vault is open.
	IsOpen() bool
}

// VaultSession is one vault file bound to its key. Every call performs a
// full decrypt, operate, re-encrypt cycle. *vault.Session implements it.
type VaultSession interface {
	Create(ctx context.Context) error
	List(ctx context.Context) ([]models.NoteHeader, error)
	Read(ctx context.Context, id int64) (models.Note, error)
	Add(ctx context.Context, title, content string) (int64, error)
	Save(ctx context.Context, id int64, title, content string) error
	Delete(ctx context.Context, id int64) error
	Close() error
}

// AppInfoService exposes the build metadata shown by the UI.
type AppInfoService interface {
	BuildInfo(ctx context.Context) models.AppBuildInfo
}
