// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package vault runs note operations against an encrypted vault file.
//
// A vault is never open between calls. Every Session operation decrypts the
// vault into a temporary SQLite snapshot, performs one note operation,
// re-encrypts the snapshot with a fresh IV if the operation changed it and
// removes the snapshot before returning, whatever the outcome.
package vault

import (
	"bytes"
	"context"
	"errors"
	"os"
	"sync"

	"github.com/google/uuid"
	"github.com/spf13/afero"

	"github.com/MKhiriev/go-note-vault/internal/crypto"
	"github.com/MKhiriev/go-note-vault/internal/logger"
	"github.com/MKhiriev/go-note-vault/internal/store"
	"github.com/MKhiriev/go-note-vault/models"
)

// sqliteHeader starts every non-empty SQLite database file.
var sqliteHeader = []byte("SQLite format 3\x00")

// Operation names reported in Error.Op.
const (
	OpOpen   = "open"
	OpCreate = "create"
	OpList   = "list"
	OpRead   = "read"
	OpAdd    = "add"
	OpSave   = "save"
	OpDelete = "delete"
)

// Session holds the key of one vault file between operations. It is safe
// for concurrent use; operations are serialised.
type Session struct {
	mu     sync.Mutex
	closed bool

	id      string
	path    string
	key     crypto.Key
	tempDir string

	files     *FileStore
	snapshots afero.Fs
	cipher    crypto.VaultCipher
	logger    *logger.Logger
}

// Option configures a Session.
type Option func(*Session)

// WithTempDir sets the directory for decrypted snapshots. Defaults to
// os.TempDir().
func WithTempDir(dir string) Option {
	return func(s *Session) {
		if dir != "" {
			s.tempDir = dir
		}
	}
}

// WithFs sets the filesystem the vault file is read from and written to.
// Snapshots always live on the OS filesystem because SQLite opens them by
// path.
func WithFs(fs afero.Fs) Option {
	return func(s *Session) {
		s.files = NewFileStore(fs)
	}
}

// WithCipher replaces the AES-256-CBC cipher.
func WithCipher(c crypto.VaultCipher) Option {
	return func(s *Session) {
		if c != nil {
			s.cipher = c
		}
	}
}

// WithLogger sets the parent logger; the session adds its own session_id.
func WithLogger(l *logger.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewSession parses keyHex and binds it to the vault file at path. Nothing
// is read from disk yet. A malformed key yields a KindInvalidKeyFormat error.
func NewSession(path, keyHex string, opts ...Option) (*Session, error) {
	key, err := crypto.ParseKey(keyHex)
	if err != nil {
		return nil, newError(KindInvalidKeyFormat, OpOpen, path, 0, err)
	}

	s := &Session{
		id:        uuid.NewString(),
		path:      path,
		key:       key,
		tempDir:   os.TempDir(),
		files:     NewFileStore(nil),
		snapshots: afero.NewOsFs(),
		cipher:    crypto.NewVaultCipher(),
		logger:    logger.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = &logger.Logger{Logger: s.logger.With().Str("session_id", s.id).Logger()}

	return s, nil
}

// ID returns the identifier the session logs under.
func (s *Session) ID() string { return s.id }

// Path returns the vault file path.
func (s *Session) Path() string { return s.path }

// Create writes a new vault holding an empty notes table to the session
// path. An existing file at the path is replaced.
func (s *Session) Create(ctx context.Context) error {
	return s.run(ctx, OpCreate, 0, func() ([]byte, error) {
		return nil, nil
	}, true, func(ctx context.Context, repo store.NoteRepository) error {
		return repo.InitSchema(ctx)
	})
}

// List returns the headers of all visible notes ordered by id.
func (s *Session) List(ctx context.Context) ([]models.NoteHeader, error) {
	var notes []models.NoteHeader
	err := s.transact(ctx, OpList, 0, false, func(ctx context.Context, repo store.NoteRepository) error {
		var err error
		notes, err = repo.ListVisible(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return notes, nil
}

// Read returns the visible note with the given id.
func (s *Session) Read(ctx context.Context, id int64) (models.Note, error) {
	var note models.Note
	err := s.transact(ctx, OpRead, id, false, func(ctx context.Context, repo store.NoteRepository) error {
		var err error
		note, err = repo.Fetch(ctx, id)
		return err
	})
	if err != nil {
		return models.Note{}, err
	}
	return note, nil
}

// Add inserts a visible note and persists the vault. It returns the new id.
func (s *Session) Add(ctx context.Context, title, content string) (int64, error) {
	var id int64
	err := s.transact(ctx, OpAdd, 0, true, func(ctx context.Context, repo store.NoteRepository) error {
		var err error
		id, err = repo.Insert(ctx, title, content)
		return err
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

// Save replaces title and content of a visible note and persists the vault.
func (s *Session) Save(ctx context.Context, id int64, title, content string) error {
	return s.transact(ctx, OpSave, id, true, func(ctx context.Context, repo store.NoteRepository) error {
		return repo.Update(ctx, id, title, content)
	})
}

// Delete hides a note and persists the vault. Deleting a hidden note is a
// no-op that still succeeds.
func (s *Session) Delete(ctx context.Context, id int64) error {
	return s.transact(ctx, OpDelete, id, true, func(ctx context.Context, repo store.NoteRepository) error {
		return repo.SoftDelete(ctx, id)
	})
}

// Close wipes the key. Every later operation fails with ErrSessionClosed.
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.key.Wipe()
	s.closed = true
	s.logger.Debug().Str("func", "Session.Close").Msg("vault session closed")
	return nil
}

// transact runs fn against a snapshot decrypted from the vault file.
func (s *Session) transact(ctx context.Context, op string, noteID int64, mutate bool, fn func(context.Context, store.NoteRepository) error) error {
	return s.run(ctx, op, noteID, s.decryptVault, mutate, fn)
}

// decryptVault reads and decrypts the vault file. It only returns plaintext
// that looks like a SQLite database.
func (s *Session) decryptVault() ([]byte, error) {
	raw, err := s.files.Read(s.path)
	if err != nil {
		return nil, newError(KindIO, "", s.path, 0, err)
	}

	plaintext, err := s.cipher.Decrypt(raw, s.key)
	if err != nil {
		return nil, newError(KindDecryption, "", s.path, 0, err)
	}

	// valid padding under a wrong key is possible; the page header is not
	if len(plaintext) > 0 && !bytes.HasPrefix(plaintext, sqliteHeader) {
		crypto.SecureWipe(plaintext)
		return nil, newError(KindDecryption, "", s.path, 0, errNotNoteDatabase)
	}

	return plaintext, nil
}

// run is the single decrypt, operate, encrypt, cleanup cycle every
// operation goes through. load supplies the initial snapshot contents.
func (s *Session) run(
	ctx context.Context,
	op string,
	noteID int64,
	load func() ([]byte, error),
	mutate bool,
	fn func(context.Context, store.NoteRepository) error,
) (err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrSessionClosed
	}

	opLogger := &logger.Logger{Logger: s.logger.With().
		Str("op", op).
		Int64("note_id", noteID).
		Logger()}
	ctx = opLogger.WithContext(ctx)

	defer func() {
		if err != nil {
			opLogger.Err(err).Str("func", "Session.run").Msg("vault operation failed")
			return
		}
		opLogger.Debug().Str("func", "Session.run").Msg("vault operation finished")
	}()

	fail := func(kind ErrorKind, cause error) error {
		return newError(kind, op, s.path, noteID, cause)
	}

	plaintext, err := load()
	if err != nil {
		var ve *Error
		if errors.As(err, &ve) {
			ve.Op, ve.NoteID = op, noteID
			return ve
		}
		return fail(KindIO, err)
	}

	snap, err := newSnapshot(s.snapshots, s.tempDir, plaintext)
	crypto.SecureWipe(plaintext)
	if err != nil {
		return fail(KindIO, err)
	}
	defer func() {
		if rmErr := snap.remove(); rmErr != nil {
			opLogger.Err(rmErr).Str("func", "Session.run").Msg("failed to remove snapshot")
			if err == nil {
				err = fail(KindIO, rmErr)
			}
		}
	}()

	storages, err := store.NewSnapshotStorages(ctx, snap.path, opLogger)
	if err != nil {
		return fail(KindSchema, err)
	}
	defer storages.Close()

	if err = fn(ctx, storages.NoteRepository); err != nil {
		return fail(storeKind(err), err)
	}

	if !mutate {
		return nil
	}

	// the snapshot must be flushed and released before it is read back
	if err = storages.Close(); err != nil {
		return fail(KindSchema, err)
	}

	data, err := snap.bytes()
	if err != nil {
		return fail(KindIO, err)
	}
	defer crypto.SecureWipe(data)

	sealed, err := s.cipher.Seal(data, s.key)
	if err != nil {
		return fail(KindIO, err)
	}

	if err = s.files.Write(s.path, sealed); err != nil {
		return fail(KindIO, err)
	}

	return nil
}
