// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package vault

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-note-vault/internal/store"
)

// ErrorKind classifies every failure a vault operation can report.
// The set is closed: callers switch on it to pick a message or a recovery.
type ErrorKind int

const (
	// KindUnknown is the zero value; KindOf returns it for nil and for
	// errors that did not come from this package.
	KindUnknown ErrorKind = iota
	// KindInvalidKeyFormat means the hex key could not be decoded into 32 bytes.
	KindInvalidKeyFormat
	// KindDecryption covers a wrong key and truncated or corrupted vaults.
	KindDecryption
	// KindIO is a filesystem failure on the vault file or the snapshot.
	KindIO
	// KindNotFound means the note id is absent or the note is hidden.
	KindNotFound
	// KindSchema is any other failure of the SQLite engine.
	KindSchema
)

func (k ErrorKind) String() string {
	switch k {
	case KindInvalidKeyFormat:
		return "invalid key format"
	case KindDecryption:
		return "decryption error"
	case KindIO:
		return "i/o error"
	case KindNotFound:
		return "not found"
	case KindSchema:
		return "schema error"
	default:
		return "unknown error"
	}
}

// Sentinels matching each kind with errors.Is.
var (
	ErrInvalidKeyFormat = errors.New("invalid key format")
	ErrDecryption       = errors.New("decryption error")
	ErrIO               = errors.New("i/o error")
	ErrNotFound         = errors.New("note not found")
	ErrSchema           = errors.New("schema error")
)

// ErrSessionClosed is returned by every operation on a closed Session.
var ErrSessionClosed = errors.New("vault session is closed")

// errNotNoteDatabase is the cause attached to KindDecryption when the
// decrypted bytes happen to carry valid padding but are not a database.
var errNotNoteDatabase = errors.New("decrypted data is not a note database")

func (k ErrorKind) sentinel() error {
	switch k {
	case KindInvalidKeyFormat:
		return ErrInvalidKeyFormat
	case KindDecryption:
		return ErrDecryption
	case KindIO:
		return ErrIO
	case KindNotFound:
		return ErrNotFound
	case KindSchema:
		return ErrSchema
	default:
		return nil
	}
}

// Error is the structured error returned by Session operations.
type Error struct {
	Kind ErrorKind
	// Op is the session operation that failed ("create", "list", "read",
	// "add", "save", "delete").
	Op string
	// Path is the vault file.
	Path string
	// NoteID is the note the operation targeted, zero when none.
	NoteID int64
	// Err is the underlying cause.
	Err error
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString("vault ")
	b.WriteString(e.Op)
	if e.Path != "" {
		b.WriteString(" ")
		b.WriteString(e.Path)
	}
	if e.NoteID != 0 {
		fmt.Fprintf(&b, " (note %d)", e.NoteID)
	}
	b.WriteString(": ")
	b.WriteString(e.Kind.String())
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is the sentinel of e's kind.
func (e *Error) Is(target error) bool {
	s := e.Kind.sentinel()
	return s != nil && target == s
}

// KindOf returns the kind of the first *Error in err's chain.
func KindOf(err error) ErrorKind {
	var ve *Error
	if errors.As(err, &ve) {
		return ve.Kind
	}
	return KindUnknown
}

func newError(kind ErrorKind, op, path string, noteID int64, err error) *Error {
	return &Error{
		Kind:   kind,
		Op:     op,
		Path:   path,
		NoteID: noteID,
		Err:    err,
	}
}

// storeKind maps a NoteRepository error onto the taxonomy.
func storeKind(err error) ErrorKind {
	if errors.Is(err, store.ErrNoteNotFound) {
		return KindNotFound
	}
	return KindSchema
}
