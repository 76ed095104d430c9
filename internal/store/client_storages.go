package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-note-vault/internal/logger"
)

// SnapshotStorages groups the repositories opened over one decrypted vault
// snapshot into a single value. It owns the underlying connection and must
// be closed before the snapshot file is re-encrypted or removed.
type SnapshotStorages struct {
	db *DB

	// NoteRepository is the notes table of the snapshot.
	NoteRepository NoteRepository
}

// NewSnapshotStorages opens the snapshot at path (creating an empty file if
// needed) and wires a [NoteRepository] to it. The schema is not touched;
// callers that create a vault call [NoteRepository.InitSchema] themselves.
func NewSnapshotStorages(ctx context.Context, path string, logger *logger.Logger) (*SnapshotStorages, error) {
	db, err := NewConnectSQLite(ctx, path, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	return &SnapshotStorages{
		db:             db,
		NoteRepository: NewNoteRepository(db, logger),
	}, nil
}

// Close releases the snapshot connection. It is safe to call more than once.
func (s *SnapshotStorages) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}
