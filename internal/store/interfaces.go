package store

import (
	"context"

	"github.com/MKhiriev/go-note-vault/models"
)

// NoteRepository is the note-level contract over a decrypted vault snapshot.
// Hidden (soft-deleted) notes are invisible to every read path.
type NoteRepository interface {
	// InitSchema creates the notes table if it does not exist yet.
	InitSchema(ctx context.Context) error

	// Insert stores a new visible note and returns its id.
	Insert(ctx context.Context, title, content string) (int64, error)

	// ListVisible returns (id, title) of every non-hidden note ordered by id.
	ListVisible(ctx context.Context) ([]models.NoteHeader, error)

	// Fetch returns the note with the given id. Returns ErrNoteNotFound when
	// the id is absent or the note is hidden.
	Fetch(ctx context.Context, id int64) (models.Note, error)

	// Update replaces title and content of a visible note. Returns
	// ErrNoteNotFound when the id is absent or the note is hidden.
	Update(ctx context.Context, id int64, title, content string) error

	// SoftDelete marks the note hidden without touching its content.
	// Deleting an already hidden note succeeds. Returns ErrNoteNotFound only
	// when no row has the id.
	SoftDelete(ctx context.Context, id int64) error
}
