package models

// Note is a single row of the notes table inside a decrypted vault snapshot.
type Note struct {
	// ID is the autoincrement primary key assigned by SQLite on insert.
	ID int64

	// Title is the short name shown in note listings.
	Title string

	// Content is the note body.
	Content string

	// Hidden marks a soft-deleted note. Hidden notes are never listed and are
	// reported as not found when read by id.
	Hidden bool
}

// Header returns the listing view of the note.
func (n Note) Header() NoteHeader {
	return NoteHeader{ID: n.ID, Title: n.Title}
}

// NoteHeader is the (id, title) pair returned by note listings.
type NoteHeader struct {
	ID    int64
	Title string
}
