package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-note-vault/internal/logger"
	"github.com/MKhiriev/go-note-vault/models"
)

// noteRepository is the SQLite-backed implementation of [NoteRepository].
// It executes all note operations directly against the "notes" table of a
// decrypted snapshot using the embedded [*DB] connection.
//
// Every public method obtains a context-scoped logger via
// [logger.FromContext] so that database interactions carry the session's
// fields. Titles and contents are never logged.
type noteRepository struct {
	*DB
	logger *logger.Logger
}

// NewNoteRepository constructs a [NoteRepository] backed by the provided
// snapshot connection and logger.
func NewNoteRepository(db *DB, logger *logger.Logger) NoteRepository {
	return &noteRepository{
		DB:     db,
		logger: logger,
	}
}

// InitSchema implements [NoteRepository] by running the embedded migrations.
func (n *noteRepository) InitSchema(ctx context.Context) error {
	log := logger.FromContext(ctx)

	if err := n.DB.Migrate(ctx); err != nil {
		log.Err(err).
			Str("func", "noteRepository.InitSchema").
			Msg("failed to migrate snapshot schema")
		return err
	}

	return nil
}

// Insert implements [NoteRepository].
func (n *noteRepository) Insert(ctx context.Context, title, content string) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertNoteQuery(title, content)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := n.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "noteRepository.Insert").
			Msg("failed to insert note")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		log.Err(err).
			Str("func", "noteRepository.Insert").
			Msg("failed to read inserted note id")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return id, nil
}

// ListVisible implements [NoteRepository].
func (n *noteRepository) ListVisible(ctx context.Context) ([]models.NoteHeader, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListVisibleNotesQuery()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := n.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "noteRepository.ListVisible").
			Msg("failed to execute query for listing notes")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	notes := make([]models.NoteHeader, 0, 16)

	for rows.Next() {
		var note models.NoteHeader
		if scanErr := rows.Scan(&note.ID, &note.Title); scanErr != nil {
			log.Err(scanErr).
				Str("func", "noteRepository.ListVisible").
				Msg("failed to scan note row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		notes = append(notes, note)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "noteRepository.ListVisible").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return notes, nil
}

// Fetch implements [NoteRepository].
func (n *noteRepository) Fetch(ctx context.Context, id int64) (models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFetchNoteQuery(id)
	if err != nil {
		return models.Note{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var note models.Note
	err = n.DB.QueryRowContext(ctx, query, args...).Scan(
		&note.ID,
		&note.Title,
		&note.Content,
		&note.Hidden,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Note{}, fmt.Errorf("%w (id=%d)", ErrNoteNotFound, id)
	}
	if err != nil {
		log.Err(err).
			Str("func", "noteRepository.Fetch").
			Int64("note_id", id).
			Msg("failed to scan note row")
		return models.Note{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return note, nil
}

// Update implements [NoteRepository].
func (n *noteRepository) Update(ctx context.Context, id int64, title, content string) error {
	query, args, err := buildUpdateNoteQuery(id, title, content)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return n.execAffectingNote(ctx, "noteRepository.Update", id, query, args)
}

// SoftDelete implements [NoteRepository].
func (n *noteRepository) SoftDelete(ctx context.Context, id int64) error {
	query, args, err := buildSoftDeleteNoteQuery(id)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return n.execAffectingNote(ctx, "noteRepository.SoftDelete", id, query, args)
}

// execAffectingNote runs a single-row UPDATE and maps "no row matched" to
// ErrNoteNotFound.
func (n *noteRepository) execAffectingNote(ctx context.Context, fn string, id int64, query string, args []any) error {
	log := logger.FromContext(ctx)

	res, err := n.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", fn).
			Int64("note_id", id).
			Msg("failed to execute update statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		log.Err(err).
			Str("func", fn).
			Int64("note_id", id).
			Msg("failed to read affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if affected == 0 {
		return fmt.Errorf("%w (id=%d)", ErrNoteNotFound, id)
	}

	return nil
}
