package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrNoteNotFound is returned when a read or write targets a note id that
	// does not exist or belongs to a hidden note.
	ErrNoteNotFound = errors.New("note was not found")

	// ErrOpeningDatabase is returned when the snapshot file cannot be created
	// or opened by the SQLite driver.
	ErrOpeningDatabase = errors.New("error opening snapshot database")

	// ErrMigratingSchema is returned when InitSchema fails.
	ErrMigratingSchema = errors.New("error migrating snapshot schema")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT against the
	// snapshot fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing an INSERT or UPDATE
	// fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan note row")

	// ErrScanningRows is returned when scanning fails during multi-row
	// iteration.
	ErrScanningRows = errors.New("failed to scan note rows")
)
