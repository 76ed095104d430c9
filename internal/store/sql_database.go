package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/go-note-vault/internal/logger"
	"github.com/MKhiriev/go-note-vault/migrations"
)

// DB is an open connection to one decrypted snapshot file.
type DB struct {
	*sql.DB
	path   string
	logger *logger.Logger
}

// Migrate applies the embedded schema migrations to the snapshot.
func (db *DB) Migrate(ctx context.Context) error {
	if err := migrations.Migrate(ctx, db.DB); err != nil {
		return fmt.Errorf("%w: %w", ErrMigratingSchema, err)
	}
	return nil
}
