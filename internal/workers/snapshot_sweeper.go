// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/MKhiriev/go-note-vault/internal/logger"
	"github.com/MKhiriev/go-note-vault/internal/vault"
)

// SnapshotSweeper removes decrypted vault snapshots that a crashed notevault
// process left behind in the snapshot directory, together with their SQLite
// side files.
type SnapshotSweeper struct {
	fs     afero.Fs
	dir    string
	logger *logger.Logger
}

// NewSnapshotSweeper creates a sweeper for dir. A nil fsys means the OS
// filesystem.
func NewSnapshotSweeper(fsys afero.Fs, dir string, log *logger.Logger) *SnapshotSweeper {
	if fsys == nil {
		fsys = afero.NewOsFs()
	}
	if log == nil {
		log = logger.Nop()
	}
	return &SnapshotSweeper{fs: fsys, dir: dir, logger: log}
}

// Run removes every file matching the snapshot pattern. Files that vanish
// while sweeping are ignored.
func (s *SnapshotSweeper) Run(ctx context.Context) error {
	// the trailing star also catches -journal, -wal and -shm files
	matches, err := afero.Glob(s.fs, filepath.Join(s.dir, vault.SnapshotPattern+"*"))
	if err != nil {
		return fmt.Errorf("glob snapshots in %s: %w", s.dir, err)
	}

	var errs []error
	removed := 0
	for _, path := range matches {
		if err = ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}

		info, statErr := s.fs.Stat(path)
		if statErr != nil {
			if !errors.Is(statErr, fs.ErrNotExist) {
				errs = append(errs, statErr)
			}
			continue
		}
		if info.IsDir() {
			continue
		}

		if err = s.fs.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			errs = append(errs, fmt.Errorf("remove stale snapshot %s: %w", path, err))
			continue
		}
		removed++
	}

	if removed > 0 {
		s.logger.Warn().Int("removed", removed).Str("dir", s.dir).Msg("removed stale vault snapshots")
	}

	return errors.Join(errs...)
}
