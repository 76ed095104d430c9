package vault

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/afero"
)

// SnapshotPattern is the name pattern of decrypted working copies inside the
// temp dir. The sweeper uses it to find copies left by a crashed process.
const SnapshotPattern = "notevault-*.sqlite"

// sideFileSuffixes are the files SQLite may create next to a database.
var sideFileSuffixes = []string{"-journal", "-wal", "-shm"}

// snapshot is a decrypted vault on disk. It lives for exactly one session
// operation and must be removed on every exit path.
type snapshot struct {
	fs   afero.Fs
	path string
}

// newSnapshot writes plaintext into a fresh 0600 file in dir. The caller
// keeps ownership of plaintext and is expected to wipe it.
func newSnapshot(fsys afero.Fs, dir string, plaintext []byte) (*snapshot, error) {
	f, err := afero.TempFile(fsys, dir, SnapshotPattern)
	if err != nil {
		return nil, fmt.Errorf("create snapshot: %w", err)
	}
	snap := &snapshot{fs: fsys, path: f.Name()}

	_, err = f.Write(plaintext)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		_ = snap.remove()
		return nil, fmt.Errorf("write snapshot: %w", err)
	}

	return snap, nil
}

// bytes reads the snapshot back after the database has been closed.
func (s *snapshot) bytes() ([]byte, error) {
	return afero.ReadFile(s.fs, s.path)
}

// remove deletes the snapshot and any SQLite side files. Missing files are
// not an error.
func (s *snapshot) remove() error {
	var errs []error
	for _, p := range append([]string{s.path}, sideFiles(s.path)...) {
		if err := s.fs.Remove(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func sideFiles(path string) []string {
	files := make([]string, 0, len(sideFileSuffixes))
	for _, suffix := range sideFileSuffixes {
		files = append(files, path+suffix)
	}
	return files
}
