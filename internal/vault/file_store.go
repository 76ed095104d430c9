package vault

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
)

// FileStore reads and replaces whole vault files.
type FileStore struct {
	fs afero.Fs
}

// NewFileStore returns a FileStore over fs. A nil fs means the OS filesystem.
func NewFileStore(fs afero.Fs) *FileStore {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &FileStore{fs: fs}
}

// Read returns the full contents of the vault file at path.
func (s *FileStore) Read(path string) ([]byte, error) {
	return afero.ReadFile(s.fs, path)
}

// Write replaces the vault file at path with data. The bytes go to a
// sibling temporary file first which is then renamed over path, so a
// failed write never leaves a partially written vault behind.
func (s *FileStore) Write(path string, data []byte) error {
	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}

	f, err := afero.TempFile(s.fs, dir, "."+base+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp vault file: %w", err)
	}
	tempPath := f.Name()

	if _, err := f.Write(data); err != nil {
		f.Close()
		s.fs.Remove(tempPath)
		return fmt.Errorf("write temp vault file: %w", err)
	}
	if err := f.Sync(); err != nil {
		f.Close()
		s.fs.Remove(tempPath)
		return fmt.Errorf("sync temp vault file: %w", err)
	}
	if err := f.Close(); err != nil {
		s.fs.Remove(tempPath)
		return fmt.Errorf("close temp vault file: %w", err)
	}

	// atomic replace
	if err := s.fs.Rename(tempPath, path); err != nil {
		s.fs.Remove(tempPath)
		return fmt.Errorf("replace vault file: %w", err)
	}
	return nil
}
