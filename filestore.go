package vectorize

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// FileStore is a [Store] backed by a TOML file. Changes are kept in
// memory until [FileStore.Flush] is called.
type FileStore struct {
	MapStore
	path string
}

// OpenFileStore loads the TOML file at path. A missing file yields an
// empty store; the file is created on the first flush.
func OpenFileStore(path string) (*FileStore, error) {
	fs := &FileStore{path: path}
	m := map[string]any{}
	if _, err := toml.DecodeFile(path, &m); err != nil {
		if os.IsNotExist(err) {
			fs.m = m
			return fs, nil
		}
		return nil, fmt.Errorf("reading settings %s: %w", path, err)
	}
	fs.m = m
	return fs, nil
}

// Path returns the file the store reads from and writes to.
func (fs *FileStore) Path() string { return fs.path }

// Flush writes the store to its file. The file is replaced atomically.
func (fs *FileStore) Flush() error {
	dir := filepath.Dir(fs.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}
	f, err := os.CreateTemp(dir, ".settings-*.toml")
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer os.Remove(tmp)

	if err := toml.NewEncoder(f).Encode(fs.m); err != nil {
		f.Close()
		return fmt.Errorf("writing settings %s: %w", fs.path, err)
	}
	if err := f.Chmod(0o600); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, fs.path)
}
