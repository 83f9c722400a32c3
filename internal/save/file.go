package save

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/babysitterd/chasm/internal/game"
)

// FileStore persists the snapshot as one JSON document, replaced
// atomically via a temp file and rename.
type FileStore struct {
	path string
}

// NewFileStore creates a file store writing to the given path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Save writes the snapshot. The existing document survives any failure:
// the new one is written next to it and only renamed into place once
// fully flushed.
func (f *FileStore) Save(snap *game.Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("save: encoding snapshot: %w", err)
	}

	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("save: creating save directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(f.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("save: creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("save: writing snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("save: flushing snapshot: %w", err)
	}

	if err := os.Rename(tmpName, f.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("save: replacing save file: %w", err)
	}
	return nil
}

// Load reads the snapshot back. Every failure mode collapses into
// ErrNoSave.
func (f *FileStore) Load() (*game.Snapshot, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return nil, ErrNoSave
	}
	var snap game.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, ErrNoSave
	}
	return &snap, nil
}

// Close is a no-op for file stores.
func (f *FileStore) Close() error {
	return nil
}
