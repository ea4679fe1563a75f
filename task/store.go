package task

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// DefaultFile is the backing file used when no path is configured.
const DefaultFile = "tasks.json"

// FileStore reads and writes a Store as a JSON document.
type FileStore struct {
	path string
}

// NewFileStore returns a FileStore backed by path.
func NewFileStore(path string) *FileStore {
	if path == "" {
		path = DefaultFile
	}
	return &FileStore{path: path}
}

// Path returns the backing file path.
func (f *FileStore) Path() string {
	return f.path
}

// Load reads the backing file. A missing file is created empty; a missing or
// blank file yields NewStore.
func (f *FileStore) Load() (*Store, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, os.ErrNotExist) {
		if err := f.create(); err != nil {
			return nil, err
		}
		return NewStore(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read task file: %w", err)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return NewStore(), nil
	}
	return decodeStore(data)
}

func decodeStore(data []byte) (*Store, error) {
	var store Store
	if err := json.Unmarshal(data, &store); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptStore, err)
	}
	if store.Tasks == nil {
		store.Tasks = []Task{}
	}
	if err := store.Validate(); err != nil {
		return nil, err
	}
	return &store, nil
}

func (f *FileStore) create() error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0755); err != nil {
		return fmt.Errorf("create task file dir: %w", err)
	}
	file, err := os.OpenFile(f.path, os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("create task file: %w", err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("close task file: %w", err)
	}
	return nil
}

// Save writes the store to the backing file via a temp file and rename.
func (f *FileStore) Save(store *Store) error {
	data, err := encodeStore(store)
	if err != nil {
		return err
	}

	if existing, err := os.ReadFile(f.path); err == nil {
		if bytes.Equal(existing, data) {
			return nil
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("read task file: %w", err)
	}

	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create task file dir: %w", err)
	}

	tmpFile, err := os.CreateTemp(dir, filepath.Base(f.path)+".tmp")
	if err != nil {
		return fmt.Errorf("create temp task file: %w", err)
	}
	name := tmpFile.Name()
	_, err = tmpFile.Write(data)
	if err1 := tmpFile.Close(); err1 != nil && err == nil {
		err = err1
	}
	if err != nil {
		os.Remove(name)
		return fmt.Errorf("write temp task file: %w", err)
	}

	if err := os.Chmod(name, 0644); err != nil {
		os.Remove(name)
		return fmt.Errorf("chmod temp task file: %w", err)
	}

	if err := os.Rename(name, f.path); err != nil {
		os.Remove(name)
		return fmt.Errorf("rename task file: %w", err)
	}

	return nil
}

func encodeStore(store *Store) ([]byte, error) {
	doc := *store
	if doc.Tasks == nil {
		doc.Tasks = []Task{}
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal tasks: %w", err)
	}
	return append(data, '\n'), nil
}
