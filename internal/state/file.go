package state

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
)

// JSONFile stores all records as a single JSON object keyed by user id.
type JSONFile struct {
	path string
	mu   sync.Mutex
}

func NewJSONFile(path string) (*JSONFile, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("ensure dir: %w", err)
	}
	return &JSONFile{path: path}, nil
}

// Load returns an empty set when the file does not exist or is empty.
// Malformed content is reported as an error.
func (r *JSONFile) Load() (map[int64]UserRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	f, err := os.Open(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return map[int64]UserRecord{}, nil
		}
		return nil, fmt.Errorf("open: %w", err)
	}
	defer func(f *os.File) {
		_ = f.Close()
	}(f)
	records := map[int64]UserRecord{}
	if err := json.NewDecoder(f).Decode(&records); err != nil {
		if err == io.EOF {
			return map[int64]UserRecord{}, nil
		}
		return nil, fmt.Errorf("decode %s: %w", r.path, err)
	}
	return records, nil
}

// Save replaces the file atomically via a temp file in the same directory.
func (r *JSONFile) Save(records map[int64]UserRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	tmp, err := os.CreateTemp(filepath.Dir(r.path), filepath.Base(r.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp: %w", err)
	}
	enc := json.NewEncoder(tmp)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("encode: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("close temp: %w", err)
	}
	if err := os.Rename(tmp.Name(), r.path); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("replace %s: %w", r.path, err)
	}
	return nil
}
