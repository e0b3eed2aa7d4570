// Package localstore is the client-local durable storage for the storefront:
// one JSON file per key under a state directory, the desktop counterpart of a
// browser's localStorage.
package localstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

type Store[T any] struct {
	dir string
}

func New[T any](dir string) *Store[T] {
	return &Store[T]{dir: dir}
}

// Get returns the value stored under key. A missing key is not an error:
// it reports found=false with the zero value.
func (s *Store[T]) Get(key string) (T, bool, error) {
	var v T

	raw, err := os.ReadFile(s.path(key))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return v, false, nil
		}
		return v, false, fmt.Errorf("localstore: read %s: %w", key, err)
	}

	if err := json.Unmarshal(raw, &v); err != nil {
		return v, false, fmt.Errorf("localstore: decode %s: %w", key, err)
	}

	return v, true, nil
}

// Put writes the value under key atomically (temp file, then rename), so a
// crash mid-write never leaves a half-written record behind.
func (s *Store[T]) Put(key string, v T) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("localstore: mkdir: %w", err)
	}

	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("localstore: encode %s: %w", key, err)
	}

	tmp, err := os.CreateTemp(s.dir, key+".*.tmp")
	if err != nil {
		return fmt.Errorf("localstore: temp %s: %w", key, err)
	}

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("localstore: write %s: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("localstore: close %s: %w", key, err)
	}

	if err := os.Rename(tmp.Name(), s.path(key)); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("localstore: rename %s: %w", key, err)
	}

	return nil
}

// Delete removes the record for key. Deleting an absent key is a no-op.
func (s *Store[T]) Delete(key string) error {
	err := os.Remove(s.path(key))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("localstore: delete %s: %w", key, err)
	}
	return nil
}

func (s *Store[T]) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}
