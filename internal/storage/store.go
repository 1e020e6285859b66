// Package storage provides the filesystem-backed upload store.
package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Store writes uploaded blobs under a single directory. Every blob
// gets a UUID-based key so concurrent requests never collide on a
// shared path.
type Store struct {
	dir string
}

// New creates a Store rooted at dir, creating the directory if absent.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir %s: %w", dir, err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the store's root directory.
func (s *Store) Dir() string {
	return s.dir
}

// Save writes r to a new file and returns its key. ext is appended as
// the file extension (without the leading dot, may be empty).
func (s *Store) Save(r io.Reader, ext string) (string, error) {
	key := uuid.NewString()
	if ext != "" {
		key = key + "." + strings.TrimPrefix(ext, ".")
	}

	f, err := os.Create(filepath.Join(s.dir, key))
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		_ = os.Remove(f.Name())
		return "", fmt.Errorf("write upload file: %w", err)
	}
	return key, nil
}

// SaveBytes writes b to a new file and returns its key.
func (s *Store) SaveBytes(b []byte, ext string) (string, error) {
	return s.Save(strings.NewReader(string(b)), ext)
}

// Path resolves a key to its absolute path inside the store. Keys
// containing path separators are rejected so a crafted key can never
// escape the upload directory.
func (s *Store) Path(key string) (string, error) {
	if key == "" || key != filepath.Base(key) {
		return "", fmt.Errorf("invalid storage key %q", key)
	}
	return filepath.Join(s.dir, key), nil
}

// NewKey reserves a fresh key with the given extension without
// creating the file. Used when an external tool writes the file
// itself (e.g. the audio transcoder).
func (s *Store) NewKey(ext string) string {
	key := uuid.NewString()
	if ext != "" {
		key = key + "." + strings.TrimPrefix(ext, ".")
	}
	return key
}

// Remove deletes the given keys, ignoring files already gone.
func (s *Store) Remove(keys ...string) {
	for _, key := range keys {
		if key == "" {
			continue
		}
		p, err := s.Path(key)
		if err != nil {
			continue
		}
		if err := os.Remove(p); err != nil && !os.IsNotExist(err) {
			// Orphaned files are cleaned up on the next restart; not
			// worth failing a request over.
			continue
		}
	}
}
