// Package file persists the session record in a client-local JSON
// file, the durable-storage analog of the browser shell's localStorage.
package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/eduline/eduline-client/internal/core/domain"

	"github.com/eduline/eduline-client/internal/core/ports"
)

// Store reads and writes a single JSON document of the form
// {"auth": {token, user}} at a fixed path. Writes are sequential and
// unconditional; when a logout delete races an in-flight login save,
// whichever lands last wins.
type Store struct {
	path string
}

var _ ports.RecordStore = (*Store)(nil)

func New(path string) *Store {
	return &Store{path: path}
}

// Load returns the stored record, (nil, nil) when no file or no entry
// exists, or an error wrapping domain.ErrRecordMalformed when the
// content cannot be decoded. It never modifies the file.
func (s *Store) Load(_ context.Context) (*domain.SessionRecord, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read session file: %w", err)
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrRecordMalformed, err)
	}
	entry, ok := doc[domain.SessionRecordKey]
	if !ok {
		return nil, nil
	}

	var rec domain.SessionRecord
	if err := json.Unmarshal(entry, &rec); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrRecordMalformed, err)
	}
	return &rec, nil
}

// Save overwrites the stored record, creating the parent directory on
// first use. The file is user-readable only; it holds a live token.
func (s *Store) Save(_ context.Context, rec *domain.SessionRecord) error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("create session dir: %w", err)
		}
	}

	raw, err := json.Marshal(map[string]*domain.SessionRecord{domain.SessionRecordKey: rec})
	if err != nil {
		return fmt.Errorf("encode session record: %w", err)
	}
	if err := os.WriteFile(s.path, raw, 0o600); err != nil {
		return fmt.Errorf("write session file: %w", err)
	}
	return nil
}

// Delete removes the file. Deleting an absent record is not an error.
func (s *Store) Delete(_ context.Context) error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("delete session file: %w", err)
	}
	return nil
}
