// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package shelf

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/pdiddy/openshelf/internal/logger"
	"github.com/pdiddy/openshelf/pkg/types"
)

const savedFile = "saved.json"

// Store reads and writes the save-set as a single JSON document. Loads fall
// back to an empty mapping on any failure; saves are best-effort and never
// surface errors to the caller. Concurrent processes sharing the file race
// with last-write-wins semantics.
type Store struct {
	path string
}

// NewStore returns a Store persisting to path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// DefaultPath returns the save file location under the user config
// directory, falling back to the working directory when that is unknown.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return savedFile
	}
	return filepath.Join(dir, "openshelf", savedFile)
}

// Load reads the persisted save-set. A missing file, unreadable file, or
// invalid JSON all yield an empty mapping, never an error.
func (s *Store) Load() map[string]types.SavedEntry {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.For("shelf").WithError(err).Debug("save file unreadable, starting empty")
		}
		return map[string]types.SavedEntry{}
	}

	var entries map[string]types.SavedEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		logger.For("shelf").WithError(err).Debug("save file corrupt, starting empty")
		return map[string]types.SavedEntry{}
	}
	if entries == nil {
		return map[string]types.SavedEntry{}
	}
	return entries
}

// Save writes the whole save-set back to disk. Write failures are logged at
// debug level and swallowed.
func (s *Store) Save(entries map[string]types.SavedEntry) {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		logger.For("shelf").WithError(err).Debug("save-set marshal failed")
		return
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		logger.For("shelf").WithError(err).Debug("save directory create failed")
		return
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		logger.For("shelf").WithError(err).Debug("save file write failed")
	}
}
