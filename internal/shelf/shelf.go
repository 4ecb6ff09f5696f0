// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package shelf maintains the locally persisted save-set: a keyed mapping of
// bookmarked records written through to disk on every mutation.
package shelf

import (
	"fmt"
	"sort"

	"github.com/pdiddy/openshelf/internal/covers"
	"github.com/pdiddy/openshelf/pkg/types"
)

// Key derives the stable identifier for a record: its canonical key when
// present, otherwise a title-year composite.
func Key(d types.Doc) string {
	if d.Key != "" {
		return d.Key
	}
	return fmt.Sprintf("%s-%d", d.Title, d.FirstPublishYear)
}

// Shelf is the in-memory save-set backed by a Store. All mutations persist
// immediately, best-effort.
type Shelf struct {
	store   *Store
	entries map[string]types.SavedEntry
}

// Open loads the save-set from cfg's path (or the default location). A
// missing or corrupt file yields an empty shelf; Open never fails.
func Open(cfg types.ShelfConfig) *Shelf {
	path := cfg.Path
	if path == "" {
		path = DefaultPath()
	}
	store := NewStore(path)
	return &Shelf{
		store:   store,
		entries: store.Load(),
	}
}

// Toggle saves d if it is not on the shelf and removes it if it is. It
// reports whether the record is saved after the call.
func (s *Shelf) Toggle(d types.Doc) bool {
	k := Key(d)
	if _, ok := s.entries[k]; ok {
		delete(s.entries, k)
		s.store.Save(s.entries)
		return false
	}

	s.entries[k] = types.SavedEntry{
		Key:      k,
		Title:    d.Title,
		Author:   d.FirstAuthor(),
		Year:     d.FirstPublishYear,
		CoverURL: covers.URL(d.CoverID, covers.Medium),
		WorkRef:  d.Key,
	}
	s.store.Save(s.entries)
	return true
}

// Remove deletes the entry with the given key and reports whether it existed.
func (s *Shelf) Remove(key string) bool {
	if _, ok := s.entries[key]; !ok {
		return false
	}
	delete(s.entries, key)
	s.store.Save(s.entries)
	return true
}

// Saved reports whether d is on the shelf.
func (s *Shelf) Saved(d types.Doc) bool {
	_, ok := s.entries[Key(d)]
	return ok
}

// Entries returns the save-set ordered by title, then key.
func (s *Shelf) Entries() []types.SavedEntry {
	out := make([]types.SavedEntry, 0, len(s.entries))
	for _, e := range s.entries {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Title != out[j].Title {
			return out[i].Title < out[j].Title
		}
		return out[i].Key < out[j].Key
	})
	return out
}

// Len returns the number of saved entries.
func (s *Shelf) Len() int {
	return len(s.entries)
}
