// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package covers resolves cover image URLs from Open Library cover identifiers.
package covers

import "fmt"

// coverBase is the Open Library covers endpoint. Declared as a var so tests
// can substitute it.
var coverBase = "https://covers.openlibrary.org/b/id"

// Size selects the cover image resolution.
type Size string

const (
	Small  Size = "S"
	Medium Size = "M"
	Large  Size = "L"
)

// URL returns the deterministic cover image URL for coverID at the given
// size, or "" when the record has no cover (coverID <= 0). Callers render a
// placeholder for the empty URL.
func URL(coverID int, size Size) string {
	if coverID <= 0 {
		return ""
	}
	return fmt.Sprintf("%s/%d-%s.jpg", coverBase, coverID, size)
}
