// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the openshelf CLI.
package types

// Doc is one bibliographic record returned by the Open Library search API.
// Docs are transient: each search replaces the current page wholesale.
type Doc struct {
	// Key is the canonical Open Library identifier (e.g. "/works/OL45883W").
	Key string `json:"key" yaml:"key"`

	// Title is the work title as returned by the API.
	Title string `json:"title" yaml:"title"`

	// AuthorNames lists the authors in source order.
	AuthorNames []string `json:"author_name" yaml:"author_name"`

	// FirstPublishYear is the earliest known publication year, 0 if unknown.
	FirstPublishYear int `json:"first_publish_year" yaml:"first_publish_year"`

	// CoverID is the numeric cover image identifier, 0 if the work has no cover.
	CoverID int `json:"cover_i" yaml:"cover_i"`

	// Subjects lists subject headings, in source order.
	Subjects []string `json:"subject" yaml:"subject"`
}

// FirstAuthor returns the first listed author, or "Unknown" when the record
// carries no author names.
func (d Doc) FirstAuthor() string {
	if len(d.AuthorNames) == 0 {
		return "Unknown"
	}
	return d.AuthorNames[0]
}

// Page holds one page of search results together with the API's reported
// total and the derived page count.
type Page struct {
	// Docs is the current page of results, in API order.
	Docs []Doc `json:"docs" yaml:"docs"`

	// NumFound is the total number of matches the API reported.
	NumFound int `json:"num_found" yaml:"num_found"`

	// Page is the current page number, clamped into [1, TotalPages].
	Page int `json:"page" yaml:"page"`

	// TotalPages is max(1, ceil(NumFound / page size)).
	TotalPages int `json:"total_pages" yaml:"total_pages"`
}

// SavedEntry is one bookmarked record in the local shelf. Entries are keyed
// by a stable identifier and persisted on every mutation.
type SavedEntry struct {
	// Key is the stable identifier: the record's canonical key, or a
	// title-year composite when the record has none.
	Key string `json:"key" yaml:"key"`

	// Title is the work title at save time.
	Title string `json:"title" yaml:"title"`

	// Author is the first author name, or "Unknown".
	Author string `json:"author" yaml:"author"`

	// Year is the first publication year, 0 if unknown.
	Year int `json:"year,omitempty" yaml:"year,omitempty"`

	// CoverURL is the medium-size cover image URL, empty when the record
	// has no cover.
	CoverURL string `json:"cover_url,omitempty" yaml:"cover_url,omitempty"`

	// WorkRef is the canonical Open Library reference, when known.
	WorkRef string `json:"work_ref,omitempty" yaml:"work_ref,omitempty"`
}

// SortOrder selects how the current result page is ordered for display.
// Sorting is a pure transform over the page already in hand; it is never
// sent to the API and never persisted.
type SortOrder string

const (
	// SortRelevance preserves the API's order.
	SortRelevance SortOrder = "relevance"

	// SortYearDesc orders by first publication year, newest first.
	// Records without a year sort as year 0.
	SortYearDesc SortOrder = "year-desc"

	// SortYearAsc orders by first publication year, oldest first.
	SortYearAsc SortOrder = "year-asc"

	// SortTitleAsc orders by title using locale-aware collation.
	SortTitleAsc SortOrder = "title-asc"
)

// Valid reports whether s is a recognized sort order.
func (s SortOrder) Valid() bool {
	switch s {
	case SortRelevance, SortYearDesc, SortYearAsc, SortTitleAsc:
		return true
	}
	return false
}
