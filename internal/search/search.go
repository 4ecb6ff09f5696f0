// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package search queries the Open Library search API and shapes the results
// for display: fixed-size pages, clamped page navigation, and a pure sort
// transform over the page in hand.
package search

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/pdiddy/openshelf/pkg/types"
)

// PageSize is the fixed number of results requested per API call.
const PageSize = 20

// Query holds the search parameters for one request. A Query is an
// immutable snapshot: the caller builds a fresh one per submission.
type Query struct {
	// Title is the work title to search for. Required: a query with a
	// blank title issues no request.
	Title string

	// Author optionally narrows the search by author name.
	Author string

	// Page is the 1-based result page to request. Values below 1 are
	// treated as 1.
	Page int
}

// IsEmpty reports whether the query has no searchable title.
func (q Query) IsEmpty() bool {
	return strings.TrimSpace(q.Title) == ""
}

// TotalPages returns max(1, ceil(numFound / PageSize)).
func TotalPages(numFound int) int {
	if numFound <= 0 {
		return 1
	}
	return (numFound + PageSize - 1) / PageSize
}

// ClampPage clamps page into [1, totalPages].
func ClampPage(page, totalPages int) int {
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		return 1
	}
	if page > totalPages {
		return totalPages
	}
	return page
}

// Sort returns a reordered copy of docs. The input is never mutated and the
// document set never changes, only its order. Relevance is the identity
// order; year orders treat a missing year as 0; the title order uses
// locale-aware collation with a missing title as the empty string.
func Sort(docs []types.Doc, order types.SortOrder) []types.Doc {
	out := make([]types.Doc, len(docs))
	copy(out, docs)

	switch order {
	case types.SortYearDesc:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].FirstPublishYear > out[j].FirstPublishYear
		})
	case types.SortYearAsc:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].FirstPublishYear < out[j].FirstPublishYear
		})
	case types.SortTitleAsc:
		c := collate.New(language.Und, collate.IgnoreCase)
		sort.SliceStable(out, func(i, j int) bool {
			return c.CompareString(out[i].Title, out[j].Title) < 0
		})
	}
	return out
}
