// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/openshelf/internal/covers"
	"github.com/pdiddy/openshelf/pkg/types"
)

// detailSubjectLimit caps how many subject headings the detail view shows.
const detailSubjectLimit = 10

// FormatTable writes one page of results as a human-readable table. view is
// the display order (already sorted); p supplies the result count and page
// position for the footer. isSaved marks shelved records and may be nil.
func FormatTable(p types.Page, view []types.Doc, isSaved func(types.Doc) bool, w io.Writer) {
	if len(view) == 0 {
		fmt.Fprintln(w, "No results found.")
		return
	}

	fmt.Fprintf(w, "%-4s  %-2s  %-50s  %-24s  %-4s\n", "#", "", "Title", "Author", "Year")
	fmt.Fprintln(w, strings.Repeat("-", 92))

	for i, d := range view {
		mark := ""
		if isSaved != nil && isSaved(d) {
			mark = "*"
		}
		year := ""
		if d.FirstPublishYear > 0 {
			year = fmt.Sprintf("%d", d.FirstPublishYear)
		}
		fmt.Fprintf(w, "%-4d  %-2s  %-50s  %-24s  %-4s\n",
			i+1, mark, truncate(d.Title, 50), truncate(d.FirstAuthor(), 24), year)
	}

	fmt.Fprintf(w, "\n%d results, page %d/%d\n", p.NumFound, p.Page, p.TotalPages)
}

// FormatJSON writes the display view as indented JSON.
func FormatJSON(view []types.Doc, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(view)
}

// FormatDetail writes the expanded view of one record: large cover, all
// authors, publication year, leading subjects, and the external link.
func FormatDetail(d types.Doc, saved bool, w io.Writer) {
	fmt.Fprintln(w, d.Title)
	fmt.Fprintln(w, strings.Repeat("=", len(d.Title)))

	authors := strings.Join(d.AuthorNames, ", ")
	if authors == "" {
		authors = "Unknown"
	}
	fmt.Fprintf(w, "Author(s):  %s\n", authors)

	if d.FirstPublishYear > 0 {
		fmt.Fprintf(w, "Published:  %d\n", d.FirstPublishYear)
	}

	if u := covers.URL(d.CoverID, covers.Large); u != "" {
		fmt.Fprintf(w, "Cover:      %s\n", u)
	} else {
		fmt.Fprintln(w, "Cover:      No cover")
	}

	if len(d.Subjects) > 0 {
		subjects := d.Subjects
		if len(subjects) > detailSubjectLimit {
			subjects = subjects[:detailSubjectLimit]
		}
		fmt.Fprintf(w, "Subjects:   %s\n", strings.Join(subjects, ", "))
	}

	if u := WorkURL(d); u != "" {
		fmt.Fprintf(w, "Link:       %s\n", u)
	}

	if saved {
		fmt.Fprintln(w, "Saved:      yes")
	} else {
		fmt.Fprintln(w, "Saved:      no")
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
