package search

import (
	"bytes"
	"strings"
	"testing"

	"github.com/pdiddy/openshelf/pkg/types"
)

func TestFormatTableEmpty(t *testing.T) {
	var buf bytes.Buffer
	FormatTable(types.Page{Page: 1, TotalPages: 1}, nil, nil, &buf)

	if !strings.Contains(buf.String(), "No results found.") {
		t.Errorf("empty page output = %q", buf.String())
	}
}

func TestFormatTableMarksSaved(t *testing.T) {
	page := types.Page{
		Docs:       sampleDocs(),
		NumFound:   45,
		Page:       2,
		TotalPages: 3,
	}
	saved := func(d types.Doc) bool { return d.Key == "/works/B" }

	var buf bytes.Buffer
	FormatTable(page, page.Docs, saved, &buf)
	out := buf.String()

	if !strings.Contains(out, "45 results, page 2/3") {
		t.Errorf("footer missing from output:\n%s", out)
	}
	marked := 0
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, "*") {
			marked++
		}
	}
	if marked != 1 {
		t.Errorf("saved marker count = %d, want 1", marked)
	}
}

func TestFormatDetail(t *testing.T) {
	doc := types.Doc{
		Key:              "/works/OL893415W",
		Title:            "Dune",
		AuthorNames:      []string{"Frank Herbert", "Someone Else"},
		FirstPublishYear: 1965,
		CoverID:          11481354,
		Subjects: []string{
			"s1", "s2", "s3", "s4", "s5", "s6", "s7", "s8", "s9", "s10", "s11", "s12",
		},
	}

	var buf bytes.Buffer
	FormatDetail(doc, true, &buf)
	out := buf.String()

	if !strings.Contains(out, "Frank Herbert, Someone Else") {
		t.Errorf("authors not joined:\n%s", out)
	}
	if !strings.Contains(out, "https://covers.openlibrary.org/b/id/11481354-L.jpg") {
		t.Errorf("large cover URL missing:\n%s", out)
	}
	if !strings.Contains(out, "https://openlibrary.org/works/OL893415W") {
		t.Errorf("external link missing:\n%s", out)
	}
	if !strings.Contains(out, "s10") || strings.Contains(out, "s11") {
		t.Errorf("subjects should be capped at 10:\n%s", out)
	}
	if !strings.Contains(out, "Saved:      yes") {
		t.Errorf("saved state missing:\n%s", out)
	}
}

func TestFormatDetailNoCoverNoAuthors(t *testing.T) {
	doc := types.Doc{Title: "Mystery"}

	var buf bytes.Buffer
	FormatDetail(doc, false, &buf)
	out := buf.String()

	if !strings.Contains(out, "No cover") {
		t.Errorf("placeholder missing:\n%s", out)
	}
	if !strings.Contains(out, "Unknown") {
		t.Errorf("unknown author missing:\n%s", out)
	}
	if !strings.Contains(out, "Saved:      no") {
		t.Errorf("saved state missing:\n%s", out)
	}
}
