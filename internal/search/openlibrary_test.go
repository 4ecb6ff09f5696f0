// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/pdiddy/openshelf/pkg/types"
)

const sampleOpenLibraryJSON = `{
  "numFound": 45,
  "docs": [
    {
      "key": "/works/OL893415W",
      "title": "Dune",
      "author_name": ["Frank Herbert"],
      "first_publish_year": 1965,
      "cover_i": 11481354,
      "subject": ["Science fiction", "Deserts", "Politics"]
    },
    {
      "key": "/works/OL893416W",
      "title": "Dune Messiah",
      "author_name": ["Frank Herbert"],
      "first_publish_year": 1969
    }
  ]
}`

// newTestServer points the client at an httptest server and records the
// query parameters of each request.
func newTestServer(t *testing.T, status int, body string) (*Client, *url.Values) {
	t.Helper()

	var gotParams url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotParams = r.URL.Query()
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	oldBase := openLibrarySearchBase
	openLibrarySearchBase = srv.URL
	t.Cleanup(func() { openLibrarySearchBase = oldBase })

	return NewClient(types.SearchConfig{}), &gotParams
}

func TestSearchTitleOnlyOmitsAuthorParam(t *testing.T) {
	client, params := newTestServer(t, http.StatusOK, sampleOpenLibraryJSON)

	_, err := client.Search(context.Background(), Query{Title: "Dune"})
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}

	if got := params.Get("title"); got != "Dune" {
		t.Errorf("title param = %q, want %q", got, "Dune")
	}
	if _, present := (*params)["author"]; present {
		t.Errorf("author param present, want absent")
	}
	if got := params.Get("page"); got != "1" {
		t.Errorf("page param = %q, want %q", got, "1")
	}
	if got := params.Get("limit"); got != "20" {
		t.Errorf("limit param = %q, want %q", got, "20")
	}
}

func TestSearchSendsAuthorWhenSet(t *testing.T) {
	client, params := newTestServer(t, http.StatusOK, sampleOpenLibraryJSON)

	_, err := client.Search(context.Background(), Query{Title: "Dune", Author: "Herbert", Page: 2})
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}

	if got := params.Get("author"); got != "Herbert" {
		t.Errorf("author param = %q, want %q", got, "Herbert")
	}
	if got := params.Get("page"); got != "2" {
		t.Errorf("page param = %q, want %q", got, "2")
	}
}

func TestSearchDecodesResponse(t *testing.T) {
	client, _ := newTestServer(t, http.StatusOK, sampleOpenLibraryJSON)

	page, err := client.Search(context.Background(), Query{Title: "Dune"})
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}

	if page.NumFound != 45 {
		t.Errorf("NumFound = %d, want 45", page.NumFound)
	}
	if page.TotalPages != 3 {
		t.Errorf("TotalPages = %d, want 3", page.TotalPages)
	}
	if len(page.Docs) != 2 {
		t.Fatalf("len(Docs) = %d, want 2", len(page.Docs))
	}

	first := page.Docs[0]
	if first.Key != "/works/OL893415W" {
		t.Errorf("Key = %q", first.Key)
	}
	if first.FirstPublishYear != 1965 {
		t.Errorf("FirstPublishYear = %d, want 1965", first.FirstPublishYear)
	}
	if first.CoverID != 11481354 {
		t.Errorf("CoverID = %d, want 11481354", first.CoverID)
	}
	if len(first.Subjects) != 3 {
		t.Errorf("len(Subjects) = %d, want 3", len(first.Subjects))
	}

	second := page.Docs[1]
	if second.CoverID != 0 {
		t.Errorf("missing cover_i should decode to 0, got %d", second.CoverID)
	}
	if second.FirstAuthor() != "Frank Herbert" {
		t.Errorf("FirstAuthor() = %q", second.FirstAuthor())
	}
}

func TestSearchClampsReturnedPage(t *testing.T) {
	// 45 results means 3 pages; requesting page 5 reports page 3.
	client, params := newTestServer(t, http.StatusOK, sampleOpenLibraryJSON)

	page, err := client.Search(context.Background(), Query{Title: "Dune", Page: 5})
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}

	if got := params.Get("page"); got != "5" {
		t.Errorf("requested page param = %q, want %q", got, "5")
	}
	if page.Page != 3 {
		t.Errorf("Page = %d, want 3", page.Page)
	}
}

func TestSearchEmptyTitleIssuesNoRequest(t *testing.T) {
	requested := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requested = true
	}))
	defer srv.Close()

	oldBase := openLibrarySearchBase
	openLibrarySearchBase = srv.URL
	defer func() { openLibrarySearchBase = oldBase }()

	client := NewClient(types.SearchConfig{})
	if _, err := client.Search(context.Background(), Query{Title: "   "}); err == nil {
		t.Error("Search() with blank title should error")
	}
	if requested {
		t.Error("blank title issued a request")
	}
}

func TestSearchHTTPErrorStatus(t *testing.T) {
	client, _ := newTestServer(t, http.StatusInternalServerError, "boom")

	if _, err := client.Search(context.Background(), Query{Title: "Dune"}); err == nil {
		t.Error("Search() should fail on HTTP 500")
	}
}

func TestSearchMalformedResponse(t *testing.T) {
	client, _ := newTestServer(t, http.StatusOK, "{not json")

	if _, err := client.Search(context.Background(), Query{Title: "Dune"}); err == nil {
		t.Error("Search() should fail on malformed JSON")
	}
}

func TestWorkURL(t *testing.T) {
	tests := []struct {
		name string
		doc  types.Doc
		want string
	}{
		{"canonical key", types.Doc{Key: "/works/OL893415W"}, "https://openlibrary.org/works/OL893415W"},
		{"no key", types.Doc{Title: "Anonymous"}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WorkURL(tt.doc); got != tt.want {
				t.Errorf("WorkURL() = %q, want %q", got, tt.want)
			}
		})
	}
}
