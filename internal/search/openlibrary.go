// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"golang.org/x/time/rate"

	"github.com/pdiddy/openshelf/internal/httputil"
	"github.com/pdiddy/openshelf/pkg/types"
)

// openLibrarySearchBase is the Open Library search endpoint. Declared as a
// var so tests can substitute an httptest server.
var openLibrarySearchBase = "https://openlibrary.org/search.json"

// openLibraryWorkBase prefixes canonical work keys to build external links.
var openLibraryWorkBase = "https://openlibrary.org"

// Client queries the Open Library search API. Requests are not retried: a
// failed search requires explicit resubmission.
type Client struct {
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewClient builds a Client from cfg. A positive RateLimit installs a
// client-side limiter so repeated searches stay polite to the public API.
func NewClient(cfg types.SearchConfig) *Client {
	c := &Client{httpClient: httputil.NewClient(cfg.HTTPConfig)}
	if cfg.RateLimit > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), 1)
	}
	return c
}

// Search issues one request for q and returns the decoded page, replacing
// any page the caller held before. The author parameter is omitted entirely
// when q.Author is blank. The returned page number is clamped into
// [1, TotalPages].
func (c *Client) Search(ctx context.Context, q Query) (types.Page, error) {
	if q.IsEmpty() {
		return types.Page{}, fmt.Errorf("empty query: a title is required")
	}

	page := q.Page
	if page < 1 {
		page = 1
	}

	params := url.Values{
		"title": {strings.TrimSpace(q.Title)},
		"page":  {strconv.Itoa(page)},
		"limit": {strconv.Itoa(PageSize)},
	}
	if author := strings.TrimSpace(q.Author); author != "" {
		params.Set("author", author)
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return types.Page{}, err
		}
	}

	reqURL := openLibrarySearchBase + "?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return types.Page{}, fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return types.Page{}, fmt.Errorf("Open Library request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return types.Page{}, fmt.Errorf("Open Library returned HTTP %d", resp.StatusCode)
	}

	var olr openLibraryResponse
	if err := json.NewDecoder(resp.Body).Decode(&olr); err != nil {
		return types.Page{}, fmt.Errorf("parsing Open Library response: %w", err)
	}

	docs := make([]types.Doc, 0, len(olr.Docs))
	for _, d := range olr.Docs {
		docs = append(docs, types.Doc{
			Key:              d.Key,
			Title:            d.Title,
			AuthorNames:      d.AuthorName,
			FirstPublishYear: d.FirstPublishYear,
			CoverID:          d.CoverI,
			Subjects:         d.Subject,
		})
	}

	total := TotalPages(olr.NumFound)
	return types.Page{
		Docs:       docs,
		NumFound:   olr.NumFound,
		Page:       ClampPage(page, total),
		TotalPages: total,
	}, nil
}

// WorkURL returns the external Open Library link for a record, or "" when
// the record has no canonical key.
func WorkURL(d types.Doc) string {
	if d.Key == "" {
		return ""
	}
	return openLibraryWorkBase + d.Key
}

// Open Library API JSON structures.
type openLibraryResponse struct {
	NumFound int              `json:"numFound"`
	Docs     []openLibraryDoc `json:"docs"`
}

type openLibraryDoc struct {
	Key              string   `json:"key"`
	Title            string   `json:"title"`
	AuthorName       []string `json:"author_name"`
	FirstPublishYear int      `json:"first_publish_year"`
	CoverI           int      `json:"cover_i"`
	Subject          []string `json:"subject"`
}
