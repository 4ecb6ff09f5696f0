package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/openshelf/internal/history"
	"github.com/pdiddy/openshelf/internal/logger"
	"github.com/pdiddy/openshelf/internal/search"
	"github.com/pdiddy/openshelf/internal/shelf"
	"github.com/pdiddy/openshelf/pkg/types"
)

var searchCmd = &cobra.Command{
	Use:   "search [title]",
	Short: "Search Open Library for books by title",
	Long: `Search queries the Open Library search API for books matching a title and
optional author. Results come back a page at a time (20 per page); saved
books are marked with * in the table output.`,
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().String("author", "", "filter by author name")
	searchCmd.Flags().Int("page", 1, "result page to fetch")
	searchCmd.Flags().String("sort", "relevance", "display order: relevance, year-desc, year-asc, title-asc")
	searchCmd.Flags().Bool("json", false, "output results as JSON")

	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	title := strings.TrimSpace(strings.Join(args, " "))
	if title == "" {
		return fmt.Errorf("title is required")
	}

	author, _ := cmd.Flags().GetString("author")
	pageNum, _ := cmd.Flags().GetInt("page")
	sortFlag, _ := cmd.Flags().GetString("sort")

	order := types.SortOrder(sortFlag)
	if !order.Valid() {
		return fmt.Errorf("unknown sort order %q: use relevance, year-desc, year-asc, or title-asc", sortFlag)
	}

	client := search.NewClient(searchConfig())
	q := search.Query{Title: title, Author: author, Page: pageNum}

	page, err := client.Search(context.Background(), q)
	if err != nil {
		return err
	}

	recordSearch(q, page)

	view := search.Sort(page.Docs, order)

	jsonOutput, _ := cmd.Flags().GetBool("json")
	if jsonOutput {
		return search.FormatJSON(view, os.Stdout)
	}

	sh := shelf.Open(shelfConfig())
	search.FormatTable(page, view, sh.Saved, os.Stdout)
	return nil
}

// recordSearch appends the executed search to the local history, best-effort.
func recordSearch(q search.Query, page types.Page) {
	store, err := history.NewStore(historyConfig())
	if err != nil {
		logger.For("history").WithError(err).Debug("history unavailable")
		return
	}
	defer store.Close()

	if err := store.Record(context.Background(),
		strings.TrimSpace(q.Title), strings.TrimSpace(q.Author),
		page.Page, page.NumFound,
	); err != nil {
		logger.For("history").WithError(err).Debug("history record failed")
	}
}

// --- shared config helpers ---

func searchConfig() types.SearchConfig {
	return types.SearchConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   viper.GetDuration("http.timeout"),
			UserAgent: viper.GetString("http.user_agent"),
		},
		RateLimit: viper.GetFloat64("search.rate_limit"),
	}
}

func shelfConfig() types.ShelfConfig {
	return types.ShelfConfig{
		Path: viper.GetString("shelf.path"),
	}
}

func historyConfig() types.HistoryConfig {
	return types.HistoryConfig{
		Path:    viper.GetString("history.path"),
		MaxList: viper.GetInt("history.max_list"),
	}
}
