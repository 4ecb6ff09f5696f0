// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/peterh/liner"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/openshelf/internal/history"
	"github.com/pdiddy/openshelf/internal/logger"
	"github.com/pdiddy/openshelf/internal/search"
	"github.com/pdiddy/openshelf/internal/shelf"
	"github.com/pdiddy/openshelf/pkg/types"
)

// genericSearchError is the single user-visible message for any failed
// search, regardless of cause. The underlying error goes to the debug log.
const genericSearchError = "Something went wrong. Please try again."

// quickPicks are the example titles offered by the 'examples' command.
// Picking one submits a title-only search from page 1.
var quickPicks = []string{
	"Dune",
	"The Hobbit",
	"Pride and Prejudice",
	"Neuromancer",
}

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Interactive search session",
	Long: `Shell starts an interactive session: search by title, filter by author,
page through results, sort the current page, inspect a result in detail,
and toggle entries on the saved shelf. Type 'help' at the prompt for the
command list.`,
	RunE: runShell,
}

func init() {
	shellCmd.Flags().String("startup-title", "", "search this title on entry (overrides shell.startup_title)")

	rootCmd.AddCommand(shellCmd)
}

// session holds the state of one interactive run: the active query, the
// current result page, its display order, and the open shelf. All state is
// owned by the prompt loop; searches run to completion before the next
// command is read, so a stale response can never overwrite a newer one.
type session struct {
	client *search.Client
	shelf  *shelf.Shelf
	hist   *history.Store // nil when the history database is unavailable

	query  search.Query
	page   types.Page
	view   []types.Doc // current page in display order
	order  types.SortOrder
	loaded bool
}

func runShell(cmd *cobra.Command, args []string) error {
	s := &session{
		client: search.NewClient(searchConfig()),
		shelf:  shelf.Open(shelfConfig()),
		order:  types.SortRelevance,
	}

	if store, err := history.NewStore(historyConfig()); err == nil {
		s.hist = store
		defer store.Close()
	} else {
		logger.For("history").WithError(err).Debug("history unavailable")
	}

	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	histFile := viper.GetString("shell.history_file")
	if histFile == "" {
		histFile = defaultShellHistoryPath()
	}
	if f, err := os.Open(histFile); err == nil {
		line.ReadHistory(f)
		f.Close()
	}
	defer writePromptHistory(line, histFile)

	fmt.Println("openshelf interactive shell. Type 'help' for commands, 'quit' to leave.")

	startup, _ := cmd.Flags().GetString("startup-title")
	if startup == "" {
		startup = viper.GetString("shell.startup_title")
	}
	if strings.TrimSpace(startup) != "" {
		s.submit(startup, "")
	}

	for {
		input, err := line.Prompt("openshelf> ")
		if err != nil {
			// Ctrl-C or EOF ends the session.
			fmt.Println()
			return nil
		}
		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		line.AppendHistory(input)

		if s.dispatch(input) {
			return nil
		}
	}
}

// dispatch handles one command line and reports whether the session ends.
func (s *session) dispatch(input string) bool {
	fields := strings.Fields(input)
	name := fields[0]
	rest := strings.TrimSpace(strings.TrimPrefix(input, name))

	switch name {
	case "quit", "exit":
		return true
	case "help":
		printShellHelp()
	case "search":
		if rest == "" {
			fmt.Println("usage: search <title>")
		} else {
			s.submit(rest, s.query.Author)
		}
	case "author":
		s.query.Author = rest
		if rest == "" {
			fmt.Println("Author filter cleared. It applies on the next search.")
		} else {
			fmt.Printf("Author filter set to %q. It applies on the next search.\n", rest)
		}
	case "sort":
		s.setOrder(rest)
	case "next":
		s.goTo(s.page.Page + 1)
	case "prev":
		s.goTo(s.page.Page - 1)
	case "page":
		n, err := strconv.Atoi(rest)
		if err != nil {
			fmt.Println("usage: page <number>")
		} else {
			s.goTo(n)
		}
	case "show":
		if d, ok := s.docAt(rest); ok {
			search.FormatDetail(d, s.shelf.Saved(d), os.Stdout)
		}
	case "save":
		if d, ok := s.docAt(rest); ok {
			if s.shelf.Toggle(d) {
				fmt.Printf("Saved: %s\n", d.Title)
			} else {
				fmt.Printf("Removed: %s\n", d.Title)
			}
		}
	case "shelf":
		printShelfEntries(s.shelf.Entries(), os.Stdout)
	case "remove":
		if rest == "" {
			fmt.Println("usage: remove <key>")
		} else if s.shelf.Remove(rest) {
			fmt.Printf("Removed %s\n", rest)
		} else {
			fmt.Printf("No saved entry with key %q.\n", rest)
		}
	case "examples":
		for i, title := range quickPicks {
			fmt.Printf("%d. %s\n", i+1, title)
		}
		fmt.Println("Use: example <number>")
	case "example":
		n, err := strconv.Atoi(rest)
		if err != nil || n < 1 || n > len(quickPicks) {
			fmt.Printf("usage: example <1-%d>\n", len(quickPicks))
		} else {
			s.submit(quickPicks[n-1], "")
		}
	default:
		fmt.Printf("Unknown command %q. Type 'help'.\n", name)
	}
	return false
}

// submit resets to page 1 and issues a search. A blank title submits nothing.
func (s *session) submit(title, author string) {
	if strings.TrimSpace(title) == "" {
		return
	}
	s.query = search.Query{
		Title:  strings.TrimSpace(title),
		Author: strings.TrimSpace(author),
		Page:   1,
	}
	s.run()
}

// goTo navigates to the given page, clamped into the valid range, and
// re-issues the current query.
func (s *session) goTo(page int) {
	if !s.loaded {
		fmt.Println("No search yet. Use: search <title>")
		return
	}
	target := search.ClampPage(page, s.page.TotalPages)
	if target == s.page.Page {
		fmt.Printf("Already on page %d/%d.\n", s.page.Page, s.page.TotalPages)
		return
	}
	s.query.Page = target
	s.run()
}

func (s *session) setOrder(arg string) {
	order := types.SortOrder(arg)
	if !order.Valid() {
		fmt.Println("usage: sort relevance|year-desc|year-asc|title-asc")
		return
	}
	s.order = order
	if s.loaded {
		s.render()
	}
}

// run executes the current query with a spinner. On success the page state
// is replaced wholesale; on failure the prior page stays as it was and a
// generic message is shown.
func (s *session) run() {
	spinner := progressbar.NewOptions(-1,
		progressbar.OptionSetDescription("searching"),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionClearOnFinish(),
	)

	done := make(chan struct{})
	var page types.Page
	var err error
	go func() {
		page, err = s.client.Search(context.Background(), s.query)
		close(done)
	}()
	for waiting := true; waiting; {
		select {
		case <-done:
			waiting = false
		case <-time.After(100 * time.Millisecond):
			spinner.Add(1)
		}
	}
	spinner.Finish()

	if err != nil {
		logger.For("search").WithError(err).Debug("search failed")
		fmt.Println(genericSearchError)
		return
	}

	s.page = page
	s.query.Page = page.Page
	s.loaded = true
	s.record(page)
	s.render()
}

// record appends the executed search to history, best-effort.
func (s *session) record(page types.Page) {
	if s.hist == nil {
		return
	}
	if err := s.hist.Record(context.Background(),
		s.query.Title, s.query.Author, page.Page, page.NumFound,
	); err != nil {
		logger.For("history").WithError(err).Debug("history record failed")
	}
}

// render redraws the current page from the top in the selected order.
func (s *session) render() {
	s.view = search.Sort(s.page.Docs, s.order)
	search.FormatTable(s.page, s.view, s.shelf.Saved, os.Stdout)
}

// docAt resolves a 1-based result number against the displayed order.
func (s *session) docAt(arg string) (types.Doc, bool) {
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 || n > len(s.view) {
		fmt.Println("Pick a result number from the current page.")
		return types.Doc{}, false
	}
	return s.view[n-1], true
}

func printShellHelp() {
	fmt.Print(`Commands:
  search <title>      search by title (author filter applies if set)
  author [name]       set or clear the author filter
  sort <order>        relevance | year-desc | year-asc | title-asc
  next / prev         page through results
  page <n>            jump to a page (clamped to the valid range)
  show <n>            detail view of result n
  save <n>            toggle result n on the saved shelf
  shelf               list saved books
  remove <key>        remove a saved book by key
  examples            list quick-pick example titles
  example <n>         search a quick-pick title
  quit                leave the shell
`)
}

func defaultShellHistoryPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ".openshelf_history"
	}
	return filepath.Join(dir, "openshelf", "shell_history")
}

func writePromptHistory(line *liner.State, path string) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return
	}
	f, err := os.Create(path)
	if err != nil {
		return
	}
	defer f.Close()
	line.WriteHistory(f)
}
