// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/openshelf/internal/shelf"
	"github.com/pdiddy/openshelf/pkg/types"
)

var shelfCmd = &cobra.Command{
	Use:   "shelf",
	Short: "Manage the saved shelf (list, remove, export)",
	Long: `Shelf manages the locally persisted save-set. Entries are keyed by the
record's canonical Open Library key (or a title-year composite for records
without one) and survive across sessions.`,
}

// --- list subcommand ---

var shelfListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved books",
	RunE:  runShelfList,
}

func runShelfList(cmd *cobra.Command, args []string) error {
	sh := shelf.Open(shelfConfig())
	printShelfEntries(sh.Entries(), os.Stdout)
	return nil
}

// --- remove subcommand ---

var shelfRemoveCmd = &cobra.Command{
	Use:   "remove [key]",
	Short: "Remove a saved book by key",
	Args:  cobra.ExactArgs(1),
	RunE:  runShelfRemove,
}

func runShelfRemove(cmd *cobra.Command, args []string) error {
	sh := shelf.Open(shelfConfig())
	if !sh.Remove(args[0]) {
		return fmt.Errorf("no saved entry with key %q", args[0])
	}
	fmt.Printf("Removed %s\n", args[0])
	return nil
}

// --- export subcommand ---

var shelfExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the shelf to YAML or JSON",
	RunE:  runShelfExport,
}

func runShelfExport(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	outPath, _ := cmd.Flags().GetString("out")

	sh := shelf.Open(shelfConfig())

	var w io.Writer = os.Stdout
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("creating export file: %w", err)
		}
		defer f.Close()
		w = f
	}

	if err := sh.Export(w, format); err != nil {
		return err
	}
	if outPath != "" {
		fmt.Printf("Exported %d entries to %s\n", sh.Len(), outPath)
	}
	return nil
}

func init() {
	shelfExportCmd.Flags().String("format", "yaml", "export format: yaml or json")
	shelfExportCmd.Flags().String("out", "", "write to file instead of stdout")

	shelfCmd.AddCommand(shelfListCmd)
	shelfCmd.AddCommand(shelfRemoveCmd)
	shelfCmd.AddCommand(shelfExportCmd)
	rootCmd.AddCommand(shelfCmd)
}

// printShelfEntries renders the save-set as a table. Shared with the
// interactive shell.
func printShelfEntries(entries []types.SavedEntry, w io.Writer) {
	if len(entries) == 0 {
		fmt.Fprintln(w, "Shelf is empty.")
		return
	}

	fmt.Fprintf(w, "%-24s  %-44s  %-22s  %-4s\n", "Key", "Title", "Author", "Year")
	fmt.Fprintln(w, strings.Repeat("-", 100))

	for _, e := range entries {
		year := ""
		if e.Year > 0 {
			year = fmt.Sprintf("%d", e.Year)
		}
		fmt.Fprintf(w, "%-24s  %-44s  %-22s  %-4s\n",
			clip(e.Key, 24), clip(e.Title, 44), clip(e.Author, 22), year)
	}

	fmt.Fprintf(w, "\n%d saved\n", len(entries))
}

func clip(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
