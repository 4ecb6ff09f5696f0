// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/openshelf/internal/history"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Inspect the local search history",
	Long: `History lists or clears the local log of executed searches. The log is
kept in a SQLite database in the user config directory and never leaves
the machine.`,
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent searches, newest first",
	RunE:  runHistoryList,
}

func runHistoryList(cmd *cobra.Command, args []string) error {
	limit, _ := cmd.Flags().GetInt("limit")

	store, err := history.NewStore(historyConfig())
	if err != nil {
		return err
	}
	defer store.Close()

	entries, err := store.List(context.Background(), limit)
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		fmt.Println("No searches recorded.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-16s  %-36s  %-20s  %-4s  %s\n",
		"When", "Title", "Author", "Page", "Found")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 90))

	for _, e := range entries {
		when := ""
		if !e.SearchedAt.IsZero() {
			when = e.SearchedAt.Local().Format("2006-01-02 15:04")
		}
		fmt.Fprintf(os.Stdout, "%-16s  %-36s  %-20s  %-4d  %d\n",
			when, clip(e.Title, 36), clip(e.Author, 20), e.Page, e.NumFound)
	}
	return nil
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all recorded searches",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := history.NewStore(historyConfig())
		if err != nil {
			return err
		}
		defer store.Close()

		if err := store.Clear(context.Background()); err != nil {
			return err
		}
		fmt.Println("History cleared.")
		return nil
	},
}

func init() {
	historyListCmd.Flags().Int("limit", 0, "maximum entries to show (0 uses the configured default)")

	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyClearCmd)
	rootCmd.AddCommand(historyCmd)
}
