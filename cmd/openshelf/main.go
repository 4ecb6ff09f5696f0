// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the openshelf CLI: search Open
// Library for books and keep a locally persisted shelf of saved titles.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/openshelf/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the openshelf CLI.
var rootCmd = &cobra.Command{
	Use:   "openshelf",
	Short: "Search Open Library and keep a local shelf of saved books",
	Long: `openshelf is a client for the Open Library search API. It searches by
title and optional author, pages through results, and keeps a locally
persisted shelf of saved books. Nothing is ever written back to the remote
service; all state lives in the user config directory.

Use the one-shot subcommands (search, shelf, history) for scripting, or
'openshelf shell' for an interactive session with paging, sorting, detail
views, and save toggling.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		verbose, _ := cmd.Flags().GetBool("verbose")
		logger.Setup(verbose)
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./openshelf.yaml or ~/.config/openshelf/config.yaml)")
	rootCmd.PersistentFlags().Bool("verbose", false, "enable debug logging")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("openshelf")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "openshelf"))
		}
	}

	viper.SetDefault("http.user_agent", "openshelf/"+version)
	viper.SetDefault("search.rate_limit", 1.0)

	viper.SetEnvPrefix("OPENSHELF")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
