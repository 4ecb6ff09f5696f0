package types

import "time"

// HTTPConfig holds shared HTTP settings for components that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout. Zero means no timeout: the
	// request resolves, errors, or hangs per the transport's defaults.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "openshelf/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// SearchConfig holds settings for the Open Library search client.
type SearchConfig struct {
	HTTPConfig `yaml:",inline"`

	// RateLimit caps outgoing API requests per second. Zero disables
	// client-side limiting.
	RateLimit float64 `json:"rate_limit" yaml:"rate_limit"`
}

// ShelfConfig holds settings for the local save-set.
type ShelfConfig struct {
	// Path is the JSON file holding the save-set. Empty selects
	// [user config dir]/openshelf/saved.json.
	Path string `json:"path" yaml:"path"`
}

// HistoryConfig holds settings for the local search history database.
type HistoryConfig struct {
	// Path is the SQLite database file. Empty selects
	// [user config dir]/openshelf/history.db.
	Path string `json:"path" yaml:"path"`

	// MaxList is the default number of entries `history list` shows (default 20).
	MaxList int `json:"max_list" yaml:"max_list"`
}

// ShellConfig holds settings for the interactive shell.
type ShellConfig struct {
	// StartupTitle, when non-empty, is searched once on shell entry.
	StartupTitle string `json:"startup_title,omitempty" yaml:"startup_title,omitempty"`

	// HistoryFile is the liner prompt-history file. Empty selects
	// [user config dir]/openshelf/shell_history.
	HistoryFile string `json:"history_file,omitempty" yaml:"history_file,omitempty"`
}

// Config groups all component configurations.
type Config struct {
	Search  SearchConfig  `json:"search" yaml:"search"`
	Shelf   ShelfConfig   `json:"shelf" yaml:"shelf"`
	History HistoryConfig `json:"history" yaml:"history"`
	Shell   ShellConfig   `json:"shell" yaml:"shell"`
}
