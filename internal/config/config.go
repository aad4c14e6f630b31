package config

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

// Default configuration values.
const (
	// AppName is the application name used for XDG directory paths.
	AppName = "lnsources"

	// DefaultConcurrency is the number of URLs resolved in parallel by the
	// resolve command. Lookups are in-memory, so this only matters for very
	// long query lists.
	DefaultConcurrency = 8
)

// Config holds all command options for lnsources.
// It is populated from CLI flags and passed down explicitly; there is no
// global configuration state.
type Config struct {
	// Verbose enables detailed log output using slog.LevelDebug.
	// When false, only warnings and errors are logged.
	Verbose bool

	// ConfigFilePath is the path to the configuration file.
	// If empty, FindConfigFile searches the default locations.
	ConfigFilePath string

	// Sources holds the configuration file contents, or an empty File when
	// no configuration file was found.
	Sources *File

	// JSONReport selects JSON output. Mutually exclusive with MarkdownReport.
	JSONReport bool

	// MarkdownReport selects Markdown output. Mutually exclusive with JSONReport.
	MarkdownReport bool

	// ReportFile is the output file path for the report.
	// When set, the report is written to this file instead of stdout.
	ReportFile string

	// DBDir is the directory holding the snapshot database.
	// Defaults to the XDG data directory (~/.local/share/lnsources on Linux).
	DBDir string

	// SaveToDB stores a snapshot of the registry after listing it.
	SaveToDB bool

	// Concurrency is the number of queries resolved in parallel.
	Concurrency int

	// Queries are the URLs, or scraper names when ByName is set, to resolve.
	Queries []string

	// ByName resolves Queries as logical scraper names instead of URLs.
	ByName bool
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Sources:     &File{},
		DBDir:       XDGDataDir(),
		Concurrency: DefaultConcurrency,
	}
}

// XDGDataDir returns the XDG data directory for lnsources.
// On Linux: ~/.local/share/lnsources
// On macOS: ~/Library/Application Support/lnsources
// On Windows: %LOCALAPPDATA%\lnsources
func XDGDataDir() string {
	return filepath.Join(xdg.DataHome, AppName)
}

// XDGConfigDir returns the XDG config directory for lnsources.
// On Linux: ~/.config/lnsources
// On macOS: ~/Library/Application Support/lnsources
// On Windows: %APPDATA%\lnsources
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Validate checks the options shared by every command and returns the
// first problem found.
func (c *Config) Validate() error {
	if c.JSONReport && c.MarkdownReport {
		return ErrConflictingReportFormats
	}
	if c.Concurrency <= 0 {
		return ErrInvalidConcurrency
	}
	return nil
}

// ValidateResolve checks the options of the resolve command.
func (c *Config) ValidateResolve() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if len(c.Queries) == 0 {
		return ErrNoQuery
	}
	return nil
}
