package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/nao1215/lnsources/internal/catalog"
	"github.com/nao1215/lnsources/internal/config"
	applog "github.com/nao1215/lnsources/internal/log"
	"github.com/nao1215/lnsources/internal/source"
	_ "github.com/nao1215/lnsources/internal/sources/all" // built-in scrapers
)

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// addConfigFlag registers the --config flag shared by commands that build
// the registry.
func addConfigFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .lnsources in current directory, XDG config or home directory)")
}

// addFormatFlags registers the --json and --markdown flags.
func addFormatFlags(cmd *cobra.Command) {
	cmd.Flags().BoolP("json", "j", false,
		"Output JSON (mutually exclusive with --markdown)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output Markdown (mutually exclusive with --json)")
}

// buildConfig reads the flags shared by list and resolve and loads the
// configuration file.
func buildConfig(cmd *cobra.Command) (*config.Config, string, error) {
	cfg := config.NewConfig()
	cfg.Verbose = getVerboseFlag(cmd)

	var err error
	if cmd.Flags().Lookup("config") != nil {
		cfg.ConfigFilePath, err = cmd.Flags().GetString("config")
		if err != nil {
			return nil, "", err
		}
	}

	cfg.JSONReport, err = cmd.Flags().GetBool("json")
	if err != nil {
		return nil, "", err
	}
	cfg.MarkdownReport, err = cmd.Flags().GetBool("markdown")
	if err != nil {
		return nil, "", err
	}

	if cmd.Flags().Lookup("output") != nil {
		cfg.ReportFile, err = cmd.Flags().GetString("output")
		if err != nil {
			return nil, "", err
		}
	}
	if cmd.Flags().Lookup("db-dir") != nil {
		dbDir, err := cmd.Flags().GetString("db-dir")
		if err != nil {
			return nil, "", err
		}
		if dbDir != "" {
			cfg.DBDir = dbDir
		}
	}

	if cmd.Flags().Lookup("config") == nil {
		return cfg, "", nil
	}

	// An explicitly given config file must exist; otherwise a missing file
	// means an empty rejection table and no declared sources.
	sources, path, err := config.Load(cfg.ConfigFilePath)
	if err != nil {
		if path == "" {
			path = cfg.ConfigFilePath
		}
		return nil, "", fmt.Errorf("failed to load config file %s: %w", path, err)
	}
	cfg.Sources = sources

	return cfg, path, nil
}

// setupLogger creates a structured logger writing to the command's stderr.
func setupLogger(cmd *cobra.Command, verbose bool) *slog.Logger {
	return applog.NewLogger(cmd.ErrOrStderr(), verbose)
}

// buildRegistry populates a registry from the built-in catalog followed by
// the sources declared in the configuration file.
func buildRegistry(cfg *config.Config, logger *slog.Logger) (*source.Registry, error) {
	declared := cfg.Sources.DeclaredSources()
	extra := make([]source.Entry, 0, len(declared))
	for _, s := range declared {
		extra = append(extra, catalog.Declared(s.Name, s.BaseURLs))
	}

	policy := source.NewPolicy(cfg.Sources.RejectionTable())
	reg := source.NewRegistry(policy, source.WithLogger(logger))
	if err := reg.RegisterAll(catalog.Merge(catalog.Entries(), extra)); err != nil {
		return nil, fmt.Errorf("failed to build source registry: %w", err)
	}

	logger.Info("source registry ready",
		"scrapers", reg.Len(),
		"excluded", len(reg.Exclusions()),
		"rejected_hosts", policy.Len(),
	)
	return reg, nil
}

// openOutput returns the destination for a report: path when set,
// otherwise the command's stdout. The returned close function is never nil.
func openOutput(cmd *cobra.Command, path string) (io.Writer, func() error, error) {
	if path == "" {
		return cmd.OutOrStdout(), func() error { return nil }, nil
	}

	// Create directories if they don't exist
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return nil, nil, fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600) //nolint:gosec // User-provided output path is intentional
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create output file: %w", err)
	}
	return f, f.Close, nil
}

// writeOutput runs write against the report destination for path and
// closes it. A close error is returned when write itself succeeded.
func writeOutput(cmd *cobra.Command, path string, write func(io.Writer) error) error {
	output, closeOutput, err := openOutput(cmd, path)
	if err != nil {
		return err
	}
	return writeAndClose(output, closeOutput, write)
}

func writeAndClose(w io.Writer, closeFn func() error, write func(io.Writer) error) error {
	if err := write(w); err != nil {
		_ = closeFn() //nolint:errcheck // the write error takes precedence
		return err
	}
	if err := closeFn(); err != nil {
		return fmt.Errorf("failed to close output file: %w", err)
	}
	return nil
}
