package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/nao1215/lnsources/internal/config"
	"github.com/nao1215/lnsources/internal/model"
	"github.com/nao1215/lnsources/internal/report"
	"github.com/nao1215/lnsources/internal/resolve"
)

// errRejectedQuery is returned when at least one query points at a
// rejected source, so scripts can detect it through the exit status.
var errRejectedQuery = errors.New("query points at a rejected source")

// NewResolveCmd creates the resolve command.
func NewResolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve <url>...",
		Short: "Find the scraper responsible for each URL",
		Long: `Resolve looks up the scraper responsible for each given URL.

A URL matches a scraper when its host equals the host of one of the
scraper's base URLs. Hosts are compared case-insensitively, without a
trailing dot and without the default port of the scheme. When several
scrapers serve the same host, the first registered one wins.

URLs whose host is on the rejection list are reported as rejected, and the
command exits with a non-zero status after printing all results.

Examples:
  # Resolve a chapter URL
  lnsources resolve https://www.royalroad.com/fiction/21220

  # Resolve several URLs as JSON
  lnsources resolve --json https://novelfull.com/a.html https://69shuba.com/book/1.htm

  # Look up scrapers by logical name instead of URL
  lnsources resolve --name en.r.royalroad ja.syosetu`,
		Args: cobra.ArbitraryArgs,
		RunE: runResolveCmd,
	}

	addConfigFlag(cmd)
	addFormatFlags(cmd)
	cmd.Flags().BoolP("name", "n", false,
		"Treat arguments as logical scraper names instead of URLs")
	cmd.Flags().IntP("batch", "b", config.DefaultConcurrency,
		"Number of queries resolved concurrently")
	cmd.Flags().StringP("output", "o", "",
		"Write the results to the specified file path (creates directories if needed)")

	return cmd
}

// runResolveCmd executes the resolve command.
func runResolveCmd(cmd *cobra.Command, args []string) error {
	cfg, _, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	cfg.ByName, err = cmd.Flags().GetBool("name")
	if err != nil {
		return err
	}
	cfg.Concurrency, err = cmd.Flags().GetInt("batch")
	if err != nil {
		return err
	}
	cfg.Queries = args

	if err := cfg.ValidateResolve(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := setupLogger(cmd, cfg.Verbose)

	reg, err := buildRegistry(cfg, logger)
	if err != nil {
		return err
	}

	// Set up context with signal handling for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	resolver := resolve.NewBatchResolver(reg,
		resolve.WithConcurrency(cfg.Concurrency),
		resolve.WithLogger(logger),
	)
	results, err := resolver.Resolve(ctx, cfg.Queries, cfg.ByName)
	if err != nil {
		return fmt.Errorf("resolution interrupted: %w", err)
	}

	format := report.FormatFromFlags(cfg.JSONReport, cfg.MarkdownReport)
	err = writeOutput(cmd, cfg.ReportFile, func(output io.Writer) error {
		if _, err := report.NewWriter(output, format).WriteResolutions(results); err != nil {
			return fmt.Errorf("failed to write results: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	if summary := model.SummarizeResolutions(results); summary.Rejected > 0 {
		return fmt.Errorf("%d of %d: %w", summary.Rejected, len(results), errRejectedQuery)
	}
	return nil
}
