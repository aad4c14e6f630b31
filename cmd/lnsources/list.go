package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/nao1215/lnsources/internal/database"
	"github.com/nao1215/lnsources/internal/model"
	"github.com/nao1215/lnsources/internal/report"
)

// NewListCmd creates the list command.
func NewListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Build the source registry and print it",
		Long: `List builds the source registry and prints every registered scraper with
its base URLs, followed by the scrapers excluded by the rejection list.

With --save a snapshot of the registry is stored in the history database
(XDG data directory). A snapshot is only stored when the registry differs
from the latest one. Use 'lnsources history' to see what changed.

Examples:
  # Print the registry
  lnsources list

  # Print the registry as Markdown into a file
  lnsources list --markdown -o registry.md

  # Use a specific configuration file and save a snapshot
  lnsources list -c ./lnsources.yaml --save`,
		Args: cobra.NoArgs,
		RunE: runListCmd,
	}

	addConfigFlag(cmd)
	addFormatFlags(cmd)
	cmd.Flags().StringP("output", "o", "",
		"Write the report to the specified file path (creates directories if needed)")
	cmd.Flags().BoolP("save", "s", false,
		"Save a snapshot of the registry to the history database")
	cmd.Flags().String("db-dir", "",
		"Directory of the history database (default: XDG data directory)")

	return cmd
}

// runListCmd executes the list command.
func runListCmd(cmd *cobra.Command, _ []string) error {
	cfg, configPath, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	cfg.SaveToDB, err = cmd.Flags().GetBool("save")
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := setupLogger(cmd, cfg.Verbose)

	reg, err := buildRegistry(cfg, logger)
	if err != nil {
		return err
	}

	regReport := model.NewRegistryReport(reg, time.Now())
	regReport.ConfigFile = configPath

	format := report.FormatFromFlags(cfg.JSONReport, cfg.MarkdownReport)
	err = writeOutput(cmd, cfg.ReportFile, func(output io.Writer) error {
		if _, err := report.NewWriter(output, format).WriteRegistry(regReport); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	if !cfg.SaveToDB {
		return nil
	}
	return saveSnapshot(cmd, cfg.DBDir, regReport)
}

// saveSnapshot stores regReport in the history database and tells the user
// what happened on stderr, keeping stdout clean for the report.
func saveSnapshot(cmd *cobra.Command, dbDir string, regReport *model.RegistryReport) error {
	db, err := database.Open(dbDir, database.DefaultOptions())
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	id, saved, err := db.SaveSnapshot(context.Background(), regReport)
	if err != nil {
		return err
	}

	if saved {
		fmt.Fprintf(cmd.ErrOrStderr(), "Saved snapshot #%d (%d scrapers, %d excluded)\n",
			id, regReport.TotalScrapers(), len(regReport.Exclusions))
	} else {
		fmt.Fprintf(cmd.ErrOrStderr(), "Registry unchanged since snapshot #%d, nothing saved\n", id)
	}
	return nil
}
