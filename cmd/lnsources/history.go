package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nao1215/lnsources/internal/database"
	"github.com/nao1215/lnsources/internal/model"
	"github.com/nao1215/lnsources/internal/report"
)

// NewHistoryCmd creates the history command.
// This command compares registry snapshots stored in the database.
func NewHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show how the source registry changed between snapshots",
		Long: `History compares registry snapshots saved by 'lnsources list --save'.

By default the latest snapshot is compared with the one before it, showing:
- Scrapers that were added or removed
- Scrapers whose base URLs changed
- Sources that became rejected or are no longer rejected

Examples:
  # Compare the latest two snapshots
  lnsources history

  # List all stored snapshots
  lnsources history --list

  # Compare the latest snapshot with snapshot 3
  lnsources history --with-id 3

  # Output the comparison as JSON
  lnsources history --json`,
		Args: cobra.NoArgs,
		RunE: runHistoryCmd,
	}

	cmd.Flags().BoolP("list", "l", false,
		"List stored snapshots")
	cmd.Flags().Int64P("with-id", "i", 0,
		"Compare the latest snapshot with a specific snapshot by ID (use --list to see available IDs)")
	addFormatFlags(cmd)
	cmd.Flags().String("db-dir", "",
		"Directory of the history database (default: XDG data directory)")

	return cmd
}

// runHistoryCmd executes the history command.
func runHistoryCmd(cmd *cobra.Command, _ []string) error {
	cfg, _, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	listHistory, err := cmd.Flags().GetBool("list")
	if err != nil {
		return err
	}
	withID, err := cmd.Flags().GetInt64("with-id")
	if err != nil {
		return err
	}
	if withID < 0 {
		return fmt.Errorf("invalid snapshot ID %d", withID)
	}

	db, err := database.Open(cfg.DBDir, database.DefaultOptions())
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	ctx := context.Background()
	writer := report.NewWriter(cmd.OutOrStdout(), report.FormatFromFlags(cfg.JSONReport, cfg.MarkdownReport))

	snapshots, err := db.ListSnapshots(ctx)
	if err != nil {
		return err
	}

	if listHistory {
		_, err := writer.WriteSnapshots(snapshots)
		return err
	}

	diff, err := compareSnapshots(ctx, db, snapshots, withID)
	if err != nil {
		return err
	}
	_, err = writer.WriteDiff(diff)
	return err
}

// compareSnapshots diffs the latest snapshot against the snapshot with
// withID, or against the one before it when withID is zero.
// snapshots must be ordered newest first.
func compareSnapshots(ctx context.Context, db *database.SnapshotDB, snapshots []model.SnapshotInfo, withID int64) (*model.ReportDiff, error) {
	if len(snapshots) == 0 {
		return nil, errors.New("no snapshots found (run 'lnsources list --save' first)")
	}
	if len(snapshots) < 2 && withID == 0 {
		return nil, fmt.Errorf("at least 2 snapshots are required for comparison (found %d)", len(snapshots))
	}

	previousID := withID
	if previousID == 0 {
		previousID = snapshots[1].ID
	}

	current, err := db.GetSnapshotByID(ctx, snapshots[0].ID)
	if err != nil {
		return nil, err
	}
	previous, err := db.GetSnapshotByID(ctx, previousID)
	if err != nil {
		return nil, fmt.Errorf("failed to get snapshot with ID %d: %w", previousID, err)
	}
	if current == nil {
		return nil, fmt.Errorf("snapshot with ID %d not found", snapshots[0].ID)
	}
	if previous == nil {
		return nil, fmt.Errorf("snapshot with ID %d not found", previousID)
	}

	return model.CompareReports(previous, current), nil
}
