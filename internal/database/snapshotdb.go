package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/nao1215/lnsources/internal/model"
)

// FileName is the database file name inside the database directory.
const FileName = "lnsources.db"

// SnapshotDB stores registry snapshots in SQLite.
type SnapshotDB struct {
	// db is the underlying SQL database connection.
	db *sql.DB

	// dbPath is the path to the SQLite database file.
	dbPath string
}

// Options configures SnapshotDB behavior.
type Options struct {
	// CreateIfNotExists creates the directory and database file if missing.
	CreateIfNotExists bool

	// EnableWAL enables Write-Ahead Logging.
	EnableWAL bool
}

// DefaultOptions returns the default database options.
func DefaultOptions() Options {
	return Options{
		CreateIfNotExists: true,
		EnableWAL:         true,
	}
}

// Open opens or creates a SnapshotDB in dbDir.
// If CreateIfNotExists is false and the database doesn't exist, an error is returned.
func Open(dbDir string, opts Options) (*SnapshotDB, error) {
	dbPath := filepath.Join(dbDir, FileName)

	if !opts.CreateIfNotExists {
		if _, err := os.Stat(dbPath); os.IsNotExist(err) {
			return nil, fmt.Errorf("database not found at %s (use CreateIfNotExists option to create)", dbPath)
		} else if err != nil {
			return nil, fmt.Errorf("failed to check database path: %w", err)
		}
	} else {
		if err := os.MkdirAll(dbDir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	// mode=rw refuses to create a missing file; mode=rwc allows it.
	dsn := dbPath + "?mode=rw"
	if opts.CreateIfNotExists {
		dsn = dbPath + "?mode=rwc"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(1) // SQLite only supports one writer
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	sdb := &SnapshotDB{
		db:     db,
		dbPath: dbPath,
	}

	if opts.EnableWAL {
		if _, err := db.ExecContext(context.Background(), "PRAGMA journal_mode=WAL"); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
		}
	}

	if err := sdb.createTables(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return sdb, nil
}

// Close closes the database connection.
func (sdb *SnapshotDB) Close() error {
	return sdb.db.Close()
}

// Path returns the database file path.
func (sdb *SnapshotDB) Path() string {
	return sdb.dbPath
}

// createTables creates the database schema if it doesn't exist.
func (sdb *SnapshotDB) createTables() error {
	schema := `
	CREATE TABLE IF NOT EXISTS snapshots (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		saved_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		fingerprint TEXT NOT NULL,
		scraper_count INTEGER NOT NULL,
		exclusion_count INTEGER NOT NULL,
		report_json TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_snapshots_fingerprint ON snapshots(fingerprint);
	`

	_, err := sdb.db.ExecContext(context.Background(), schema)
	return err
}

// SaveSnapshot stores report unless the latest snapshot has the same
// fingerprint. It returns the ID of the stored snapshot, or of the
// existing one when nothing was stored, and whether a row was written.
func (sdb *SnapshotDB) SaveSnapshot(ctx context.Context, report *model.RegistryReport) (int64, bool, error) {
	fingerprint := report.Fingerprint
	if fingerprint == "" {
		fingerprint = report.ComputeFingerprint()
	}

	var latestID int64
	var latestFingerprint string
	err := sdb.db.QueryRowContext(ctx,
		`SELECT id, fingerprint FROM snapshots ORDER BY id DESC LIMIT 1`,
	).Scan(&latestID, &latestFingerprint)
	switch {
	case err == nil:
		if latestFingerprint == fingerprint {
			return latestID, false, nil
		}
	case errors.Is(err, sql.ErrNoRows):
	default:
		return 0, false, fmt.Errorf("failed to read latest snapshot: %w", err)
	}

	reportJSON, err := json.Marshal(report)
	if err != nil {
		return 0, false, fmt.Errorf("failed to serialize report: %w", err)
	}

	res, err := sdb.db.ExecContext(ctx, `
	INSERT INTO snapshots (fingerprint, scraper_count, exclusion_count, report_json)
	VALUES (?, ?, ?, ?)
	`,
		fingerprint,
		len(report.Scrapers),
		len(report.Exclusions),
		string(reportJSON),
	)
	if err != nil {
		return 0, false, fmt.Errorf("failed to save snapshot: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, false, fmt.Errorf("failed to read snapshot id: %w", err)
	}
	return id, true, nil
}

// ListSnapshots returns metadata for every snapshot, newest first.
func (sdb *SnapshotDB) ListSnapshots(ctx context.Context) ([]model.SnapshotInfo, error) {
	rows, err := sdb.db.QueryContext(ctx, `
	SELECT id, saved_at, fingerprint, scraper_count, exclusion_count
	FROM snapshots
	ORDER BY id DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list snapshots: %w", err)
	}
	defer rows.Close()

	var results []model.SnapshotInfo
	for rows.Next() {
		var info model.SnapshotInfo
		var savedAt string
		if err := rows.Scan(&info.ID, &savedAt, &info.Fingerprint, &info.Scrapers, &info.Exclusions); err != nil {
			return nil, fmt.Errorf("failed to scan snapshot: %w", err)
		}
		info.SavedAt = parseTimestamp(savedAt)
		results = append(results, info)
	}

	return results, rows.Err()
}

// GetSnapshotByID returns the snapshot with the given ID, or nil when it
// does not exist.
func (sdb *SnapshotDB) GetSnapshotByID(ctx context.Context, id int64) (*model.RegistryReport, error) {
	return sdb.getReport(ctx, `SELECT report_json FROM snapshots WHERE id = ?`, id)
}

// GetLatestSnapshot returns the most recent snapshot, or nil when none is
// stored.
func (sdb *SnapshotDB) GetLatestSnapshot(ctx context.Context) (*model.RegistryReport, error) {
	return sdb.getReport(ctx, `SELECT report_json FROM snapshots ORDER BY id DESC LIMIT 1`)
}

func (sdb *SnapshotDB) getReport(ctx context.Context, query string, args ...any) (*model.RegistryReport, error) {
	var reportJSON string
	err := sdb.db.QueryRowContext(ctx, query, args...).Scan(&reportJSON)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get snapshot: %w", err)
	}

	var report model.RegistryReport
	if err := json.Unmarshal([]byte(reportJSON), &report); err != nil {
		return nil, fmt.Errorf("failed to parse snapshot: %w", err)
	}
	return &report, nil
}

// timestampFormats contains the timestamp formats that SQLite may return.
// The order matters: more specific formats should come first.
var timestampFormats = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05Z",
	"2006-01-02T15:04:05",
	time.RFC3339,
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999",
}

// parseTimestamp parses a SQLite timestamp, returning the zero time when no
// known format matches.
func parseTimestamp(s string) time.Time {
	for _, format := range timestampFormats {
		if t, err := time.Parse(format, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
