package model

import "time"

// SnapshotInfo describes a stored registry report without loading it.
type SnapshotInfo struct {
	// ID is the database identifier.
	ID int64 `json:"id"`

	// SavedAt is when the snapshot was stored.
	SavedAt time.Time `json:"saved_at"`

	// Fingerprint is the report fingerprint.
	Fingerprint string `json:"fingerprint"`

	// Scrapers is the number of registered scrapers.
	Scrapers int `json:"scrapers"`

	// Exclusions is the number of excluded definitions.
	Exclusions int `json:"exclusions"`
}
