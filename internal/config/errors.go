package config

import "errors"

// Configuration validation errors.
// These errors are returned by Config.Validate and File.Validate so callers
// can match them with errors.Is.
var (
	// ErrNoQuery is returned when the resolve command receives no URL or name.
	ErrNoQuery = errors.New("no query specified: provide at least one URL or scraper name")

	// ErrInvalidConcurrency is returned when the concurrency is not positive.
	ErrInvalidConcurrency = errors.New("invalid concurrency: must be positive")

	// ErrConflictingReportFormats is returned when both --json and --markdown
	// are specified. Only one output format can be used at a time.
	ErrConflictingReportFormats = errors.New("conflicting report formats: --json and --markdown cannot be used together")

	// ErrEmptySourceName is returned when a declared source has no name.
	ErrEmptySourceName = errors.New("invalid source: name must not be empty")

	// ErrEmptyRejectedHost is returned when the rejection table has an empty key.
	ErrEmptyRejectedHost = errors.New("invalid rejection entry: host must not be empty")
)
