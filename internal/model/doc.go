// Package model defines the data structures shared by the report writers,
// the snapshot database and the CLI.
//
// This package contains the following main types:
//   - RegistryReport: a serializable view of a populated source.Registry
//   - Resolution: the outcome of resolving one URL or name
//   - ReportDiff: the difference between two registry reports
//   - SnapshotInfo: metadata about a stored RegistryReport
//
// Reports are plain data. They are built once from the registry and then
// written, stored or compared without touching the registry again.
package model
