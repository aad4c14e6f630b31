// Package database provides SQLite-based storage of registry snapshots.
//
// A snapshot is a model.RegistryReport stored as JSON together with its
// fingerprint. Saving the same registry twice in a row stores it once, so
// the history only grows when scrapers, base URLs or exclusions change.
//
// SQLite is accessed through modernc.org/sqlite, a CGO-free driver, with a
// single connection and WAL journaling.
package database
