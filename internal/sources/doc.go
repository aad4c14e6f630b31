// Package sources is the parent of the built-in scraper packages.
//
// Each subdirectory holds the scrapers for one language and registers them
// with the catalog from init functions. Import internal/sources/all to
// enable every built-in scraper.
package sources
