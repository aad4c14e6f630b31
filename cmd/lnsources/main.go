// Package main provides the entry point for the lnsources CLI.
//
// lnsources builds the registry of light novel source scrapers, applies the
// rejection table from the configuration file, and answers which scraper
// serves a given URL.
//
// Usage:
//
//	lnsources list
//	lnsources resolve <url>...
//	lnsources history
//
// See --help for all available options.
package main

// main is the entry point for lnsources.
func main() {
	Execute()
}
