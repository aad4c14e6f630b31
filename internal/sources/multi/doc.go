// Package multi registers scrapers for sites that serve several languages
// from one codebase.
package multi
