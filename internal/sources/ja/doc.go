// Package ja registers the built-in Japanese scrapers.
package ja
