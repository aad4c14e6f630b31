// Package en registers the built-in English scrapers.
package en
