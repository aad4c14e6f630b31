// Package zh registers the built-in Chinese scrapers.
package zh
