package catalog

import (
	"slices"

	"github.com/nao1215/lnsources/internal/source"
)

// DeclaredScraper is the scraper constructed for a definition that only
// exists in configuration. It knows its name and base URLs and nothing else.
type DeclaredScraper struct {
	source.Base
}

// Declared returns an entry for a scraper declared by name and base URLs.
// The URLs go through the same validation as built-in definitions when the
// entry is registered.
func Declared(name string, baseURLs []string) source.Entry {
	urls := slices.Clone(baseURLs)
	if urls == nil {
		urls = []string{}
	}
	return source.Entry{
		Name: name,
		Definition: source.NewDefinition(urls, func(name string) source.Scraper {
			return &DeclaredScraper{Base: source.NewBase(name)}
		}),
	}
}

// Merge returns builtin followed by extra. Built-in entries come first, so
// they win host and name ties against declared ones.
func Merge(builtin, extra []source.Entry) []source.Entry {
	out := make([]source.Entry, 0, len(builtin)+len(extra))
	out = append(out, builtin...)
	return append(out, extra...)
}
