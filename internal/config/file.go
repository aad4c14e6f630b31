package config

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// SourceConfig declares a scraper by name and base URLs. Declared sources
// are registered after the built-in scrapers.
type SourceConfig struct {
	// Name is the dot-separated logical name, e.g. "custom.mysite".
	Name string `yaml:"name"`

	// BaseURLs are the candidate base URLs. They are validated exactly like
	// the base URLs of built-in scrapers.
	BaseURLs []string `yaml:"base_urls"`
}

// File represents the structure of the .lnsources configuration file.
type File struct {
	// Rejected maps a host to the reason it must not be scraped.
	// Keys are hosts without scheme or path, e.g. "example.org".
	Rejected map[string]string `yaml:"rejected,omitempty"`

	// Sources are user-declared scraper definitions.
	Sources []SourceConfig `yaml:"sources,omitempty"`
}

// RejectionTable returns a copy of the host to reason table.
func (f *File) RejectionTable() map[string]string {
	if f == nil || f.Rejected == nil {
		return map[string]string{}
	}
	return maps.Clone(f.Rejected)
}

// DeclaredSources returns a copy of the declared sources.
func (f *File) DeclaredSources() []SourceConfig {
	if f == nil {
		return nil
	}
	out := make([]SourceConfig, len(f.Sources))
	for i, s := range f.Sources {
		out[i] = SourceConfig{Name: s.Name, BaseURLs: slices.Clone(s.BaseURLs)}
	}
	return out
}

// Validate checks the file for entries that can never be meaningful.
// Base URLs are not checked here; the registry validates them.
func (f *File) Validate() error {
	if f == nil {
		return nil
	}
	for host := range f.Rejected {
		if strings.TrimSpace(host) == "" {
			return ErrEmptyRejectedHost
		}
	}
	for i, s := range f.Sources {
		if strings.TrimSpace(s.Name) == "" {
			return fmt.Errorf("sources[%d]: %w", i, ErrEmptySourceName)
		}
	}
	return nil
}
