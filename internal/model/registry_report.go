package model

import (
	"time"

	"github.com/nao1215/lnsources/internal/source"
)

// ScraperSummary describes one registered scraper.
type ScraperSummary struct {
	// Name is the dot-separated logical name.
	Name string `json:"name"`

	// Language is the first segment of Name, e.g. "en".
	Language string `json:"language"`

	// BaseURLs are the normalized base URLs, in declaration order.
	BaseURLs []string `json:"base_urls"`

	// Hosts are the canonical hosts of BaseURLs.
	Hosts []string `json:"hosts"`
}

// LanguageCount is the number of scrapers registered for one language segment.
type LanguageCount struct {
	Code  string `json:"code"`
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// RegistryReport is a snapshot of a populated registry.
type RegistryReport struct {
	// GeneratedAt is when the report was built, in UTC.
	GeneratedAt time.Time `json:"generated_at"`

	// Fingerprint identifies the registry contents. Reports with the same
	// scrapers and exclusions have the same fingerprint regardless of
	// GeneratedAt.
	Fingerprint string `json:"fingerprint"`

	// ConfigFile is the configuration file the registry was built with.
	ConfigFile string `json:"config_file,omitempty"`

	// RejectedHosts is the size of the rejection table.
	RejectedHosts int `json:"rejected_hosts"`

	// Scrapers are the registered scrapers in registration order.
	Scrapers []ScraperSummary `json:"scrapers"`

	// Exclusions are the definitions skipped because of the rejection table.
	Exclusions []source.Exclusion `json:"exclusions"`

	// Languages counts Scrapers by language, largest first.
	Languages []LanguageCount `json:"languages"`
}

// NewRegistryReport builds a report from a populated registry.
func NewRegistryReport(reg *source.Registry, generatedAt time.Time) *RegistryReport {
	instances := reg.Instances()

	r := &RegistryReport{
		GeneratedAt:   generatedAt.UTC(),
		RejectedHosts: reg.Policy().Len(),
		Scrapers:      make([]ScraperSummary, 0, len(instances)),
		Exclusions:    reg.Exclusions(),
	}
	for _, inst := range instances {
		r.Scrapers = append(r.Scrapers, ScraperSummary{
			Name:     inst.Name(),
			Language: inst.Language(),
			BaseURLs: inst.BaseURLs(),
			Hosts:    inst.Hosts(),
		})
	}
	r.Languages = CountLanguages(r.Scrapers)
	r.Fingerprint = r.ComputeFingerprint()
	return r
}

// TotalScrapers returns the number of registered scrapers.
func (r *RegistryReport) TotalScrapers() int {
	return len(r.Scrapers)
}

// TotalHosts returns the number of distinct hosts served by the registry.
func (r *RegistryReport) TotalHosts() int {
	seen := make(map[string]struct{})
	for _, s := range r.Scrapers {
		for _, h := range s.Hosts {
			seen[h] = struct{}{}
		}
	}
	return len(seen)
}

// HasExclusions reports whether any definition was skipped.
func (r *RegistryReport) HasExclusions() bool {
	return len(r.Exclusions) > 0
}

// FindScraper returns the first scraper summary with the given name.
func (r *RegistryReport) FindScraper(name string) (ScraperSummary, bool) {
	for _, s := range r.Scrapers {
		if s.Name == name {
			return s, true
		}
	}
	return ScraperSummary{}, false
}
