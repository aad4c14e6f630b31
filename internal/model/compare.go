package model

import (
	"slices"
	"time"

	"github.com/nao1215/lnsources/internal/source"
)

// ScraperChange describes a scraper whose base URLs changed between reports.
type ScraperChange struct {
	Name        string   `json:"name"`
	OldBaseURLs []string `json:"old_base_urls"`
	NewBaseURLs []string `json:"new_base_urls"`
}

// ReportDiff is the difference between an older and a newer registry report.
type ReportDiff struct {
	OldGeneratedAt time.Time `json:"old_generated_at"`
	NewGeneratedAt time.Time `json:"new_generated_at"`
	OldFingerprint string    `json:"old_fingerprint"`
	NewFingerprint string    `json:"new_fingerprint"`

	// Added are scrapers present only in the newer report.
	Added []ScraperSummary `json:"added"`

	// Removed are scrapers present only in the older report.
	Removed []ScraperSummary `json:"removed"`

	// Changed are scrapers present in both with different base URLs.
	Changed []ScraperChange `json:"changed"`

	// NewlyExcluded are exclusions present only in the newer report.
	NewlyExcluded []source.Exclusion `json:"newly_excluded"`

	// NoLongerExcluded are exclusions present only in the older report.
	NoLongerExcluded []source.Exclusion `json:"no_longer_excluded"`
}

// CompareReports returns the difference from older to newer. Scrapers are
// matched by name, and only the first scraper of each name is compared.
func CompareReports(older, newer *RegistryReport) *ReportDiff {
	diff := &ReportDiff{
		OldGeneratedAt: older.GeneratedAt,
		NewGeneratedAt: newer.GeneratedAt,
		OldFingerprint: older.Fingerprint,
		NewFingerprint: newer.Fingerprint,
	}

	oldByName := firstByName(older.Scrapers)
	newByName := firstByName(newer.Scrapers)

	for _, s := range uniqueByName(newer.Scrapers) {
		prev, ok := oldByName[s.Name]
		switch {
		case !ok:
			diff.Added = append(diff.Added, s)
		case !slices.Equal(prev.BaseURLs, s.BaseURLs):
			diff.Changed = append(diff.Changed, ScraperChange{
				Name:        s.Name,
				OldBaseURLs: prev.BaseURLs,
				NewBaseURLs: s.BaseURLs,
			})
		}
	}
	for _, s := range uniqueByName(older.Scrapers) {
		if _, ok := newByName[s.Name]; !ok {
			diff.Removed = append(diff.Removed, s)
		}
	}

	diff.NewlyExcluded = exclusionsMissingFrom(newer.Exclusions, older.Exclusions)
	diff.NoLongerExcluded = exclusionsMissingFrom(older.Exclusions, newer.Exclusions)
	return diff
}

// HasChanges reports whether the two reports differ.
func (d *ReportDiff) HasChanges() bool {
	return len(d.Added) > 0 || len(d.Removed) > 0 || len(d.Changed) > 0 ||
		len(d.NewlyExcluded) > 0 || len(d.NoLongerExcluded) > 0
}

func firstByName(scrapers []ScraperSummary) map[string]ScraperSummary {
	m := make(map[string]ScraperSummary, len(scrapers))
	for _, s := range scrapers {
		if _, ok := m[s.Name]; !ok {
			m[s.Name] = s
		}
	}
	return m
}

// uniqueByName returns the first scraper of each name, in order.
func uniqueByName(scrapers []ScraperSummary) []ScraperSummary {
	seen := make(map[string]bool, len(scrapers))
	out := make([]ScraperSummary, 0, len(scrapers))
	for _, s := range scrapers {
		if !seen[s.Name] {
			seen[s.Name] = true
			out = append(out, s)
		}
	}
	return out
}

// exclusionsMissingFrom returns the exclusions in a that have no equal
// entry in b.
func exclusionsMissingFrom(a, b []source.Exclusion) []source.Exclusion {
	var out []source.Exclusion
	for _, e := range a {
		if !slices.Contains(b, e) {
			out = append(out, e)
		}
	}
	return out
}
