package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/nao1215/lnsources/internal/model"
)

// SimpleWriter outputs human-readable text reports for terminal display.
type SimpleWriter struct {
	baseWriter

	// showURLs lists every base URL under each scraper.
	showURLs bool
}

// SimpleWriterOption configures a SimpleWriter.
type SimpleWriterOption func(*SimpleWriter)

// WithBaseURLs controls whether base URLs are listed under each scraper.
func WithBaseURLs(show bool) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.showURLs = show
	}
}

// NewSimpleWriter creates a SimpleWriter that outputs to the given writer.
func NewSimpleWriter(output io.Writer, opts ...SimpleWriterOption) *SimpleWriter {
	w := &SimpleWriter{
		baseWriter: newBaseWriter(output),
		showURLs:   true,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// WriteRegistry outputs the registry report.
func (w *SimpleWriter) WriteRegistry(report *model.RegistryReport) (int, error) {
	var sb strings.Builder

	writeBanner(&sb, "LNSOURCES REGISTRY")

	configFile := report.ConfigFile
	if configFile == "" {
		configFile = "(none)"
	}
	sb.WriteString(fmt.Sprintf("Generated:      %s\n", report.GeneratedAt.Format(timeLayout)))
	sb.WriteString(fmt.Sprintf("Fingerprint:    %s\n", shortFingerprint(report.Fingerprint)))
	sb.WriteString(fmt.Sprintf("Config File:    %s\n", configFile))
	sb.WriteString(fmt.Sprintf("Scrapers:       %d\n", report.TotalScrapers()))
	sb.WriteString(fmt.Sprintf("Hosts:          %d\n", report.TotalHosts()))
	sb.WriteString(fmt.Sprintf("Rejected Hosts: %d\n", report.RejectedHosts))
	sb.WriteString("\n")

	writeSection(&sb, "LANGUAGES")
	for _, lc := range report.Languages {
		sb.WriteString(fmt.Sprintf("  %-14s %-6s %d\n", lc.Name, lc.Code, lc.Count))
	}
	sb.WriteString("\n")

	writeSection(&sb, "SCRAPERS")
	if len(report.Scrapers) == 0 {
		sb.WriteString("  No scraper registered.\n")
	}
	for _, s := range report.Scrapers {
		sb.WriteString(fmt.Sprintf("  %s [%s]\n", s.Name, model.LanguageName(s.Language)))
		if w.showURLs {
			for _, u := range s.BaseURLs {
				sb.WriteString("    " + u + "\n")
			}
		}
	}
	sb.WriteString("\n")

	if report.HasExclusions() {
		writeSection(&sb, "EXCLUDED")
		for _, e := range report.Exclusions {
			sb.WriteString(fmt.Sprintf("  %s  %s: %s\n", e.Name, e.Host, e.Reason))
		}
		sb.WriteString("\n")
	}

	return io.WriteString(w.output, sb.String())
}

// WriteResolutions outputs one line per query followed by a summary.
func (w *SimpleWriter) WriteResolutions(results []model.Resolution) (int, error) {
	var sb strings.Builder

	for _, r := range results {
		switch r.Status {
		case model.StatusMatched:
			sb.WriteString(fmt.Sprintf("[MATCH]    %s -> %s\n", r.Query, r.Scraper))
		case model.StatusRejected:
			sb.WriteString(fmt.Sprintf("[REJECTED] %s (%s: %s)\n", r.Query, r.Host, r.Reason))
		default:
			sb.WriteString(fmt.Sprintf("[NO MATCH] %s\n", r.Query))
		}
	}

	s := model.SummarizeResolutions(results)
	sb.WriteString(fmt.Sprintf("\n%d queries: %d matched, %d no match, %d rejected\n",
		len(results), s.Matched, s.NoMatch, s.Rejected))

	return io.WriteString(w.output, sb.String())
}

// WriteDiff outputs the registry changes.
func (w *SimpleWriter) WriteDiff(diff *model.ReportDiff) (int, error) {
	var sb strings.Builder

	writeBanner(&sb, "REGISTRY CHANGES")
	sb.WriteString(fmt.Sprintf("Old: %s (%s)\n", diff.OldGeneratedAt.Format(timeLayout), shortFingerprint(diff.OldFingerprint)))
	sb.WriteString(fmt.Sprintf("New: %s (%s)\n\n", diff.NewGeneratedAt.Format(timeLayout), shortFingerprint(diff.NewFingerprint)))

	if !diff.HasChanges() {
		sb.WriteString("No changes.\n")
		return io.WriteString(w.output, sb.String())
	}

	for _, s := range diff.Added {
		sb.WriteString(fmt.Sprintf("  + %s %s\n", s.Name, strings.Join(s.BaseURLs, ", ")))
	}
	for _, s := range diff.Removed {
		sb.WriteString(fmt.Sprintf("  - %s %s\n", s.Name, strings.Join(s.BaseURLs, ", ")))
	}
	for _, c := range diff.Changed {
		sb.WriteString(fmt.Sprintf("  ~ %s %s => %s\n", c.Name,
			strings.Join(c.OldBaseURLs, ", "), strings.Join(c.NewBaseURLs, ", ")))
	}
	for _, e := range diff.NewlyExcluded {
		sb.WriteString(fmt.Sprintf("  ! %s excluded (%s: %s)\n", e.Name, e.Host, e.Reason))
	}
	for _, e := range diff.NoLongerExcluded {
		sb.WriteString(fmt.Sprintf("  * %s no longer excluded (%s)\n", e.Name, e.Host))
	}

	return io.WriteString(w.output, sb.String())
}

// WriteSnapshots outputs one line per snapshot.
func (w *SimpleWriter) WriteSnapshots(snapshots []model.SnapshotInfo) (int, error) {
	var sb strings.Builder

	if len(snapshots) == 0 {
		sb.WriteString("No snapshots saved. Run 'lnsources list --save' to create one.\n")
		return io.WriteString(w.output, sb.String())
	}

	sb.WriteString(fmt.Sprintf("%-6s %-24s %-14s %-9s %s\n", "ID", "SAVED", "FINGERPRINT", "SCRAPERS", "EXCLUDED"))
	for _, s := range snapshots {
		sb.WriteString(fmt.Sprintf("%-6d %-24s %-14s %-9d %d\n",
			s.ID, s.SavedAt.Format(timeLayout), shortFingerprint(s.Fingerprint), s.Scrapers, s.Exclusions))
	}

	return io.WriteString(w.output, sb.String())
}

func writeBanner(sb *strings.Builder, title string) {
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n")
	pad := max((70-len(title))/2, 0)
	sb.WriteString(strings.Repeat(" ", pad) + title + "\n")
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n\n")
}

func writeSection(sb *strings.Builder, title string) {
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n")
	sb.WriteString(title + "\n")
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n\n")
}
