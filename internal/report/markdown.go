package report

import (
	"io"
	"strconv"
	"strings"

	"github.com/nao1215/markdown"
	"github.com/nao1215/markdown/mermaid/piechart"

	"github.com/nao1215/lnsources/internal/model"
)

// MarkdownWriter outputs reports in GitHub Flavored Markdown.
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}
}

// WriteRegistry outputs the registry report.
func (w *MarkdownWriter) WriteRegistry(report *model.RegistryReport) (int, error) {
	md := markdown.NewMarkdown(w.output)

	md.H1("lnsources Registry")
	md.PlainText("")

	configFile := "-"
	if report.ConfigFile != "" {
		configFile = "`" + report.ConfigFile + "`"
	}
	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Generated", report.GeneratedAt.Format(timeLayout)},
			{"Fingerprint", "`" + shortFingerprint(report.Fingerprint) + "`"},
			{"Config File", configFile},
			{"Scrapers", strconv.Itoa(report.TotalScrapers())},
			{"Hosts", strconv.Itoa(report.TotalHosts())},
			{"Rejected Hosts", strconv.Itoa(report.RejectedHosts)},
		},
	})
	md.PlainText("")

	w.writeLanguages(md, report)
	w.writeScrapers(md, report)
	w.writeExclusions(md, report)
	w.writeFooter(md)

	return len(md.String()), md.Build()
}

// writeLanguages writes the language table and pie chart.
func (w *MarkdownWriter) writeLanguages(md *markdown.Markdown, report *model.RegistryReport) {
	md.H2("Languages")
	md.PlainText("")

	if len(report.Languages) == 0 {
		md.PlainText("No scraper registered.")
		md.PlainText("")
		return
	}

	rows := make([][]string, len(report.Languages))
	for i, lc := range report.Languages {
		rows[i] = []string{lc.Name, "`" + lc.Code + "`", strconv.Itoa(lc.Count)}
	}
	md.Table(markdown.TableSet{
		Header: []string{"Language", "Code", "Scrapers"},
		Rows:   rows,
	})
	md.PlainText("")

	chart := piechart.NewPieChart(
		io.Discard,
		piechart.WithTitle("Scrapers per Language"),
		piechart.WithShowData(true),
	)
	for _, lc := range report.Languages {
		chart.LabelAndIntValue(lc.Name, uint64(lc.Count)) //nolint:gosec // counts are never negative
	}
	md.CodeBlocks(markdown.SyntaxHighlightMermaid, chart.String())
	md.PlainText("")
}

// writeScrapers writes the scraper table.
func (w *MarkdownWriter) writeScrapers(md *markdown.Markdown, report *model.RegistryReport) {
	md.H2("Scrapers")
	md.PlainText("")

	if len(report.Scrapers) == 0 {
		md.Warningf("No scraper is registered. Check the rejection table in your configuration.")
		md.PlainText("")
		return
	}

	rows := make([][]string, len(report.Scrapers))
	for i, s := range report.Scrapers {
		rows[i] = []string{"`" + s.Name + "`", model.LanguageName(s.Language), strings.Join(s.BaseURLs, "<br>")}
	}
	md.Table(markdown.TableSet{
		Header: []string{"Name", "Language", "Base URLs"},
		Rows:   rows,
	})
	md.PlainText("")
}

// writeExclusions writes the excluded definitions, if any.
func (w *MarkdownWriter) writeExclusions(md *markdown.Markdown, report *model.RegistryReport) {
	md.H2("Excluded Sources")
	md.PlainText("")

	if !report.HasExclusions() {
		md.Tip("No scraper is bound to a rejected source.")
		md.PlainText("")
		return
	}

	md.Importantf("%d scraper(s) skipped because a base URL points at a rejected host.", len(report.Exclusions))
	md.PlainText("")

	rows := make([][]string, len(report.Exclusions))
	for i, e := range report.Exclusions {
		rows[i] = []string{"`" + e.Name + "`", e.Host, e.Reason}
	}
	md.Table(markdown.TableSet{
		Header: []string{"Name", "Host", "Reason"},
		Rows:   rows,
	})
	md.PlainText("")
}

// WriteResolutions outputs the results table.
func (w *MarkdownWriter) WriteResolutions(results []model.Resolution) (int, error) {
	md := markdown.NewMarkdown(w.output)

	md.H1("Resolution Results")
	md.PlainText("")

	rows := make([][]string, len(results))
	for i, r := range results {
		detail := "-"
		switch r.Status {
		case model.StatusMatched:
			detail = "`" + r.Scraper + "`"
		case model.StatusRejected:
			detail = r.Reason
		}
		rows[i] = []string{r.Query, string(r.Status), detail}
	}
	md.Table(markdown.TableSet{
		Header: []string{"Query", "Status", "Scraper / Reason"},
		Rows:   rows,
	})
	md.PlainText("")

	s := model.SummarizeResolutions(results)
	switch {
	case s.Rejected > 0:
		md.Cautionf("%d query(s) point at rejected sources.", s.Rejected)
	case s.NoMatch > 0:
		md.Note(strconv.Itoa(s.NoMatch) + " query(s) are not served by any scraper.")
	default:
		md.Tip("Every query is served by a scraper.")
	}
	md.PlainText("")

	return len(md.String()), md.Build()
}

// WriteDiff outputs the registry changes.
func (w *MarkdownWriter) WriteDiff(diff *model.ReportDiff) (int, error) {
	md := markdown.NewMarkdown(w.output)

	md.H1("Registry Changes")
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: []string{"", "Generated", "Fingerprint"},
		Rows: [][]string{
			{"Old", diff.OldGeneratedAt.Format(timeLayout), "`" + shortFingerprint(diff.OldFingerprint) + "`"},
			{"New", diff.NewGeneratedAt.Format(timeLayout), "`" + shortFingerprint(diff.NewFingerprint) + "`"},
		},
	})
	md.PlainText("")

	if !diff.HasChanges() {
		md.Note("No changes.")
		return len(md.String()), md.Build()
	}

	if len(diff.Added) > 0 {
		md.H2("Added")
		md.PlainText("")
		md.BulletList(summaryItems(diff.Added)...)
		md.PlainText("")
	}
	if len(diff.Removed) > 0 {
		md.H2("Removed")
		md.PlainText("")
		md.BulletList(summaryItems(diff.Removed)...)
		md.PlainText("")
	}
	if len(diff.Changed) > 0 {
		md.H2("Changed")
		md.PlainText("")
		rows := make([][]string, len(diff.Changed))
		for i, c := range diff.Changed {
			rows[i] = []string{"`" + c.Name + "`", strings.Join(c.OldBaseURLs, "<br>"), strings.Join(c.NewBaseURLs, "<br>")}
		}
		md.Table(markdown.TableSet{
			Header: []string{"Name", "Old Base URLs", "New Base URLs"},
			Rows:   rows,
		})
		md.PlainText("")
	}
	if len(diff.NewlyExcluded) > 0 {
		md.H2("Newly Excluded")
		md.PlainText("")
		items := make([]string, len(diff.NewlyExcluded))
		for i, e := range diff.NewlyExcluded {
			items[i] = "`" + e.Name + "` " + e.Host + ": " + e.Reason
		}
		md.BulletList(items...)
		md.PlainText("")
	}
	if len(diff.NoLongerExcluded) > 0 {
		md.H2("No Longer Excluded")
		md.PlainText("")
		items := make([]string, len(diff.NoLongerExcluded))
		for i, e := range diff.NoLongerExcluded {
			items[i] = "`" + e.Name + "` " + e.Host
		}
		md.BulletList(items...)
		md.PlainText("")
	}

	return len(md.String()), md.Build()
}

// WriteSnapshots outputs the snapshot table.
func (w *MarkdownWriter) WriteSnapshots(snapshots []model.SnapshotInfo) (int, error) {
	md := markdown.NewMarkdown(w.output)

	md.H1("Snapshot History")
	md.PlainText("")

	if len(snapshots) == 0 {
		md.Note("No snapshots saved. Run `lnsources list --save` to create one.")
		return len(md.String()), md.Build()
	}

	rows := make([][]string, len(snapshots))
	for i, s := range snapshots {
		rows[i] = []string{
			strconv.FormatInt(s.ID, 10),
			s.SavedAt.Format(timeLayout),
			"`" + shortFingerprint(s.Fingerprint) + "`",
			strconv.Itoa(s.Scrapers),
			strconv.Itoa(s.Exclusions),
		}
	}
	md.Table(markdown.TableSet{
		Header: []string{"ID", "Saved", "Fingerprint", "Scrapers", "Excluded"},
		Rows:   rows,
	})
	md.PlainText("")

	return len(md.String()), md.Build()
}

// writeFooter writes the report footer.
func (w *MarkdownWriter) writeFooter(md *markdown.Markdown) {
	md.HorizontalRule()
	md.PlainText("")
	md.PlainTextf("*Report generated by [lnsources](https://github.com/nao1215/lnsources)*")
}

func summaryItems(scrapers []model.ScraperSummary) []string {
	items := make([]string, len(scrapers))
	for i, s := range scrapers {
		items[i] = "`" + s.Name + "` " + strings.Join(s.BaseURLs, ", ")
	}
	return items
}
