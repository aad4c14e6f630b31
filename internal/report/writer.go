package report

import (
	"io"

	"github.com/nao1215/lnsources/internal/model"
)

// Writer defines the interface for report output.
type Writer interface {
	// WriteRegistry outputs a registry report.
	WriteRegistry(report *model.RegistryReport) (int, error)

	// WriteResolutions outputs the results of a resolve run, in query order.
	WriteResolutions(results []model.Resolution) (int, error)

	// WriteDiff outputs the difference between two registry reports.
	WriteDiff(diff *model.ReportDiff) (int, error)

	// WriteSnapshots outputs a listing of stored snapshots.
	WriteSnapshots(snapshots []model.SnapshotInfo) (int, error)
}

// Format selects a Writer implementation.
type Format int

const (
	// FormatText is the human-readable default.
	FormatText Format = iota
	// FormatJSON is indented JSON.
	FormatJSON
	// FormatMarkdown is GitHub Flavored Markdown.
	FormatMarkdown
)

// NewWriter returns the Writer for format, writing to output.
func NewWriter(output io.Writer, format Format) Writer {
	switch format {
	case FormatJSON:
		return NewJSONWriter(output, WithPrettyPrint())
	case FormatMarkdown:
		return NewMarkdownWriter(output)
	default:
		return NewSimpleWriter(output)
	}
}

// FormatFromFlags maps the --json and --markdown flags to a Format.
// JSON wins when both are set; callers validate the combination first.
func FormatFromFlags(jsonOut, markdownOut bool) Format {
	switch {
	case jsonOut:
		return FormatJSON
	case markdownOut:
		return FormatMarkdown
	default:
		return FormatText
	}
}

// baseWriter provides common functionality for report writers.
type baseWriter struct {
	output io.Writer
}

// newBaseWriter creates a baseWriter with the given output destination.
func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output}
}

// shortFingerprint returns the first 12 characters of a fingerprint.
func shortFingerprint(fp string) string {
	if len(fp) <= 12 {
		return fp
	}
	return fp[:12]
}

// timeLayout is used for every timestamp in text and Markdown output.
const timeLayout = "2006-01-02 15:04:05 MST"
