package report

import (
	"encoding/json"
	"io"

	"github.com/nao1215/lnsources/internal/model"
)

// JSONWriter outputs reports in JSON format for tool integration.
type JSONWriter struct {
	baseWriter

	// indent enables pretty-printed JSON output.
	indent bool

	// indentPrefix is the prefix for each line in indented output.
	indentPrefix string

	// indentString is the indentation string (typically "  " or "\t").
	indentString string
}

// JSONWriterOption configures a JSONWriter.
type JSONWriterOption func(*JSONWriter)

// WithIndent enables pretty-printed JSON output.
// The prefix is prepended to each line, and indent is used for each level.
func WithIndent(prefix, indent string) JSONWriterOption {
	return func(w *JSONWriter) {
		w.indent = true
		w.indentPrefix = prefix
		w.indentString = indent
	}
}

// WithPrettyPrint enables pretty-printed JSON with default indentation.
func WithPrettyPrint() JSONWriterOption {
	return WithIndent("", "  ")
}

// NewJSONWriter creates a JSONWriter that outputs to the given writer.
func NewJSONWriter(output io.Writer, opts ...JSONWriterOption) *JSONWriter {
	w := &JSONWriter{baseWriter: newBaseWriter(output)}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// WriteRegistry outputs the registry report as a JSON object.
func (w *JSONWriter) WriteRegistry(report *model.RegistryReport) (int, error) {
	return w.writeJSON(report)
}

// resolutionsJSON wraps resolve results with their summary.
type resolutionsJSON struct {
	Results []model.Resolution      `json:"results"`
	Summary model.ResolutionSummary `json:"summary"`
}

// WriteResolutions outputs {"results": [...], "summary": {...}}.
func (w *JSONWriter) WriteResolutions(results []model.Resolution) (int, error) {
	if results == nil {
		results = []model.Resolution{}
	}
	return w.writeJSON(resolutionsJSON{
		Results: results,
		Summary: model.SummarizeResolutions(results),
	})
}

// WriteDiff outputs the diff as a JSON object.
func (w *JSONWriter) WriteDiff(diff *model.ReportDiff) (int, error) {
	return w.writeJSON(diff)
}

// WriteSnapshots outputs {"snapshots": [...]}.
func (w *JSONWriter) WriteSnapshots(snapshots []model.SnapshotInfo) (int, error) {
	if snapshots == nil {
		snapshots = []model.SnapshotInfo{}
	}
	return w.writeJSON(struct {
		Snapshots []model.SnapshotInfo `json:"snapshots"`
	}{Snapshots: snapshots})
}

// writeJSON marshals the given value to JSON and writes it to the output.
func (w *JSONWriter) writeJSON(v any) (int, error) {
	var data []byte
	var err error

	if w.indent {
		data, err = json.MarshalIndent(v, w.indentPrefix, w.indentString)
	} else {
		data, err = json.Marshal(v)
	}
	if err != nil {
		return 0, err
	}

	data = append(data, '\n')
	return w.output.Write(data)
}
