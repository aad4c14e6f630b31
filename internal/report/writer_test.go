package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/nao1215/lnsources/internal/model"
	"github.com/nao1215/lnsources/internal/source"
)

// createTestReport creates a registry report with sample data for testing.
func createTestReport() *model.RegistryReport {
	report := &model.RegistryReport{
		GeneratedAt:   time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		ConfigFile:    "/home/reader/.lnsources",
		RejectedHosts: 1,
		Scrapers: []model.ScraperSummary{
			{Name: "en.r.royalroad", Language: "en", BaseURLs: []string{"https://www.royalroad.com"}, Hosts: []string{"www.royalroad.com"}},
			{Name: "zh.69shu", Language: "zh", BaseURLs: []string{"https://www.69shu.com", "https://www.69shuba.com"}, Hosts: []string{"www.69shu.com", "www.69shuba.com"}},
		},
		Exclusions: []source.Exclusion{
			{Name: "en.b.blocked", URL: "https://blocked.com", Host: "blocked.com", Reason: "Site is down"},
		},
	}
	report.Languages = model.CountLanguages(report.Scrapers)
	report.Fingerprint = report.ComputeFingerprint()
	return report
}

func createTestResolutions() []model.Resolution {
	return []model.Resolution{
		{Query: "https://www.royalroad.com/fiction/1", Host: "www.royalroad.com", Status: model.StatusMatched, Scraper: "en.r.royalroad"},
		{Query: "https://unknown.example/", Host: "unknown.example", Status: model.StatusNoMatch},
		{Query: "https://blocked.com/x", Host: "blocked.com", Status: model.StatusRejected, Reason: "Site is down"},
	}
}

func createTestDiff() *model.ReportDiff {
	return &model.ReportDiff{
		OldGeneratedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		NewGeneratedAt: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
		OldFingerprint: strings.Repeat("a", 64),
		NewFingerprint: strings.Repeat("b", 64),
		Added:          []model.ScraperSummary{{Name: "ja.syosetu", BaseURLs: []string{"https://ncode.syosetu.com"}}},
		Removed:        []model.ScraperSummary{{Name: "en.old", BaseURLs: []string{"https://old.example"}}},
		Changed: []model.ScraperChange{{
			Name:        "en.n.novelfull",
			OldBaseURLs: []string{"https://novelfull.com"},
			NewBaseURLs: []string{"https://novelfull.net"},
		}},
		NewlyExcluded: []source.Exclusion{{Name: "en.b.blocked", Host: "blocked.com", Reason: "Site is down"}},
	}
}

func TestSimpleWriter(t *testing.T) {
	t.Parallel()

	t.Run("writes registry", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewSimpleWriter(&buf).WriteRegistry(createTestReport()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		for _, want := range []string{
			"LNSOURCES REGISTRY",
			"Scrapers:       2",
			"Hosts:          3",
			"en.r.royalroad [English]",
			"https://www.69shuba.com",
			"EXCLUDED",
			"blocked.com: Site is down",
			"/home/reader/.lnsources",
		} {
			if !strings.Contains(output, want) {
				t.Errorf("expected output to contain %q\n%s", want, output)
			}
		}
	})

	t.Run("hides base urls when asked", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewSimpleWriter(&buf, WithBaseURLs(false)).WriteRegistry(createTestReport()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if strings.Contains(buf.String(), "https://www.69shuba.com") {
			t.Error("expected base urls to be hidden")
		}
	})

	t.Run("omits exclusion section when empty", func(t *testing.T) {
		t.Parallel()

		report := createTestReport()
		report.Exclusions = nil

		var buf bytes.Buffer
		if _, err := NewSimpleWriter(&buf).WriteRegistry(report); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if strings.Contains(buf.String(), "EXCLUDED") {
			t.Error("expected no exclusion section")
		}
	})

	t.Run("writes resolutions", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewSimpleWriter(&buf).WriteResolutions(createTestResolutions()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		for _, want := range []string{
			"[MATCH]    https://www.royalroad.com/fiction/1 -> en.r.royalroad",
			"[NO MATCH] https://unknown.example/",
			"[REJECTED] https://blocked.com/x (blocked.com: Site is down)",
			"3 queries: 1 matched, 1 no match, 1 rejected",
		} {
			if !strings.Contains(output, want) {
				t.Errorf("expected output to contain %q\n%s", want, output)
			}
		}
	})

	t.Run("writes diff", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewSimpleWriter(&buf).WriteDiff(createTestDiff()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		for _, want := range []string{
			"+ ja.syosetu",
			"- en.old",
			"~ en.n.novelfull https://novelfull.com => https://novelfull.net",
			"! en.b.blocked excluded",
		} {
			if !strings.Contains(output, want) {
				t.Errorf("expected output to contain %q\n%s", want, output)
			}
		}
	})

	t.Run("writes empty diff", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewSimpleWriter(&buf).WriteDiff(&model.ReportDiff{}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(buf.String(), "No changes.") {
			t.Errorf("expected no changes message, got %s", buf.String())
		}
	})

	t.Run("writes snapshots", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		_, err := NewSimpleWriter(&buf).WriteSnapshots([]model.SnapshotInfo{
			{ID: 7, SavedAt: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), Fingerprint: strings.Repeat("c", 64), Scrapers: 9, Exclusions: 1},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(buf.String(), "cccccccccccc") || !strings.Contains(buf.String(), "7 ") {
			t.Errorf("unexpected snapshot listing:\n%s", buf.String())
		}

		buf.Reset()
		if _, err := NewSimpleWriter(&buf).WriteSnapshots(nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(buf.String(), "No snapshots saved") {
			t.Errorf("expected empty message, got %s", buf.String())
		}
	})
}

func TestJSONWriter(t *testing.T) {
	t.Parallel()

	t.Run("registry round trips", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		report := createTestReport()
		if _, err := NewJSONWriter(&buf).WriteRegistry(report); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		var decoded model.RegistryReport
		if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
			t.Fatalf("invalid JSON: %v", err)
		}
		if decoded.Fingerprint != report.Fingerprint || len(decoded.Scrapers) != 2 {
			t.Errorf("unexpected decoded report %+v", decoded)
		}
	})

	t.Run("resolutions carry a summary", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewJSONWriter(&buf).WriteResolutions(createTestResolutions()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		var decoded struct {
			Results []model.Resolution      `json:"results"`
			Summary model.ResolutionSummary `json:"summary"`
		}
		if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
			t.Fatalf("invalid JSON: %v", err)
		}
		if len(decoded.Results) != 3 || decoded.Summary.Rejected != 1 {
			t.Errorf("unexpected decoded resolutions %+v", decoded)
		}
	})

	t.Run("empty snapshot list is an empty array", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewJSONWriter(&buf).WriteSnapshots(nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if strings.TrimSpace(buf.String()) != `{"snapshots":[]}` {
			t.Errorf("unexpected output %s", buf.String())
		}
	})

	t.Run("pretty print indents", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewJSONWriter(&buf, WithPrettyPrint()).WriteDiff(createTestDiff()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(buf.String(), "\n  \"added\"") {
			t.Errorf("expected indented output, got %s", buf.String())
		}
	})
}

func TestMarkdownWriter(t *testing.T) {
	t.Parallel()

	t.Run("writes registry with pie chart", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewMarkdownWriter(&buf).WriteRegistry(createTestReport()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		for _, want := range []string{
			"# lnsources Registry",
			"## Languages",
			"```mermaid",
			"Scrapers per Language",
			"## Scrapers",
			"`en.r.royalroad`",
			"## Excluded Sources",
			"Site is down",
		} {
			if !strings.Contains(output, want) {
				t.Errorf("expected output to contain %q\n%s", want, output)
			}
		}
	})

	t.Run("writes resolutions with caution", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewMarkdownWriter(&buf).WriteResolutions(createTestResolutions()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(buf.String(), "1 query(s) point at rejected sources.") {
			t.Errorf("expected caution alert, got %s", buf.String())
		}
	})

	t.Run("writes diff sections", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewMarkdownWriter(&buf).WriteDiff(createTestDiff()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for _, want := range []string{"## Added", "## Removed", "## Changed", "## Newly Excluded"} {
			if !strings.Contains(buf.String(), want) {
				t.Errorf("expected output to contain %q", want)
			}
		}
	})

	t.Run("writes snapshots", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewMarkdownWriter(&buf).WriteSnapshots([]model.SnapshotInfo{{ID: 1, Fingerprint: "abc"}}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(buf.String(), "# Snapshot History") {
			t.Errorf("unexpected output %s", buf.String())
		}
	})
}

func TestNewWriter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if _, ok := NewWriter(&buf, FormatText).(*SimpleWriter); !ok {
		t.Error("expected SimpleWriter")
	}
	if _, ok := NewWriter(&buf, FormatJSON).(*JSONWriter); !ok {
		t.Error("expected JSONWriter")
	}
	if _, ok := NewWriter(&buf, FormatMarkdown).(*MarkdownWriter); !ok {
		t.Error("expected MarkdownWriter")
	}

	if FormatFromFlags(false, false) != FormatText ||
		FormatFromFlags(true, false) != FormatJSON ||
		FormatFromFlags(false, true) != FormatMarkdown {
		t.Error("unexpected format mapping")
	}
}
