// Package report writes registry reports, resolution results, registry
// diffs and snapshot listings in three formats:
//   - SimpleWriter: plain text for terminals
//   - JSONWriter: JSON for tool integration
//   - MarkdownWriter: GitHub Flavored Markdown with tables, alerts and a
//     mermaid pie chart of scrapers per language
//
// All writers implement Writer; NewWriter picks one by Format.
package report
