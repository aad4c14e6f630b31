package model

import (
	"cmp"
	"slices"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// MultiLanguage is the language segment of scrapers serving several languages.
const MultiLanguage = "multi"

// LanguageName returns the English display name of a language segment,
// e.g. "English" for "en". Segments that are not language codes are title
// cased.
func LanguageName(code string) string {
	switch code {
	case "":
		return "Unknown"
	case MultiLanguage:
		return "Multilingual"
	}

	tag, err := language.Parse(code)
	if err == nil {
		if name := display.English.Languages().Name(tag); name != "" {
			return name
		}
	}
	// Casers are not safe for concurrent use, so each call builds its own.
	return cases.Title(language.English).String(code)
}

// CountLanguages counts scrapers per language segment. The result is sorted
// by count, largest first, then by code.
func CountLanguages(scrapers []ScraperSummary) []LanguageCount {
	counts := make(map[string]int)
	for _, s := range scrapers {
		counts[s.Language]++
	}

	out := make([]LanguageCount, 0, len(counts))
	for code, n := range counts {
		out = append(out, LanguageCount{Code: code, Name: LanguageName(code), Count: n})
	}
	slices.SortFunc(out, func(a, b LanguageCount) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return cmp.Compare(a.Code, b.Code)
	})
	return out
}
