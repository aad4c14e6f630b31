package source

import (
	"slices"
	"strings"
)

// Scraper is a constructed scraper implementation.
type Scraper interface {
	// Name returns the logical name the scraper was constructed with.
	Name() string
}

// BaseURLSetter is implemented by scrapers that want to receive the
// normalized base URL list after construction.
type BaseURLSetter interface {
	SetBaseURLs(urls []string)
}

// Definition describes a scraper implementation before it is constructed.
type Definition interface {
	// BaseURLs returns the candidate base URLs declared by the implementation.
	// A nil slice means no list was declared.
	BaseURLs() []string

	// New constructs the scraper under the given logical name.
	New(name string) Scraper
}

// Entry pairs a Definition with its dot-separated logical name, for
// example "en.r.royalroad".
type Entry struct {
	Name       string
	Definition Definition
}

// Language returns the first segment of the entry's logical name.
func (e Entry) Language() string {
	return LanguageOf(e.Name)
}

// LanguageOf returns the first dot-separated segment of a logical name.
func LanguageOf(name string) string {
	lang, _, _ := strings.Cut(name, ".")
	return lang
}

// Constructor builds a Scraper under a logical name.
type Constructor func(name string) Scraper

// NewDefinition returns a Definition declaring baseURLs and constructing
// scrapers with ctor.
func NewDefinition(baseURLs []string, ctor Constructor) Definition {
	return &funcDefinition{baseURLs: baseURLs, ctor: ctor}
}

type funcDefinition struct {
	baseURLs []string
	ctor     Constructor
}

func (d *funcDefinition) BaseURLs() []string {
	return slices.Clone(d.baseURLs)
}

func (d *funcDefinition) New(name string) Scraper {
	if d.ctor == nil {
		return nil
	}
	return d.ctor(name)
}

// Base carries the state shared by every scraper. Embed it to get Name,
// BaseURLs, SetBaseURLs and AbsoluteURL.
type Base struct {
	name     string
	baseURLs []string
}

// NewBase returns a Base for the given logical name.
func NewBase(name string) Base {
	return Base{name: name}
}

// Name returns the logical name.
func (b *Base) Name() string {
	return b.name
}

// BaseURLs returns a copy of the base URLs received from the registry.
func (b *Base) BaseURLs() []string {
	return slices.Clone(b.baseURLs)
}

// SetBaseURLs stores a copy of urls.
func (b *Base) SetBaseURLs(urls []string) {
	b.baseURLs = slices.Clone(urls)
}

// HomeURL returns the first base URL, or "" before SetBaseURLs was called.
func (b *Base) HomeURL() string {
	if len(b.baseURLs) == 0 {
		return ""
	}
	return b.baseURLs[0]
}

// AbsoluteURL joins path onto the first base URL. Paths that already carry
// a scheme are returned unchanged.
func (b *Base) AbsoluteURL(path string) string {
	if strings.Contains(path, "://") {
		return path
	}
	home := b.HomeURL()
	if home == "" {
		return path
	}
	if strings.HasPrefix(path, "//") {
		scheme, _, _ := strings.Cut(home, "://")
		return scheme + ":" + path
	}
	return home + "/" + strings.TrimLeft(path, "/")
}
