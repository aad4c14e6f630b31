package en

import (
	"github.com/nao1215/lnsources/internal/catalog"
	"github.com/nao1215/lnsources/internal/source"
)

// NovelFull scrapes novelfull.com and its mirror.
type NovelFull struct {
	source.Base
}

func init() {
	catalog.Register("en.n.novelfull", source.NewDefinition(
		[]string{"https://novelfull.com/", "https://novelfull.net/"},
		func(name string) source.Scraper { return &NovelFull{Base: source.NewBase(name)} },
	))
}

// NovelURL returns the index page of a novel.
func (s *NovelFull) NovelURL(slug string) string {
	return s.AbsoluteURL(slug + ".html")
}
