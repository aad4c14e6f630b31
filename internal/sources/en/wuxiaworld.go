package en

import (
	"github.com/nao1215/lnsources/internal/catalog"
	"github.com/nao1215/lnsources/internal/source"
)

// WuxiaWorld scrapes wuxiaworld.com.
type WuxiaWorld struct {
	source.Base
}

func init() {
	catalog.Register("en.w.wuxiaworld", source.NewDefinition(
		[]string{"https://www.wuxiaworld.com/", "https://wuxiaworld.com/"},
		func(name string) source.Scraper { return &WuxiaWorld{Base: source.NewBase(name)} },
	))
}

// NovelURL returns the novel page for a slug.
func (s *WuxiaWorld) NovelURL(slug string) string {
	return s.AbsoluteURL("/novel/" + slug)
}
