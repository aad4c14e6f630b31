package multi

import (
	"github.com/nao1215/lnsources/internal/catalog"
	"github.com/nao1215/lnsources/internal/source"
)

// MTLNovel scrapes mtlnovel and its language subdomains.
type MTLNovel struct {
	source.Base
}

func init() {
	catalog.Register("multi.mtlnovel", source.NewDefinition(
		[]string{
			"https://www.mtlnovel.com/",
			"https://id.mtlnovel.com/",
			"https://fr.mtlnovel.com/",
			"https://es.mtlnovel.com/",
		},
		func(name string) source.Scraper { return &MTLNovel{Base: source.NewBase(name)} },
	))
}

// NovelURL returns the novel page for a slug on the English site.
func (s *MTLNovel) NovelURL(slug string) string {
	return s.AbsoluteURL("/" + slug + "/")
}
