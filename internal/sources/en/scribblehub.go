package en

import (
	"strconv"

	"github.com/nao1215/lnsources/internal/catalog"
	"github.com/nao1215/lnsources/internal/source"
)

// ScribbleHub scrapes scribblehub.com.
type ScribbleHub struct {
	source.Base
}

func init() {
	catalog.Register("en.s.scribblehub", source.NewDefinition(
		[]string{"https://www.scribblehub.com/"},
		func(name string) source.Scraper { return &ScribbleHub{Base: source.NewBase(name)} },
	))
}

// NovelURL returns the series page for a series id and slug.
func (s *ScribbleHub) NovelURL(id int, slug string) string {
	return s.AbsoluteURL("/series/" + strconv.Itoa(id) + "/" + slug + "/")
}
