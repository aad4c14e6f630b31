package en

import (
	"strconv"

	"github.com/nao1215/lnsources/internal/catalog"
	"github.com/nao1215/lnsources/internal/source"
)

// RoyalRoad scrapes royalroad.com.
type RoyalRoad struct {
	source.Base
}

func init() {
	catalog.Register("en.r.royalroad", source.NewDefinition(
		[]string{"https://www.royalroad.com/"},
		func(name string) source.Scraper { return &RoyalRoad{Base: source.NewBase(name)} },
	))
}

// NovelURL returns the fiction page for a numeric fiction id.
func (s *RoyalRoad) NovelURL(id int) string {
	return s.AbsoluteURL("/fiction/" + strconv.Itoa(id))
}
