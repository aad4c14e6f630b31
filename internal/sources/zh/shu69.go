package zh

import (
	"strconv"

	"github.com/nao1215/lnsources/internal/catalog"
	"github.com/nao1215/lnsources/internal/source"
)

// Shu69 scrapes 69shu.
type Shu69 struct {
	source.Base
}

func init() {
	catalog.Register("zh.69shu", source.NewDefinition(
		[]string{"https://www.69shu.com/", "https://www.69shuba.com/"},
		func(name string) source.Scraper { return &Shu69{Base: source.NewBase(name)} },
	))
}

// NovelURL returns the book page for a numeric book id.
func (s *Shu69) NovelURL(id int) string {
	return s.AbsoluteURL("/book/" + strconv.Itoa(id) + ".htm")
}
