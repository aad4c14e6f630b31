package zh

import (
	"strconv"

	"github.com/nao1215/lnsources/internal/catalog"
	"github.com/nao1215/lnsources/internal/source"
)

// UUKanshu scrapes uukanshu.
type UUKanshu struct {
	source.Base
}

func init() {
	catalog.Register("zh.uukanshu", source.NewDefinition(
		[]string{"https://www.uukanshu.net/", "https://sj.uukanshu.net/"},
		func(name string) source.Scraper { return &UUKanshu{Base: source.NewBase(name)} },
	))
}

// NovelURL returns the book index for a numeric book id.
func (s *UUKanshu) NovelURL(id int) string {
	return s.AbsoluteURL("/b/" + strconv.Itoa(id) + "/")
}
