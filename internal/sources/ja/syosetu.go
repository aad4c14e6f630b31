package ja

import (
	"strings"

	"github.com/nao1215/lnsources/internal/catalog"
	"github.com/nao1215/lnsources/internal/source"
)

// Syosetu scrapes Shousetsuka ni Narou.
type Syosetu struct {
	source.Base
}

func init() {
	catalog.Register("ja.syosetu", source.NewDefinition(
		[]string{"https://ncode.syosetu.com/", "https://novel18.syosetu.com/"},
		func(name string) source.Scraper { return &Syosetu{Base: source.NewBase(name)} },
	))
}

// NovelURL returns the table of contents for an ncode such as "n9669bk".
// Ncodes are case-insensitive on the site and always served lowercase.
func (s *Syosetu) NovelURL(ncode string) string {
	return s.AbsoluteURL("/" + strings.ToLower(ncode) + "/")
}
