// Package catalog collects scraper definitions at program start.
//
// Scraper packages register their definitions from init functions:
//
//	func init() {
//		catalog.Register("en.r.royalroad", source.NewDefinition(
//			[]string{"https://www.royalroad.com/"},
//			func(name string) source.Scraper { return &RoyalRoad{Base: source.NewBase(name)} },
//		))
//	}
//
// and a binary enables them with a blank import of the package (or of
// internal/sources/all). Entries keeps registration order, which is the
// order packages are initialized in, so discovery order is stable for a
// given build.
//
// Definitions that exist only as configuration, a name and a list of base
// URLs, are turned into entries with Declared.
package catalog
