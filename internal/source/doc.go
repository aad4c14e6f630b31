// Package source implements discovery-time validation and lookup of scraper
// implementations.
//
// A scraper implementation is described by a Definition: the list of base
// URLs it declares and a constructor. Registry.RegisterAll walks the
// definitions produced by a loader (see the catalog package), validates the
// declared base URLs, drops definitions bound to a rejected host and keeps the
// rest as Instances in discovery order. Afterwards the registry answers two
// questions, read-only and safe for concurrent use:
//
//	inst, err := reg.FindByURL("https://www.royalroad.com/fiction/1")
//	inst, ok := reg.FindByName("en.r.royalroad")
//
// Hosts are compared case-insensitively, after IDNA conversion, with the
// default port of the scheme and any userinfo ignored.
package source
