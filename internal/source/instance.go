package source

import "slices"

// Instance is a registered scraper: its logical name, the normalized base
// URLs it was accepted with and the constructed implementation.
// Instances are immutable once registered.
type Instance struct {
	name     string
	baseURLs []string
	hosts    []string
	scraper  Scraper
}

func newInstance(name string, baseURLs []string, scraper Scraper) *Instance {
	hosts := make([]string, len(baseURLs))
	for i, u := range baseURLs {
		hosts[i] = HostOf(u)
	}
	return &Instance{
		name:     name,
		baseURLs: slices.Clone(baseURLs),
		hosts:    hosts,
		scraper:  scraper,
	}
}

// Name returns the logical name.
func (i *Instance) Name() string {
	return i.name
}

// Language returns the first segment of the logical name.
func (i *Instance) Language() string {
	return LanguageOf(i.name)
}

// BaseURLs returns a copy of the normalized base URLs, in declaration order.
func (i *Instance) BaseURLs() []string {
	return slices.Clone(i.baseURLs)
}

// Hosts returns the canonical host of each base URL, in declaration order.
// Duplicates are kept.
func (i *Instance) Hosts() []string {
	return slices.Clone(i.hosts)
}

// Scraper returns the constructed implementation.
func (i *Instance) Scraper() Scraper {
	return i.scraper
}

func (i *Instance) servesHost(host string) bool {
	return slices.Contains(i.hosts, host)
}
