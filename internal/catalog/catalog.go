package catalog

import (
	"slices"
	"sync"

	"github.com/nao1215/lnsources/internal/source"
)

// Catalog is an ordered, append-only list of scraper entries.
type Catalog struct {
	mu      sync.Mutex
	entries []source.Entry
}

// New returns an empty Catalog.
func New() *Catalog {
	return &Catalog{}
}

// Register appends a definition under name. Duplicate names are kept;
// the registry resolves them first-match.
func (c *Catalog) Register(name string, def source.Definition) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = append(c.entries, source.Entry{Name: name, Definition: def})
}

// Entries returns a copy of the registered entries in registration order.
func (c *Catalog) Entries() []source.Entry {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.entries)
}

// Len returns the number of registered entries.
func (c *Catalog) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// std is filled by the init functions of the scraper packages.
var std = New()

// Register adds a definition to the built-in catalog.
func Register(name string, def source.Definition) {
	std.Register(name, def)
}

// Entries returns the built-in entries in registration order.
func Entries() []source.Entry {
	return std.Entries()
}
