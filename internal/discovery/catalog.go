package discovery

import (
	"context"
	"sort"

	"github.com/anonto42/travel-discover/backend/internal/models"
)

// Source resolves a canonical location key into a result set.
type Source interface {
	Resolve(ctx context.Context, key, label string) (models.DiscoveryResult, error)
}

// Resolution is the outcome of a catalog lookup: either a curated entry or a
// result synthesized from the display label.
type Resolution interface {
	Result() models.DiscoveryResult
	Curated() bool
}

type curated struct {
	entry models.DiscoveryResult
}

func (c curated) Result() models.DiscoveryResult { return c.entry.Clone() }
func (c curated) Curated() bool                  { return true }

type synthesized struct {
	label string
}

func (s synthesized) Result() models.DiscoveryResult { return synthesize(s.label) }
func (s synthesized) Curated() bool                  { return false }

// Catalog is the in-process location catalog. It covers every valid key: a
// miss falls back to a synthesized result, never to an error.
type Catalog struct {
	entries map[string]models.DiscoveryResult
}

// NewCatalog creates a Catalog over the built-in curated entries
func NewCatalog() *Catalog {
	return &Catalog{entries: curatedEntries}
}

// Lookup selects the resolution for key by exact match against curated keys.
func (c *Catalog) Lookup(key, label string) Resolution {
	if entry, ok := c.entries[key]; ok {
		return curated{entry: entry}
	}
	if label == "" {
		label = DisplayLabel(key)
	}
	return synthesized{label: label}
}

// Resolve implements Source
func (c *Catalog) Resolve(_ context.Context, key, label string) (models.DiscoveryResult, error) {
	return c.Lookup(key, label).Result(), nil
}

// IsCurated reports whether key has a hand-authored entry
func (c *Catalog) IsCurated(key string) bool {
	_, ok := c.entries[key]
	return ok
}

// Keys lists the curated keys in sorted order
func (c *Catalog) Keys() []string {
	keys := make([]string, 0, len(c.entries))
	for k := range c.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
