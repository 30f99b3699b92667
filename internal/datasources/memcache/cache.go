// Package memcache provides the process-lifetime cache tier for
// similar-case results. It is an explicit owned object rather than a
// package-global map so its lifetime and reset semantics are visible to
// the component that holds it.
package memcache

import (
	"sync"

	"github.com/caseprep/casewise/internal/domain"
)

type Cache struct {
	mu      sync.RWMutex
	entries map[string]domain.CachedSimilarCases
}

func New() *Cache {
	return &Cache{
		entries: make(map[string]domain.CachedSimilarCases),
	}
}

// Get returns the entry for a case ID if one exists, regardless of age.
func (c *Cache) Get(caseID string) (domain.CachedSimilarCases, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.entries[caseID]
	return entry, ok
}

func (c *Cache) Put(caseID string, entry domain.CachedSimilarCases) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[caseID] = entry
}

// Reset drops all entries. Used by tests and by callers that need a clean
// tier after reindexing.
func (c *Cache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]domain.CachedSimilarCases)
}
