// Package cache holds search results in memory, keyed by the raw query.
//
// Keys are not normalized: "cat", "Cat" and " cat" are three entries.
// Entries live as long as the QueryCache value; there is no eviction,
// expiry or size bound.
package cache

import (
	"sync"

	"gifsaver/pkg/models"
)

// QueryCache maps a query string to its sorted result list.
// Two concurrent misses on the same query both fetch; the second Set
// overwrites the first with equivalent data.
type QueryCache struct {
	entries map[string][]models.GIF
	mu      sync.RWMutex
}

// New creates an empty cache
func New() *QueryCache {
	return &QueryCache{
		entries: make(map[string][]models.GIF),
	}
}

// Get returns a copy of the cached results for query
func (c *QueryCache) Get(query string) ([]models.GIF, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	results, ok := c.entries[query]
	if !ok {
		return nil, false
	}
	return clone(results), true
}

// Set stores a copy of results under query
func (c *QueryCache) Set(query string, results []models.GIF) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[query] = clone(results)
}

// Len returns the number of cached queries
func (c *QueryCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Clear drops every entry
func (c *QueryCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string][]models.GIF)
}

func clone(results []models.GIF) []models.GIF {
	out := make([]models.GIF, len(results))
	copy(out, results)
	return out
}
