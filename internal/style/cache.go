package style

import (
	"sync"

	"github.com/golang/groupcache/lru"
	"github.com/mitchellh/hashstructure/v2"
)

// DefaultCacheSize bounds the number of prepared parameters a Cache keeps.
const DefaultCacheSize = 512

// Prepare activates the media entries of p for the active tiers and parses
// the result.
func Prepare(p Param, active ActiveBreakpoints) Parsed {
	return Parse(ApplyMedia(p, active))
}

type cacheKey struct {
	param  uint64
	active ActiveBreakpoints
}

// Cache memoizes Prepare keyed by a structural hash of the parameter and the
// active tiers. It only changes cost: a parameter that cannot be hashed is
// prepared directly. Cache is safe for concurrent use.
type Cache struct {
	mu      sync.Mutex
	entries *lru.Cache
	hits    uint64
	misses  uint64
}

// NewCache creates a cache holding at most size entries. A size <= 0 uses
// DefaultCacheSize.
func NewCache(size int) *Cache {
	if size <= 0 {
		size = DefaultCacheSize
	}
	return &Cache{entries: lru.New(size)}
}

// Prepare returns the memoized result of Prepare(p, active).
func (c *Cache) Prepare(p Param, active ActiveBreakpoints) Parsed {
	if c == nil {
		return Prepare(p, active)
	}

	hash, err := hashstructure.Hash(p, hashstructure.FormatV2, nil)
	if err != nil {
		return Prepare(p, active)
	}
	key := cacheKey{param: hash, active: active}

	c.mu.Lock()
	if cached, ok := c.entries.Get(key); ok {
		c.hits++
		c.mu.Unlock()
		return cached.(Parsed)
	}
	c.misses++
	c.mu.Unlock()

	parsed := Prepare(p, active)

	c.mu.Lock()
	c.entries.Add(key, parsed)
	c.mu.Unlock()

	return parsed
}

// Stats returns the hit and miss counters.
func (c *Cache) Stats() (hits, misses uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hits, c.misses
}

// Len returns the number of cached entries.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.entries.Len()
}

// Purge drops every cached entry.
func (c *Cache) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries.Clear()
}
