package text

import (
	"sync"

	"github.com/go-drift/pure/pkg/geometry"
)

// defaultCacheEntries bounds the number of memoized measurements.
const defaultCacheEntries = 4096

type cacheKey struct {
	content string
	size    float64
}

// Cache memoizes measurements of an underlying Measurer. It is safe for
// concurrent use. The owner must call Close when the cache is no longer
// needed; a closed cache measures without memoizing.
type Cache struct {
	measurer Measurer
	limit    int

	mu      sync.Mutex
	entries map[cacheKey]geometry.Size
	closed  bool
}

// NewCache wraps measurer. A non-positive limit selects the default.
func NewCache(measurer Measurer, limit int) *Cache {
	if limit <= 0 {
		limit = defaultCacheEntries
	}
	return &Cache{
		measurer: measurer,
		limit:    limit,
		entries:  make(map[cacheKey]geometry.Size),
	}
}

// Measure returns the memoized size of content, measuring on a miss.
func (c *Cache) Measure(content string, size float64) geometry.Size {
	key := cacheKey{content: content, size: size}

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return c.measurer.Measure(content, size)
	}
	if s, ok := c.entries[key]; ok {
		c.mu.Unlock()
		return s
	}
	c.mu.Unlock()

	s := c.measurer.Measure(content, size)

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return s
	}
	if len(c.entries) >= c.limit {
		clear(c.entries)
	}
	c.entries[key] = s
	return s
}

// Len returns the number of memoized entries.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Close releases the memoized entries. It is safe to call more than once.
func (c *Cache) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	c.entries = nil
	return nil
}
