package ephemeris

import (
	"sync"
	"time"

	"github.com/kalachakra/ephemeris/body"
)

// cacheEntry holds one cached position sample plus its insertion time,
// for TTL eviction.
type cacheEntry struct {
	position  Position
	insertion time.Time
}

type cacheKey struct {
	body body.Body
	jd   float64
}

// Cache is an in-memory, non-persisted TTL cache of position samples
// keyed by (body, Julian Day), so repeated bisection/fix_edges probes
// at the same instant don't re-invoke the oracle. Nothing here is
// written to disk — consistent with the no-persistence non-goal.
type Cache struct {
	mu      sync.Mutex
	entries map[cacheKey]cacheEntry
	ttl     time.Duration
}

// NewCache builds a Cache whose entries expire ttl after insertion.
// ttl <= 0 disables expiry (entries live until evicted by Close).
func NewCache(ttl time.Duration) *Cache {
	return &Cache{entries: make(map[cacheKey]cacheEntry), ttl: ttl}
}

// Get returns the cached Position for (b, jd), if present and unexpired.
func (c *Cache) Get(b body.Body, jd float64) (Position, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[cacheKey{body: b, jd: jd}]
	if !ok {
		return Position{}, false
	}
	if c.ttl > 0 && time.Since(entry.insertion) > c.ttl {
		delete(c.entries, cacheKey{body: b, jd: jd})
		return Position{}, false
	}
	return entry.position, true
}

// Put stores pos for (b, jd).
func (c *Cache) Put(b body.Body, jd float64, pos Position) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[cacheKey{body: b, jd: jd}] = cacheEntry{position: pos, insertion: time.Now()}
}

// Evict clears every entry. Called from Ephemeris.Close().
func (c *Cache) Evict() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[cacheKey]cacheEntry)
}

// Len reports the number of live (not necessarily unexpired) entries.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
