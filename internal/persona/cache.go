package persona

import (
	"sort"
	"sync"
	"time"
)

// Cache defaults. The cache is bounded so a scan burst cannot grow memory
// without limit; eviction drops the oldest tenth.
const (
	DefaultCacheTTL = 5 * time.Minute
	DefaultCacheCap = 1000
	evictBatch      = 100
)

// EntryStatus tracks async generation progress for a cache entry.
type EntryStatus string

const (
	EntryProcessing EntryStatus = "processing"
	EntryReady      EntryStatus = "ready"
	EntryError      EntryStatus = "error"
)

// Entry is one cached persona copy result keyed by URL hash.
type Entry struct {
	Status    EntryStatus `json:"status"`
	Copy      *Copy       `json:"data,omitempty"`
	CreatedAt time.Time   `json:"created_at"`
}

// Cache is a bounded in-memory TTL cache for persona copy. Safe for
// concurrent use.
type Cache struct {
	mu      sync.Mutex
	entries map[string]Entry
	ttl     time.Duration
	cap     int
	now     func() time.Time
}

// NewCache creates a cache with the given TTL and capacity; non-positive
// values take the defaults.
func NewCache(ttl time.Duration, capacity int) *Cache {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	if capacity <= 0 {
		capacity = DefaultCacheCap
	}
	return &Cache{
		entries: make(map[string]Entry),
		ttl:     ttl,
		cap:     capacity,
		now:     time.Now,
	}
}

// Get returns a live entry for the hash, or false when absent or expired.
func (c *Cache) Get(hash string) (Entry, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[hash]
	if !ok {
		return Entry{}, false
	}
	if c.now().Sub(e.CreatedAt) >= c.ttl {
		delete(c.entries, hash)
		return Entry{}, false
	}
	return e, true
}

// SetProcessing marks a hash as generation-in-progress.
func (c *Cache) SetProcessing(hash string) {
	c.set(hash, Entry{Status: EntryProcessing})
}

// SetReady stores finished copy for a hash.
func (c *Cache) SetReady(hash string, copy Copy) {
	c.set(hash, Entry{Status: EntryReady, Copy: &copy})
}

// SetError records a failed generation so pollers stop waiting.
func (c *Cache) SetError(hash string) {
	c.set(hash, Entry{Status: EntryError})
}

func (c *Cache) set(hash string, e Entry) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.entries) >= c.cap {
		c.evictOldest()
	}
	e.CreatedAt = c.now()
	c.entries[hash] = e
}

// evictOldest removes the evictBatch oldest entries. Caller holds the lock.
func (c *Cache) evictOldest() {
	type aged struct {
		hash string
		at   time.Time
	}
	all := make([]aged, 0, len(c.entries))
	for h, e := range c.entries {
		all = append(all, aged{h, e.CreatedAt})
	}
	sort.Slice(all, func(i, j int) bool { return all[i].at.Before(all[j].at) })

	n := evictBatch
	if n > len(all) {
		n = len(all)
	}
	for _, a := range all[:n] {
		delete(c.entries, a.hash)
	}
}

// Len reports the current number of entries, expired or not.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
