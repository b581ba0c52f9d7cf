// Package cache provides the bounded preview cache used to avoid
// recomputing extraction and positioning while the user navigates between
// cards.
//
// The cache is purely a performance optimization: pipeline behavior must be
// identical whether it is cold or warm. Entries are immutable once written
// and keyed by everything that affects a rendered card, so a stale hit is
// impossible as long as the key is built from the settings fingerprint.
package cache

import (
	"image"
	"sort"
	"sync"
	"time"

	"github.com/tsawler/cardstock/model"
	"github.com/tsawler/cardstock/render"
)

// Defaults for New.
const (
	DefaultCapacity = 50
	DefaultMaxAge   = 5 * time.Minute
)

// evictFraction is the share of entries removed in one eviction pass.
const evictFraction = 5 // one fifth

// Key identifies one cached card result. Fingerprint must come from
// [model.OutputSettings.Fingerprint] so the key covers card size, scale,
// rotation, offset, sizing mode, and bleed.
type Key struct {
	CardID      int
	Side        model.Side
	Fingerprint string
	GroupID     string
}

// Entry is one cached result. Entries are written whole and never updated
// in place.
type Entry struct {
	Extracted image.Image
	Placement render.Placement
	Processed image.Image

	created time.Time
}

// CreatedAt reports when the entry was stored.
func (e *Entry) CreatedAt() time.Time {
	return e.created
}

// Cache is a bounded key/value store with freshness-based invalidation.
// It is safe for concurrent use.
type Cache struct {
	mu       sync.Mutex
	capacity int
	maxAge   time.Duration
	entries  map[Key]*Entry

	// now is replaceable for tests.
	now func() time.Time
}

// New creates a cache holding at most capacity entries, treating entries
// older than maxAge as misses. Zero values select the defaults.
func New(capacity int, maxAge time.Duration) *Cache {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	if maxAge <= 0 {
		maxAge = DefaultMaxAge
	}
	return &Cache{
		capacity: capacity,
		maxAge:   maxAge,
		entries:  make(map[Key]*Entry, capacity),
		now:      time.Now,
	}
}

// Get returns the entry for the key. An entry past the freshness window is
// removed and reported as a miss so the caller recomputes it.
func (c *Cache) Get(key Key) (*Entry, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	ent, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if c.now().Sub(ent.created) > c.maxAge {
		delete(c.entries, key)
		return nil, false
	}
	return ent, true
}

// Put stores an entry, stamping its creation time. Storing under an
// existing key overwrites the entry wholesale. When the entry count exceeds
// the capacity, the oldest fifth of the cache is evicted in a single pass;
// batch eviction amortizes the cleanup cost across many inserts.
func (c *Cache) Put(key Key, ent *Entry) {
	c.mu.Lock()
	defer c.mu.Unlock()

	ent.created = c.now()
	c.entries[key] = ent

	if len(c.entries) > c.capacity {
		c.evictOldest()
	}
}

// Remove deletes the entry for the key, if present. Callers clear entries
// after an extraction failure so a retry recomputes from scratch.
func (c *Cache) Remove(key Key) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}

// Len returns the current entry count.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// evictOldest removes the oldest-by-timestamp fifth of the entries.
// Called with the lock held.
func (c *Cache) evictOldest() {
	n := c.capacity / evictFraction
	if n < 1 {
		n = 1
	}

	type aged struct {
		key     Key
		created time.Time
	}
	all := make([]aged, 0, len(c.entries))
	for k, e := range c.entries {
		all = append(all, aged{key: k, created: e.created})
	}
	sort.Slice(all, func(i, j int) bool {
		return all[i].created.Before(all[j].created)
	})
	if n > len(all) {
		n = len(all)
	}
	for _, a := range all[:n] {
		delete(c.entries, a.key)
	}
}
