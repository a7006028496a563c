package internal

import (
	"sync"
	"time"
)

// SegmentCache is an explicitly owned, size-bounded cache of scanned segment
// lists keyed by template source. It replaces process-wide memoization:
// every Engine constructs and owns its own cache, keeping renders stateless
// from the caller's point of view and trivially testable.
type SegmentCache struct {
	mu         sync.Mutex
	entries    map[string]*segmentCacheEntry
	maxEntries int
}

type segmentCacheEntry struct {
	segments   []Segment
	accessedAt time.Time
}

// DefaultCacheMaxEntries bounds the number of cached templates.
const DefaultCacheMaxEntries = 256

// NewSegmentCache creates a segment cache holding at most maxEntries
// templates. A maxEntries of 0 uses the default bound.
func NewSegmentCache(maxEntries int) *SegmentCache {
	if maxEntries <= 0 {
		maxEntries = DefaultCacheMaxEntries
	}
	return &SegmentCache{
		entries:    make(map[string]*segmentCacheEntry),
		maxEntries: maxEntries,
	}
}

// Get returns the cached segments for a template source, if present.
func (c *SegmentCache) Get(source string) ([]Segment, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[source]
	if !ok {
		return nil, false
	}
	entry.accessedAt = time.Now()
	return entry.segments, true
}

// Put stores the segments for a template source, evicting the least recently
// accessed entry when the cache is full.
func (c *SegmentCache) Put(source string, segments []Segment) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.entries[source]; !ok && len(c.entries) >= c.maxEntries {
		c.evictOldestLocked()
	}
	c.entries[source] = &segmentCacheEntry{
		segments:   segments,
		accessedAt: time.Now(),
	}
}

// Len returns the number of cached templates.
func (c *SegmentCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Purge removes all cached entries.
func (c *SegmentCache) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]*segmentCacheEntry)
}

// evictOldestLocked removes the least recently accessed entry.
// Caller must hold the lock.
func (c *SegmentCache) evictOldestLocked() {
	var oldestKey string
	var oldestTime time.Time
	first := true

	for key, entry := range c.entries {
		if first || entry.accessedAt.Before(oldestTime) {
			oldestKey = key
			oldestTime = entry.accessedAt
			first = false
		}
	}
	if !first {
		delete(c.entries, oldestKey)
	}
}
