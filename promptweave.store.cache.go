package promptweave

import (
	"context"
	"sync"
	"time"
)

// CachedStore wraps any TemplateStore with in-memory caching of Get results,
// with a TTL, a size bound and optional negative caching. It pairs with
// FilesystemStore's watch handler: wire WithWatchHandler(cached.Invalidate)
// for disk changes to take effect before the TTL lapses.
type CachedStore struct {
	store  TemplateStore
	config StoreCacheConfig

	mu     sync.RWMutex
	cache  map[string]*storeCacheEntry
	closed bool
}

// StoreCacheConfig configures CachedStore behavior.
type StoreCacheConfig struct {
	// TTL is how long cached entries remain valid. Default: 5 minutes.
	TTL time.Duration

	// MaxEntries is the maximum number of cached templates; the least
	// recently accessed entry is evicted beyond it. Default: 1000.
	MaxEntries int

	// NegativeTTL is how long "not found" results are cached.
	// 0 disables negative caching. Default: 30 seconds.
	NegativeTTL time.Duration
}

// DefaultStoreCacheConfig returns the default cache configuration.
func DefaultStoreCacheConfig() StoreCacheConfig {
	return StoreCacheConfig{
		TTL:         DefaultStoreCacheTTL,
		MaxEntries:  DefaultStoreCacheMaxEntries,
		NegativeTTL: DefaultStoreCacheNegativeTTL,
	}
}

type storeCacheEntry struct {
	template   *StoredTemplate
	notFound   bool
	cachedAt   time.Time
	accessedAt time.Time
}

// NewCachedStore wraps a store with caching.
func NewCachedStore(store TemplateStore, config StoreCacheConfig) *CachedStore {
	if config.TTL == 0 {
		config.TTL = DefaultStoreCacheTTL
	}
	if config.MaxEntries == 0 {
		config.MaxEntries = DefaultStoreCacheMaxEntries
	}
	return &CachedStore{
		store:  store,
		config: config,
		cache:  make(map[string]*storeCacheEntry),
	}
}

// Get retrieves the latest template version, from cache when valid.
func (s *CachedStore) Get(ctx context.Context, name string) (*StoredTemplate, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil, NewStoreClosedError()
	}
	if entry, ok := s.cache[name]; ok && s.entryValid(entry) {
		entry.accessedAt = time.Now()
		if entry.notFound {
			s.mu.Unlock()
			return nil, NewTemplateNotFoundError(name)
		}
		tmpl := copyStoredTemplate(entry.template)
		s.mu.Unlock()
		return tmpl, nil
	}
	s.mu.Unlock()

	tmpl, err := s.store.Get(ctx, name)
	if err != nil {
		if s.config.NegativeTTL > 0 {
			s.putEntry(name, &storeCacheEntry{notFound: true})
		}
		return nil, err
	}

	s.putEntry(name, &storeCacheEntry{template: copyStoredTemplate(tmpl)})
	return tmpl, nil
}

// GetVersion always delegates; specific versions are immutable but rare
// enough in lookups not to cache.
func (s *CachedStore) GetVersion(ctx context.Context, name string, version int) (*StoredTemplate, error) {
	if err := s.checkOpen(); err != nil {
		return nil, err
	}
	return s.store.GetVersion(ctx, name, version)
}

// Save delegates and invalidates the name's cached entry.
func (s *CachedStore) Save(ctx context.Context, tmpl *StoredTemplate) error {
	if err := s.checkOpen(); err != nil {
		return err
	}
	if err := s.store.Save(ctx, tmpl); err != nil {
		return err
	}
	s.Invalidate(tmpl.Name)
	return nil
}

// Delete delegates and invalidates the name's cached entry.
func (s *CachedStore) Delete(ctx context.Context, name string) error {
	if err := s.checkOpen(); err != nil {
		return err
	}
	if err := s.store.Delete(ctx, name); err != nil {
		return err
	}
	s.Invalidate(name)
	return nil
}

// List always delegates to the underlying store.
func (s *CachedStore) List(ctx context.Context) ([]string, error) {
	if err := s.checkOpen(); err != nil {
		return nil, err
	}
	return s.store.List(ctx)
}

// Invalidate drops the cached entry for a template name.
func (s *CachedStore) Invalidate(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.cache, name)
}

// InvalidateAll drops every cached entry.
func (s *CachedStore) InvalidateAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cache = make(map[string]*storeCacheEntry)
}

// Close closes the cache and the underlying store.
func (s *CachedStore) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	s.cache = nil
	s.mu.Unlock()
	return s.store.Close()
}

// putEntry inserts a cache entry, evicting the least recently accessed
// entry when full.
func (s *CachedStore) putEntry(name string, entry *storeCacheEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	now := time.Now()
	entry.cachedAt = now
	entry.accessedAt = now

	if _, ok := s.cache[name]; !ok && len(s.cache) >= s.config.MaxEntries {
		s.evictOldestLocked()
	}
	s.cache[name] = entry
}

// evictOldestLocked removes the least recently accessed entry.
// Caller must hold the lock.
func (s *CachedStore) evictOldestLocked() {
	var oldestKey string
	var oldestTime time.Time
	first := true

	for key, entry := range s.cache {
		if first || entry.accessedAt.Before(oldestTime) {
			oldestKey = key
			oldestTime = entry.accessedAt
			first = false
		}
	}
	if !first {
		delete(s.cache, oldestKey)
	}
}

// entryValid reports whether a cache entry is within its TTL.
func (s *CachedStore) entryValid(entry *storeCacheEntry) bool {
	ttl := s.config.TTL
	if entry.notFound {
		ttl = s.config.NegativeTTL
	}
	return time.Since(entry.cachedAt) < ttl
}

// checkOpen returns an error when the cache has been closed.
func (s *CachedStore) checkOpen() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return NewStoreClosedError()
	}
	return nil
}
