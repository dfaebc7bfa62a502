// cache.go: two-tier resource cache with reference-count-gated eviction
//
// Every key lives in at most one tier. The in-use map holds entries with
// external handles outstanding; the loaded pool holds entries the cache is
// the sole owner of, bounded by capacity. Remove demotes only when the owner
// count proves no external handle survives; Get promotes pooled entries back
// before they can be evicted.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package xanthos

// ResourceCache maps string keys to reference-counted, type-erased handles.
//
// The cache is single-owner: no operation blocks or yields, and there is no
// internal locking. Remove's owner-count check is a read-then-act sequence,
// so sharing a cache across goroutines requires one exclusive lock around
// every call. Handles returned by the cache are themselves safe to pass
// between goroutines.
type ResourceCache struct {
	inUse  map[string]RawHandle
	loaded *lruPool

	logger  Logger
	time    TimeProvider
	metrics MetricsCollector
	onEvict func(key string, value interface{})

	// counters; plain fields, the cache is externally serialized
	hits       uint64
	misses     uint64
	inserts    uint64
	promotions uint64
	demotions  uint64
	evictions  uint64
}

// NewResourceCache creates a cache with both tiers empty.
// Returns a structured error (XANTHOS_INVALID_CAPACITY) if cfg.Capacity
// is not positive; the capacity is immutable for the cache's lifetime.
func NewResourceCache(cfg Config) (*ResourceCache, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &ResourceCache{
		inUse:   make(map[string]RawHandle),
		loaded:  newLRUPool(cfg.Capacity),
		logger:  cfg.Logger,
		time:    cfg.TimeProvider,
		metrics: cfg.MetricsCollector,
		onEvict: cfg.OnEvict,
	}, nil
}

// Insert unconditionally creates a new entry for key and stores it in the
// in-use tier, returning a typed handle. After Insert the entry has exactly
// two owners: the returned handle and the cache's slot.
//
// A stale entry for the same key in the loaded pool is dropped outright.
// Overwriting a key that is currently in use replaces the slot; the old
// entry stays alive only through handles external callers still hold and is
// no longer reachable by key.
//
// Insert is a free function because Go methods cannot take type parameters.
func Insert[T any](c *ResourceCache, key string, value T) Handle[T] {
	start := c.time.Now()

	if stale, ok := c.loaded.pop(key); ok {
		stale.Release()
	}
	if prev, ok := c.inUse[key]; ok {
		c.logger.Debug("in-use entry overwritten", "key", key, "remaining_refs", prev.Refs()-1)
		prev.Release()
	}

	h := newHandle[T](key, value)
	c.inUse[key] = h.raw.Clone()

	c.inserts++
	c.metrics.RecordInsert(c.time.Now() - start)
	return h
}

// Get looks up key and downcasts the entry to T. A present entry whose
// dynamic type is not T yields false without disturbing the entry: the
// reference taken by the lookup is released again and the slot is untouched.
func Get[T any](c *ResourceCache, key string) (Handle[T], bool) {
	raw, ok := c.GetRaw(key)
	if !ok {
		return Handle[T]{}, false
	}
	h, ok := Downcast[T](raw)
	if !ok {
		raw.Release()
		return Handle[T]{}, false
	}
	return h, true
}

// GetRaw looks up key and returns a new reference to its entry.
//
// An in-use hit is O(1) with no tier change. A loaded hit promotes: the
// entry leaves the pool (keeping its cache-held reference) and re-enters the
// in-use tier, so it can no longer be evicted. An unknown key reports false.
func (c *ResourceCache) GetRaw(key string) (RawHandle, bool) {
	start := c.time.Now()

	if h, ok := c.inUse[key]; ok {
		c.hits++
		c.metrics.RecordGet(c.time.Now()-start, true)
		return h.Clone(), true
	}

	if h, ok := c.loaded.pop(key); ok {
		// reference transfer: the pool's ownership becomes the slot's
		c.inUse[key] = h
		c.promotions++
		c.hits++
		c.metrics.RecordPromotion()
		c.metrics.RecordGet(c.time.Now()-start, true)
		c.logger.Debug("entry promoted", "key", key)
		return h.Clone(), true
	}

	c.misses++
	c.metrics.RecordGet(c.time.Now()-start, false)
	return RawHandle{}, false
}

// Remove returns a caller-held handle to the cache, consuming the caller's
// reference. If the handle's entry is the one currently in use for its key
// and exactly two owners remain (the cache's slot and the handle passed in),
// no external owner survives and the entry is demoted to the loaded pool.
// Any other state - more owners, a key already overwritten by a newer
// insert, or an invalid handle - only releases the caller's reference.
//
// The identity check against the current slot means a handle to an
// overwritten entry can never demote or evict the newer entry that happens
// to share its key.
func (c *ResourceCache) Remove(h RawHandle) {
	if !h.Valid() {
		return
	}
	start := c.time.Now()
	key := h.Key()

	slot, ok := c.inUse[key]
	if ok && slot.Same(h) && h.Refs() == 2 {
		delete(c.inUse, key)
		if ev, overflow := c.loaded.put(key, slot); overflow {
			c.evict(ev)
		}
		h.Release()
		c.demotions++
		c.metrics.RecordDemotion()
		c.metrics.RecordRemove(c.time.Now() - start)
		c.logger.Debug("entry demoted", "key", key, "loaded", c.loaded.len())
		return
	}

	h.Release()
	c.metrics.RecordRemove(c.time.Now() - start)
}

// Has reports whether key is present in either tier without promoting,
// touching recency order, or acquiring a reference.
func (c *ResourceCache) Has(key string) bool {
	if _, ok := c.inUse[key]; ok {
		return true
	}
	_, ok := c.loaded.peek(key)
	return ok
}

// InUseLen returns the number of entries in the in-use tier.
func (c *ResourceCache) InUseLen() int {
	return len(c.inUse)
}

// LoadedLen returns the number of entries in the evictable pool.
func (c *ResourceCache) LoadedLen() int {
	return c.loaded.len()
}

// Len returns the total number of entries reachable by key.
func (c *ResourceCache) Len() int {
	return len(c.inUse) + c.loaded.len()
}

// Capacity returns the bound of the evictable pool.
func (c *ResourceCache) Capacity() int {
	return c.loaded.capacity
}

// Stats returns a snapshot of cache statistics.
func (c *ResourceCache) Stats() CacheStats {
	return CacheStats{
		Hits:       c.hits,
		Misses:     c.misses,
		Inserts:    c.inserts,
		Promotions: c.promotions,
		Demotions:  c.demotions,
		Evictions:  c.evictions,
		InUse:      len(c.inUse),
		Loaded:     c.loaded.len(),
		Capacity:   c.loaded.capacity,
	}
}

// Clear releases every cache-held reference in both tiers. Pooled entries
// are dropped immediately (the cache was their sole owner); in-use entries
// survive through whatever handles external callers still hold.
func (c *ResourceCache) Clear() {
	for key, h := range c.inUse {
		delete(c.inUse, key)
		h.Release()
	}
	c.loaded.drain(func(key string, h RawHandle) {
		h.Release()
	})
	c.logger.Info("cache cleared")
}

// Close releases all cache-held references. The cache must not be used
// after Close.
func (c *ResourceCache) Close() error {
	stats := c.Stats()
	c.Clear()
	c.logger.Info("cache closed",
		"hits", stats.Hits,
		"misses", stats.Misses,
		"evictions", stats.Evictions,
	)
	return nil
}

// evict destroys an entry pushed out of the loaded pool. Entries only reach
// the pool once no external owner remains, so releasing the pool's reference
// here drops the value.
func (c *ResourceCache) evict(ev poolEntry) {
	if c.onEvict != nil {
		c.onEvict(ev.key, ev.handle.Value())
	}
	ev.handle.Release()
	c.evictions++
	c.metrics.RecordEviction()
	c.logger.Debug("entry evicted", "key", ev.key)
}
